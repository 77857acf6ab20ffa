package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noble/cart"
	"github.com/pthm-cable/noble/checkout"
)

// CartPanelData holds what the cart panel needs for one frame.
type CartPanelData struct {
	Lines        []cart.Line
	Totals       cart.Totals
	Currency     string
	ScreenWidth  int32
	ScreenHeight int32
}

// CartPanel is the slide-in cart on the right edge with the checkout form
// below the order summary.
type CartPanel struct {
	renderer *Renderer
	width    int32
	Form     *CheckoutForm

	first int     // first visible cart line
	wheel float32 // unspent fractional wheel movement
}

// NewCartPanel creates the panel around a checkout form.
func NewCartPanel(width int32, form *CheckoutForm) *CartPanel {
	return &CartPanel{
		renderer: NewRenderer(),
		width:    width,
		Form:     form,
	}
}

// Bounds returns the panel rectangle for a screen size.
func (c *CartPanel) Bounds(screenW, screenH int32) rl.Rectangle {
	w := min(c.width, screenW)
	return rl.NewRectangle(float32(screenW-w), 0, float32(w), float32(screenH))
}

// Draw renders the panel and reports clicks.
func (c *CartPanel) Draw(data CartPanelData, actions *Actions) {
	r := c.renderer
	t := r.Theme
	b := c.Bounds(data.ScreenWidth, data.ScreenHeight)

	r.DrawBackdrop(data.ScreenWidth, data.ScreenHeight)
	rl.DrawRectangleRec(b, t.PanelBg)
	rl.DrawLineEx(rl.NewVector2(b.X, 0), rl.NewVector2(b.X, b.Height), 1, t.PanelBorder)

	x := int32(b.X) + t.Padding
	w := int32(b.Width) - t.Padding*2
	y := t.Padding * 2

	rl.DrawText("Your Cart", x, y, t.HeaderFontSize+4, rl.White)
	if gui.Button(rl.NewRectangle(b.X+b.Width-float32(t.Padding)-36, float32(y-4), 36, 32), "X") {
		actions.Add(ActionCloseCart)
	}
	y += t.HeaderFontSize + 20

	if len(data.Lines) == 0 {
		r.DrawTextCentered("Your cart is empty", int32(b.X+b.Width/2), y+40, t.HeaderFontSize, t.Muted)
		return
	}

	money := func(v float64) string { return data.Currency + checkout.Number(v) }

	// Reserve the lower part of the panel for totals and the form. Lines that
	// do not fit scroll with the wheel or the arrow buttons.
	linesBottom := int32(b.Height) - c.Form.Height() - 5*t.LineHeight - t.Padding*3
	rowH := t.LineHeight + 24 + t.Padding
	fits := int((linesBottom - y) / rowH)
	overflow := len(data.Lines) > max(fits, 1)
	if overflow {
		fits = int((linesBottom - y - t.LineHeight) / rowH)
		if Contains(rl.NewRectangle(b.X, float32(y), b.Width, float32(linesBottom-y))) {
			c.wheel += rl.GetMouseWheelMove()
			steps := int(c.wheel)
			c.wheel -= float32(steps)
			c.first -= steps
		}
	}

	start, end := lineWindow(c.first, len(data.Lines), fits)
	c.first = start
	for _, line := range data.Lines[start:end] {
		y = c.drawLine(x, y, w, line, money, actions)
	}
	if overflow {
		r.DrawLabel(x, y+2, fmt.Sprintf("%d-%d of %d", start+1, end, len(data.Lines)))
		if gui.Button(rl.NewRectangle(float32(x+w)-64, float32(y), 28, 20), "^") {
			c.first = start - 1
		}
		if gui.Button(rl.NewRectangle(float32(x+w)-28, float32(y), 28, 20), "v") {
			c.first = start + 1
		}
		y += t.LineHeight
	}

	y = max(y, linesBottom) + t.Padding
	rl.DrawLine(x, y-t.Padding/2, x+w, y-t.Padding/2, t.PanelBorder)

	tot := data.Totals
	y = r.DrawRow(x, y, w, "Subtotal", money(tot.Subtotal), t.ValueColor)
	y = r.DrawRow(x, y, w, "Delivery", money(tot.DeliveryCharge), t.ValueColor)
	if tot.DiscountPercent > 0 {
		y = r.DrawRow(x, y, w, fmt.Sprintf("Discount (%s%%)", checkout.Number(tot.DiscountPercent)), "-"+money(tot.Discount), t.Success)
	}
	rl.DrawText("Total", x, y+2, t.HeaderFontSize, rl.White)
	tw := rl.MeasureText(money(tot.Total), t.HeaderFontSize)
	rl.DrawText(money(tot.Total), x+w-tw, y+2, t.HeaderFontSize, t.SectionHeader)
	y += t.HeaderFontSize + t.Padding

	c.Form.Draw(rl.NewRectangle(float32(x), float32(y), float32(w), float32(c.Form.Height())), actions)
}

// lineWindow returns the half-open range of lines to draw when fits rows are
// visible, starting as close to first as the line count allows.
func lineWindow(first, total, fits int) (start, end int) {
	fits = max(fits, 1)
	start = min(max(first, 0), max(total-fits, 0))
	return start, min(start+fits, total)
}

// drawLine draws one cart line with its quantity controls.
func (c *CartPanel) drawLine(x, y, w int32, line cart.Line, money func(float64) string, actions *Actions) int32 {
	r := c.renderer
	t := r.Theme
	id := line.Product.ID

	rl.DrawText(line.Product.Title, x, y, t.FontSize, rl.White)
	amount := money(line.Amount())
	aw := rl.MeasureText(amount, t.FontSize)
	rl.DrawText(amount, x+w-aw, y, t.FontSize, t.SectionHeader)
	y += t.LineHeight

	bx := float32(x)
	by := float32(y)
	if gui.Button(rl.NewRectangle(bx, by, 28, 24), "-") {
		actions.AddID(ActionDecrement, id)
	}
	rl.DrawText(fmt.Sprintf("%d", line.Quantity), int32(bx)+38, y+4, t.FontSize, t.ValueColor)
	if gui.Button(rl.NewRectangle(bx+64, by, 28, 24), "+") {
		actions.AddID(ActionIncrement, id)
	}
	if line.Product.Price != nil {
		r.DrawLabel(int32(bx)+104, y+4, "x "+money(*line.Product.Price))
	}
	if gui.Button(rl.NewRectangle(float32(x+w)-72, by, 72, 24), "Remove") {
		actions.AddID(ActionRemove, id)
	}

	return y + 24 + t.Padding
}
