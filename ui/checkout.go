package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noble/checkout"
)

// Form field order.
const (
	fieldName = iota
	fieldPhone
	fieldEmail
	fieldAddress
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Phone", "Email", "Address"}

// CheckoutForm edits the customer details. Every edit is passed through the
// rules so the stored customer is always sanitised.
type CheckoutForm struct {
	renderer *Renderer
	rules    checkout.Rules

	customer checkout.Customer
	editing  int // field in edit mode, -1 for none
}

// NewCheckoutForm creates an empty form.
func NewCheckoutForm(rules checkout.Rules) *CheckoutForm {
	return &CheckoutForm{
		renderer: NewRenderer(),
		rules:    rules,
		customer: rules.NewCustomer(),
		editing:  -1,
	}
}

// Customer returns the current details.
func (f *CheckoutForm) Customer() checkout.Customer {
	return f.customer
}

// Ready reports whether checkout may proceed.
func (f *CheckoutForm) Ready() bool {
	return f.rules.Ready(f.customer)
}

// Editing reports whether a text box has keyboard focus.
func (f *CheckoutForm) Editing() bool {
	return f.editing >= 0
}

// Blur leaves edit mode.
func (f *CheckoutForm) Blur() {
	f.editing = -1
}

// Height returns the pixel height the form needs.
func (f *CheckoutForm) Height() int32 {
	t := f.renderer.Theme
	return fieldCount*(int32(t.ButtonHeight)+6) + int32(t.ButtonHeight) + t.LineHeight + t.Padding*2
}

// Draw renders the form inside b and reports a checkout click.
func (f *CheckoutForm) Draw(b rl.Rectangle, actions *Actions) {
	r := f.renderer
	t := r.Theme

	values := [fieldCount]*string{&f.customer.Name, &f.customer.Phone, &f.customer.Email, &f.customer.Address}
	limits := [fieldCount]int{f.rules.MaxName, len(f.rules.PhonePrefix) + f.rules.PhoneDigits, f.rules.MaxEmail, f.rules.MaxAddress}

	y := b.Y
	labelW := float32(t.LabelWidth - 30)
	for i := 0; i < fieldCount; i++ {
		rl.DrawText(fieldLabels[i], int32(b.X), int32(y+8), t.FontSize, t.LabelColor)
		box := rl.NewRectangle(b.X+labelW, y, b.Width-labelW, t.ButtonHeight)
		if gui.TextBox(box, values[i], limits[i]+1, f.editing == i) {
			if f.editing == i {
				f.editing = -1
			} else {
				f.editing = i
			}
		}
		y += t.ButtonHeight + 6
	}
	f.customer = f.rules.Sanitize(f.customer)

	ready := f.Ready()
	if !ready {
		hint := "Please fill in: " + strings.Join(f.rules.Missing(f.customer), ", ")
		rl.DrawText(hint, int32(b.X), int32(y+4), t.FontSize-2, t.Warning)
		gui.Disable()
	}
	y += float32(t.LineHeight)

	if gui.Button(rl.NewRectangle(b.X, y, b.Width, t.ButtonHeight), "Place Order on WhatsApp") {
		f.editing = -1
		actions.Add(ActionCheckout)
	}
	if !ready {
		gui.Enable()
	}
}
