package renderer

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noble/carousel"
	"github.com/pthm-cable/noble/catalog"
	"github.com/pthm-cable/noble/checkout"
)

// CardStyle holds card colours.
type CardStyle struct {
	Background rl.Color
	Border     rl.Color
	ImageBg    rl.Color
	Title      rl.Color
	Body       rl.Color
	Price      rl.Color
	Halo       rl.Color
}

// DefaultCardStyle returns the dark glass look used by the storefront.
func DefaultCardStyle() CardStyle {
	return CardStyle{
		Background: rl.Color{R: 17, G: 24, B: 39, A: 220},
		Border:     rl.Color{R: 75, G: 85, B: 99, A: 255},
		ImageBg:    rl.Color{R: 31, G: 41, B: 55, A: 255},
		Title:      rl.White,
		Body:       rl.Color{R: 209, G: 213, B: 219, A: 255},
		Price:      rl.Color{R: 251, G: 191, B: 36, A: 255},
		Halo:       rl.Color{R: 96, G: 165, B: 250, A: 255},
	}
}

// CardRenderer draws product cards from their projected quads.
type CardRenderer struct {
	Style    CardStyle
	currency string

	textures map[string]rl.Texture2D
	missing  map[string]bool
}

// NewCardRenderer creates a card renderer that prefixes prices with currency.
func NewCardRenderer(currency string) *CardRenderer {
	return &CardRenderer{
		Style:    DefaultCardStyle(),
		currency: currency,
		textures: make(map[string]rl.Texture2D),
		missing:  make(map[string]bool),
	}
}

// Draw renders one card. Hidden cards are skipped.
func (c *CardRenderer) Draw(p catalog.Product, q carousel.Quad, pl carousel.Placement) {
	if !pl.Visible && pl.Opacity <= 0 {
		return
	}
	opacity := pl.Opacity

	// Blur is approximated by a translucent halo that grows with the blur radius
	for i := float32(1); i <= pl.Blur; i++ {
		drawQuad(expand(q, i*2), Fade(c.Style.Background, opacity*0.15))
	}

	drawQuad(q, Fade(c.Style.Background, opacity))
	drawQuadLines(q, Fade(c.Style.Border, opacity))

	x, y, w, h := q.Bounds()
	if w < 40 || h < 40 {
		return
	}
	contentAlpha := opacity / (1 + pl.Blur*0.2)
	scale := pl.Scale * q.Depth
	pad := 16 * scale

	img := ImageBox(q, pl)
	imgH := img.Height + pad
	c.DrawImage(p.PrimaryImage(), img.X, img.Y, img.Width, img.Height, contentAlpha)

	titleSize := int32(24 * scale)
	bodySize := int32(16 * scale)
	if bodySize < 8 {
		return
	}

	ty := int32(y + imgH + pad)
	tx := int32(x + pad)
	rl.DrawText(p.Title, tx, ty, titleSize, Fade(c.Style.Title, contentAlpha))
	ty += titleSize + int32(6*scale)

	for _, line := range Wrap(p.Description, int32(w-2*pad), bodySize, 3) {
		rl.DrawText(line, tx, ty, bodySize, Fade(c.Style.Body, contentAlpha))
		ty += bodySize + 2
	}

	var details []string
	if p.Weight != "" {
		details = append(details, "Weight: "+p.Weight)
	}
	if p.Dimensions != "" {
		details = append(details, "Size: "+p.Dimensions)
	}
	if len(details) > 0 {
		rl.DrawText(strings.Join(details, "   "), tx, ty+4, bodySize, Fade(c.Style.Body, contentAlpha*0.8))
	}

	if p.Price != nil {
		price := c.currency + checkout.Number(*p.Price)
		rl.DrawText(price, tx, int32(y+h-pad)-titleSize, titleSize, Fade(c.Style.Price, contentAlpha))
	}
}

// DrawInCart tags the top right corner of a card with the quantity already in
// the cart. Nothing is drawn for zero.
func (c *CardRenderer) DrawInCart(q carousel.Quad, pl carousel.Placement, n int) {
	if n <= 0 {
		return
	}
	x, y, w, _ := q.Bounds()
	scale := pl.Scale * q.Depth
	size := int32(14 * scale)
	if size < 8 {
		return
	}
	label := fmt.Sprintf("In cart: %d", n)
	pad := 8 * scale
	tw := float32(rl.MeasureText(label, size))
	box := rl.NewRectangle(x+w-tw-3*pad, y+pad, tw+2*pad, float32(size)+pad)
	rl.DrawRectangleRounded(box, 0.5, 6, Fade(c.Style.Halo, pl.Opacity*0.85))
	rl.DrawText(label, int32(box.X+pad), int32(box.Y+pad/2), size, Fade(c.Style.Title, pl.Opacity))
}

// ImageBox is the image area in the upper half of a card.
func ImageBox(q carousel.Quad, pl carousel.Placement) rl.Rectangle {
	x, y, w, h := q.Bounds()
	pad := 16 * pl.Scale * q.Depth
	return rl.NewRectangle(x+pad, y+pad, w-2*pad, h*0.5-pad)
}

// DrawImage draws an image reference into a box: a texture when the reference
// is a readable file, otherwise the reference itself as a centred glyph.
func (c *CardRenderer) DrawImage(ref string, x, y, w, h, opacity float32) {
	if w <= 0 || h <= 0 {
		return
	}
	rl.DrawRectangleRounded(rl.NewRectangle(x, y, w, h), 0.08, 6, Fade(c.Style.ImageBg, opacity))

	if tex, ok := c.texture(ref); ok {
		// Fit inside the box keeping aspect
		s := min(w/float32(tex.Width), h/float32(tex.Height))
		dw, dh := float32(tex.Width)*s, float32(tex.Height)*s
		src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		dst := rl.NewRectangle(x+(w-dw)/2, y+(h-dh)/2, dw, dh)
		rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, Fade(rl.White, opacity))
		return
	}

	glyph := ref
	if glyph == "" || catalog.IsImagePath(glyph) {
		glyph = "?"
	}
	size := int32(h * 0.3)
	if size < 8 {
		return
	}
	tw := rl.MeasureText(glyph, size)
	rl.DrawText(glyph, int32(x+w/2)-tw/2, int32(y+h/2)-size/2, size, Fade(c.Style.Halo, opacity))
}

// texture loads and caches a file image. Unreadable references are remembered
// so they are only tried once.
func (c *CardRenderer) texture(ref string) (rl.Texture2D, bool) {
	if !catalog.IsImagePath(ref) || c.missing[ref] {
		return rl.Texture2D{}, false
	}
	if tex, ok := c.textures[ref]; ok {
		return tex, true
	}
	if _, err := os.Stat(ref); err != nil {
		c.missing[ref] = true
		slog.Debug("product image unavailable", "ref", ref, "error", err)
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(ref)
	if !rl.IsTextureValid(tex) {
		c.missing[ref] = true
		slog.Warn("product image failed to load", "ref", ref)
		return rl.Texture2D{}, false
	}
	c.textures[ref] = tex
	return tex, true
}

// Unload frees cached textures.
func (c *CardRenderer) Unload() {
	for ref, tex := range c.textures {
		rl.UnloadTexture(tex)
		delete(c.textures, ref)
	}
	clear(c.missing)
}

func drawQuad(q carousel.Quad, color rl.Color) {
	tl := rl.NewVector2(q.TL.X(), q.TL.Y())
	tr := rl.NewVector2(q.TR.X(), q.TR.Y())
	br := rl.NewVector2(q.BR.X(), q.BR.Y())
	bl := rl.NewVector2(q.BL.X(), q.BL.Y())
	rl.DrawTriangle(tl, bl, br, color)
	rl.DrawTriangle(tl, br, tr, color)
}

func drawQuadLines(q carousel.Quad, color rl.Color) {
	pts := []rl.Vector2{
		rl.NewVector2(q.TL.X(), q.TL.Y()),
		rl.NewVector2(q.TR.X(), q.TR.Y()),
		rl.NewVector2(q.BR.X(), q.BR.Y()),
		rl.NewVector2(q.BL.X(), q.BL.Y()),
	}
	for i := range pts {
		rl.DrawLineEx(pts[i], pts[(i+1)%len(pts)], 1.5, color)
	}
}

// expand grows a quad by d pixels on every side.
func expand(q carousel.Quad, d float32) carousel.Quad {
	q.TL[0], q.TL[1] = q.TL[0]-d, q.TL[1]-d
	q.TR[0], q.TR[1] = q.TR[0]+d, q.TR[1]-d
	q.BR[0], q.BR[1] = q.BR[0]+d, q.BR[1]+d
	q.BL[0], q.BL[1] = q.BL[0]-d, q.BL[1]+d
	return q
}

// Wrap splits text into at most maxLines lines no wider than width pixels at
// the given font size. The last line is ellipsised when text remains.
func Wrap(text string, width, fontSize int32, maxLines int) []string {
	words := strings.Fields(text)
	var lines []string
	line := ""
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if rl.MeasureText(candidate, fontSize) <= width || line == "" {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
		if maxLines > 0 && len(lines) == maxLines {
			lines[maxLines-1] += "..."
			return lines
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
