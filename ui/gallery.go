package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noble/carousel"
	"github.com/pthm-cable/noble/renderer"
)

// GalleryModal shows every image of one product with thumbnails.
type GalleryModal struct {
	renderer *Renderer
	images   *renderer.CardRenderer
}

// NewGalleryModal creates a modal drawing images through cards.
func NewGalleryModal(images *renderer.CardRenderer) *GalleryModal {
	return &GalleryModal{
		renderer: NewRenderer(),
		images:   images,
	}
}

// Draw renders the open gallery and reports clicks.
func (m *GalleryModal) Draw(g *carousel.Gallery, screenW, screenH int32, actions *Actions) {
	if !g.IsOpen() {
		return
	}
	r := m.renderer
	t := r.Theme

	r.DrawBackdrop(screenW, screenH)

	w := min(float32(screenW)*0.8, 900)
	h := min(float32(screenH)*0.8, 640)
	x := (float32(screenW) - w) / 2
	y := (float32(screenH) - h) / 2
	r.DrawPanel(int32(x), int32(y), int32(w), int32(h))

	p := g.Product()
	rl.DrawText(p.Title, int32(x)+t.Padding, int32(y)+t.Padding, t.HeaderFontSize, rl.White)
	if gui.Button(rl.NewRectangle(x+w-float32(t.Padding)-36, y+float32(t.Padding)-4, 36, 32), "X") {
		actions.Add(ActionCloseGallery)
	}

	thumb := float32(72)
	pad := float32(t.Padding)
	view := rl.NewRectangle(x+pad, y+pad*2+float32(t.HeaderFontSize), w-2*pad, h-thumb-pad*5-float32(t.HeaderFontSize))
	m.images.DrawImage(g.Image(), view.X, view.Y, view.Width, view.Height, 1)

	n := g.Count()
	if n > 1 {
		if gui.Button(rl.NewRectangle(view.X+8, view.Y+view.Height/2-22, 44, 44), "<") {
			actions.Add(ActionGalleryPrevious)
		}
		if gui.Button(rl.NewRectangle(view.X+view.Width-52, view.Y+view.Height/2-22, 44, 44), ">") {
			actions.Add(ActionGalleryNext)
		}
		counter := fmt.Sprintf("%d / %d", g.Index()+1, n)
		r.DrawTextCentered(counter, int32(view.X+view.Width/2), int32(view.Y+view.Height)-24, t.FontSize, t.ValueColor)
	}

	// Thumbnails
	tx := x + w/2 - (float32(n)*(thumb+8)-8)/2
	ty := y + h - thumb - pad
	click := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	for i := 0; i < n; i++ {
		rec := rl.NewRectangle(tx, ty, thumb, thumb)
		m.images.DrawImage(p.Images[i], rec.X, rec.Y, rec.Width, rec.Height, 0.8)
		if i == g.Index() {
			rl.DrawRectangleLinesEx(rec, 2, t.Accent)
		}
		if click && Contains(rec) {
			actions.AddIndex(ActionGallerySelect, i)
		}
		tx += thumb + 8
	}
}
