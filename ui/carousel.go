package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CardHit is the clickable area of one visible card.
type CardHit struct {
	Index  int
	Bounds rl.Rectangle
}

// CarouselData holds what the carousel controls need for one frame.
type CarouselData struct {
	N, Index     int
	Centre       rl.Rectangle // centred card bounds
	Image        rl.Rectangle // centred card image area, opens the gallery
	Hits         []CardHit    // side cards, nearest last
	Added        bool         // the add-to-cart confirmation is showing
	Interactive  bool         // false while a modal is open
	ScreenWidth  int32
	ScreenHeight int32
}

// CarouselControls draws the arrows, the position dots and the add-to-cart
// button around the centred card.
type CarouselControls struct {
	renderer *Renderer
}

// NewCarouselControls creates the controls.
func NewCarouselControls() *CarouselControls {
	return &CarouselControls{renderer: NewRenderer()}
}

// Draw renders the controls and reports clicks.
func (c *CarouselControls) Draw(data CarouselData, actions *Actions) {
	if data.N == 0 {
		c.renderer.DrawTextCentered("No products available", data.ScreenWidth/2, data.ScreenHeight/2, 20, c.renderer.Theme.Muted)
		return
	}
	if !data.Interactive {
		gui.Disable()
		defer gui.Enable()
	}
	t := c.renderer.Theme

	// Arrows sit just outside the centred card
	const arrow = 44
	midY := data.Centre.Y + data.Centre.Height/2 - arrow/2
	left := rl.NewRectangle(max(data.Centre.X-arrow-16, 8), midY, arrow, arrow)
	right := rl.NewRectangle(min(data.Centre.X+data.Centre.Width+16, float32(data.ScreenWidth)-arrow-8), midY, arrow, arrow)
	if gui.Button(left, "<") {
		actions.Add(ActionPrevious)
	}
	if gui.Button(right, ">") {
		actions.Add(ActionNext)
	}

	c.drawDots(data, actions)

	// Add to cart
	label := "Add to Cart"
	if data.Added {
		label = "Added!"
	}
	bw := float32(150)
	btn := rl.NewRectangle(
		data.Centre.X+data.Centre.Width-bw-float32(t.Padding),
		data.Centre.Y+data.Centre.Height-t.ButtonHeight-float32(t.Padding),
		bw, t.ButtonHeight,
	)
	if gui.Button(btn, label) {
		actions.Add(ActionAddToCart)
	}

	if !data.Interactive || !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	if Contains(btn) || Contains(left) || Contains(right) {
		return
	}
	if Contains(data.Image) {
		actions.AddIndex(ActionOpenGallery, 0)
		return
	}
	if Contains(data.Centre) {
		return
	}
	// Nearest card wins where side cards overlap
	for i := len(data.Hits) - 1; i >= 0; i-- {
		if Contains(data.Hits[i].Bounds) {
			actions.AddIndex(ActionSelect, data.Hits[i].Index)
			return
		}
	}
}

// drawDots draws one dot per product below the card. The centred one is wider.
func (c *CarouselControls) drawDots(data CarouselData, actions *Actions) {
	t := c.renderer.Theme
	const (
		dot    = 10
		active = 28
		gap    = 8
	)
	total := float32(data.N-1)*(dot+gap) + active
	x := float32(data.ScreenWidth)/2 - total/2
	y := data.Centre.Y + data.Centre.Height + 28

	click := data.Interactive && rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	for i := 0; i < data.N; i++ {
		w := float32(dot)
		color := t.Muted
		if i == data.Index {
			w = active
			color = t.Accent
		}
		rec := rl.NewRectangle(x, y, w, dot)
		rl.DrawRectangleRounded(rec, 1, 6, color)
		if click && i != data.Index && Contains(rec) {
			actions.AddIndex(ActionSelect, i)
		}
		x += w + gap
	}
}
