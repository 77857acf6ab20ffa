package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fills the screen with a vertical gradient. It stands in
// for the universe when the point shader cannot be compiled.
type BackgroundRenderer struct {
	top, bottom      rl.Color
	screenW, screenH int32
}

// NewBackgroundRenderer creates a gradient from two "#rrggbb" colours.
func NewBackgroundRenderer(screenW, screenH int32, top, bottom string) *BackgroundRenderer {
	return &BackgroundRenderer{
		top:     HexColor(top, rl.Color{R: 17, G: 24, B: 39, A: 255}),
		bottom:  HexColor(bottom, rl.Black),
		screenW: screenW,
		screenH: screenH,
	}
}

// Resize updates the fill area.
func (b *BackgroundRenderer) Resize(screenW, screenH int32) {
	b.screenW = screenW
	b.screenH = screenH
}

// Draw renders the gradient.
func (b *BackgroundRenderer) Draw() {
	rl.DrawRectangleGradientV(0, 0, b.screenW, b.screenH, b.top, b.bottom)
}
