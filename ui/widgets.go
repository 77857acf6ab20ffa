package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rec := rl.NewRectangle(float32(x), float32(y), float32(width), float32(height))
	rl.DrawRectangleRounded(rec, 0.03, 6, r.Theme.PanelBg)
	rl.DrawRectangleRoundedLinesEx(rec, 0.03, 6, 1, r.Theme.PanelBorder)
}

// DrawBackdrop dims the whole screen behind a modal.
func (r *Renderer) DrawBackdrop(screenW, screenH int32) {
	rl.DrawRectangle(0, 0, screenW, screenH, r.Theme.Backdrop)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.HeaderFontSize + 8
}

// DrawLabel draws a text label.
func (r *Renderer) DrawLabel(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawValue draws a value text.
func (r *Renderer) DrawValue(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.ValueColor)
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawRow draws a label on the left and a value right-aligned at x+width.
func (r *Renderer) DrawRow(x, y, width int32, label, value string, valueColor rl.Color) int32 {
	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	vw := rl.MeasureText(value, r.Theme.FontSize)
	rl.DrawText(value, x+width-vw, y, r.Theme.FontSize, valueColor)
	return y + r.Theme.LineHeight
}

// DrawBar draws value within [minVal, maxVal] as a bar whose colour rises from
// low to high as it fills.
func (r *Renderer) DrawBar(x, y int32, label string, value, minVal, maxVal float32, width int32) int32 {
	ratio := float32(0)
	if maxVal > minVal {
		ratio = (value - minVal) / (maxVal - minVal)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 80

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)

	barColor := r.Theme.BarFillLow
	if ratio > 0.6 {
		barColor = r.Theme.BarFillHigh
	} else if ratio > 0.3 {
		barColor = r.Theme.BarFillMedium
	}
	rl.DrawRectangle(barX, y+2, int32(float32(barWidth)*ratio), r.Theme.BarHeight, barColor)

	rl.DrawText(fmt.Sprintf("%.4g", value), barX+barWidth+5, y, r.Theme.FontSize, r.Theme.ValueColor)

	return y + r.Theme.LineHeight
}

// DrawTextCentered draws text centred on cx.
func (r *Renderer) DrawTextCentered(text string, cx, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
}

// DrawBadge draws a small count bubble centred at (cx, cy).
func (r *Renderer) DrawBadge(cx, cy float32, count int) {
	if count <= 0 {
		return
	}
	text := fmt.Sprintf("%d", count)
	size := r.Theme.FontSize - 2
	w := float32(rl.MeasureText(text, size))
	radius := max(w/2+5, float32(size)/2+3)
	rl.DrawCircleV(rl.NewVector2(cx, cy), radius, r.Theme.Warning)
	rl.DrawText(text, int32(cx-w/2), int32(cy)-size/2, size, rl.White)
}

// Contains reports whether the mouse is inside rec.
func Contains(rec rl.Rectangle) bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), rec)
}
