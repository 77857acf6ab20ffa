package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noble/telemetry"
)

// HUDData holds all the data needed to render the header and footer.
type HUDData struct {
	Title        string
	CartCount    int
	CartOpen     bool
	Interactive  bool // false while a modal is open
	ScreenWidth  int32
	ScreenHeight int32
	Links        []Link
}

// Link is a footer contact link.
type Link struct {
	Label string
	URL   string
}

// HUD renders the storefront header and footer.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD and reports clicks.
func (h *HUD) Draw(data HUDData, actions *Actions) {
	r := h.renderer
	t := r.Theme

	rl.DrawText(data.Title, t.Padding*2, t.Padding*2, t.TitleFontSize, rl.White)

	if !data.Interactive {
		gui.Disable()
		defer gui.Enable()
	}

	// Cart button with item badge, hidden under the open panel
	if !data.CartOpen {
		btn := rl.NewRectangle(float32(data.ScreenWidth-t.Padding*2-110), float32(t.Padding*2), 110, t.ButtonHeight+4)
		if gui.Button(btn, "Cart") {
			actions.Add(ActionToggleCart)
		}
		r.DrawBadge(btn.X+btn.Width, btn.Y, data.CartCount)
	}

	// Footer links
	x := float32(t.Padding * 2)
	y := float32(data.ScreenHeight-t.Padding) - t.ButtonHeight
	for _, l := range data.Links {
		if l.URL == "" {
			continue
		}
		w := float32(rl.MeasureText(l.Label, t.FontSize) + 24)
		if gui.Button(rl.NewRectangle(x, y, w, t.ButtonHeight), l.Label) {
			*actions = append(*actions, Action{Kind: ActionOpenLink, URL: l.URL})
		}
		x += w + 8
	}
}

// PerfPanel renders the frame timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	pad := r.Theme.Padding
	width := int32(300)
	height := int32(len(telemetry.Phases)+3)*16 + pad*2 + 24

	r.DrawPanel(p.x, p.y, width, height)
	x := p.x + pad
	y := p.y + pad

	rl.DrawText("Frame Timing", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg: %s  p95: %s  FPS: %.0f",
		stats.AvgFrame.Round(time.Microsecond), stats.P95Frame.Round(time.Microsecond), stats.FPS),
		x, y, 12, rl.Yellow)
	y += 16
	rl.DrawText(fmt.Sprintf("Min: %s  Max: %s  SD: %s",
		stats.MinFrame.Round(time.Microsecond), stats.MaxFrame.Round(time.Microsecond), stats.StdDevFrame.Round(time.Microsecond)),
		x, y, 12, rl.LightGray)
	y += 20

	for _, name := range telemetry.Phases {
		avg := stats.PhaseAvg[name]
		pct := stats.PhasePct[name]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(fmt.Sprintf("%-12s %8s %5.1f%%", name, avg.Round(time.Microsecond), pct), x, y, 12, color)
		y += 16
	}
}
