package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// shortcut is one fixed key binding shown in the help panel.
type shortcut struct {
	keys, action string
}

var shortcuts = []shortcut{
	{"Left / Right", "browse products or gallery"},
	{"Esc", "close gallery, then cart"},
	{"F11", "fullscreen"},
}

// ControlsPanel is the F1 help panel: key bindings plus a checkbox per overlay.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new help panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Height returns the panel height for the registry's current contents.
func (c *ControlsPanel) Height(overlays *OverlayRegistry) int32 {
	const row = 18
	rows := int32(len(shortcuts)) + 3 // titles and the hint line
	for _, cat := range overlays.Categories() {
		rows += int32(len(overlays.ByCategory(cat))) + 1
	}
	return rows*row + c.renderer.Theme.Padding*3
}

// Draw renders the panel. Clicking a checkbox toggles its overlay.
// It returns the y coordinate below the panel.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	const row = 18
	r := c.renderer
	t := r.Theme
	pad := t.Padding
	height := c.Height(overlays)

	r.DrawPanel(c.x, c.y, c.width, height)
	x := c.x + pad
	y := c.y + pad

	rl.DrawText("Keys", x, y, 16, rl.White)
	y += row
	for _, s := range shortcuts {
		rl.DrawText(s.keys, x, y, 12, t.ValueColor)
		rl.DrawText(s.action, x+90, y, 12, t.LabelColor)
		y += row
	}

	y += pad / 2
	rl.DrawText("Overlays", x, y, 16, rl.White)
	y += row
	hint := "Click or press the key to toggle"
	for _, category := range overlays.Categories() {
		rl.DrawText(categoryLabel(category), x, y, 12, t.SectionHeader)
		y += row
		for _, desc := range overlays.ByCategory(category) {
			box := rl.NewRectangle(float32(x), float32(y), 12, 12)
			on := overlays.IsEnabled(desc.ID)
			if next := gui.CheckBox(box, desc.Name, on); next != on {
				overlays.SetEnabled(desc.ID, next)
			}
			if Contains(rl.NewRectangle(float32(x), float32(y), float32(c.width-pad*2), row)) {
				hint = desc.Description
			}
			key := "[" + desc.KeyLabel + "]"
			rl.DrawText(key, c.x+c.width-pad-rl.MeasureText(key, 12), y, 12, t.Muted)
			y += row
		}
	}
	rl.DrawText(hint, x, y+4, 12, t.Muted)
	return c.y + height
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
