package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// InspectorData holds the universe state shown by the kinematics inspector.
type InspectorData struct {
	Particles      int
	Stars          int
	PointerSpeed   float32
	RotationSpeed  float32
	TargetRotation float32
	Glow           float32 // uSpeed
	FOV            float32
	BaseFOV        float32
	RotY, RotZ     float32
	ViewHalfW      float32 // visible half extent at the camera target
	ViewHalfH      float32
	ShaderValid    bool
}

// Inspector renders the kinematics panel.
type Inspector struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the inspector and returns the y coordinate below it.
func (ins *Inspector) Draw(data InspectorData) int32 {
	r := ins.renderer
	pad := r.Theme.Padding
	height := 10*r.Theme.LineHeight + pad*2 + r.Theme.HeaderFontSize

	r.DrawPanel(ins.x, ins.y, ins.width, height)
	x := ins.x + pad
	y := ins.y + pad
	w := ins.width - pad*2

	y = r.DrawSectionHeader(x, y, "Universe")

	shader := "ok"
	if !data.ShaderValid {
		shader = "placeholder"
	}
	y = r.DrawLabelValue(x, y, "Shader", shader)
	y = r.DrawLabelValue(x, y, "Particles", fmt.Sprintf("%d", data.Particles))
	y = r.DrawLabelValue(x, y, "Stars", fmt.Sprintf("%d", data.Stars))

	// Pointer speed is clamped to 1, rotation speed settles near its base
	y = r.DrawBar(x, y, "Pointer", data.PointerSpeed, 0, 1, w)
	y = r.DrawBar(x, y, "Rotation", data.RotationSpeed, 0, 0.1, w)
	y = r.DrawBar(x, y, "Target", data.TargetRotation, 0, 0.1, w)
	y = r.DrawBar(x, y, "Glow", data.Glow, 0, 0.5, w)
	y = r.DrawBar(x, y, "FOV", data.FOV, data.BaseFOV, data.BaseFOV+40, w)
	y = r.DrawLabelValue(x, y, "View", fmt.Sprintf("%.1f x %.1f", 2*data.ViewHalfW, 2*data.ViewHalfH))

	rl.DrawText(fmt.Sprintf("rot y %.2f  z %.2f rad", data.RotY, data.RotZ), x, y, 12, r.Theme.Muted)
	return ins.y + height
}
