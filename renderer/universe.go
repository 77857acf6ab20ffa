package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noble/camera"
	"github.com/pthm-cable/noble/universe"
)

// UniverseRenderer draws the particle field as additive camera-facing discs.
// When the shader fails to compile it draws the gradient placeholder instead.
type UniverseRenderer struct {
	shader   rl.Shader
	speedLoc int32
	sprite   rl.Texture2D // 1x1 white, only its UVs matter

	placeholder *BackgroundRenderer

	valid       bool
	initialized bool
}

// NewUniverseRenderer creates a renderer with the given fallback.
func NewUniverseRenderer(placeholder *BackgroundRenderer) *UniverseRenderer {
	return &UniverseRenderer{placeholder: placeholder}
}

// Init compiles the shader (must be called after the raylib window is created).
func (u *UniverseRenderer) Init() {
	if u.initialized {
		return
	}
	u.initialized = true

	u.shader = rl.LoadShaderFromMemory(universeVS, universeFS)
	if !rl.IsShaderValid(u.shader) {
		slog.Warn("universe shader unavailable, using placeholder")
		return
	}
	u.speedLoc = rl.GetShaderLocation(u.shader, "uSpeed")

	img := rl.GenImageColor(1, 1, rl.White)
	u.sprite = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	u.valid = true
}

// Valid reports whether the shader compiled.
func (u *UniverseRenderer) Valid() bool {
	return u.valid
}

// Draw renders one frame of the scene through cam.
func (u *UniverseRenderer) Draw(scene *universe.Scene, cam *camera.Camera) {
	if !u.initialized {
		u.Init()
	}
	if !u.valid {
		if u.placeholder != nil {
			u.placeholder.Draw()
		}
		return
	}

	sprites := scene.Sprites(cam.ViewportH)
	speed := scene.Kin.Uniforms().Speed
	rl.SetShaderValue(u.shader, u.speedLoc, []float32{speed}, rl.ShaderUniformFloat)

	source := rl.NewRectangle(0, 0, 1, 1)
	rlCam := Camera3D(cam)

	rl.BeginMode3D(rlCam)
	rl.BeginShaderMode(u.shader)
	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DisableDepthMask()

	for _, s := range sprites {
		size := 2 * s.Half
		rl.DrawBillboardRec(
			rlCam, u.sprite, source,
			rl.NewVector3(s.Center.X(), s.Center.Y(), s.Center.Z()),
			rl.NewVector2(size, size),
			rl.Color{R: s.R, G: s.G, B: s.B, A: 255},
		)
	}

	rl.EnableDepthMask()
	rl.EndBlendMode()
	rl.EndShaderMode()
	rl.EndMode3D()
}

// Unload frees GPU resources. The renderer can be initialised again afterwards.
func (u *UniverseRenderer) Unload() {
	if !u.initialized {
		return
	}
	if u.valid {
		rl.UnloadTexture(u.sprite)
	}
	if u.shader.ID != 0 {
		rl.UnloadShader(u.shader)
	}
	u.valid = false
	u.initialized = false
}

// Camera3D converts the storefront camera to raylib's.
func Camera3D(c *camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(c.Position.X(), c.Position.Y(), c.Position.Z()),
		Target:     rl.NewVector3(c.Target.X(), c.Target.Y(), c.Target.Z()),
		Up:         rl.NewVector3(c.Up.X(), c.Up.Y(), c.Up.Z()),
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
