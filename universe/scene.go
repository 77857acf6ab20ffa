package universe

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// SceneParams are the per-point shaping constants applied when a frame is built.
type SceneParams struct {
	PointerScale float32 // NDC pointer to object-space units
	BreathAmp    float32
	BreathFreq   float32
	BoostRadius  float32
	BoostGain    float32
}

// DefaultSceneParams returns the storefront values.
func DefaultSceneParams() SceneParams {
	return SceneParams{
		PointerScale: 6,
		BreathAmp:    0.01,
		BreathFreq:   0.5,
		BoostRadius:  1.8,
		BoostGain:    2.5,
	}
}

// Sprite is one point ready to draw: a world-space centre, a camera-facing
// half extent in world units, and a base colour.
type Sprite struct {
	Center mgl32.Vec3
	Half   float32
	R      uint8
	G      uint8
	B      uint8
}

// Scene couples a generated field with its kinematics. It is created on mount
// and discarded on unmount; nothing survives between mounts.
type Scene struct {
	Field  Field
	Kin    *Kinematics
	params SceneParams

	rgb     [][3]uint8
	sprites []Sprite
}

// NewScene prepares a scene for drawing.
func NewScene(field Field, kin *Kinematics, params SceneParams) *Scene {
	rgb := make([][3]uint8, len(field.Points))
	for i, p := range field.Points {
		r, g, b := p.Color.Clamped().RGB255()
		rgb[i] = [3]uint8{r, g, b}
	}
	return &Scene{
		Field:   field,
		Kin:     kin,
		params:  params,
		rgb:     rgb,
		sprites: make([]Sprite, 0, len(field.Points)),
	}
}

// Step advances the kinematics by one frame.
func (s *Scene) Step(pointer mgl32.Vec2, ok bool, dt float32) Uniforms {
	return s.Kin.Step(pointer, ok, dt)
}

// Sprites builds the frame's billboards for a viewport of the given pixel height.
// The returned slice is reused by the next call.
func (s *Scene) Sprites(screenH float32) []Sprite {
	s.sprites = s.sprites[:0]
	if screenH <= 0 {
		return s.sprites
	}

	u := s.Kin.Uniforms()
	model := s.Kin.ModelMatrix()
	fov := s.Kin.FOV()
	mouse := s.boostCentre()

	for i, p := range s.Field.Points {
		mult := SizeMultiplier(p.Position, mouse, s.params.BoostRadius, s.params.BoostGain)
		local := Breathe(p.Position, u.Time, s.params.BreathAmp, s.params.BreathFreq)
		c := s.rgb[i]
		s.sprites = append(s.sprites, Sprite{
			Center: model.Mul4x1(local.Vec4(1)).Vec3(),
			Half:   BillboardHalfSize(p.Size, mult, fov, screenH),
			R:      c[0],
			G:      c[1],
			B:      c[2],
		})
	}
	return s.sprites
}

// BoostRing returns n world-space points on the edge of the disc SizeMultiplier
// boosts: centred on the scaled pointer in the object XY plane, turned with the field.
func (s *Scene) BoostRing(n int) []mgl32.Vec3 {
	n = max(n, 3)
	model := s.Kin.ModelMatrix()
	centre := s.boostCentre()
	r := s.params.BoostRadius

	ring := make([]mgl32.Vec3, n)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / float64(n)
		local := mgl32.Vec4{
			centre[0] + r*float32(math.Cos(a)),
			centre[1] + r*float32(math.Sin(a)),
			0, 1,
		}
		ring[i] = model.Mul4x1(local).Vec3()
	}
	return ring
}

// BoostCentre returns the world-space centre of the boosted disc.
func (s *Scene) BoostCentre() mgl32.Vec3 {
	c := s.boostCentre()
	return s.Kin.ModelMatrix().Mul4x1(mgl32.Vec4{c[0], c[1], 0, 1}).Vec3()
}

// boostCentre is the scaled pointer in object space.
func (s *Scene) boostCentre() mgl32.Vec2 {
	return s.Kin.Uniforms().Mouse.Mul(s.params.PointerScale)
}

// SizeMultiplier enlarges points near the scaled pointer. Distance is measured
// in the XY plane of object space, before rotation.
func SizeMultiplier(pos mgl32.Vec3, scaledMouse mgl32.Vec2, radius, gain float32) float32 {
	d := mgl32.Vec2{pos[0], pos[1]}.Sub(scaledMouse).Len()
	if d < radius {
		return 1 + (radius-d)*gain
	}
	return 1
}

// Breathe applies the slow horizontal sway: x += sin(t*freq + y) * amp.
func Breathe(pos mgl32.Vec3, t, amp, freq float32) mgl32.Vec3 {
	pos[0] += sinf(t*freq+pos[1]) * amp
	return pos
}

// BillboardHalfSize converts a perspective-attenuated point size to a world-space
// half extent. A point of size s at depth z covers s/z pixels; mapping that
// back through the projection makes depth cancel out.
func BillboardHalfSize(size, multiplier, fovDeg, screenH float32) float32 {
	if screenH <= 0 {
		return 0
	}
	tanHalf := float32(math.Tan(float64(mgl32.DegToRad(fovDeg)) / 2))
	return size * multiplier * tanHalf / screenH
}

// Brighten shifts every channel of a base colour up by speed*0.5, matching the
// fragment stage of the point shader.
func Brighten(base colorful.Color, speed float32) colorful.Color {
	add := float64(speed) * 0.5
	return colorful.Color{R: base.R + add, G: base.G + add, B: base.B + add}.Clamped()
}
