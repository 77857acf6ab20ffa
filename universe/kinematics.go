package universe

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// KinematicsParams holds the smoothing constants. All lerp factors are per frame.
type KinematicsParams struct {
	SpeedGain      float32
	BaseRotation   float32
	SpeedRotation  float32
	RestRotation   float32
	PointerLerp    float32
	RotationLerp   float32
	DecayLerp      float32
	SecondaryRatio float32
	BaseFOV        float32
	FOVGain        float32
	FOVLerp        float32
	GlowGain       float32
}

// DefaultKinematicsParams returns the tuned storefront values.
func DefaultKinematicsParams() KinematicsParams {
	return KinematicsParams{
		SpeedGain:      15,
		BaseRotation:   0.0005,
		SpeedRotation:  0.1,
		RestRotation:   0.0008,
		PointerLerp:    0.1,
		RotationLerp:   0.05,
		DecayLerp:      0.01,
		SecondaryRatio: 0.2,
		BaseFOV:        75,
		FOVGain:        400,
		FOVLerp:        0.05,
		GlowGain:       5,
	}
}

// Uniforms are the values pushed to the point-cloud shader each frame.
type Uniforms struct {
	Time  float32
	Mouse mgl32.Vec2 // smoothed pointer, NDC
	Speed float32    // glow scalar
}

// Kinematics is the pointer/rotation state of the running scene.
// It is owned by exactly one frame loop and advanced once per frame with Step.
type Kinematics struct {
	params KinematicsParams

	pointer  mgl32.Vec2 // last raw sample
	prev     mgl32.Vec2
	smoothed mgl32.Vec2

	pointerSpeed float32
	current      float32
	target       float32

	rotY, rotZ float32
	fov        float32
	time       float32
}

// NewKinematics creates the state for a freshly mounted scene.
func NewKinematics(params KinematicsParams) *Kinematics {
	return &Kinematics{
		params:  params,
		current: params.BaseRotation,
		target:  params.BaseRotation,
		fov:     params.BaseFOV,
	}
}

// Step advances one frame. When ok is false the pointer source is unavailable
// and the last sample is held, which reads as a still pointer.
func (k *Kinematics) Step(pointer mgl32.Vec2, ok bool, dt float32) Uniforms {
	p := k.params
	if ok {
		k.pointer = pointer
	}
	k.time += dt

	k.pointerSpeed = min(k.pointer.Sub(k.prev).Len()*p.SpeedGain, 1)
	k.target = p.BaseRotation + k.pointerSpeed*p.SpeedRotation
	k.prev = k.pointer

	k.smoothed = lerpVec2(k.smoothed, k.pointer, p.PointerLerp)
	k.current = lerp(k.current, k.target, p.RotationLerp)

	k.rotY += k.current
	k.rotZ += k.current * p.SecondaryRatio

	targetFOV := p.BaseFOV + k.current*p.FOVGain
	k.fov = lerp(k.fov, targetFOV, p.FOVLerp)

	// Passive deceleration once the pointer rests
	k.target = lerp(k.target, p.RestRotation, p.DecayLerp)

	return k.Uniforms()
}

// Uniforms returns the current shader parameters without advancing.
func (k *Kinematics) Uniforms() Uniforms {
	return Uniforms{
		Time:  k.time,
		Mouse: k.smoothed,
		Speed: k.current * k.params.GlowGain,
	}
}

// ModelMatrix is the accumulated tumble: rotation about Y, then Z.
func (k *Kinematics) ModelMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(k.rotY).Mul4(mgl32.HomogRotate3DZ(k.rotZ))
}

// FOV returns the warped vertical field of view in degrees.
func (k *Kinematics) FOV() float32 { return k.fov }

// PointerSpeed returns the clamped [0,1] pointer speed of the last frame.
func (k *Kinematics) PointerSpeed() float32 { return k.pointerSpeed }

// RotationSpeed returns the current (smoothed) rotation speed in radians per frame.
func (k *Kinematics) RotationSpeed() float32 { return k.current }

// TargetRotationSpeed returns the rotation speed the current one is easing toward.
func (k *Kinematics) TargetRotationSpeed() float32 { return k.target }

// Rotation returns the accumulated Y and Z rotation angles in radians.
func (k *Kinematics) Rotation() (y, z float32) { return k.rotY, k.rotZ }

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func lerpVec2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return mgl32.Vec2{lerp(a[0], b[0], t), lerp(a[1], b[1], t)}
}

// sinf is math.Sin on float32.
func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}
