package universe

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testPalette(t *testing.T) Palette {
	t.Helper()
	p, err := ParsePalette([]string{"#9bb0ff", "#ffcc6f", "#ff6b6b"})
	if err != nil {
		t.Fatalf("parsing palette: %v", err)
	}
	return p
}

func TestParsePaletteRejectsBadHex(t *testing.T) {
	if _, err := ParsePalette([]string{"#fff000", "not-a-colour"}); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestGenerateWithinBall(t *testing.T) {
	params := DefaultFieldParams(testPalette(t))
	field := Generate(rand.New(rand.NewSource(1)), params)

	if field.Len() != 20000 {
		t.Fatalf("expected 20000 points, got %d", field.Len())
	}

	const eps = 1e-4
	for i, p := range field.Points {
		if r := p.Position.Len(); r > params.Radius+eps {
			t.Fatalf("point %d at radius %f exceeds %f", i, r, params.Radius)
		}
		if p.Size < params.SizeMin || p.Size > params.SizeMax {
			t.Fatalf("point %d size %f outside [%f, %f]", i, p.Size, params.SizeMin, params.SizeMax)
		}
	}
}

func TestGenerateColoursFromPalette(t *testing.T) {
	palette := testPalette(t)
	field := Generate(rand.New(rand.NewSource(2)), FieldParams{Count: 500, Radius: 1, SizeMin: 1, SizeMax: 2, Palette: palette})

	for i, p := range field.Points {
		found := false
		for _, c := range palette {
			if c == p.Color {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("point %d colour %v not in palette", i, p.Color)
		}
	}
}

func TestGenerateRadialDistribution(t *testing.T) {
	// P(r < a) = a²/R² for r = R*sqrt(u), so half the points fall inside R/sqrt(2)
	params := FieldParams{Count: 10000, Radius: 1, SizeMin: 1, SizeMax: 1, Palette: testPalette(t)}
	field := Generate(rand.New(rand.NewSource(3)), params)

	inside := 0
	for _, p := range field.Points {
		if p.Position.Len() < float32(math.Sqrt2/2) {
			inside++
		}
	}
	frac := float64(inside) / float64(params.Count)
	if frac < 0.47 || frac > 0.53 {
		t.Errorf("expected about half the points inside R/sqrt(2), got %f", frac)
	}
}

func TestGenerateEmpty(t *testing.T) {
	tests := []struct {
		name   string
		params FieldParams
	}{
		{"zero count", FieldParams{Count: 0, Radius: 8, Palette: Palette{{R: 1}}}},
		{"negative count", FieldParams{Count: -3, Radius: 8, Palette: Palette{{R: 1}}}},
		{"no palette", FieldParams{Count: 10, Radius: 8}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			field := Generate(rand.New(rand.NewSource(1)), tc.params)
			if field.Len() != 0 {
				t.Errorf("expected empty field, got %d points", field.Len())
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	params := FieldParams{Count: 50, Radius: 8, SizeMin: 5, SizeMax: 30, Palette: testPalette(t)}
	a := Generate(rand.New(rand.NewSource(42)), params)
	b := Generate(rand.New(rand.NewSource(42)), params)
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs between identical seeds", i)
		}
	}
}

func TestKinematicsRestState(t *testing.T) {
	p := DefaultKinematicsParams()
	k := NewKinematics(p)

	// Still pointer at origin: no pointer speed, target decays toward rest
	for i := 0; i < 600; i++ {
		k.Step(mgl32.Vec2{}, true, 1.0/60)
	}

	if k.PointerSpeed() != 0 {
		t.Errorf("expected zero pointer speed, got %f", k.PointerSpeed())
	}
	if k.RotationSpeed() < p.BaseRotation-1e-6 || k.RotationSpeed() > p.RestRotation+1e-6 {
		t.Errorf("expected rotation speed between base and rest, got %f", k.RotationSpeed())
	}
	y, z := k.Rotation()
	if y <= 0 {
		t.Errorf("expected positive accumulated Y rotation, got %f", y)
	}
	if math.Abs(float64(z-y*p.SecondaryRatio)) > 1e-4 {
		t.Errorf("expected Z rotation %f, got %f", y*p.SecondaryRatio, z)
	}
}

func TestKinematicsPointerSpeedClamped(t *testing.T) {
	p := DefaultKinematicsParams()
	k := NewKinematics(p)

	k.Step(mgl32.Vec2{1, 1}, true, 1.0/60)
	if k.PointerSpeed() != 1 {
		t.Errorf("expected pointer speed clamped to 1, got %f", k.PointerSpeed())
	}

	// current eased 5% toward base+0.1
	want := p.BaseRotation + (p.BaseRotation+p.SpeedRotation-p.BaseRotation)*p.RotationLerp
	if math.Abs(float64(k.RotationSpeed()-want)) > 1e-6 {
		t.Errorf("expected rotation speed %f, got %f", want, k.RotationSpeed())
	}
	if k.RotationSpeed() > p.BaseRotation+p.SpeedRotation {
		t.Errorf("rotation speed %f exceeds maximum", k.RotationSpeed())
	}
}

func TestKinematicsRotationBounded(t *testing.T) {
	p := DefaultKinematicsParams()
	k := NewKinematics(p)
	rng := rand.New(rand.NewSource(7))

	upper := p.BaseRotation + p.SpeedRotation
	for i := 0; i < 2000; i++ {
		ptr := mgl32.Vec2{rng.Float32()*2 - 1, rng.Float32()*2 - 1}
		k.Step(ptr, true, 1.0/60)
		if s := k.PointerSpeed(); s < 0 || s > 1 {
			t.Fatalf("pointer speed %f out of range at frame %d", s, i)
		}
		if r := k.RotationSpeed(); r < 0 || r > upper+1e-6 {
			t.Fatalf("rotation speed %f out of range at frame %d", r, i)
		}
	}
}

func TestKinematicsDecayAfterMotion(t *testing.T) {
	p := DefaultKinematicsParams()
	k := NewKinematics(p)

	k.Step(mgl32.Vec2{0.5, 0}, true, 1.0/60)
	peak := k.TargetRotationSpeed()

	for i := 0; i < 1000; i++ {
		k.Step(mgl32.Vec2{0.5, 0}, true, 1.0/60)
	}
	if k.TargetRotationSpeed() >= peak {
		t.Errorf("expected target to decay below %f, got %f", peak, k.TargetRotationSpeed())
	}
	// Target is re-derived every frame, so the rest pull only biases it one step
	settled := p.BaseRotation + (p.RestRotation-p.BaseRotation)*p.DecayLerp
	if math.Abs(float64(k.RotationSpeed()-settled)) > 1e-5 {
		t.Errorf("expected rotation to settle near %f, got %f", settled, k.RotationSpeed())
	}
}

func TestKinematicsHoldsPointerWhenUnavailable(t *testing.T) {
	k := NewKinematics(DefaultKinematicsParams())
	k.Step(mgl32.Vec2{0.3, -0.2}, true, 1.0/60)

	// Unavailable source: the garbage sample must be ignored
	k.Step(mgl32.Vec2{-1, 1}, false, 1.0/60)
	if k.PointerSpeed() != 0 {
		t.Errorf("expected held pointer to produce zero speed, got %f", k.PointerSpeed())
	}
}

func TestKinematicsFOVWarp(t *testing.T) {
	p := DefaultKinematicsParams()
	k := NewKinematics(p)
	if k.FOV() != p.BaseFOV {
		t.Fatalf("expected initial FOV %f, got %f", p.BaseFOV, k.FOV())
	}

	for i := 0; i < 30; i++ {
		x := float32(i%2) * 0.5
		k.Step(mgl32.Vec2{x, 0}, true, 1.0/60)
	}
	if k.FOV() <= p.BaseFOV {
		t.Errorf("expected FOV to widen under motion, got %f", k.FOV())
	}
}

func TestKinematicsUniforms(t *testing.T) {
	p := DefaultKinematicsParams()
	k := NewKinematics(p)
	u := k.Step(mgl32.Vec2{1, 0}, true, 0.5)

	if u.Time != 0.5 {
		t.Errorf("expected time 0.5, got %f", u.Time)
	}
	if math.Abs(float64(u.Mouse[0]-p.PointerLerp)) > 1e-6 {
		t.Errorf("expected smoothed x %f, got %f", p.PointerLerp, u.Mouse[0])
	}
	if u.Speed != k.RotationSpeed()*p.GlowGain {
		t.Errorf("expected speed %f, got %f", k.RotationSpeed()*p.GlowGain, u.Speed)
	}
}

func TestSizeMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		pos   mgl32.Vec3
		mouse mgl32.Vec2
		want  float32
	}{
		{"at pointer", mgl32.Vec3{0, 0, 5}, mgl32.Vec2{0, 0}, 1 + 1.8*2.5},
		{"half radius", mgl32.Vec3{0.9, 0, 0}, mgl32.Vec2{0, 0}, 1 + 0.9*2.5},
		{"outside", mgl32.Vec3{3, 0, 0}, mgl32.Vec2{0, 0}, 1},
		{"scaled pointer", mgl32.Vec3{6, 0, 0}, mgl32.Vec2{6, 0}, 1 + 1.8*2.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SizeMultiplier(tc.pos, tc.mouse, 1.8, 2.5)
			if math.Abs(float64(got-tc.want)) > 1e-5 {
				t.Errorf("expected %f, got %f", tc.want, got)
			}
		})
	}
}

func TestBreathe(t *testing.T) {
	pos := mgl32.Vec3{1, 0, 2}
	got := Breathe(pos, 0, 0.01, 0.5)
	if got != pos {
		t.Errorf("expected no sway at t=0 and y=0, got %v", got)
	}

	got = Breathe(mgl32.Vec3{1, float32(math.Pi / 2), 2}, 0, 0.01, 0.5)
	if math.Abs(float64(got[0]-1.01)) > 1e-5 {
		t.Errorf("expected x 1.01, got %f", got[0])
	}
}

func TestBillboardHalfSize(t *testing.T) {
	// 90 degree FOV: tan(45) = 1, so half = size*mult/screenH
	got := BillboardHalfSize(20, 2, 90, 800)
	if math.Abs(float64(got-0.05)) > 1e-5 {
		t.Errorf("expected 0.05, got %f", got)
	}
	if BillboardHalfSize(20, 1, 75, 0) != 0 {
		t.Error("expected zero size for empty viewport")
	}
}

func TestSceneSprites(t *testing.T) {
	field := Generate(rand.New(rand.NewSource(5)), FieldParams{Count: 100, Radius: 8, SizeMin: 5, SizeMax: 30, Palette: testPalette(t)})
	scene := NewScene(field, NewKinematics(DefaultKinematicsParams()), DefaultSceneParams())
	scene.Step(mgl32.Vec2{}, true, 1.0/60)

	sprites := scene.Sprites(800)
	if len(sprites) != 100 {
		t.Fatalf("expected 100 sprites, got %d", len(sprites))
	}
	for i, s := range sprites {
		if s.Half <= 0 {
			t.Fatalf("sprite %d has non-positive size %f", i, s.Half)
		}
		// Rotation and a tiny sway keep points near the ball
		if s.Center.Len() > field.Radius+0.02 {
			t.Fatalf("sprite %d at %f escaped the ball", i, s.Center.Len())
		}
	}

	if len(scene.Sprites(0)) != 0 {
		t.Error("expected no sprites for a zero-height viewport")
	}
}

func TestSceneEmptyField(t *testing.T) {
	scene := NewScene(Field{Radius: 8}, NewKinematics(DefaultKinematicsParams()), DefaultSceneParams())
	scene.Step(mgl32.Vec2{0.2, 0.2}, true, 1.0/60)
	if n := len(scene.Sprites(800)); n != 0 {
		t.Errorf("expected no sprites, got %d", n)
	}
}

func TestSceneBoostRing(t *testing.T) {
	params := DefaultSceneParams()
	scene := NewScene(Field{Radius: 8}, NewKinematics(DefaultKinematicsParams()), params)
	for i := 0; i < 60; i++ {
		scene.Step(mgl32.Vec2{0.3, -0.2}, true, 1.0/60)
	}

	ring := scene.BoostRing(32)
	if len(ring) != 32 {
		t.Fatalf("expected 32 ring points, got %d", len(ring))
	}
	inv := scene.Kin.ModelMatrix().Inv()
	centre := scene.Kin.Uniforms().Mouse.Mul(params.PointerScale)
	for i, p := range ring {
		local := inv.Mul4x1(p.Vec4(1)).Vec3()
		if math.Abs(float64(local.Z())) > 1e-3 {
			t.Errorf("point %d: expected z=0 in object space, got %f", i, local.Z())
		}
		d := mgl32.Vec2{local.X(), local.Y()}.Sub(centre).Len()
		if math.Abs(float64(d-params.BoostRadius)) > 1e-3 {
			t.Errorf("point %d: expected distance %f from the pointer, got %f", i, params.BoostRadius, d)
		}
	}

	var mean mgl32.Vec3
	for _, p := range ring {
		mean = mean.Add(p)
	}
	mean = mean.Mul(1 / float32(len(ring)))
	if !mean.ApproxEqualThreshold(scene.BoostCentre(), 1e-3) {
		t.Errorf("expected ring centred on %v, got %v", scene.BoostCentre(), mean)
	}

	if n := len(scene.BoostRing(1)); n != 3 {
		t.Errorf("expected at least 3 ring points, got %d", n)
	}
}

func TestBrighten(t *testing.T) {
	base := testPalette(t)[0]
	got := Brighten(base, 0)
	if got != base.Clamped() {
		t.Errorf("expected unchanged colour at zero speed, got %v", got)
	}
	got = Brighten(base, 10)
	if got.R != 1 || got.G != 1 || got.B != 1 {
		t.Errorf("expected saturated white, got %v", got)
	}
}
