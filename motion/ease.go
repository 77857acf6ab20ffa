// Package motion holds the easing curves shared by the carousel cards and the
// shooting stars.
package motion

// EaseInOut is the cubic-bezier(0.42, 0, 0.58, 1) curve. t is clamped to [0,1].
func EaseInOut(t float32) float32 {
	return cubicBezier(0.42, 0, 0.58, 1, Clamp01(t))
}

// Clamp01 clamps t to [0,1].
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// cubicBezier evaluates a CSS-style timing curve with control points (x1,y1) and
// (x2,y2) at progress x. The curve parameter is found by Newton iteration with a
// bisection fallback.
func cubicBezier(x1, y1, x2, y2, x float32) float32 {
	if x == 0 || x == 1 {
		return x
	}

	bx := func(s float32) float32 { return bezier(x1, x2, s) }
	s := x
	for i := 0; i < 8; i++ {
		err := bx(s) - x
		if abs(err) < 1e-6 {
			return bezier(y1, y2, s)
		}
		d := bezierSlope(x1, x2, s)
		if abs(d) < 1e-6 {
			break
		}
		s -= err / d
	}

	lo, hi := float32(0), float32(1)
	s = x
	for i := 0; i < 32; i++ {
		v := bx(s)
		if abs(v-x) < 1e-6 {
			break
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezier(y1, y2, s)
}

// bezier is one axis of a cubic bezier anchored at 0 and 1.
func bezier(p1, p2, s float32) float32 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierSlope(p1, p2, s float32) float32 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
