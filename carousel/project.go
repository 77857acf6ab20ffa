package carousel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Quad is a card's projected outline in screen pixels.
type Quad struct {
	TL, TR, BR, BL mgl32.Vec2
	Depth          float32 // perspective factor at the card centre
}

// Bounds returns the largest axis-aligned rectangle inside the quad.
func (q Quad) Bounds() (x, y, w, h float32) {
	x = max(q.TL.X(), q.BL.X())
	right := min(q.TR.X(), q.BR.X())
	y = max(q.TL.Y(), q.TR.Y())
	bottom := min(q.BL.Y(), q.BR.Y())
	return x, y, max(right-x, 0), max(bottom-y, 0)
}

// Project maps a placement onto the screen. The card is turned about its
// vertical axis by RotY and viewed from perspective pixels in front of the
// z=0 plane. xScale converts authored x offsets to the current viewport.
func Project(p Placement, centre mgl32.Vec2, cardW, cardH, perspective, xScale float32) Quad {
	theta := float64(p.RotY) * math.Pi / 180
	cos, sin := float32(math.Cos(theta)), float32(math.Sin(theta))

	halfW := cardW * p.Scale / 2
	halfH := cardH * p.Scale / 2
	offset := p.X * xScale

	leftX, leftZ := offset-halfW*cos, p.Z+halfW*sin
	rightX, rightZ := offset+halfW*cos, p.Z-halfW*sin

	lf := depthFactor(leftZ, perspective)
	rf := depthFactor(rightZ, perspective)
	cf := depthFactor(p.Z, perspective)

	cx, cy := centre.X(), centre.Y()
	return Quad{
		TL:    mgl32.Vec2{cx + leftX*lf, cy - halfH*lf},
		TR:    mgl32.Vec2{cx + rightX*rf, cy - halfH*rf},
		BR:    mgl32.Vec2{cx + rightX*rf, cy + halfH*rf},
		BL:    mgl32.Vec2{cx + leftX*lf, cy + halfH*lf},
		Depth: cf,
	}
}

// depthFactor is the on-screen scale of a point z pixels in front of the
// card plane. Points at or behind the viewer are left unscaled.
func depthFactor(z, perspective float32) float32 {
	if perspective <= 0 || perspective-z <= 0 {
		return 1
	}
	return perspective / (perspective - z)
}
