// Package camera models the perspective view onto the universe scene and maps
// window pixels to the normalized pointer coordinates the scene reacts to.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking down -Z at the scene origin.
// FOV is vertical, in degrees, and is warped every frame by the scene.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	FOV float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	Near, Far float32
}

// New creates a camera at (0, 0, z) facing the origin.
func New(viewportW, viewportH, z, fov float32) *Camera {
	return &Camera{
		Position:  mgl32.Vec3{0, 0, z},
		Up:        mgl32.Vec3{0, 1, 0},
		FOV:       fov,
		ViewportW: viewportW,
		ViewportH: viewportH,
		Near:      0.1,
		Far:       1000,
	}
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// SetFOV sets the vertical field of view, clamped to (1, 179) degrees.
func (c *Camera) SetFOV(fov float32) {
	c.FOV = clamp(fov, 1, 179)
}

// Aspect returns width over height, or 1 for an empty viewport.
func (c *Camera) Aspect() float32 {
	if c.ViewportH <= 0 {
		return 1
	}
	return c.ViewportW / c.ViewportH
}

// PointerNDC converts a window pixel position to normalized device coordinates:
// x right and y up, both in [-1, 1] across the viewport. ok is false when the
// pixel lies outside the viewport; the scene then holds its last sample.
func (c *Camera) PointerNDC(sx, sy float32) (ndc mgl32.Vec2, ok bool) {
	if c.ViewportW <= 0 || c.ViewportH <= 0 {
		return mgl32.Vec2{}, false
	}
	ndc = mgl32.Vec2{
		sx/c.ViewportW*2 - 1,
		-(sy/c.ViewportH*2 - 1),
	}
	ok = sx >= 0 && sy >= 0 && sx <= c.ViewportW && sy <= c.ViewportH
	return ndc, ok
}

// View returns the look-at matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective matrix for the current FOV.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect(), c.Near, c.Far)
}

// WorldToScreen projects a world point into window pixels.
// visible is false for points behind the camera or outside the frustum.
func (c *Camera) WorldToScreen(p mgl32.Vec3) (sx, sy float32, visible bool) {
	clip := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	sx = (ndc[0] + 1) / 2 * c.ViewportW
	sy = (1 - ndc[1]) / 2 * c.ViewportH
	visible = absf(ndc[0]) <= 1 && absf(ndc[1]) <= 1 && ndc[2] >= -1 && ndc[2] <= 1
	return sx, sy, visible
}

// VisibleHalfExtent returns the half width and half height of the world-space
// rectangle visible at the given distance from the camera.
func (c *Camera) VisibleHalfExtent(distance float32) (halfW, halfH float32) {
	halfH = distance * float32(math.Tan(float64(mgl32.DegToRad(c.FOV))/2))
	return halfH * c.Aspect(), halfH
}

// Distance returns the camera's distance to its target.
func (c *Camera) Distance() float32 {
	return c.Position.Sub(c.Target).Len()
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
