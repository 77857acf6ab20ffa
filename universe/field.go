// Package universe builds the decorative stellar point cloud and the per-frame
// pointer kinematics that drive its shader. Nothing here touches the GPU, so the
// whole package runs headless in tests; the renderer package owns raylib.
package universe

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the fixed set of colours particles are tinted with.
type Palette []colorful.Color

// ParsePalette converts hex strings ("#9bb0ff") into a palette.
func ParsePalette(hex []string) (Palette, error) {
	p := make(Palette, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette colour %q: %w", h, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// Point is a single particle. Immutable once the field is generated.
type Point struct {
	Position mgl32.Vec3
	Color    colorful.Color
	Size     float32
}

// FieldParams configures Generate.
type FieldParams struct {
	Count   int
	Radius  float32
	SizeMin float32
	SizeMax float32
	Palette Palette
}

// DefaultFieldParams matches the storefront background: 20000 points in a radius-8 ball.
func DefaultFieldParams(palette Palette) FieldParams {
	return FieldParams{
		Count:   20000,
		Radius:  8,
		SizeMin: 5,
		SizeMax: 30,
		Palette: palette,
	}
}

// Field is a generated point cloud.
type Field struct {
	Points []Point
	Radius float32
}

// Len returns the number of points.
func (f Field) Len() int {
	return len(f.Points)
}

// Generate samples a volume-weighted ball of points.
// Radius is R*sqrt(u), azimuth uniform, polar angle acos(2v-1).
// Count <= 0 or an empty palette yields an empty field.
func Generate(rng *rand.Rand, p FieldParams) Field {
	if p.Count <= 0 || len(p.Palette) == 0 {
		return Field{Radius: p.Radius}
	}

	points := make([]Point, p.Count)
	sizeSpan := p.SizeMax - p.SizeMin

	for i := range points {
		r := float64(p.Radius) * math.Sqrt(rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)

		sinPhi := math.Sin(phi)
		points[i] = Point{
			Position: mgl32.Vec3{
				float32(r * sinPhi * math.Cos(theta)),
				float32(r * sinPhi * math.Sin(theta)),
				float32(r * math.Cos(phi)),
			},
			Color: p.Palette[rng.Intn(len(p.Palette))],
			Size:  p.SizeMin + rng.Float32()*sizeSpan,
		}
	}

	return Field{Points: points, Radius: p.Radius}
}
