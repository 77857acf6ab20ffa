// Package stars spawns the ornamental shooting stars that streak across the
// storefront. Each star is an ECS entity; the whole set is discarded and
// regenerated on a fixed timer while the scene is mounted.
package stars

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/noble/motion"
)

// Origin is where a star starts, in window pixels.
type Origin struct {
	X, Y float32
}

// Flight tracks a star's progress along its path.
type Flight struct {
	Elapsed  float32
	Duration float32
}

// Look holds a star's size factor and colour.
type Look struct {
	Size  float32
	Color colorful.Color
}

// Params configures spawning.
type Params struct {
	Count        int
	RegenSeconds float32
	MinDuration  float32
	MaxDuration  float32
	MinSize      float32
	MaxSize      float32
	TopFraction  float32 // stars start in the top fraction of the window
	Travel       float32 // path length in pixels
	AngleDegrees float32
	FadeFraction float32 // share of the flight spent fading in and out
	Palette      []colorful.Color
}

// DefaultParams returns eight stars every three seconds.
func DefaultParams() Params {
	palette, _ := ParsePalette([]string{
		"#60A5FA", "#34D399", "#F472B6", "#FBBF24",
		"#A78BFA", "#FB923C", "#22D3EE", "#FFFFFF",
	})
	return Params{
		Count:        8,
		RegenSeconds: 3,
		MinDuration:  3,
		MaxDuration:  5,
		MinSize:      0.4,
		MaxSize:      0.75,
		TopFraction:  0.6,
		Travel:       400,
		AngleDegrees: 45,
		FadeFraction: 0.1,
		Palette:      palette,
	}
}

// ParsePalette converts hex strings into colours.
func ParsePalette(hex []string) ([]colorful.Color, error) {
	out := make([]colorful.Color, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("star colour %q: %w", h, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Star is the drawable state of one star this frame.
type Star struct {
	X, Y  float32 // head position in pixels
	DirX  float32 // unit travel direction
	DirY  float32
	Size  float32
	Alpha float32
	Color colorful.Color
}

// Field owns the star entities.
type Field struct {
	world  *ecs.World
	mapper *ecs.Map3[Origin, Flight, Look]
	filter *ecs.Filter3[Origin, Flight, Look]

	rng    *rand.Rand
	params Params

	width, height float32
	timer         float32
	dirX, dirY    float32

	buf []Star
}

// New creates the field and spawns the first batch immediately.
func New(rng *rand.Rand, params Params, width, height float32) *Field {
	world := ecs.NewWorld()
	rad := float64(params.AngleDegrees) * math.Pi / 180

	f := &Field{
		world:  world,
		mapper: ecs.NewMap3[Origin, Flight, Look](world),
		filter: ecs.NewFilter3[Origin, Flight, Look](world),
		rng:    rng,
		params: params,
		width:  width,
		height: height,
		dirX:   float32(math.Cos(rad)),
		dirY:   float32(math.Sin(rad)),
	}
	f.regenerate()
	return f
}

// Resize changes the spawn area. Existing stars keep flying.
func (f *Field) Resize(width, height float32) {
	f.width, f.height = width, height
}

// Update advances every star and regenerates the batch when the timer fires.
// It reports whether a new batch was spawned.
func (f *Field) Update(dt float32) bool {
	var done []ecs.Entity

	query := f.filter.Query()
	for query.Next() {
		_, flight, _ := query.Get()
		flight.Elapsed += dt
		if flight.Elapsed >= flight.Duration {
			done = append(done, query.Entity())
		}
	}

	// Remove after iteration; the world is locked while a query is open
	for _, e := range done {
		f.world.RemoveEntity(e)
	}

	f.timer += dt
	if f.params.RegenSeconds > 0 && f.timer >= f.params.RegenSeconds {
		f.timer = 0
		f.regenerate()
		return true
	}
	return false
}

// Count returns the number of live stars.
func (f *Field) Count() int {
	n := 0
	query := f.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Stars returns the drawable state of every live star. The slice is reused.
func (f *Field) Stars() []Star {
	f.buf = f.buf[:0]
	query := f.filter.Query()
	for query.Next() {
		origin, flight, look := query.Get()
		t := motion.Clamp01(flight.Elapsed / flight.Duration)
		dist := motion.EaseInOut(t) * f.params.Travel
		f.buf = append(f.buf, Star{
			X:     origin.X + f.dirX*dist,
			Y:     origin.Y + f.dirY*dist,
			DirX:  f.dirX,
			DirY:  f.dirY,
			Size:  look.Size,
			Alpha: Opacity(t, f.params.FadeFraction),
			Color: look.Color,
		})
	}
	return f.buf
}

// Clear removes every star.
func (f *Field) Clear() {
	var all []ecs.Entity
	query := f.filter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		f.world.RemoveEntity(e)
	}
}

func (f *Field) regenerate() {
	f.Clear()
	p := f.params
	if len(p.Palette) == 0 {
		return
	}
	for i := 0; i < p.Count; i++ {
		origin := Origin{
			X: f.rng.Float32() * f.width,
			Y: f.rng.Float32() * p.TopFraction * f.height,
		}
		flight := Flight{Duration: p.MinDuration + f.rng.Float32()*(p.MaxDuration-p.MinDuration)}
		look := Look{
			Size:  p.MinSize + f.rng.Float32()*(p.MaxSize-p.MinSize),
			Color: p.Palette[f.rng.Intn(len(p.Palette))],
		}
		if flight.Duration <= 0 {
			flight.Duration = 1
		}
		f.mapper.NewEntity(&origin, &flight, &look)
	}
}

// Opacity is the fade envelope: 0→1 over the first fade share of the flight,
// hold, then 1→0 over the last share.
func Opacity(t, fade float32) float32 {
	t = motion.Clamp01(t)
	if fade <= 0 {
		return 1
	}
	switch {
	case t < fade:
		return t / fade
	case t > 1-fade:
		return (1 - t) / fade
	}
	return 1
}
