package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noble/stars"
)

const (
	starTailLength = 140 // pixels at size 1
	starTailSteps  = 8
	starHeadRadius = 4
)

// StarRenderer draws shooting stars as a glowing head with a fading tail.
type StarRenderer struct{}

// NewStarRenderer creates a star renderer.
func NewStarRenderer() *StarRenderer {
	return &StarRenderer{}
}

// Draw renders every star of the frame.
func (r *StarRenderer) Draw(list []stars.Star) {
	rl.BeginBlendMode(rl.BlendAdditive)
	for _, s := range list {
		if s.Alpha <= 0 {
			continue
		}
		base := ToColor(s.Color, 255)
		head := rl.NewVector2(s.X, s.Y)

		tail := starTailLength * s.Size
		for i := 0; i < starTailSteps; i++ {
			t0 := float32(i) / starTailSteps
			t1 := float32(i+1) / starTailSteps
			from := rl.NewVector2(s.X-s.DirX*tail*t0, s.Y-s.DirY*tail*t0)
			to := rl.NewVector2(s.X-s.DirX*tail*t1, s.Y-s.DirY*tail*t1)
			rl.DrawLineEx(from, to, 2*s.Size*(1-t0), Fade(base, s.Alpha*(1-t0)*0.7))
		}

		radius := starHeadRadius * s.Size
		rl.DrawCircleV(head, radius*2.5, Fade(base, s.Alpha*0.2))
		rl.DrawCircleV(head, radius, Fade(rl.White, s.Alpha))
	}
	rl.EndBlendMode()
}
