package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// ToColor converts a colorful colour to a raylib colour with the given alpha.
func ToColor(c colorful.Color, alpha uint8) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.Color{R: r, G: g, B: b, A: alpha}
}

// HexColor parses "#rrggbb", falling back when the string is malformed.
func HexColor(hex string, fallback rl.Color) rl.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return ToColor(c, 255)
}

// Fade scales a colour's alpha by opacity in [0, 1].
func Fade(c rl.Color, opacity float32) rl.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float32(c.A) * opacity)
	return c
}
