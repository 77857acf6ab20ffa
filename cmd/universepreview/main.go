// Universe preview tool - tune the particle field and pointer kinematics with sliders.
//
// Usage: go run ./cmd/universepreview
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noble/camera"
	"github.com/pthm-cable/noble/config"
	"github.com/pthm-cable/noble/renderer"
	"github.com/pthm-cable/noble/universe"
)

const (
	windowWidth  = 1200
	windowHeight = 760
	panelWidth   = 360
)

// previewParams holds the tunable values.
type previewParams struct {
	Count     float32
	Radius    float32
	SizeMin   float32
	SizeMax   float32
	SpeedGain float32
	GlowGain  float32
	FOVGain   float32
	Seed      float32
}

func defaultParams() previewParams {
	f := universe.DefaultFieldParams(nil)
	k := universe.DefaultKinematicsParams()
	return previewParams{
		Count:     float32(f.Count),
		Radius:    f.Radius,
		SizeMin:   f.SizeMin,
		SizeMax:   f.SizeMax,
		SpeedGain: k.SpeedGain,
		GlowGain:  k.GlowGain,
		FOVGain:   k.FOVGain,
		Seed:      12345,
	}
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	palette, err := universe.ParsePalette(cfg.Universe.Palette)
	if err != nil {
		slog.Error("invalid palette", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Universe Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := defaultParams()
	baseFOV := float32(cfg.Universe.BaseFOV)
	viewW := float32(windowWidth - panelWidth)
	cam := camera.New(viewW, windowHeight, float32(cfg.Universe.CameraZ), baseFOV)

	backdrop := renderer.NewBackgroundRenderer(int32(viewW), windowHeight, "#111827", "#000000")
	points := renderer.NewUniverseRenderer(backdrop)
	points.Init()
	defer points.Unload()

	var scene *universe.Scene
	build := func() {
		fp := universe.DefaultFieldParams(palette)
		fp.Count = int(params.Count)
		fp.Radius = params.Radius
		fp.SizeMin = params.SizeMin
		fp.SizeMax = max(params.SizeMin, params.SizeMax)
		field := universe.Generate(rand.New(rand.NewSource(int64(params.Seed))), fp)
		scene = universe.NewScene(field, universe.NewKinematics(kinematics(params, baseFOV)), universe.DefaultSceneParams())
	}
	build()

	for !rl.WindowShouldClose() {
		m := rl.GetMousePosition()
		ndc, ok := cam.PointerNDC(m.X, m.Y)
		if m.X > viewW {
			ok = false
		}
		u := scene.Step(ndc, ok, rl.GetFrameTime())
		cam.SetFOV(scene.Kin.FOV())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		rl.BeginScissorMode(0, 0, int32(viewW), windowHeight)
		points.Draw(scene, cam)
		rl.EndScissorMode()
		rl.DrawText(fmt.Sprintf("points %d  speed %.4f  glow %.3f  fov %.1f",
			scene.Field.Len(), scene.Kin.RotationSpeed(), u.Speed, scene.Kin.FOV()),
			12, windowHeight-26, 16, rl.LightGray)

		panelX := viewW + 20
		rl.DrawRectangle(int32(viewW), 0, panelWidth, windowHeight, rl.RayWhite)
		panelY := float32(14)
		rl.DrawText("Universe Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 36

		regen := false
		regen = slider(&panelY, panelX, "Particles", "%.0f", &params.Count, 1000, 40000) || regen
		regen = slider(&panelY, panelX, "Radius", "%.1f", &params.Radius, 2, 16) || regen
		regen = slider(&panelY, panelX, "Size min", "%.1f", &params.SizeMin, 1, 20) || regen
		regen = slider(&panelY, panelX, "Size max", "%.1f", &params.SizeMax, 5, 60) || regen
		regen = slider(&panelY, panelX, "Seed", "%.0f", &params.Seed, 0, 99999) || regen

		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+panelWidth-40, int32(panelY), rl.LightGray)
		panelY += 12

		retune := false
		retune = slider(&panelY, panelX, "Speed gain", "%.1f", &params.SpeedGain, 1, 40) || retune
		retune = slider(&panelY, panelX, "Glow gain", "%.1f", &params.GlowGain, 0, 20) || retune
		retune = slider(&panelY, panelX, "FOV gain", "%.0f", &params.FOVGain, 0, 1000) || retune

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 150, Height: 30}, "Random Seed") {
			params.Seed = float32(rl.GetRandomValue(0, 99999))
			regen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 160, Y: panelY, Width: 150, Height: 30}, "Reset All") {
			params = defaultParams()
			regen = true
		}
		panelY += 46

		if regen {
			build()
		} else if retune {
			scene = universe.NewScene(scene.Field, universe.NewKinematics(kinematics(params, baseFOV)), universe.DefaultSceneParams())
		}

		// Palette as the shader tints it at the current glow
		rl.DrawText("Palette at current glow", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 20
		for i, c := range palette {
			x := int32(panelX) + int32(i%6)*52
			y := int32(panelY) + int32(i/6)*52
			rl.DrawRectangle(x, y, 24, 44, renderer.ToColor(c, 255))
			rl.DrawRectangle(x+24, y, 24, 44, renderer.ToColor(universe.Brighten(c, u.Speed), 255))
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), windowHeight-30, 12, rl.Gray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlFor(params))
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider and reports whether the value changed.
func slider(y *float32, x float32, label, format string, value *float32, minVal, maxVal float32) bool {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: panelWidth - 110, Height: 20},
		"", "",
		*value, minVal, maxVal,
	)
	rl.DrawText(fmt.Sprintf(format, *value), int32(x+panelWidth-100), int32(*y+2), 16, rl.DarkGray)
	*y += 32
	if next == *value {
		return false
	}
	*value = next
	return true
}

func kinematics(p previewParams, baseFOV float32) universe.KinematicsParams {
	k := universe.DefaultKinematicsParams()
	k.SpeedGain = p.SpeedGain
	k.GlowGain = p.GlowGain
	k.FOVGain = p.FOVGain
	k.BaseFOV = baseFOV
	return k
}

func yamlFor(p previewParams) string {
	return fmt.Sprintf(`universe:
  particle_count: %d
  radius: %.1f
  size_min: %.1f
  size_max: %.1f
kinematics:
  speed_gain: %.1f
  glow_gain: %.1f
  fov_gain: %.0f`,
		int(p.Count), p.Radius, p.SizeMin, p.SizeMax, p.SpeedGain, p.GlowGain, p.FOVGain)
}
