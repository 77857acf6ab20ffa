// Scene snapshot tool - renders the universe offscreen to a PNG for inspection.
//
// Usage: go run ./cmd/scenesnap -seed 7 -frames 120 -out universe.png
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/noble/camera"
	"github.com/pthm-cable/noble/config"
	"github.com/pthm-cable/noble/renderer"
	"github.com/pthm-cable/noble/universe"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "universe.png", "Output PNG path")
	width := flag.Int("width", 1280, "Render width")
	height := flag.Int("height", 800, "Render height")
	seed := flag.Int64("seed", 1, "RNG seed for the particle field")
	frames := flag.Int("frames", 120, "Frames to simulate before the snapshot")
	sweep := flag.Bool("sweep", true, "Move the pointer in a circle while simulating")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	palette, err := universe.ParsePalette(cfg.Universe.Palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid palette: %v\n", err)
		os.Exit(1)
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Scene Snapshot")
	defer rl.CloseWindow()

	fp := universe.DefaultFieldParams(palette)
	fp.Count = cfg.Universe.ParticleCount
	fp.Radius = float32(cfg.Universe.Radius)
	fp.SizeMin = float32(cfg.Universe.SizeMin)
	fp.SizeMax = float32(cfg.Universe.SizeMax)
	field := universe.Generate(rand.New(rand.NewSource(*seed)), fp)

	kp := universe.DefaultKinematicsParams()
	kp.BaseFOV = float32(cfg.Universe.BaseFOV)
	scene := universe.NewScene(field, universe.NewKinematics(kp), universe.DefaultSceneParams())
	cam := camera.New(float32(*width), float32(*height), float32(cfg.Universe.CameraZ), kp.BaseFOV)

	// Step at a fixed 60Hz so the snapshot is reproducible
	for i := 0; i < *frames; i++ {
		var pointer mgl32.Vec2
		if *sweep {
			a := float64(i) / 30
			pointer = mgl32.Vec2{float32(math.Cos(a)) * 0.6, float32(math.Sin(a)) * 0.6}
		}
		scene.Step(pointer, *sweep, 1.0/60)
		cam.SetFOV(scene.Kin.FOV())
	}

	points := renderer.NewUniverseRenderer(nil)
	points.Init()
	defer points.Unload()
	if !points.Valid() {
		fmt.Fprintf(os.Stderr, "Universe shader failed to compile\n")
		os.Exit(1)
	}

	// Create render texture
	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	points.Draw(scene, cam)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Scene rendered to: %s (%dx%d, %d points, fov %.1f)\n",
			*outPath, *width, *height, field.Len(), scene.Kin.FOV())
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
