package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noble/app"
	"github.com/pthm-cable/noble/catalog"
	"github.com/pthm-cable/noble/config"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	catalogPath := flag.String("catalog", "", "Path to a product catalog, .yaml or .csv (empty = built-in products)")
	logStats := flag.Bool("log-stats", false, "Output perf and session stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int64("max-frames", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		slog.Error("failed to load catalog", "path", *catalogPath, "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	// Escape closes modals, not the window
	rl.SetExitKey(rl.KeyNull)

	a, err := app.New(cfg, cat, app.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	})
	if err != nil {
		slog.Error("failed to create storefront", "error", err)
		os.Exit(1)
	}
	defer a.Unload()

	if err := a.Mount(); err != nil {
		slog.Error("failed to mount scene", "error", err)
		a.Unload()
		rl.CloseWindow()
		os.Exit(1)
	}

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()

		if *maxFrames > 0 && a.Frame() >= *maxFrames {
			slog.Info("max frames reached", "frame", a.Frame())
			break
		}
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
