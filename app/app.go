// Package app is the storefront shell: it owns every per-frame value, mounts
// the scene's GPU resources and routes input between the universe, the
// carousel and the cart.
package app

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noble/camera"
	"github.com/pthm-cable/noble/catalog"
	"github.com/pthm-cable/noble/config"
	"github.com/pthm-cable/noble/renderer"
	"github.com/pthm-cable/noble/session"
	"github.com/pthm-cable/noble/stars"
	"github.com/pthm-cable/noble/telemetry"
	"github.com/pthm-cable/noble/ui"
	"github.com/pthm-cable/noble/universe"
)

// Options holds storefront runtime options.
type Options struct {
	Seed      int64
	LogStats  bool   // log perf and session windows via slog
	OutputDir string // directory for CSV output (empty = disabled)
}

// App holds the complete storefront state.
type App struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	rng     *rand.Rand
	opts    Options

	// Mount-scoped: created by Mount, released by Unmount
	mounted   bool
	scene     *universe.Scene
	starField *stars.Field

	// Rendering
	cam         *camera.Camera
	backdrop    *renderer.BackgroundRenderer
	universeR   *renderer.UniverseRenderer
	cards       *renderer.CardRenderer
	starR       *renderer.StarRenderer
	sess        *session.Session
	overlays    *ui.OverlayRegistry
	hud         *ui.HUD
	controls    *ui.CarouselControls
	cartPanel   *ui.CartPanel
	form        *ui.CheckoutForm
	gallery     *ui.GalleryModal
	help        *ui.ControlsPanel
	inspector   *ui.Inspector
	perfPanel   *ui.PerfPanel
	actions     ui.Actions
	cardHits    []ui.CardHit
	centreCard  rl.Rectangle
	centreImage rl.Rectangle

	// Telemetry
	perf        *telemetry.PerfCollector
	events      *telemetry.EventLog
	output      *telemetry.OutputManager
	frame       int64
	elapsed     float64
	nextFlush   float64
	lastPerf    telemetry.PerfStats
	openURL     func(string)
	screenW     float32
	screenH     float32
}

// New creates the storefront. Call Mount once the window exists.
func New(cfg *config.Config, cat *catalog.Catalog, opts Options) (*App, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	rules := checkoutRules(cfg)
	a := &App{
		cfg:       cfg,
		catalog:   cat,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		opts:      opts,
		screenW:   cfg.Derived.ScreenW32,
		screenH:   cfg.Derived.ScreenH32,
		sess:      session.New(cat, sessionOptions(cfg)),
		overlays:  ui.NewOverlayRegistry(),
		hud:       ui.NewHUD(),
		controls:  ui.NewCarouselControls(),
		form:      ui.NewCheckoutForm(rules),
		help:      ui.NewControlsPanel(16, 80, 260),
		inspector: ui.NewInspector(16, 80, 340),
		perfPanel: ui.NewPerfPanel(16, 80),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		events:    telemetry.NewEventLog(cfg.Telemetry.MaxEvents),
		output:    output,
		nextFlush: cfg.Telemetry.LogIntervalSec,
		openURL:   rl.OpenURL,
	}
	a.cartPanel = ui.NewCartPanel(440, a.form)
	a.cards = renderer.NewCardRenderer(cfg.Cart.DisplaySymbol)
	a.gallery = ui.NewGalleryModal(a.cards)
	a.starR = renderer.NewStarRenderer()
	a.cam = camera.New(a.screenW, a.screenH, float32(cfg.Universe.CameraZ), float32(cfg.Universe.BaseFOV))
	a.sess.OnEvent(a.recordEvent)

	slog.Info("storefront created",
		"products", cat.Len(),
		"seed", opts.Seed,
		"output_dir", output.Dir(),
	)
	return a, nil
}

// Mount generates the universe, starts the star timer and acquires GPU
// resources. Must be called after the raylib window is created.
func (a *App) Mount() error {
	if a.mounted {
		return nil
	}
	cfg := a.cfg

	fp, err := fieldParams(cfg)
	if err != nil {
		return err
	}
	field := universe.Generate(a.rng, fp)
	a.scene = universe.NewScene(field, universe.NewKinematics(kinematicsParams(cfg)), sceneParams(cfg))

	if cfg.Stars.Enabled {
		sp, err := starParams(cfg)
		if err != nil {
			return err
		}
		a.starField = stars.New(a.rng, sp, a.screenW, a.screenH)
	}

	placeholder := cfg.Universe.Placeholder
	top, bottom := "#111827", "#000000"
	if len(placeholder) >= 2 {
		top, bottom = placeholder[0], placeholder[1]
	}
	a.backdrop = renderer.NewBackgroundRenderer(int32(a.screenW), int32(a.screenH), top, bottom)
	a.universeR = renderer.NewUniverseRenderer(a.backdrop)
	a.universeR.Init()

	a.mounted = true
	slog.Info("scene mounted",
		"particles", field.Len(),
		"shader", a.universeR.Valid(),
		"stars", cfg.Stars.Enabled,
		"overlays", a.overlays.EnabledOverlays(),
	)
	return nil
}

// Unmount releases GPU resources and drops the scene and the star timer.
func (a *App) Unmount() {
	if !a.mounted {
		return
	}
	a.universeR.Unload()
	a.cards.Unload()
	a.scene = nil
	a.starField = nil
	a.mounted = false
	slog.Info("scene unmounted")
}

// Unload unmounts and flushes telemetry output.
func (a *App) Unload() {
	a.Unmount()
	a.flushTelemetry()
	if err := a.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}

// Frame returns the number of frames updated.
func (a *App) Frame() int64 {
	return a.frame
}

// Session exposes the storefront state.
func (a *App) Session() *session.Session {
	return a.sess
}
