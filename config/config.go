// Package config provides configuration loading and access for the storefront.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all storefront configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Universe   UniverseConfig   `yaml:"universe"`
	Kinematics KinematicsConfig `yaml:"kinematics"`
	Carousel   CarouselConfig   `yaml:"carousel"`
	Cart       CartConfig       `yaml:"cart"`
	Checkout   CheckoutConfig   `yaml:"checkout"`
	Stars      StarsConfig      `yaml:"stars"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Business   BusinessConfig   `yaml:"business"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// UniverseConfig holds particle field generation parameters.
type UniverseConfig struct {
	ParticleCount int      `yaml:"particle_count"`
	Radius        float64  `yaml:"radius"`
	SizeMin       float64  `yaml:"size_min"`
	SizeMax       float64  `yaml:"size_max"`
	Palette       []string `yaml:"palette"` // Hex colours, one is picked uniformly per point
	CameraZ       float64  `yaml:"camera_z"`
	BaseFOV       float64  `yaml:"base_fov"`
	PointerScale  float64  `yaml:"pointer_scale"` // NDC pointer -> object space multiplier
	BreathAmp     float64  `yaml:"breath_amp"`
	BreathFreq    float64  `yaml:"breath_freq"`
	Placeholder   []string `yaml:"placeholder"` // Top and bottom gradient colours when shaders are unavailable
}

// KinematicsConfig holds the per-frame pointer/rotation smoothing constants.
type KinematicsConfig struct {
	SpeedGain      float64 `yaml:"speed_gain"`      // pointer displacement -> speed multiplier
	BaseRotation   float64 `yaml:"base_rotation"`   // rotation speed with a still pointer
	SpeedRotation  float64 `yaml:"speed_rotation"`  // extra rotation speed at pointer speed 1
	RestRotation   float64 `yaml:"rest_rotation"`   // target rotation speed decays toward this
	PointerLerp    float64 `yaml:"pointer_lerp"`    // smoothing of the on-screen pointer
	RotationLerp   float64 `yaml:"rotation_lerp"`   // current -> target rotation speed
	DecayLerp      float64 `yaml:"decay_lerp"`      // target -> rest rotation speed
	SecondaryRatio float64 `yaml:"secondary_ratio"` // z-axis rotation relative to y-axis
	FOVGain        float64 `yaml:"fov_gain"`        // degrees of FOV per unit rotation speed
	FOVLerp        float64 `yaml:"fov_lerp"`
	GlowGain       float64 `yaml:"glow_gain"` // uSpeed = current rotation speed * this
	BoostRadius    float64 `yaml:"boost_radius"`
	BoostGain      float64 `yaml:"boost_gain"`
}

// CarouselConfig holds carousel layout parameters.
type CarouselConfig struct {
	InitialIndex       int     `yaml:"initial_index"`
	TransitionSeconds  float64 `yaml:"transition_seconds"`
	NarrowBreakpoint   float64 `yaml:"narrow_breakpoint"`
	WideBreakpoint     float64 `yaml:"wide_breakpoint"`
	CardWidth          float64 `yaml:"card_width"`
	CardHeight         float64 `yaml:"card_height"`
	PerspectiveDepth   float64 `yaml:"perspective_depth"`
	ReferenceViewportW float64 `yaml:"reference_viewport_w"` // viewport width the x offsets are authored for
}

// CartConfig holds pricing parameters.
type CartConfig struct {
	DeliveryCharge   float64 `yaml:"delivery_charge"`
	TwoItemPercent   float64 `yaml:"two_item_percent"`
	ThreeItemPercent float64 `yaml:"three_item_percent"`
	CurrencySymbol   string  `yaml:"currency_symbol"`
	DisplaySymbol    string  `yaml:"display_symbol"` // on-screen prefix, the default font has no rupee glyph
}

// CheckoutConfig holds checkout hand-off parameters.
type CheckoutConfig struct {
	Endpoint    string `yaml:"endpoint"`
	PhonePrefix string `yaml:"phone_prefix"`
	PhoneDigits int    `yaml:"phone_digits"`
	MaxName     int    `yaml:"max_name"`
	MaxEmail    int    `yaml:"max_email"`
	MaxAddress  int    `yaml:"max_address"`
	Header      string `yaml:"header"`
}

// StarsConfig holds shooting star parameters.
type StarsConfig struct {
	Enabled      bool     `yaml:"enabled"`
	Count        int      `yaml:"count"`
	RegenSeconds float64  `yaml:"regen_seconds"`
	MinDuration  float64  `yaml:"min_duration"`
	MaxDuration  float64  `yaml:"max_duration"`
	MinSize      float64  `yaml:"min_size"`
	MaxSize      float64  `yaml:"max_size"`
	TopFraction  float64  `yaml:"top_fraction"` // stars spawn in the top fraction of the screen
	TravelPixels float64  `yaml:"travel_pixels"`
	AngleDegrees float64  `yaml:"angle_degrees"`
	FadeFraction float64  `yaml:"fade_fraction"`
	Colors       []string `yaml:"colors"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow     int     `yaml:"perf_window"`      // frames averaged by the perf collector
	LogIntervalSec float64 `yaml:"log_interval_sec"` // seconds between perf log lines
	MaxEvents      int     `yaml:"max_events"`       // in-memory session event cap
}

// BusinessConfig holds storefront identity.
type BusinessConfig struct {
	Name           string `yaml:"name"`
	WhatsAppNumber string `yaml:"whatsapp_number"`
	DisplayNumber  string `yaml:"display_number"`
	Instagram      string `yaml:"instagram"`
	Email          string `yaml:"email"`
	GoogleBusiness string `yaml:"google_business"`
	LinkedIn       string `yaml:"linkedin"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the storefront cannot run with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Universe.SizeMax < c.Universe.SizeMin {
		return fmt.Errorf("universe size_max %.2f below size_min %.2f", c.Universe.SizeMax, c.Universe.SizeMin)
	}
	if len(c.Universe.Palette) == 0 {
		return fmt.Errorf("universe palette is empty")
	}
	if err := checkHex("universe palette", c.Universe.Palette); err != nil {
		return err
	}
	if err := checkHex("universe placeholder", c.Universe.Placeholder); err != nil {
		return err
	}
	if err := checkHex("stars colors", c.Stars.Colors); err != nil {
		return err
	}
	if c.Cart.DeliveryCharge < 0 {
		return fmt.Errorf("cart delivery_charge must be non-negative, got %.2f", c.Cart.DeliveryCharge)
	}
	if c.Carousel.NarrowBreakpoint > c.Carousel.WideBreakpoint {
		return fmt.Errorf("carousel narrow_breakpoint %.0f above wide_breakpoint %.0f",
			c.Carousel.NarrowBreakpoint, c.Carousel.WideBreakpoint)
	}
	return nil
}

// checkHex rejects any entry that is not a #rgb or #rrggbb colour.
func checkHex(field string, colors []string) error {
	for _, h := range colors {
		if _, err := colorful.Hex(h); err != nil {
			return fmt.Errorf("%s: bad colour %q: %w", field, h, err)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Stars.Count < 0 {
		c.Stars.Count = 0
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
