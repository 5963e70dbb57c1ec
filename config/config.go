// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Arena      ArenaConfig      `yaml:"arena"`
	Entity     EntityConfig     `yaml:"entity"`
	Speed      SpeedConfig      `yaml:"speed"`
	Distance   DistanceConfig   `yaml:"distance"`
	Timers     TimersConfig     `yaml:"timers"`
	Population PopulationConfig `yaml:"population"`
	Dog        DogConfig        `yaml:"dog"`
	Assets     AssetsConfig     `yaml:"assets"`
	Run        RunConfig        `yaml:"run"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The arena is the whole screen.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// ArenaConfig describes the inset boundary animals bounce off.
type ArenaConfig struct {
	Margin    int `yaml:"margin"`    // distance of the boundary from each screen edge
	Overshoot int `yaml:"overshoot"` // correction applied when clamping back inside
}

// EntityConfig holds sprite sizes.
type EntityConfig struct {
	AnimalSize int `yaml:"animal_size"`
	PlayerSize int `yaml:"player_size"`
}

// SpeedConfig holds per-kind speeds in units per tick.
type SpeedConfig struct {
	Sheep  int `yaml:"sheep"`
	Wolf   int `yaml:"wolf"`
	Dog    int `yaml:"dog"`
	Player int `yaml:"player"`
}

// DistanceConfig holds proximity thresholds. All comparisons are strict.
type DistanceConfig struct {
	Hunt     int `yaml:"hunt"`     // wolf kills prey closer than this
	Interact int `yaml:"interact"` // breeding partners closer than this
	Click    int `yaml:"click"`    // click closer than this to the dog starts a command
	Flee     int `yaml:"flee"`     // wolves flee a dog closer than this
	Arrive   int `yaml:"arrive"`   // dog reached its command target
}

// TimersConfig holds cooldowns in milliseconds.
type TimersConfig struct {
	BreedMS  int64 `yaml:"breed_ms"`
	StarveMS int64 `yaml:"starve_ms"`
}

// PopulationConfig holds population limits and the initial herd.
type PopulationConfig struct {
	MaxAnimals    int `yaml:"max_animals"`
	InitialSheep  int `yaml:"initial_sheep"`
	InitialWolves int `yaml:"initial_wolves"`
}

// DogConfig holds orbit parameters.
type DogConfig struct {
	OrbitRadius  float64 `yaml:"orbit_radius"`
	RotationStep float64 `yaml:"rotation_step"` // degrees per tick
}

// AssetsConfig holds sprite paths.
type AssetsConfig struct {
	Sheep  string `yaml:"sheep"`
	Wolf   string `yaml:"wolf"`
	Dog    string `yaml:"dog"`
	Player string `yaml:"player"`
}

// RunConfig holds the two deadlines of the frame loop.
type RunConfig struct {
	PeriodSec float64 `yaml:"period_sec"` // simulation stops moving after this (0 = never)
	GraceSec  float64 `yaml:"grace_sec"`  // app exits this long after the simulation stops
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MinX, MinY int   // inset boundary, top-left
	MaxX, MaxY int   // inset boundary, bottom-right
	FrameMS    int64 // target milliseconds per frame
	PeriodMS   int64 // simulation cutoff (0 = none)
	ExitMS     int64 // hard exit cutoff (0 = none)
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

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
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
	cfg.ComputeDerived()

	return cfg, nil
}

// validate rejects configurations the simulation cannot run with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if 2*(c.Arena.Margin+c.Arena.Overshoot) >= c.Screen.Width || 2*(c.Arena.Margin+c.Arena.Overshoot) >= c.Screen.Height {
		return fmt.Errorf("arena margin %d leaves no room on a %dx%d screen", c.Arena.Margin, c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Population.MaxAnimals < 0 {
		return fmt.Errorf("population.max_animals must not be negative")
	}
	return nil
}

// ComputeDerived calculates values derived from loaded config.
// Call it again after changing fields programmatically.
func (c *Config) ComputeDerived() {
	c.Derived.MinX = c.Arena.Margin
	c.Derived.MinY = c.Arena.Margin
	c.Derived.MaxX = c.Screen.Width - c.Arena.Margin
	c.Derived.MaxY = c.Screen.Height - c.Arena.Margin

	c.Derived.FrameMS = 0
	if c.Screen.TargetFPS > 0 {
		c.Derived.FrameMS = int64(1000 / c.Screen.TargetFPS)
	}

	c.Derived.PeriodMS = int64(c.Run.PeriodSec * 1000)
	c.Derived.ExitMS = 0
	if c.Derived.PeriodMS > 0 {
		c.Derived.ExitMS = c.Derived.PeriodMS + int64(c.Run.GraceSec*1000)
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
