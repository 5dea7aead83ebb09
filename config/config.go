// Package config provides configuration loading and access for the
// simulation. Defaults are embedded; a user file merges over them.
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
	Screen      ScreenConfig      `yaml:"screen"`
	World       WorldConfig       `yaml:"world"`
	Simulation  SimulationConfig  `yaml:"simulation"`
	Environment EnvironmentConfig `yaml:"environment"`
	Population  PopulationConfig  `yaml:"population"`
	Narrative   NarrativeConfig   `yaml:"narrative"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds world dimensions in world units.
// Zero means use the screen size.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SimulationConfig holds tick parameters.
type SimulationConfig struct {
	DT float64 `yaml:"dt"` // seconds per simulation tick
}

// EnvironmentConfig holds the blend gradients for the two macro-phase looks
// plus the render-side smoothing rate.
type EnvironmentConfig struct {
	SmoothingRate float64         `yaml:"smoothing_rate"` // approach rate per second
	Ocean         PhaseLookConfig `yaml:"ocean"`
	Land          PhaseLookConfig `yaml:"land"`
}

// PhaseLookConfig holds per-channel gradient stops for one macro-phase.
// Stops are ordered by t ascending.
type PhaseLookConfig struct {
	Fog             []ColorStopConfig `yaml:"fog"`
	FogNear         []StopConfig      `yaml:"fog_near"`
	FogFar          []StopConfig      `yaml:"fog_far"`
	Sky             []ColorStopConfig `yaml:"sky"`
	Ground          []ColorStopConfig `yaml:"ground"`
	Sun             []ColorStopConfig `yaml:"sun"`
	SunIntensity    []StopConfig      `yaml:"sun_intensity"`
	Particle        []ColorStopConfig `yaml:"particle"`
	ParticleOpacity []StopConfig      `yaml:"particle_opacity"`
	ParticleCount   []StopConfig      `yaml:"particle_count"`
	Headlight       []StopConfig      `yaml:"headlight"`
	Terrain         []ColorStopConfig `yaml:"terrain"`
	AnimationSpeed  []StopConfig      `yaml:"animation_speed"`
}

// StopConfig pins a scalar value at a position along the blend axis.
type StopConfig struct {
	T     float64 `yaml:"t"`
	Value float64 `yaml:"value"`
}

// ColorStopConfig pins an RGB color (components in [0,1]) at a position.
type ColorStopConfig struct {
	T     float64    `yaml:"t"`
	Color [3]float64 `yaml:"color"`
}

// PopulationConfig holds the species threshold table.
type PopulationConfig struct {
	LowPower bool            `yaml:"low_power"` // halve all counts on constrained hardware
	Species  []SpeciesConfig `yaml:"species"`
}

// SpeciesConfig defines one creature or flora population and the stage
// thresholds at which it appears and grows.
type SpeciesConfig struct {
	ID           string  `yaml:"id"`
	MinStage     string  `yaml:"min_stage"`
	Count        int     `yaml:"count"`
	UpgradeStage string  `yaml:"upgrade_stage"` // optional later stage with a larger count
	UpgradeCount int     `yaml:"upgrade_count"`
	SizeScale    float64 `yaml:"size_scale"`
	SpeedScale   float64 `yaml:"speed_scale"`
	RangeRadius  float64 `yaml:"range_radius"`
}

// NarrativeConfig holds the land-phase quiz prompts.
type NarrativeConfig struct {
	ExtinctionDelay float64        `yaml:"extinction_delay"` // seconds between quiz completion and the extinction event
	Prompts         []PromptConfig `yaml:"prompts"`
}

// PromptConfig is one quiz prompt.
type PromptConfig struct {
	Question       string   `yaml:"question"`
	Keywords       []string `yaml:"keywords"`
	ProgressTarget float64  `yaml:"progress_target"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	BookmarkHistorySize int     `yaml:"bookmark_history_size"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Simulation.DT as float32
	ScreenW32 float32
	ScreenH32 float32
	WorldW32  float32 // effective world width
	WorldH32  float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
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
		// Unmarshal into the same struct - only overwrites fields present in
		// the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Simulation.DT <= 0 {
		c.Simulation.DT = 1.0 / 60.0
	}
	c.Derived.DT32 = float32(c.Simulation.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)

	if c.Environment.SmoothingRate <= 0 {
		c.Environment.SmoothingRate = 1.5
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
