// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Motion    MotionConfig    `yaml:"motion"`
	Hero      HeroConfig      `yaml:"hero"`
	Animal    AnimalConfig    `yaml:"animal"`
	Herd      HerdConfig      `yaml:"herd"`
	Yard      YardConfig      `yaml:"yard"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Assets    AssetsConfig    `yaml:"assets"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds the logical field dimensions.
// Patrol targets are sampled inside the field inset by Margin on every side.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

// MotionConfig holds the movement signal shared by the hero and the animals.
type MotionConfig struct {
	Epsilon float64 `yaml:"epsilon"` // per-axis delta that counts as movement
}

// HeroConfig holds hero creation and movement parameters.
type HeroConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Speed  float64 `yaml:"speed"` // units per tick; also the snap distance
}

// AnimalConfig holds animal movement and patrol parameters.
type AnimalConfig struct {
	Speed            float64 `yaml:"speed"`              // patrol speed, units per tick
	FollowSpeedBonus float64 `yaml:"follow_speed_bonus"` // added to Speed while following
	FollowBuffer     float64 `yaml:"follow_buffer"`      // trailing distance kept from the hero
	PatrolBuffer     float64 `yaml:"patrol_buffer"`      // stop distance when seeking a patrol target
	ArriveRadius     float64 `yaml:"arrive_radius"`      // patrol target reached below this distance
	WaitMinTicks     int     `yaml:"wait_min_ticks"`     // inclusive
	WaitMaxTicks     int     `yaml:"wait_max_ticks"`     // exclusive
}

// HerdConfig holds recruitment parameters.
type HerdConfig struct {
	Capacity      int     `yaml:"capacity"`
	RecruitRadius float64 `yaml:"recruit_radius"`
}

// YardConfig holds the delivery target.
type YardConfig struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	DeliveryRadius float64 `yaml:"delivery_radius"` // measured from the anchor (X, Y)
	Points         int     `yaml:"points"`          // score per delivered animal
}

// SpawnConfig holds initial population parameters.
type SpawnConfig struct {
	MinCount   int     `yaml:"min_count"` // inclusive
	MaxCount   int     `yaml:"max_count"` // inclusive
	AreaWidth  float64 `yaml:"area_width"`
	AreaHeight float64 `yaml:"area_height"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	TicksPerSecond      int     `yaml:"ticks_per_second"`
	StatsWindow         float64 `yaml:"stats_window"` // seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
	BookmarkHistory     int     `yaml:"bookmark_history"` // windows kept for bookmark detection
}

// AssetsConfig holds sprite frame locations relative to Dir.
type AssetsConfig struct {
	Dir        string   `yaml:"dir"`
	HeroIdle   []string `yaml:"hero_idle"`
	HeroWalk   []string `yaml:"hero_walk"`
	AnimalIdle []string `yaml:"animal_idle"`
	AnimalWalk []string `yaml:"animal_walk"`
	FrameTicks int      `yaml:"frame_ticks"` // ticks per animation frame
}

// Rect is an axis-aligned rectangle in field units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	PatrolBounds    Rect    // field inset by margin
	FollowSpeed     float64 // Animal.Speed + Animal.FollowSpeedBonus
	DT              float64 // seconds per tick
	StatsWindowTick int32   // ticks per telemetry window
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

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects settings the simulation rules cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if 2*c.Field.Margin >= c.Field.Width || 2*c.Field.Margin >= c.Field.Height {
		errs = append(errs, fmt.Errorf("field margin %g leaves no patrol area", c.Field.Margin))
	}
	if c.Motion.Epsilon < 0 {
		errs = append(errs, fmt.Errorf("motion epsilon must not be negative, got %g", c.Motion.Epsilon))
	}
	if c.Herd.Capacity < 1 {
		errs = append(errs, fmt.Errorf("herd capacity must be at least 1, got %d", c.Herd.Capacity))
	}
	if c.Animal.WaitMinTicks < 1 || c.Animal.WaitMaxTicks <= c.Animal.WaitMinTicks {
		errs = append(errs, fmt.Errorf("wait ticks must satisfy 1 <= min < max, got [%d, %d)",
			c.Animal.WaitMinTicks, c.Animal.WaitMaxTicks))
	}
	if c.Spawn.MinCount < 0 || c.Spawn.MaxCount < c.Spawn.MinCount {
		errs = append(errs, fmt.Errorf("spawn count must satisfy 0 <= min <= max, got [%d, %d]",
			c.Spawn.MinCount, c.Spawn.MaxCount))
	}
	if c.Telemetry.TicksPerSecond < 1 {
		errs = append(errs, fmt.Errorf("ticks_per_second must be positive, got %d", c.Telemetry.TicksPerSecond))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.PatrolBounds = Rect{
		MinX: c.Field.Margin,
		MinY: c.Field.Margin,
		MaxX: c.Field.Width - c.Field.Margin,
		MaxY: c.Field.Height - c.Field.Margin,
	}
	c.Derived.FollowSpeed = c.Animal.Speed + c.Animal.FollowSpeedBonus
	c.Derived.DT = 1.0 / float64(c.Telemetry.TicksPerSecond)

	ticks := int32(c.Telemetry.StatsWindow * float64(c.Telemetry.TicksPerSecond))
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.StatsWindowTick = ticks

	if c.Assets.FrameTicks < 1 {
		c.Assets.FrameTicks = 1
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
