// Package config loads dungeonleap settings from defaults, a config file and
// DUNGEONLEAP_* environment variables via viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/samdwyer/dungeonleap/internal/presets"
	"github.com/samdwyer/dungeonleap/internal/telemetry"
	"github.com/samdwyer/dungeonleap/internal/world"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "DUNGEONLEAP"

// Config represents the complete dungeonleap configuration
type Config struct {
	Generation GenerationConfig `mapstructure:"generation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

// GenerationConfig controls layout generation
type GenerationConfig struct {
	// Seed for the layout random source. 0 means a time-based seed.
	Seed int64 `mapstructure:"seed"`
	// Preset names an embedded preset whose overrides win over the fields below.
	Preset string `mapstructure:"preset"`

	CellCount            int     `mapstructure:"cell_count"`
	MapWidth             int     `mapstructure:"map_width"`
	MapHeight            int     `mapstructure:"map_height"`
	ScatterRadius        int     `mapstructure:"scatter_radius"`
	MinCellW             int     `mapstructure:"min_cell_w"`
	MaxCellW             int     `mapstructure:"max_cell_w"`
	MinCellH             int     `mapstructure:"min_cell_h"`
	MaxCellH             int     `mapstructure:"max_cell_h"`
	AspectLimit          float64 `mapstructure:"aspect_limit"`
	SeparationIterations int     `mapstructure:"separation_iterations"`
	RoomMinW             int     `mapstructure:"room_min_w"`
	RoomMinH             int     `mapstructure:"room_min_h"`
	Neighbors            int     `mapstructure:"neighbors"`
	LoopRatio            float64 `mapstructure:"loop_ratio"`
	CorridorThickness    int     `mapstructure:"corridor_thickness"`
	CorridorPad          int     `mapstructure:"corridor_pad"`
	WallThickness        int     `mapstructure:"wall_thickness"`
	WallSegment          int     `mapstructure:"wall_segment"`
	ExitWidth            int     `mapstructure:"exit_width"`
	ExitHeight           int     `mapstructure:"exit_height"`
	ExitInset            int     `mapstructure:"exit_inset"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `mapstructure:"level"`
	// Format is "text" or "json" (default: text)
	Format string `mapstructure:"format"`
}

// TelemetryConfig controls trace export to Honeycomb
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
	Dataset  string `mapstructure:"dataset"`
}

// Default returns the built-in configuration.
func Default() *Config {
	p := world.DefaultParams()
	return &Config{
		Generation: GenerationConfig{
			Preset:               presets.DefaultID,
			CellCount:            p.CellCount,
			MapWidth:             p.MapWidth,
			MapHeight:            p.MapHeight,
			ScatterRadius:        p.ScatterRadius,
			MinCellW:             p.MinCellW,
			MaxCellW:             p.MaxCellW,
			MinCellH:             p.MinCellH,
			MaxCellH:             p.MaxCellH,
			AspectLimit:          p.AspectLimit,
			SeparationIterations: p.SeparationIterations,
			RoomMinW:             p.RoomMinW,
			RoomMinH:             p.RoomMinH,
			Neighbors:            p.Neighbors,
			LoopRatio:            p.LoopRatio,
			CorridorThickness:    p.CorridorThickness,
			CorridorPad:          p.CorridorPad,
			WallThickness:        p.WallThickness,
			WallSegment:          p.WallSegment,
			ExitWidth:            p.ExitWidth,
			ExitHeight:           p.ExitHeight,
			ExitInset:            p.ExitInset,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			Enabled:  false,
			Endpoint: telemetry.DefaultEndpoint,
			Dataset:  "dungeonleap",
		},
	}
}

// Params converts the generation settings into world parameters.
// The preset is not applied here; see presets.PresetDef.Apply.
func (g GenerationConfig) Params() world.Params {
	return world.Params{
		CellCount:            g.CellCount,
		MapWidth:             g.MapWidth,
		MapHeight:            g.MapHeight,
		ScatterRadius:        g.ScatterRadius,
		MinCellW:             g.MinCellW,
		MaxCellW:             g.MaxCellW,
		MinCellH:             g.MinCellH,
		MaxCellH:             g.MaxCellH,
		AspectLimit:          g.AspectLimit,
		SeparationIterations: g.SeparationIterations,
		RoomMinW:             g.RoomMinW,
		RoomMinH:             g.RoomMinH,
		Neighbors:            g.Neighbors,
		LoopRatio:            g.LoopRatio,
		CorridorThickness:    g.CorridorThickness,
		CorridorPad:          g.CorridorPad,
		WallThickness:        g.WallThickness,
		WallSegment:          g.WallSegment,
		ExitWidth:            g.ExitWidth,
		ExitHeight:           g.ExitHeight,
		ExitInset:            g.ExitInset,
	}
}

// Options converts the telemetry settings for telemetry.Setup.
func (t TelemetryConfig) Options() telemetry.Options {
	return telemetry.Options{
		Enabled:  t.Enabled,
		Endpoint: t.Endpoint,
		APIKey:   t.APIKey,
		Dataset:  t.Dataset,
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	// Generation defaults
	g := defaults.Generation
	v.SetDefault("generation.seed", g.Seed)
	v.SetDefault("generation.preset", g.Preset)
	v.SetDefault("generation.cell_count", g.CellCount)
	v.SetDefault("generation.map_width", g.MapWidth)
	v.SetDefault("generation.map_height", g.MapHeight)
	v.SetDefault("generation.scatter_radius", g.ScatterRadius)
	v.SetDefault("generation.min_cell_w", g.MinCellW)
	v.SetDefault("generation.max_cell_w", g.MaxCellW)
	v.SetDefault("generation.min_cell_h", g.MinCellH)
	v.SetDefault("generation.max_cell_h", g.MaxCellH)
	v.SetDefault("generation.aspect_limit", g.AspectLimit)
	v.SetDefault("generation.separation_iterations", g.SeparationIterations)
	v.SetDefault("generation.room_min_w", g.RoomMinW)
	v.SetDefault("generation.room_min_h", g.RoomMinH)
	v.SetDefault("generation.neighbors", g.Neighbors)
	v.SetDefault("generation.loop_ratio", g.LoopRatio)
	v.SetDefault("generation.corridor_thickness", g.CorridorThickness)
	v.SetDefault("generation.corridor_pad", g.CorridorPad)
	v.SetDefault("generation.wall_thickness", g.WallThickness)
	v.SetDefault("generation.wall_segment", g.WallSegment)
	v.SetDefault("generation.exit_width", g.ExitWidth)
	v.SetDefault("generation.exit_height", g.ExitHeight)
	v.SetDefault("generation.exit_inset", g.ExitInset)

	// Logging defaults
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", defaults.Telemetry.Enabled)
	v.SetDefault("telemetry.endpoint", defaults.Telemetry.Endpoint)
	v.SetDefault("telemetry.api_key", defaults.Telemetry.APIKey)
	v.SetDefault("telemetry.dataset", defaults.Telemetry.Dataset)
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dungeonleap")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dungeonleap"
	}
	return filepath.Join(home, ".config", "dungeonleap")
}
