package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/samdwyer/dungeonleap/internal/world"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Fatalf("Default config should be valid, got: %v", ValidationErrors(errs))
	}
	if cfg.Generation.Params() != world.DefaultParams() {
		t.Errorf("Default generation params differ from world defaults:\n%+v\n%+v",
			cfg.Generation.Params(), world.DefaultParams())
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Generation.CellCount != 30 {
		t.Errorf("Expected cell_count 30, got %d", cfg.Generation.CellCount)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected info level, got %q", cfg.Logging.Level)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry should be disabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
generation:
  seed: 42
  cell_count: 12
  loop_ratio: 0.3
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig failed: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Generation.Seed != 42 || cfg.Generation.CellCount != 12 || cfg.Generation.LoopRatio != 0.3 {
		t.Errorf("File values not loaded: %+v", cfg.Generation)
	}
	if cfg.Generation.Neighbors != 3 {
		t.Errorf("Unset values should keep defaults, got neighbors %d", cfg.Generation.Neighbors)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json format, got %q", cfg.Logging.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero cells", func(c *Config) { c.Generation.CellCount = 0 }, "generation"},
		{"loop ratio above one", func(c *Config) { c.Generation.LoopRatio = 1.5 }, "generation"},
		{"unknown preset", func(c *Config) { c.Generation.Preset = "volcano" }, "generation.preset"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"telemetry without endpoint", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Endpoint = ""
		}, "telemetry.endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Expected 1 error, got %d: %v", len(errs), ValidationErrors(errs))
			}
			if errs[0].Field != tt.field {
				t.Errorf("Expected error on %s, got %s", tt.field, errs[0].Field)
			}
		})
	}
}

func TestLoadReturnsValidationErrors(t *testing.T) {
	v := newViper()
	v.Set("generation.cell_count", 0)
	v.Set("logging.level", "loud")

	_, err := Load(v)

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected ValidationErrors, got %T: %v", err, err)
	}
	if len(verrs) != 2 {
		t.Errorf("Expected 2 errors, got %d", len(verrs))
	}
	if !strings.Contains(err.Error(), "2 validation errors") {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestConfigDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "dungeonleap") {
		t.Errorf("ConfigDir() = %q", got)
	}
}
