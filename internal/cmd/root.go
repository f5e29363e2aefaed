// Package cmd implements the dungeonleap command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samdwyer/dungeonleap/internal/config"
	"github.com/samdwyer/dungeonleap/internal/logging"
	"github.com/samdwyer/dungeonleap/internal/presets"
	"github.com/samdwyer/dungeonleap/internal/telemetry"
	"github.com/samdwyer/dungeonleap/internal/world"
)

// app carries state shared by every subcommand once configuration is loaded.
type app struct {
	v        *viper.Viper
	cfg      *config.Config
	logger   *slog.Logger
	registry *presets.Registry
	shutdown func(context.Context) error
}

// NewRootCmd builds the dungeonleap command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "dungeonleap",
		Short: "Procedural dungeon layouts for the dungeonleap platformer",
		Long: `dungeonleap scatters rooms, links them with a spanning tree plus a few
loops, carves L-shaped corridors and walls them in. The commands here
generate layouts and survey generator behavior across many seeds.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(cmd.Context())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/dungeonleap/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("preset", "", "generation preset (see presets.json)")
	_ = a.v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("generation.preset", rootCmd.PersistentFlags().Lookup("preset"))

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newSurveyCmd(a))
	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) init(cmd *cobra.Command) error {
	// Set defaults first so they're available even without a config file
	config.SetDefaults(a.v)

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(config.ConfigDir())
		a.v.AddConfigPath(".")
	}

	a.v.SetEnvPrefix(config.EnvPrefix)
	// e.g., DUNGEONLEAP_GENERATION_CELL_COUNT for generation.cell_count
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.v.GetString("config") != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	registry, err := presets.LoadRegistry()
	if err != nil {
		return err
	}
	a.registry = registry

	shutdown, err := telemetry.Setup(cmd.Context(), cfg.Telemetry.Options())
	if err != nil {
		// Not fatal - generation works without observability
		a.logger.Warn("telemetry setup failed", "error", err)
	} else {
		a.shutdown = shutdown
	}
	return nil
}

// params resolves the configured generation parameters with the preset applied.
func (a *app) params(presetID string) (world.Params, error) {
	p := a.cfg.Generation.Params()
	if presetID == "" {
		return p, nil
	}
	def := a.registry.GetByID(presetID)
	if def == nil {
		return p, fmt.Errorf("unknown preset %q", presetID)
	}
	return def.Apply(p), nil
}
