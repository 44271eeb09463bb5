// Package main is the entry point for the boxselect CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/boxselect/internal/app"
	"github.com/dshills/boxselect/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	dataPath   string
	logLevel   string
}

func rootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "boxselect",
		Short: "Rectangular selection over a point plot",
		Long: `boxselect draws a scatter plot in the terminal and selects points by
dragging a box over them. Hold Shift to add to the selection, Ctrl to
intersect with it and Shift+Ctrl to subtract from it.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultPath, "Configuration file (TOML or YAML)")
	cmd.PersistentFlags().StringVar(&flags.dataPath, "data", "", "Point data file (overrides data.path)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(runCmd(&flags))
	cmd.AddCommand(replayCmd(&flags))
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads the configuration file and applies flag overrides.
func loadConfig(flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if flags.dataPath != "" {
		cfg.Data.Path = flags.dataPath
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	return cfg, nil
}

// newLogger builds the application logger from the logging section.
func newLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	level, err := app.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	return app.NewLogger(app.LoggerConfig{Level: level, File: cfg.Logging.File})
}
