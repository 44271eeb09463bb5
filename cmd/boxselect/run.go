package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/boxselect/internal/app"
)

func runCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive plot",
		Long: `Start the interactive plot.

Keys:
  u        undo the last selection
  r        redo
  1 2 3    box_select, xbox_select, ybox_select
  c        toggle centre origin
  e        export the selection to selection.json
  q, Esc   quit

The configuration file is watched; changes apply between gestures.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), flags)
		},
	}
}

func runInteractive(ctx context.Context, flags *globalFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	a, err := app.New(ctx, app.Options{
		Config:     cfg,
		ConfigPath: flags.configPath,
		Screen:     screen,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
