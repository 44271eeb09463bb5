package main

import (
	"context"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/boxselect/internal/app"
)

func replayCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay recorded gestures and print the selection",
		Long: `Replay a YAML script of gestures against an off-screen plot and print
the resulting selection as JSON.

Example script:
  width: 80
  height: 24
  tool:
    preset: xbox_select
  steps:
    - {action: press, x: 10, y: 5}
    - {action: drag, x: 30, y: 12, mods: shift}
    - {action: release, x: 30, y: 12, mods: shift}
    - {action: undo}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runReplay(ctx, cmd.OutOrStdout(), flags, args[0])
		},
	}
}

func runReplay(ctx context.Context, w io.Writer, flags *globalFlags, scriptPath string) error {
	script, err := app.LoadScript(scriptPath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	script.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetSize(script.Width, script.Height)

	a, err := app.New(ctx, app.Options{Config: cfg, Screen: screen, Logger: logger})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Replay(ctx, script); err != nil {
		return err
	}
	if err := a.WriteExport(w); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
