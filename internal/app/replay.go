package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/boxselect/internal/config"
	"github.com/dshills/boxselect/internal/geometry"
	"github.com/dshills/boxselect/internal/input/mouse"
)

// Default replay screen size.
const (
	DefaultReplayWidth  = 80
	DefaultReplayHeight = 24
)

// Replay step actions.
const (
	StepPress   = "press"
	StepDrag    = "drag"
	StepMove    = "move"
	StepRelease = "release"
	StepCancel  = "cancel"
	StepUndo    = "undo"
	StepRedo    = "redo"
	StepPreset  = "preset"
	StepOrigin  = "origin"
)

var stepActions = map[string]bool{
	StepPress: true, StepDrag: true, StepMove: true, StepRelease: true,
	StepCancel: true, StepUndo: true, StepRedo: true, StepPreset: true,
	StepOrigin: true,
}

// Script is a recorded sequence of gestures and commands:
//
//	width: 80
//	height: 24
//	tool:
//	  preset: xbox_select
//	steps:
//	  - {action: press, x: 10, y: 5}
//	  - {action: drag, x: 30, y: 12, mods: shift}
//	  - {action: release, x: 30, y: 12}
type Script struct {
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Tool   *ScriptTool `yaml:"tool"`
	Steps  []Step      `yaml:"steps"`
}

// ScriptTool overrides the configured tool for a replay.
type ScriptTool struct {
	Preset     string `yaml:"preset"`
	Dimensions string `yaml:"dimensions"`
	Origin     string `yaml:"origin"`
	Mode       string `yaml:"mode"`
	Live       *bool  `yaml:"select_every_mousemove"`
}

// Step is one replayed input.
type Step struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`

	// Mods names held modifiers, e.g. "shift" or "ctrl+shift".
	Mods string `yaml:"mods"`

	// Preset names the preset for a preset step.
	Preset string `yaml:"preset"`
}

// LoadScript reads a replay script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewOperationError("read script", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, NewOperationError("parse script", path, err)
	}
	return s, nil
}

// ParseScript decodes and validates a YAML replay script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if s.Width == 0 {
		s.Width = DefaultReplayWidth
	}
	if s.Height == 0 {
		s.Height = DefaultReplayHeight
	}
	if s.Width < 4 || s.Height < 4 {
		return nil, fmt.Errorf("%w: screen %dx%d is too small", ErrInvalidScript, s.Width, s.Height)
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		st.Action = strings.ToLower(strings.TrimSpace(st.Action))
		if !stepActions[st.Action] {
			return nil, fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidScript, i+1, st.Action)
		}
		if st.Action == StepPreset && st.Preset == "" {
			return nil, fmt.Errorf("%w: step %d: preset step needs a preset", ErrInvalidScript, i+1)
		}
	}
	return &s, nil
}

// Apply writes the script's tool overrides into cfg.
func (s *Script) Apply(cfg *config.Config) {
	if s.Tool == nil {
		return
	}
	t := s.Tool
	if t.Preset != "" {
		cfg.Tool.Preset = t.Preset
		cfg.Tool.Dimensions = ""
	}
	if t.Dimensions != "" {
		cfg.Tool.Dimensions = t.Dimensions
	}
	if t.Origin != "" {
		cfg.Tool.Origin = t.Origin
	}
	if t.Mode != "" {
		cfg.Tool.Mode = t.Mode
	}
	if t.Live != nil {
		cfg.Tool.SelectEveryMouseMove = *t.Live
	}
}

// Replay runs every step of s in order. A gesture still active after the
// last step is released at its last position.
func (a *App) Replay(ctx context.Context, s *Script) error {
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.replayStep(st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
	}
	if err := a.CancelGesture(); err != nil {
		return err
	}
	a.Draw()
	a.logSummary("replay finished")
	return nil
}

func (a *App) replayStep(st Step) error {
	ev := mouse.Event{
		Position:  geometry.Pt(st.X, st.Y),
		Modifiers: mouse.ParseModifiers(st.Mods),
		Button:    mouse.ButtonLeft,
	}

	switch st.Action {
	case StepPress:
		ev.Action = mouse.ActionPress
		return a.HandleMouse(ev)
	case StepDrag:
		ev.Action = mouse.ActionDrag
		return a.HandleMouse(ev)
	case StepMove:
		ev.Action = mouse.ActionMove
		ev.Button = mouse.ButtonNone
		return a.HandleMouse(ev)
	case StepRelease:
		ev.Action = mouse.ActionRelease
		return a.HandleMouse(ev)
	case StepCancel:
		return a.CancelGesture()
	case StepUndo:
		return a.Undo()
	case StepRedo:
		return a.Redo()
	case StepPreset:
		return a.SetPreset(st.Preset)
	case StepOrigin:
		return a.ToggleOrigin()
	}
	return fmt.Errorf("%w: unknown action %q", ErrInvalidScript, st.Action)
}
