package config

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/boxselect/internal/config/loader"
	"github.com/dshills/boxselect/internal/history"
	"github.com/dshills/boxselect/internal/selection"
	"github.com/dshills/boxselect/internal/tool/boxselect"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "boxselect.toml"

// Config is the complete application configuration.
type Config struct {
	Tool    ToolConfig    `toml:"tool"`
	History HistoryConfig `toml:"history"`
	Logging LoggingConfig `toml:"logging"`
	Data    DataConfig    `toml:"data"`
	Hook    HookConfig    `toml:"hook"`
}

// ToolConfig selects and tunes the box select tool.
type ToolConfig struct {
	// Preset is box_select, xbox_select or ybox_select.
	Preset string `toml:"preset"`

	// Dimensions overrides the preset's dimensions when set.
	Dimensions string `toml:"dimensions"`

	Origin               string `toml:"origin"`
	SelectEveryMouseMove bool   `toml:"select_every_mousemove"`
	Mode                 string `toml:"mode"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// LoggingConfig configures the application log.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DataConfig names the point data file.
type DataConfig struct {
	Path string `toml:"path"`
}

// HookConfig names an optional Lua selection hook.
type HookConfig struct {
	Script string `toml:"script"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tool: ToolConfig{
			Preset: boxselect.PresetBoxSelect,
			Origin: boxselect.OriginCorner.String(),
			Mode:   selection.ModeReplace.String(),
		},
		History: HistoryConfig{MaxEntries: 100},
		Logging: LoggingConfig{Level: "info"},
		Data:    DataConfig{Path: "points.json"},
	}
}

// BoxSelect resolves the tool section into a controller configuration.
func (t ToolConfig) BoxSelect() (boxselect.Config, error) {
	preset := t.Preset
	if preset == "" {
		preset = boxselect.PresetBoxSelect
	}
	cfg, err := boxselect.Preset(preset)
	if err != nil {
		return boxselect.Config{}, err
	}

	if t.Dimensions != "" {
		if cfg.Dimensions, err = boxselect.ParseDimensions(t.Dimensions); err != nil {
			return boxselect.Config{}, err
		}
	}
	if cfg.Origin, err = boxselect.ParseOrigin(t.Origin); err != nil {
		return boxselect.Config{}, err
	}
	if cfg.DefaultMode, err = selection.ParseMode(t.Mode); err != nil {
		return boxselect.Config{}, err
	}
	cfg.SelectEveryMouseMove = t.SelectEveryMouseMove
	return cfg, cfg.Validate()
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := c.Tool.BoxSelect(); err != nil {
		return fmt.Errorf("%w: tool: %w", ErrInvalidConfig, err)
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("%w: history.max_entries must be >= 0, got %d", ErrInvalidConfig, c.History.MaxEntries)
	}
	if c.Data.Path == "" {
		return fmt.Errorf("%w: data.path is required", ErrInvalidConfig)
	}
	return nil
}

// HistoryLimit returns the undo bound, applying the default for zero.
func (c Config) HistoryLimit() int {
	if c.History.MaxEntries == 0 {
		return history.DefaultMaxEntries
	}
	return c.History.MaxEntries
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs        loader.FileSystem
	envPrefix string
	useEnv    bool
}

// WithFS reads files through fsys.
func WithFS(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) LoadOption {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// WithoutEnv skips the environment layer.
func WithoutEnv() LoadOption {
	return func(o *loadOptions) {
		o.useEnv = false
	}
}

// Load builds the configuration from defaults, the file at path (if it
// exists) and the environment, then validates it.
func Load(path string, opts ...LoadOption) (Config, error) {
	o := loadOptions{fs: loader.DefaultFS(), envPrefix: loader.DefaultEnvPrefix, useEnv: true}
	for _, opt := range opts {
		opt(&o)
	}

	merged, err := toMap(Default())
	if err != nil {
		return Config{}, err
	}

	if path != "" {
		file, err := loader.ForPath(o.fs, path).Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, file)
	}

	if o.useEnv {
		env, err := loader.NewEnvLoader(o.envPrefix, Schema()).Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, env)
	}

	cfg, err := FromMap(merged)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Schema lists every configuration path with its value kind.
func Schema() loader.Schema {
	s := loader.Schema{}
	walkSchema(reflect.TypeOf(Config{}), "", s)
	return s
}

func walkSchema(t reflect.Type, prefix string, s loader.Schema) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Tag.Get("toml")
		if name == "" || name == "-" {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		switch f.Type.Kind() {
		case reflect.Struct:
			walkSchema(f.Type, path, s)
		case reflect.Bool:
			s[path] = loader.KindBool
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			s[path] = loader.KindInt
		default:
			s[path] = loader.KindString
		}
	}
}

// FromMap decodes a merged layer map. Unknown keys are rejected.
func FromMap(m map[string]any) (Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return Config{}, fmt.Errorf("encode config: %w", err)
	}

	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func toMap(cfg Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode defaults: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode defaults: %w", err)
	}
	return m, nil
}
