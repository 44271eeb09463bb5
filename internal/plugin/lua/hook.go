package lua

import (
	"context"
	"log/slog"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/boxselect/internal/selection"
)

// OnSelectFunc is the global a hook script defines.
const OnSelectFunc = "on_select"

// SelectInfo describes one applied selection.
type SelectInfo struct {
	Geometry selection.RectGeometry
	Final    bool
	Mode     selection.Mode
	Count    int
}

// Hook runs a user script's on_select function.
type Hook struct {
	state  *State
	name   string
	logger *slog.Logger
}

// HookOption configures a Hook.
type HookOption func(*Hook)

// WithLogger sets the logger scripts write to via log().
func WithLogger(logger *slog.Logger) HookOption {
	return func(h *Hook) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithStateOptions passes options to the underlying state.
func WithStateOptions(opts ...StateOption) HookOption {
	return func(h *Hook) {
		h.state = NewState(opts...)
	}
}

func newHook(name string, opts []HookOption) *Hook {
	h := &Hook{name: name, logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	if h.state == nil {
		h.state = NewState()
	}
	h.logger = h.logger.With(slog.String("component", "lua"), slog.String("script", name))
	h.state.RegisterFunc("log", h.luaLog)
	return h
}

// LoadFile loads a hook script from path.
func LoadFile(ctx context.Context, path string, opts ...HookOption) (*Hook, error) {
	h := newHook(path, opts)
	if err := h.state.DoFile(ctx, path); err != nil {
		_ = h.state.Close()
		return nil, &HookError{Func: path, Err: err}
	}
	return h, nil
}

// LoadString loads a hook script from source; name labels errors and logs.
func LoadString(ctx context.Context, name, src string, opts ...HookOption) (*Hook, error) {
	h := newHook(name, opts)
	if err := h.state.DoString(ctx, src); err != nil {
		_ = h.state.Close()
		return nil, &HookError{Func: name, Err: err}
	}
	return h, nil
}

// Name returns the script name.
func (h *Hook) Name() string {
	return h.name
}

// Defined returns true if the script defines on_select.
func (h *Hook) Defined() bool {
	return h.state.HasFunction(OnSelectFunc)
}

// OnSelect calls on_select with info. It returns the string the script
// returned, if any. A script without on_select is a no-op.
func (h *Hook) OnSelect(ctx context.Context, info SelectInfo) (string, error) {
	if !h.Defined() {
		return "", nil
	}

	geom := h.state.NewTable()
	geom.RawSetString("kind", lua.LString(info.Geometry.Kind()))
	geom.RawSetString("sx0", lua.LNumber(info.Geometry.SX0))
	geom.RawSetString("sx1", lua.LNumber(info.Geometry.SX1))
	geom.RawSetString("sy0", lua.LNumber(info.Geometry.SY0))
	geom.RawSetString("sy1", lua.LNumber(info.Geometry.SY1))

	results, err := h.state.Call(ctx, OnSelectFunc,
		geom,
		lua.LBool(info.Final),
		lua.LString(info.Mode.String()),
		lua.LNumber(info.Count))
	if err != nil {
		return "", &HookError{Func: OnSelectFunc, Err: err}
	}

	if len(results) > 0 {
		if s, ok := results[0].(lua.LString); ok {
			return string(s), nil
		}
	}
	return "", nil
}

// Close releases the script's state.
func (h *Hook) Close() error {
	return h.state.Close()
}

func (h *Hook) luaLog(L *lua.LState) int {
	h.logger.Info(L.CheckString(1))
	return 0
}
