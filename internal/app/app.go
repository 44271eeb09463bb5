package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/boxselect/internal/config"
	"github.com/dshills/boxselect/internal/event"
	"github.com/dshills/boxselect/internal/frame"
	"github.com/dshills/boxselect/internal/history"
	"github.com/dshills/boxselect/internal/input/mouse"
	"github.com/dshills/boxselect/internal/overlay"
	"github.com/dshills/boxselect/internal/plot"
	"github.com/dshills/boxselect/internal/plugin/lua"
	"github.com/dshills/boxselect/internal/renderer"
	"github.com/dshills/boxselect/internal/tool/boxselect"
)

// DataPadding widens the data ranges around the outermost points.
const DataPadding = 0.05

// DefaultExportPath is where the e key writes the selection.
const DefaultExportPath = "selection.json"

// Options configures New.
type Options struct {
	// Config is the resolved configuration.
	Config config.Config

	// ConfigPath is watched for changes by Run when non-empty.
	ConfigPath string

	// Screen is an initialized tcell screen.
	Screen tcell.Screen

	// Source overrides the data file named by Config.
	Source *plot.Source

	// ExportPath overrides DefaultExportPath.
	ExportPath string

	Logger *slog.Logger
}

type reload struct {
	cfg config.Config
	err error
}

// App owns the plot, the box select tool and the terminal UI.
//
// Everything except Run's event pump runs on the caller's goroutine;
// HandleEvent must not be called concurrently with Run.
type App struct {
	cfg        config.Config
	configPath string
	exportPath string
	base       *slog.Logger
	logger     *slog.Logger

	screen     tcell.Screen
	renderer   *renderer.Renderer
	frame      *frame.Frame
	plot       *plot.Plot
	box        *overlay.Box
	bus        *event.Bus
	history    *history.Manager
	hook       *lua.Hook
	controller *boxselect.Controller
	handler    *mouse.Handler
	converter  renderer.MouseConverter
	metrics    *Metrics

	// pending holds a reload that arrived mid-gesture. It is applied by a
	// one-shot gesture.end subscription.
	pending *config.Config
	message string

	reloads chan reload
	running atomic.Bool
}

// New wires every component from opts.
func New(ctx context.Context, opts Options) (*App, error) {
	if opts.Screen == nil {
		return nil, NewOperationError("create app", "", errors.New("screen is required"))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config

	src := opts.Source
	if src == nil {
		var err error
		if src, err = plot.LoadSource(cfg.Data.Path); err != nil {
			return nil, NewOperationError("load data", cfg.Data.Path, err)
		}
	}

	toolCfg, err := cfg.Tool.BoxSelect()
	if err != nil {
		return nil, NewOperationError("configure tool", "", err)
	}

	a := &App{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		exportPath: opts.ExportPath,
		base:       logger,
		logger:     WithComponent(logger, "app"),
		screen:     opts.Screen,
		box:        overlay.NewBox(overlay.DefaultStyle()),
		bus:        event.NewBus(event.WithLogger(WithComponent(logger, "event"))),
		history:    history.NewManager(cfg.HistoryLimit(), nil),
		handler:    mouse.NewHandler(mouse.DefaultConfig()),
		metrics:    NewMetrics(),
		reloads:    make(chan reload, 1),
	}
	if a.exportPath == "" {
		a.exportPath = DefaultExportPath
	}
	if err := a.metrics.Subscribe(a.bus); err != nil {
		return nil, NewOperationError("subscribe metrics", "", err)
	}

	w, h := opts.Screen.Size()
	xr, yr := src.Ranges(DataPadding)
	a.frame = frame.New(renderer.PlotArea(w, h), xr, yr)
	a.renderer = renderer.New(opts.Screen, a.box.Style())

	plotOpts := []plot.Option{
		plot.WithBus(a.bus),
		plot.WithLogger(logger),
		plot.WithGesture(func() uuid.UUID { return a.controller.LastGestureID() }),
	}
	if cfg.Hook.Script != "" {
		hook, err := lua.LoadFile(ctx, cfg.Hook.Script, lua.WithLogger(logger))
		if err != nil {
			return nil, NewOperationError("load hook", cfg.Hook.Script, err)
		}
		a.hook = hook
		plotOpts = append(plotOpts, plot.WithHook(hook))
	}
	a.plot = plot.New(src, a.frame, plotOpts...)

	a.controller, err = boxselect.NewController(toolCfg, boxselect.Deps{
		Frame:   a.frame,
		Overlay: a.box,
		Applier: a.plot,
		History: historyRecorder{a},
		Source:  a.plot,
	}, boxselect.WithLogger(logger))
	if err != nil {
		a.Close()
		return nil, NewOperationError("create controller", "", err)
	}

	a.logger.Info("application ready",
		slog.String("data", src.Name),
		slog.Int("points", src.Len()),
		slog.String("tool", toolCfg.Tooltip()))
	return a, nil
}

// historyRecorder pushes gesture entries and announces them on the bus.
type historyRecorder struct {
	app *App
}

func (r historyRecorder) Push(entryType string, state any) {
	r.app.history.Push(entryType, state)
	r.app.publishHistory(event.TopicHistoryPush, r.app.controller.LastGestureID())
}

func (a *App) publishHistory(topic event.Topic, gesture uuid.UUID) {
	change := event.HistoryChange{
		Type:      a.history.Current().Type,
		Gesture:   gesture,
		UndoCount: a.history.UndoCount(),
		RedoCount: a.history.RedoCount(),
	}
	a.publish(topic, change)
}

func (a *App) publish(topic event.Topic, payload any) {
	if err := a.bus.Publish(context.Background(), event.New(topic, payload, "app")); err != nil {
		a.logger.Warn("publish failed", slog.String("topic", topic.String()), slog.Any("error", err))
	}
}

// Bus returns the application event bus.
func (a *App) Bus() *event.Bus { return a.bus }

// Plot returns the plot.
func (a *App) Plot() *plot.Plot { return a.plot }

// Controller returns the box select controller.
func (a *App) Controller() *boxselect.Controller { return a.controller }

// History returns the undo stack.
func (a *App) History() *history.Manager { return a.history }

// Frame returns the plot frame.
func (a *App) Frame() *frame.Frame { return a.frame }

// Overlay returns the selection box overlay.
func (a *App) Overlay() *overlay.Box { return a.box }

// Metrics returns the application counters.
func (a *App) Metrics() *Metrics { return a.metrics }

// Config returns the configuration last applied.
func (a *App) Config() config.Config { return a.cfg }

// Run draws the UI and processes terminal events until the user quits or
// ctx is done. When a config path was given the file is watched and
// reloads are applied between gestures.
func (a *App) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	defer a.logSummary("session ended")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.screen.EnableMouse()
	a.screen.EnableFocus()
	a.Draw()

	if a.configPath != "" {
		w, err := config.NewWatcher(a.configPath, config.WithWatcherLogger(WithComponent(a.base, "config")))
		if err != nil {
			a.logger.Warn("config watch disabled", slog.Any("error", err))
		} else {
			defer w.Close()
			go func() {
				_ = w.Run(ctx, func(cfg config.Config, err error) {
					select {
					case a.reloads <- reload{cfg: cfg, err: err}:
					case <-ctx.Done():
					}
				})
			}()
		}
	}

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.HandleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				a.setMessage(err.Error())
				a.Draw()
			}

		case r := <-a.reloads:
			a.handleReload(r)
			a.Draw()
		}
	}
}

// Draw renders the current scene.
func (a *App) Draw() {
	start := time.Now()
	a.renderer.Draw(renderer.Scene{
		Frame:    a.frame,
		Source:   a.plot.Source(),
		Selected: a.plot.Selected(),
		Box:      a.box.Edges(),
		Status:   a.Status(),
	})
	a.metrics.RecordFrame(time.Since(start))
}

// Status describes the tool for the status line.
func (a *App) Status() renderer.Status {
	cfg := a.controller.Config()
	msg := a.message
	if msg == "" {
		msg = a.plot.Message()
	}
	origin := ""
	if cfg.Origin == boxselect.OriginCenter {
		origin = cfg.Origin.String()
	}
	return renderer.Status{
		Tooltip:   cfg.Tooltip(),
		Mode:      cfg.DefaultMode,
		Origin:    origin,
		Selected:  a.plot.Selected().Len(),
		Total:     a.plot.Source().Len(),
		UndoDepth: a.history.UndoCount(),
		Dragging:  a.controller.IsDragging(),
		Message:   msg,
	}
}

func (a *App) setMessage(msg string) {
	a.message = msg
}

// Undo restores the selection before the last gesture.
func (a *App) Undo() error {
	if a.controller.IsDragging() {
		return ErrGestureActive
	}
	entry, err := a.history.Undo()
	if err != nil {
		return err
	}
	if err := a.plot.Restore(entry.State); err != nil {
		return NewOperationError("undo", "", err)
	}
	a.publishHistory(event.TopicHistoryUndo, uuid.Nil)
	return nil
}

// Redo reapplies the last undone gesture.
func (a *App) Redo() error {
	if a.controller.IsDragging() {
		return ErrGestureActive
	}
	entry, err := a.history.Redo()
	if err != nil {
		return err
	}
	if err := a.plot.Restore(entry.State); err != nil {
		return NewOperationError("redo", "", err)
	}
	a.publishHistory(event.TopicHistoryRedo, uuid.Nil)
	return nil
}

// SetPreset switches to a named tool preset, keeping origin, mode and
// live preview.
func (a *App) SetPreset(name string) error {
	next, err := boxselect.Preset(name)
	if err != nil {
		return err
	}
	cur := a.controller.Config()
	next.Origin = cur.Origin
	next.DefaultMode = cur.DefaultMode
	next.SelectEveryMouseMove = cur.SelectEveryMouseMove
	if err := a.controller.SetConfig(next); err != nil {
		return err
	}
	a.cfg.Tool.Preset = name
	a.cfg.Tool.Dimensions = ""
	return nil
}

// ToggleOrigin switches between corner and centre anchoring.
func (a *App) ToggleOrigin() error {
	cfg := a.controller.Config()
	if cfg.Origin == boxselect.OriginCenter {
		cfg.Origin = boxselect.OriginCorner
	} else {
		cfg.Origin = boxselect.OriginCenter
	}
	if err := a.controller.SetConfig(cfg); err != nil {
		return err
	}
	a.cfg.Tool.Origin = cfg.Origin.String()
	return nil
}

// Export writes the committed selection as JSON to the export path.
func (a *App) Export() error {
	data, err := a.plot.Export()
	if err != nil {
		return NewOperationError("export", a.exportPath, err)
	}
	if err := os.WriteFile(a.exportPath, data, 0o644); err != nil {
		return NewOperationError("export", a.exportPath, err)
	}
	a.setMessage(fmt.Sprintf("exported selection to %s", a.exportPath))
	return nil
}

// WriteExport writes the committed selection as JSON to w.
func (a *App) WriteExport(w io.Writer) error {
	data, err := a.plot.Export()
	if err != nil {
		return NewOperationError("export", "", err)
	}
	_, err = w.Write(data)
	return err
}

// ApplyConfig applies a reloaded configuration. While a gesture is active
// the tool settings are kept for the end of the gesture and ApplyConfig
// returns boxselect.ErrConfigBusy.
func (a *App) ApplyConfig(cfg config.Config) error {
	toolCfg, err := cfg.Tool.BoxSelect()
	if err != nil {
		return err
	}
	if err := a.controller.SetConfig(toolCfg); err != nil {
		if errors.Is(err, boxselect.ErrConfigBusy) {
			a.deferConfig(cfg)
		}
		return err
	}
	a.pending = nil
	a.cfg = cfg
	a.history.SetMaxEntries(cfg.HistoryLimit())
	return nil
}

func (a *App) handleReload(r reload) {
	payload := event.ConfigReload{Path: a.configPath, Err: r.err}
	if r.err == nil {
		payload.Err = a.ApplyConfig(r.cfg)
		payload.Applied = payload.Err == nil
	}
	switch {
	case payload.Applied:
		a.logger.Info("config reloaded", slog.String("path", a.configPath))
		a.setMessage("config reloaded")
	case errors.Is(payload.Err, boxselect.ErrConfigBusy):
		a.logger.Debug("config reload deferred until gesture ends")
	default:
		a.logger.Warn("config reload rejected", slog.Any("error", payload.Err))
		a.setMessage("config: " + payload.Err.Error())
	}
	a.publish(event.TopicConfigReload, payload)
}

// deferConfig keeps cfg until the active gesture ends. Only the latest
// deferred configuration is applied.
func (a *App) deferConfig(cfg config.Config) {
	first := a.pending == nil
	a.pending = &cfg
	if !first {
		return
	}
	_, err := a.bus.Subscribe(event.TopicGestureEnd, func(context.Context, event.Event) error {
		a.applyPending()
		return nil
	}, event.Once())
	if err != nil {
		a.logger.Warn("defer config failed", slog.Any("error", err))
	}
}

// applyPending applies a reload deferred by an active gesture.
func (a *App) applyPending() {
	if a.pending == nil {
		return
	}
	cfg := *a.pending
	a.pending = nil
	err := a.ApplyConfig(cfg)
	if err != nil {
		a.logger.Warn("deferred config rejected", slog.Any("error", err))
	}
	a.publish(event.TopicConfigReload, event.ConfigReload{Path: a.configPath, Applied: err == nil, Err: err})
}

// logSummary logs the metrics and bus counters at Info.
func (a *App) logSummary(msg string) {
	stats := a.bus.Stats()
	a.logger.Info(msg,
		slog.Any("metrics", a.metrics.Snapshot()),
		slog.Group("bus",
			slog.Uint64("published", stats.Published),
			slog.Uint64("delivered", stats.Delivered),
			slog.Uint64("handler_errors", stats.HandlerErrors)))
}

// Close releases the hook. The screen belongs to the caller.
func (a *App) Close() error {
	if a.hook != nil {
		return a.hook.Close()
	}
	return nil
}
