// Package app provides the editor session: it wires the document, viewport,
// renderer, dispatcher and terminal backend together and runs the
// render/read/dispatch loop.
package app

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/dispatcher"
	"github.com/dshills/quill/internal/engine/document"
	"github.com/dshills/quill/internal/engine/source"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer"
	"github.com/dshills/quill/internal/renderer/backend"
	"github.com/dshills/quill/internal/renderer/viewport"
)

// Application owns one editing session.
type Application struct {
	mu sync.Mutex

	document   *document.Document
	viewport   *viewport.Viewport
	renderer   *renderer.Renderer
	dispatcher *dispatcher.Dispatcher
	backend    backend.Backend

	mode     mode.Mode
	quitting bool

	logger  *Logger
	metrics *Metrics

	running      atomic.Bool
	stopped      atomic.Bool
	shutdownOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// Path is the file to open. Empty starts with an empty document.
	Path string

	// Version is shown in the default welcome banner.
	Version string

	// Config is the resolved configuration. Nil uses config.Default().
	Config *config.Config

	// Loader reads Path. Nil reads from the OS file system.
	Loader *source.Loader

	// Logger receives session logs. Nil discards them.
	Logger *Logger
}

// New creates an application and loads the requested file.
// A file that cannot be read fails with an error matching ErrLoad.
func New(opts Options) (*Application, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Loader == nil {
		opts.Loader = source.OSLoader()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}

	app := &Application{
		document: document.New(),
		viewport: viewport.New(1, 1),
		mode:     mode.Command,
		logger:   opts.Logger.WithComponent("app"),
		metrics:  NewMetrics(),
		opts:     opts,
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap builds the renderer and dispatcher from config and loads the
// document.
func (app *Application) bootstrap() error {
	cfg := app.opts.Config

	ropts := renderer.DefaultOptions(app.opts.Version)
	if cfg.UI.Banner != "" {
		ropts.Banner = cfg.UI.Banner
	}
	ropts.Farewell = cfg.UI.Farewell
	app.renderer = renderer.New(ropts)

	km, err := cfg.BuildKeymap()
	if err != nil {
		return NewComponentError("dispatcher", "build keymap", err)
	}
	app.dispatcher = dispatcher.New(km)

	if app.opts.Path == "" {
		app.logger.Info("starting with empty document")
		return nil
	}

	lines, err := app.opts.Loader.Load(app.opts.Path)
	if err != nil {
		return NewOperationError("load", app.opts.Path, err)
	}
	app.document.Load(lines)
	if app.document.IsEmpty() {
		app.logger.Warn("%s is empty", app.opts.Path)
		return nil
	}
	app.logger.Info("loaded %s (%d rows)", app.opts.Path, len(lines))
	return nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Document returns the session's document.
func (app *Application) Document() *document.Document {
	return app.document
}

// Viewport returns the session's viewport.
func (app *Application) Viewport() *viewport.Viewport {
	return app.viewport
}

// Mode returns the current input mode.
func (app *Application) Mode() mode.Mode {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.mode
}

// Metrics returns the session metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// IsRunning returns true if the session loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Run switches the terminal to raw mode and runs the session loop until the
// user quits or terminal I/O fails. The terminal is restored before Run
// returns. A normal quit returns nil.
func (app *Application) Run() error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()

	if b == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer app.Shutdown()

	if s, ok := b.(backend.AltChordSetter); ok {
		s.SetAltChords(app.dispatcher.Keymap().HasModifier(key.ModAlt))
	}
	app.viewport.Resize(b.Size())
	app.logger.Debug("session started at %dx%d", app.viewport.Width(), app.viewport.Height())
	err := app.eventLoop(b)
	app.logger.Info("session ended: %s", app.metrics.Snapshot())

	if errors.Is(err, ErrQuit) {
		return nil
	}
	if err != nil {
		app.logger.Error("session failed: %v", err)
	}
	return err
}

// eventLoop renders, reads one key, applies it, and repeats. It returns
// ErrQuit after the farewell frame has been written.
func (app *Application) eventLoop(b backend.Backend) error {
	for {
		app.syncSize(b)

		quitting := app.isQuitting()
		if err := app.draw(b, quitting); err != nil {
			return err
		}
		if quitting {
			return ErrQuit
		}

		ev, err := b.PollEvent()
		if err != nil {
			if app.stopped.Load() {
				return ErrQuit
			}
			return ioError("read", err)
		}

		app.handleKey(ev)
	}
}

// syncSize resizes the viewport when the terminal size changed.
func (app *Application) syncSize(b backend.Backend) {
	w, h := b.Size()
	if w == app.viewport.Width() && h == app.viewport.Height() {
		return
	}
	app.viewport.Resize(w, h)
	app.metrics.RecordResize()
	app.logger.Debug("resized to %dx%d", app.viewport.Width(), app.viewport.Height())
}

// draw renders one frame and writes it to the terminal.
func (app *Application) draw(b backend.Backend, quitting bool) error {
	start := time.Now()
	frame, err := app.renderer.Render(app.document, app.viewport, quitting)
	if err != nil {
		return NewComponentError("renderer", "render", err)
	}
	elapsed := time.Since(start)

	if err := b.Write(frame); err != nil {
		return ioError("write", err)
	}
	app.metrics.RecordFrame(len(frame), elapsed)
	return nil
}
