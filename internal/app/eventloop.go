package app

import (
	"github.com/dshills/quill/internal/dispatcher"
	"github.com/dshills/quill/internal/input/key"
)

// handleKey dispatches ev in the current mode and applies the result.
func (app *Application) handleKey(ev key.Event) {
	app.mu.Lock()
	current := app.mode
	app.mu.Unlock()

	action := app.dispatcher.Dispatch(ev, current)
	res := dispatcher.Apply(action, current, app.viewport, app.document)
	app.viewport.ScrollToCursor()
	app.metrics.RecordEvent(!action.IsNone(), res.Moved)

	if app.logger.Enabled(LogLevelDebug) {
		app.logger.Debug("key %s -> %s (%s)", ev, action.Name, app.viewport.Snapshot())
	}

	app.mu.Lock()
	defer app.mu.Unlock()
	if res.Mode != app.mode {
		app.logger.Debug("mode %s -> %s", app.mode, res.Mode)
		app.mode = res.Mode
	}
	if res.Quit {
		app.quitting = true
	}
}

func (app *Application) isQuitting() bool {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.quitting
}

// Shutdown restores the terminal. It is safe to call more than once and
// from any goroutine.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		app.stopped.Store(true)

		app.mu.Lock()
		b := app.backend
		app.mu.Unlock()

		if b != nil {
			b.Shutdown()
		}
		app.logger.Debug("terminal restored")
	})
}
