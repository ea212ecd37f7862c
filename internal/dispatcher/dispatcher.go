package dispatcher

import (
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer/viewport"
)

// LineSource is the read-only view of the document Apply needs to clamp
// the cursor.
type LineSource interface {
	RowCount() int
	LineLen(row int) int
}

// Result reports the effect of applying an action.
type Result struct {
	// Mode is the input mode after the action.
	Mode mode.Mode

	// Quit is set when the session should end.
	Quit bool

	// Moved is set when the cursor position changed.
	Moved bool
}

// Dispatcher resolves key events against a keymap.
type Dispatcher struct {
	keymap *Keymap
}

// New creates a dispatcher for the given keymap.
// A nil keymap uses DefaultKeymap.
func New(km *Keymap) *Dispatcher {
	if km == nil {
		km = DefaultKeymap()
	}
	return &Dispatcher{keymap: km}
}

// Keymap returns the dispatcher's keymap.
func (d *Dispatcher) Keymap() *Keymap {
	return d.keymap
}

// Dispatch classifies ev in mode m. Unbound events yield ActionNone.
func (d *Dispatcher) Dispatch(ev key.Event, m mode.Mode) Action {
	if a, ok := d.keymap.Lookup(m, ev); ok {
		return a
	}
	return ActionNone
}

// Apply performs a on the viewport. The current mode is passed through
// unchanged unless the action switches it. Scroll recomputation is left
// to the caller.
func Apply(a Action, m mode.Mode, vp *viewport.Viewport, doc LineSource) Result {
	res := Result{Mode: m}

	switch a.Kind {
	case KindMove:
		dRow, dCol := a.Row, a.Col
		switch a.Scale {
		case ScalePage:
			dRow *= vp.PageDelta()
		case ScaleScreenWidth:
			dCol *= vp.LineJumpDelta()
		}

		beforeRow, beforeCol := vp.Cursor()
		vp.MoveCursor(dRow, dCol, doc.RowCount(), doc.LineLen(beforeRow))

		afterRow, afterCol := vp.Cursor()
		res.Moved = afterRow != beforeRow || afterCol != beforeCol

	case KindSetMode:
		res.Mode = a.Mode

	case KindQuit:
		res.Quit = true
	}

	return res
}
