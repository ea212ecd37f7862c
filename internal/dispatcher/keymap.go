package dispatcher

import (
	"fmt"

	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/input/mode"
)

// Keymap binds key events to actions for each mode.
// A Keymap is built once at startup and read-only afterwards.
type Keymap struct {
	bindings map[mode.Mode]map[key.Event]Action
}

// NewKeymap creates a keymap with no bindings.
func NewKeymap() *Keymap {
	km := &Keymap{bindings: make(map[mode.Mode]map[key.Event]Action)}
	for _, m := range mode.All() {
		km.bindings[m] = make(map[key.Event]Action)
	}
	return km
}

// global is bound in every mode.
var global = map[string]string{
	"ctrl+q": "editor.quit",
	"escape": "mode.command",
}

// commandOnly is bound in command mode. Insert mode ignores movement.
var commandOnly = map[string]string{
	"h":         "cursor.left",
	"j":         "cursor.down",
	"k":         "cursor.up",
	"l":         "cursor.right",
	"left":      "cursor.left",
	"down":      "cursor.down",
	"up":        "cursor.up",
	"right":     "cursor.right",
	"page_up":   "cursor.page_up",
	"page_down": "cursor.page_down",
	"home":      "cursor.home",
	"end":       "cursor.end",
	"i":         "mode.insert",
	"insert":    "mode.insert",
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	km := NewKeymap()
	for _, m := range mode.All() {
		for spec, name := range global {
			km.mustBind(m, spec, name)
		}
	}
	for spec, name := range commandOnly {
		km.mustBind(mode.Command, spec, name)
	}
	return km
}

func (km *Keymap) mustBind(m mode.Mode, spec, actionName string) {
	if err := km.Bind(m, spec, actionName); err != nil {
		panic(err)
	}
}

// Bind binds the key spec to the named action in mode m, replacing any
// previous binding. Binding to "none" disables the key.
func (km *Keymap) Bind(m mode.Mode, spec, actionName string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBinding, err)
	}
	a, ok := LookupAction(actionName)
	if !ok {
		return fmt.Errorf("%w: %q (bound to %q)", ErrUnknownAction, actionName, spec)
	}

	table, ok := km.bindings[m]
	if !ok {
		table = make(map[key.Event]Action)
		km.bindings[m] = table
	}
	table[ev] = a
	return nil
}

// BindAll applies a table of key spec -> action name for mode m.
// It stops at the first invalid entry.
func (km *Keymap) BindAll(m mode.Mode, table map[string]string) error {
	for spec, name := range table {
		if err := km.Bind(m, spec, name); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the action bound to ev in mode m.
func (km *Keymap) Lookup(m mode.Mode, ev key.Event) (Action, bool) {
	a, ok := km.bindings[m][ev]
	return a, ok
}

// Len returns the number of bindings in mode m.
func (km *Keymap) Len(m mode.Mode) int {
	return len(km.bindings[m])
}

// HasModifier reports whether any binding in any mode uses mod.
func (km *Keymap) HasModifier(mod key.Modifier) bool {
	for _, table := range km.bindings {
		for ev := range table {
			if ev.Mod&mod != 0 {
				return true
			}
		}
	}
	return false
}
