package dispatcher

import (
	"fmt"
	"sort"

	"github.com/dshills/quill/internal/input/mode"
)

// Kind classifies an action.
type Kind uint8

const (
	// KindNone does nothing.
	KindNone Kind = iota
	// KindMove moves the cursor.
	KindMove
	// KindSetMode switches the input mode.
	KindSetMode
	// KindQuit ends the session.
	KindQuit
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMove:
		return "move"
	case KindSetMode:
		return "set_mode"
	case KindQuit:
		return "quit"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Scale selects the unit a move delta is measured in.
type Scale uint8

const (
	// ScaleCell moves by rows and columns.
	ScaleCell Scale = iota
	// ScalePage multiplies the row delta by the viewport height.
	ScalePage
	// ScaleScreenWidth multiplies the column delta by the viewport width.
	ScaleScreenWidth
)

// Action is the outcome of dispatching one key event.
type Action struct {
	// Name is the registered action name.
	Name string

	Kind Kind

	// Row and Col are the move direction for KindMove, in Scale units.
	Row   int
	Col   int
	Scale Scale

	// Mode is the target mode for KindSetMode.
	Mode mode.Mode
}

// ActionNone is the result for events without a binding.
var ActionNone = Action{Name: "none", Kind: KindNone}

// IsNone returns true if the action does nothing.
func (a Action) IsNone() bool {
	return a.Kind == KindNone
}

// actions holds every named action.
var actions = map[string]Action{
	"none":             ActionNone,
	"cursor.left":      {Name: "cursor.left", Kind: KindMove, Col: -1},
	"cursor.right":     {Name: "cursor.right", Kind: KindMove, Col: 1},
	"cursor.up":        {Name: "cursor.up", Kind: KindMove, Row: -1},
	"cursor.down":      {Name: "cursor.down", Kind: KindMove, Row: 1},
	"cursor.page_up":   {Name: "cursor.page_up", Kind: KindMove, Row: -1, Scale: ScalePage},
	"cursor.page_down": {Name: "cursor.page_down", Kind: KindMove, Row: 1, Scale: ScalePage},
	"cursor.home":      {Name: "cursor.home", Kind: KindMove, Col: -1, Scale: ScaleScreenWidth},
	"cursor.end":       {Name: "cursor.end", Kind: KindMove, Col: 1, Scale: ScaleScreenWidth},
	"mode.insert":      {Name: "mode.insert", Kind: KindSetMode, Mode: mode.Insert},
	"mode.command":     {Name: "mode.command", Kind: KindSetMode, Mode: mode.Command},
	"editor.quit":      {Name: "editor.quit", Kind: KindQuit},
}

// LookupAction returns the action registered under name.
func LookupAction(name string) (Action, bool) {
	a, ok := actions[name]
	return a, ok
}

// ActionNames returns every registered action name, sorted.
func ActionNames() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
