package dispatcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/quill/internal/engine/document"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer/viewport"
)

func TestDispatchDefaultBindings(t *testing.T) {
	d := New(nil)

	tests := []struct {
		name string
		ev   key.Event
		mode mode.Mode
		want string
	}{
		{"down arrow command", key.Special(key.KeyDown), mode.Command, "cursor.down"},
		{"down arrow insert", key.Special(key.KeyDown), mode.Insert, "none"},
		{"page down", key.Special(key.KeyPageDown), mode.Command, "cursor.page_down"},
		{"page up insert", key.Special(key.KeyPageUp), mode.Insert, "none"},
		{"home", key.Special(key.KeyHome), mode.Command, "cursor.home"},
		{"end", key.Special(key.KeyEnd), mode.Command, "cursor.end"},
		{"end insert", key.Special(key.KeyEnd), mode.Insert, "none"},
		{"home insert", key.Special(key.KeyHome), mode.Insert, "none"},
		{"h command", key.Rune('h'), mode.Command, "cursor.left"},
		{"j command", key.Rune('j'), mode.Command, "cursor.down"},
		{"k command", key.Rune('k'), mode.Command, "cursor.up"},
		{"l command", key.Rune('l'), mode.Command, "cursor.right"},
		{"h insert", key.Rune('h'), mode.Insert, "none"},
		{"i command", key.Rune('i'), mode.Command, "mode.insert"},
		{"i insert", key.Rune('i'), mode.Insert, "none"},
		{"insert key", key.Special(key.KeyInsert), mode.Command, "mode.insert"},
		{"escape insert", key.Special(key.KeyEscape), mode.Insert, "mode.command"},
		{"ctrl+q command", key.Ctrl('q'), mode.Command, "editor.quit"},
		{"ctrl+q insert", key.Ctrl('q'), mode.Insert, "editor.quit"},
		{"unbound rune", key.Rune('z'), mode.Command, "none"},
		{"zero event", key.Event{}, mode.Command, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Dispatch(tt.ev, tt.mode)
			if got.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.Name)
			}
		})
	}
}

func TestDispatchIsTotal(t *testing.T) {
	d := New(nil)

	events := []key.Event{{}, key.Ctrl('a'), key.Alt('x'), key.Rune('€')}
	for _, k := range key.Keys() {
		events = append(events, key.Special(k))
	}
	for r := rune(0x20); r < 0x7f; r++ {
		events = append(events, key.Rune(r))
	}

	for _, m := range mode.All() {
		for _, ev := range events {
			a := d.Dispatch(ev, m)
			if _, ok := LookupAction(a.Name); !ok {
				t.Errorf("%s in %s: expected a registered action, got %q", ev, m, a.Name)
			}
		}
	}
}

func TestKeymapBind(t *testing.T) {
	km := DefaultKeymap()

	if err := km.Bind(mode.Insert, "ctrl+d", "cursor.page_down"); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	d := New(km)
	if got := d.Dispatch(key.Ctrl('d'), mode.Insert); got.Name != "cursor.page_down" {
		t.Errorf("expected cursor.page_down, got %q", got.Name)
	}

	if err := km.Bind(mode.Command, "j", "none"); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if got := d.Dispatch(key.Rune('j'), mode.Command); !got.IsNone() {
		t.Errorf("expected j to be disabled, got %q", got.Name)
	}
}

func TestKeymapBindErrors(t *testing.T) {
	km := NewKeymap()

	err := km.Bind(mode.Command, "x", "cursor.sideways")
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}

	err = km.Bind(mode.Command, "", "cursor.down")
	if !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("expected ErrInvalidBinding, got %v", err)
	}

	if km.Len(mode.Command) != 0 {
		t.Errorf("expected no bindings after failures, got %d", km.Len(mode.Command))
	}
}

func TestActionNames(t *testing.T) {
	names := ActionNames()
	if len(names) != len(actions) {
		t.Fatalf("expected %d names, got %d", len(actions), len(names))
	}
	for i := 1; i < len(names); i++ {
		if strings.Compare(names[i-1], names[i]) >= 0 {
			t.Errorf("expected sorted names, got %q before %q", names[i-1], names[i])
		}
	}
}

func TestDefaultKeymapInsertBindings(t *testing.T) {
	km := DefaultKeymap()
	if km.Len(mode.Insert) != 2 {
		t.Errorf("expected 2 insert bindings, got %d", km.Len(mode.Insert))
	}
	if km.HasModifier(key.ModAlt) {
		t.Error("expected no alt bindings by default")
	}
	if !km.HasModifier(key.ModCtrl) {
		t.Error("expected ctrl+q to be bound")
	}
	if err := km.Bind(mode.Command, "alt+j", "cursor.down"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !km.HasModifier(key.ModAlt) {
		t.Error("expected alt binding after bind")
	}
}

func newDoc(n int, line string) *document.Document {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = line
	}
	return document.NewFromLines(lines)
}

func TestApplyMove(t *testing.T) {
	doc := newDoc(100, strings.Repeat("x", 60))
	vp := viewport.New(80, 24)

	res := Apply(mustAction(t, "cursor.page_down"), mode.Command, vp, doc)
	if row, _ := vp.Cursor(); row != 24 {
		t.Errorf("expected row 24 after page down, got %d", row)
	}
	if !res.Moved {
		t.Error("expected Moved after page down")
	}

	Apply(mustAction(t, "cursor.end"), mode.Command, vp, doc)
	if _, col := vp.Cursor(); col != 60 {
		t.Errorf("expected col 60 after end, got %d", col)
	}

	Apply(mustAction(t, "cursor.home"), mode.Command, vp, doc)
	if _, col := vp.Cursor(); col != 0 {
		t.Errorf("expected col 0 after home, got %d", col)
	}

	res = Apply(mustAction(t, "cursor.left"), mode.Command, vp, doc)
	if res.Moved {
		t.Error("expected no movement at column 0")
	}
}

func TestApplyEndCappedByWidth(t *testing.T) {
	doc := newDoc(1, strings.Repeat("y", 200))
	vp := viewport.New(80, 24)

	Apply(mustAction(t, "cursor.end"), mode.Command, vp, doc)
	if _, col := vp.Cursor(); col != 79 {
		t.Errorf("expected col 79, got %d", col)
	}
}

func TestApplyEmptyDocument(t *testing.T) {
	doc := document.New()
	vp := viewport.New(80, 24)

	for _, name := range []string{"cursor.down", "cursor.page_down", "cursor.right", "cursor.end"} {
		res := Apply(mustAction(t, name), mode.Command, vp, doc)
		if res.Moved {
			t.Errorf("%s: expected no movement in empty document", name)
		}
	}
	if row, col := vp.Cursor(); row != 0 || col != 0 {
		t.Errorf("expected cursor (0,0), got (%d,%d)", row, col)
	}
}

func TestApplyModeAndQuit(t *testing.T) {
	doc := newDoc(3, "abc")
	vp := viewport.New(10, 5)

	res := Apply(mustAction(t, "mode.insert"), mode.Command, vp, doc)
	if res.Mode != mode.Insert {
		t.Errorf("expected insert mode, got %s", res.Mode)
	}
	if res.Quit {
		t.Error("expected Quit false")
	}

	res = Apply(mustAction(t, "mode.command"), mode.Insert, vp, doc)
	if res.Mode != mode.Command {
		t.Errorf("expected command mode, got %s", res.Mode)
	}

	res = Apply(mustAction(t, "editor.quit"), mode.Insert, vp, doc)
	if !res.Quit {
		t.Error("expected Quit true")
	}
	if res.Mode != mode.Insert {
		t.Errorf("expected mode unchanged on quit, got %s", res.Mode)
	}

	res = Apply(ActionNone, mode.Command, vp, doc)
	if res.Quit || res.Moved || res.Mode != mode.Command {
		t.Errorf("expected no effect from ActionNone, got %+v", res)
	}
}

func mustAction(t *testing.T, name string) Action {
	t.Helper()
	a, ok := LookupAction(name)
	if !ok {
		t.Fatalf("action %q not registered", name)
	}
	return a
}
