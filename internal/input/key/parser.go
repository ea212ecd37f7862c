package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// nameAliases maps accepted names (lowercase) to keys.
var nameAliases = map[string]Key{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"page_up":   KeyPageUp,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"page_down": KeyPageDown,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
}

// Parse parses a key specification into an Event.
//
// Supported formats:
//   - Single character: "h", "H", "~"
//   - Special keys: "page_down", "Escape", "home"
//   - Modifier chords: "ctrl+q", "Ctrl+Q", "C-q", "alt+x"
//   - Space: "space"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	var mods Modifier
	rest := spec
	for {
		prefix, tail, ok := cutModifier(rest)
		if !ok {
			break
		}
		switch prefix {
		case "ctrl", "c":
			mods |= ModCtrl
		case "alt", "a", "m", "meta":
			mods |= ModAlt
		}
		rest = tail
	}
	if rest == "" {
		return Event{}, fmt.Errorf("%w: %q has no key", ErrInvalidSpec, spec)
	}

	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		switch {
		case mods.Has(ModCtrl):
			ev := Ctrl(r)
			ev.Mod |= mods
			return ev, nil
		default:
			return Event{Key: KeyRune, Rune: r, Mod: mods}, nil
		}
	}

	name := strings.ToLower(rest)
	if name == "space" {
		return Event{Key: KeyRune, Rune: ' ', Mod: mods}, nil
	}
	if k, ok := nameAliases[name]; ok {
		return Event{Key: k, Mod: mods}, nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, rest)
}

// MustParse is Parse for static specifications; it panics on error.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}

// cutModifier splits a leading "ctrl+" or "C-" style modifier off s.
func cutModifier(s string) (prefix, rest string, ok bool) {
	for _, sep := range []string{"+", "-"} {
		head, tail, found := strings.Cut(s, sep)
		if !found || tail == "" {
			continue
		}
		switch strings.ToLower(head) {
		case "ctrl", "c", "alt", "a", "m", "meta":
			return strings.ToLower(head), tail, true
		}
	}
	return "", s, false
}
