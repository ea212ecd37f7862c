package key

import (
	"strings"
	"unicode"
)

// Modifier is a set of modifier keys held during a key press.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModAlt
)

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Event represents a single logical key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	// Ctrl chords carry the lowercase letter.
	Rune rune

	// Mod contains the active modifier keys.
	Mod Modifier
}

// Special creates an event for a special key.
func Special(k Key) Event {
	return Event{Key: k}
}

// Rune creates an event for a plain character.
func Rune(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Ctrl creates the event for Ctrl held with a letter.
func Ctrl(r rune) Event {
	return Event{Key: KeyRune, Rune: unicode.ToLower(r), Mod: ModCtrl}
}

// Alt creates the event for Alt held with a character.
func Alt(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Mod: ModAlt}
}

// IsNone returns true for the zero event.
func (e Event) IsNone() bool {
	return e.Key == KeyNone
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// String returns the canonical name, e.g. "ctrl+q", "page_down" or "h".
func (e Event) String() string {
	var b strings.Builder
	if e.Mod.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if e.Mod.Has(ModAlt) {
		b.WriteString("alt+")
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		b.WriteString("space")
	case e.Key == KeyRune:
		b.WriteRune(e.Rune)
	default:
		b.WriteString(e.Key.String())
	}
	return b.String()
}
