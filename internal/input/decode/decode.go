// Package decode turns raw terminal input bytes into logical key events.
//
// Terminals report special keys as escape sequences (CSI "ESC [" and SS3
// "ESC O" forms), control chords as single C0 bytes and text as UTF-8. A
// Decoder buffers partial sequences across reads. A lone ESC at the end of a
// read is the Escape key: terminals write a whole sequence at once, so an
// ESC with nothing after it was pressed on its own.
//
// ESC followed by a printable or control byte is read as an Alt chord only
// when alt chords are enabled. Otherwise it is Escape followed by that key,
// so a fast "Escape, j" still leaves insert mode.
package decode

import (
	"unicode/utf8"

	"github.com/dshills/quill/internal/input/key"
)

const esc = 0x1b

// maxCSILen bounds how far a CSI sequence is scanned for its terminator.
const maxCSILen = 16

// csiKeys maps CSI parameter+final bytes to keys.
var csiKeys = map[string]key.Key{
	"A":  key.KeyUp,
	"B":  key.KeyDown,
	"C":  key.KeyRight,
	"D":  key.KeyLeft,
	"H":  key.KeyHome,
	"F":  key.KeyEnd,
	"1~": key.KeyHome,
	"2~": key.KeyInsert,
	"3~": key.KeyDelete,
	"4~": key.KeyEnd,
	"5~": key.KeyPageUp,
	"6~": key.KeyPageDown,
	"7~": key.KeyHome,
	"8~": key.KeyEnd,
}

// ss3Keys maps the SS3 final byte to keys (application cursor mode).
var ss3Keys = map[byte]key.Key{
	'A': key.KeyUp,
	'B': key.KeyDown,
	'C': key.KeyRight,
	'D': key.KeyLeft,
	'H': key.KeyHome,
	'F': key.KeyEnd,
}

// Decoder parses a stream of terminal input.
// It is not safe for concurrent use.
type Decoder struct {
	pending   []byte
	altChords bool
}

// New creates a decoder with an empty buffer.
func New() *Decoder {
	return &Decoder{pending: make([]byte, 0, 64)}
}

// Feed appends one read's worth of bytes and returns every complete event.
// Bytes of an incomplete sequence stay buffered for the next call.
func (d *Decoder) Feed(data []byte) []key.Event {
	d.pending = append(d.pending, data...)

	events, consumed := parse(d.pending, d.altChords)
	if consumed >= len(d.pending) {
		d.pending = d.pending[:0]
	} else {
		n := copy(d.pending, d.pending[consumed:])
		d.pending = d.pending[:n]
	}
	return events
}

// Pending returns the number of buffered bytes.
func (d *Decoder) Pending() int {
	return len(d.pending)
}

// SetAltChords selects how ESC followed by another key is read: as one
// Alt chord when on, as Escape and then the key when off. Off by default.
func (d *Decoder) SetAltChords(on bool) {
	d.altChords = on
}

// parse decodes as much of data as possible and returns the bytes consumed.
// Unrecognized sequences are consumed without producing an event.
func parse(data []byte, altChords bool) ([]key.Event, int) {
	var events []key.Event
	i := 0
	for i < len(data) {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			events = append(events, key.Rune(rune(b)))
			i++

		case b == esc:
			if i+1 >= len(data) {
				events = append(events, key.Special(key.KeyEscape))
				i++
				continue
			}
			n, ev, ok := parseEscape(data[i:], altChords)
			if n == 0 {
				return events, i
			}
			if ok {
				events = append(events, ev)
			}
			i += n

		case b < 0x20:
			events = append(events, control(b))
			i++

		case b == 0x7f:
			events = append(events, key.Special(key.KeyBackspace))
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return events, i
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				events = append(events, key.Rune(r))
			}
			i += size
		}
	}
	return events, i
}

// parseEscape parses a sequence starting with ESC. It returns 0 when the
// sequence is incomplete and ok=false for sequences with no key.
func parseEscape(data []byte, altChords bool) (n int, ev key.Event, ok bool) {
	switch next := data[1]; {
	case next == '[':
		return parseCSI(data)
	case next == 'O':
		if len(data) < 3 {
			return 0, key.Event{}, false
		}
		k, found := ss3Keys[data[2]]
		return 3, key.Special(k), found
	case next == esc || !altChords:
		return 1, key.Special(key.KeyEscape), true
	case next < 0x20:
		ev := control(next)
		ev.Mod |= key.ModAlt
		return 2, ev, true
	case next < 0x7f:
		return 2, key.Alt(rune(next)), true
	default:
		return 1, key.Special(key.KeyEscape), true
	}
}

// parseCSI parses "ESC [ params final".
func parseCSI(data []byte) (int, key.Event, bool) {
	limit := min(len(data), maxCSILen)
	for end := 2; end < limit; end++ {
		b := data[end]
		if isCSIFinal(b) {
			k, found := csiKeys[string(data[2:end+1])]
			return end + 1, key.Special(k), found
		}
		if b < 0x20 || b > 0x7e {
			// Not a CSI sequence after all; ESC stands alone.
			return 1, key.Special(key.KeyEscape), true
		}
	}
	if len(data) >= maxCSILen {
		// Runaway sequence; drop the introducer.
		return 2, key.Event{}, false
	}
	return 0, key.Event{}, false
}

func isCSIFinal(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

// control maps a C0 control byte to its key.
func control(b byte) key.Event {
	switch b {
	case 0x08:
		return key.Special(key.KeyBackspace)
	case 0x09:
		return key.Special(key.KeyTab)
	case 0x0a, 0x0d:
		return key.Special(key.KeyEnter)
	case esc:
		return key.Special(key.KeyEscape)
	case 0x00:
		return key.Ctrl(' ')
	}
	if b >= 0x01 && b <= 0x1a {
		return key.Ctrl(rune('a' + b - 1))
	}
	return key.Ctrl(rune(b + 0x40))
}
