package document

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// TabWidth is the distance between tab stops in cells.
const TabWidth = 8

// Display returns line as it is drawn on one terminal row. Tabs expand to
// spaces up to the next tab stop, C0 controls and DEL become caret notation
// ("^[", "^?"), and C1 controls and invalid UTF-8 become "?". Lines without
// control characters are returned unchanged.
func Display(line string) string {
	if !hasControl(line) {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + TabWidth)
	col := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		if !hasControl(cluster) {
			b.WriteString(cluster)
			col += g.Width()
			continue
		}
		for _, r := range cluster {
			switch {
			case r == '\t':
				n := TabWidth - col%TabWidth
				b.WriteString(strings.Repeat(" ", n))
				col += n
			case r < 0x20:
				b.WriteByte('^')
				b.WriteByte(byte(r) + 0x40)
				col += 2
			case r == 0x7f:
				b.WriteString("^?")
				col += 2
			case isControl(r):
				b.WriteByte('?')
				col++
			default:
				s := string(r)
				b.WriteString(s)
				col += uniseg.StringWidth(s)
			}
		}
	}
	return b.String()
}

func hasControl(s string) bool {
	for _, r := range s {
		if isControl(r) {
			return true
		}
	}
	return false
}

func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r <= 0x9f) || r == utf8.RuneError
}
