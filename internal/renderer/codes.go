package renderer

import "strconv"

// Terminal control sequences written into frames.
const (
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"
	CursorHome  = "\x1b[H"
	EraseToEOL  = "\x1b[K"
	ClearScreen = "\x1b[2J"

	// LineEnd terminates every drawn row. Raw mode disables output
	// post-processing, so the carriage return is explicit.
	LineEnd = "\r\n"

	// EmptyRowMarker fills rows past the end of the document.
	EmptyRowMarker = "~"
)

// CursorPosition returns the sequence moving the cursor to the 0-indexed
// screen cell (row, col). The wire format is 1-indexed.
func CursorPosition(row, col int) string {
	return "\x1b[" + strconv.Itoa(row+1) + ";" + strconv.Itoa(col+1) + "H"
}
