// Package renderer builds terminal frames for the editor.
//
// A frame is a complete redraw assembled in memory and handed to the
// terminal in one write:
//
//	hide cursor, cursor home
//	for each screen row but the last: erase line, row text or "~", CRLF
//	cursor position, show cursor
//	[clear screen, cursor home, farewell, CRLF]   when quitting
//
// Row text is truncated to the viewport width in display cells. Grapheme
// clusters are never split.
//
// Usage:
//
//	r := renderer.New(renderer.DefaultOptions(version))
//	frame, err := r.Render(doc, vp, false)
//	if err != nil {
//	    return err
//	}
//	term.Write(frame)
package renderer
