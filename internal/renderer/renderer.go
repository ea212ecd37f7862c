package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/quill/internal/engine/document"
	"github.com/dshills/quill/internal/renderer/viewport"
)

// Source provides read access to document rows.
type Source interface {
	// RowCount returns the number of rows.
	RowCount() int

	// Row returns the text of row i (0-indexed).
	Row(i int) (string, error)
}

// Options configures the renderer.
type Options struct {
	// Banner is drawn on the empty-document welcome row.
	Banner string

	// Farewell is written on the cleared screen of the final frame.
	Farewell string
}

// DefaultOptions returns the options for the given program version.
func DefaultOptions(version string) Options {
	return Options{
		Banner:   fmt.Sprintf("Quill editor -- version %s", version),
		Farewell: "Gbye :) ",
	}
}

// Renderer turns a document and a viewport into terminal frames.
type Renderer struct {
	opts Options
}

// New creates a renderer with the given options. Control characters in the
// banner and farewell are made visible.
func New(opts Options) *Renderer {
	opts.Banner = document.Display(opts.Banner)
	opts.Farewell = document.Display(opts.Farewell)
	return &Renderer{opts: opts}
}

// Render produces one full redraw.
//
// The order of the output is fixed: the cursor is hidden before it is moved
// home, every row is drawn, the cursor is placed and only then shown again.
// The bottom screen row is never drawn. When quitting is set the frame ends by
// clearing the screen and writing the farewell line.
func (r *Renderer) Render(doc Source, vp *viewport.Viewport, quitting bool) ([]byte, error) {
	state := vp.Snapshot()

	var buf bytes.Buffer
	buf.Grow(state.Height * (state.Width + len(EraseToEOL) + len(LineEnd)))

	buf.WriteString(HideCursor)
	buf.WriteString(CursorHome)

	if err := r.drawRows(&buf, doc, state); err != nil {
		return nil, err
	}

	row, col := vp.ScreenCursor()
	buf.WriteString(CursorPosition(row, col))
	buf.WriteString(ShowCursor)

	if quitting {
		buf.WriteString(ClearScreen)
		buf.WriteString(CursorHome)
		buf.WriteString(r.opts.Farewell)
		buf.WriteString(LineEnd)
	}

	return buf.Bytes(), nil
}

// drawRows writes screen rows [0, height-1).
func (r *Renderer) drawRows(buf *bytes.Buffer, doc Source, state viewport.State) error {
	rowCount := doc.RowCount()

	for y := 0; y < state.Height-1; y++ {
		buf.WriteString(EraseToEOL)

		docRow := y + state.ScrollOffset
		if docRow >= rowCount {
			if rowCount == 0 && y == state.Height/3 {
				r.drawWelcome(buf, state.Width)
			} else {
				buf.WriteString(EmptyRowMarker)
			}
			buf.WriteString(LineEnd)
			continue
		}

		text, err := doc.Row(docRow)
		if err != nil {
			return err
		}
		buf.WriteString(Truncate(document.Display(text), state.Width))
		buf.WriteString(LineEnd)
	}
	return nil
}

// drawWelcome writes the banner centered on a row of the given width.
// The row always starts with the empty-row marker.
func (r *Renderer) drawWelcome(buf *bytes.Buffer, width int) {
	bannerWidth := uniseg.StringWidth(r.opts.Banner)

	padding := 0
	if width > bannerWidth {
		padding = (width - bannerWidth) / 2
	}

	buf.WriteString(EmptyRowMarker)
	if padding > 0 {
		padding--
	}
	buf.WriteString(strings.Repeat(" ", padding))

	remaining := width - len(EmptyRowMarker) - padding
	buf.WriteString(Truncate(r.opts.Banner, remaining))
}

// Truncate cuts s to at most width terminal cells.
// Grapheme clusters are kept whole; a wide cluster that would straddle the
// limit is dropped.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String()
}
