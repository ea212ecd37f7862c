package document

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rivo/uniseg"
)

// ErrOutOfRange is returned when a row index does not name a line.
var ErrOutOfRange = errors.New("row out of range")

// RangeError describes an out-of-range row access.
type RangeError struct {
	Index int
	Count int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("row %d: %v (document has %d rows)", e.Index, ErrOutOfRange, e.Count)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Document is an ordered, read-only set of text lines.
// All methods are safe for concurrent use.
type Document struct {
	mu     sync.RWMutex
	lines  []string
	loaded bool
}

// New creates an empty document that has not been loaded yet.
func New() *Document {
	return &Document{}
}

// NewFromLines creates a document already loaded with lines.
func NewFromLines(lines []string) *Document {
	d := New()
	d.Load(lines)
	return d
}

// Load replaces the row set with a copy of lines.
// The swap happens under the write lock so readers see either the old or the
// new rows, never a mix.
func (d *Document) Load(lines []string) {
	rows := make([]string, len(lines))
	copy(rows, lines)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = rows
	d.loaded = true
}

// Row returns the text of line i.
func (d *Document) Row(i int) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if i < 0 || i >= len(d.lines) {
		return "", &RangeError{Index: i, Count: len(d.lines)}
	}
	return d.lines[i], nil
}

// RowCount returns the number of lines.
func (d *Document) RowCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.lines)
}

// LineLen returns the display width of line i in terminal cells, measured
// on its Display form. Returns 0 for indices outside the document.
func (d *Document) LineLen(i int) int {
	line, err := d.Row(i)
	if err != nil {
		return 0
	}
	return uniseg.StringWidth(Display(line))
}

// Clear drops every row. A cleared document stays loaded.
func (d *Document) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = nil
}

// Loaded reports whether Load has been called.
// It separates an empty file from a document nobody has filled yet.
func (d *Document) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}

// IsEmpty reports whether the document has no rows.
func (d *Document) IsEmpty() bool {
	return d.RowCount() == 0
}
