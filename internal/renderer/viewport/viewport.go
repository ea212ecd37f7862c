// Package viewport maps document coordinates onto the terminal grid.
//
// A Viewport tracks the screen size, the vertical scroll offset and the
// cursor in document coordinates. Cursor arithmetic saturates: no input moves
// the cursor outside the document or the screen, and no call panics.
package viewport

import (
	"math"
	"sync"
)

// Viewport represents the visible portion of the document.
type Viewport struct {
	mu sync.RWMutex

	// Size in screen cells
	width  int
	height int

	// First visible document row
	scrollOffset int

	// Cursor in document coordinates
	cursorRow int
	cursorCol int
}

// New creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func New(width, height int) *Viewport {
	return &Viewport{
		width:  max(width, 1),
		height: max(height, 1),
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// ScrollOffset returns the first visible document row.
func (v *Viewport) ScrollOffset() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.scrollOffset
}

// Cursor returns the cursor position in document coordinates.
func (v *Viewport) Cursor() (row, col int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cursorRow, v.cursorCol
}

// Resize updates the viewport size and brings the cursor back on screen.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = max(width, 1)
	v.height = max(height, 1)
	v.cursorCol = clamp(v.cursorCol, 0, v.width-1)
	v.scrollToCursor()
}

// PageDelta is the row delta of a PageUp/PageDown jump.
func (v *Viewport) PageDelta() int {
	return v.Height()
}

// LineJumpDelta is the column delta of a Home/End jump.
// Home and End move a full screen width, which lands on the line boundary
// for any line that fits on screen.
func (v *Viewport) LineJumpDelta() int {
	return v.Width()
}

// MoveCursor moves the cursor by the given deltas.
//
// The row stays within [0, rowCount-1], or 0 for an empty document. When
// deltaCol is non-zero the column stays within [0, lineLen], further capped
// to the last screen column. A vertical move keeps the current column.
func (v *Viewport) MoveCursor(deltaRow, deltaCol, rowCount, lineLen int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	maxRow := 0
	if rowCount > 0 {
		maxRow = rowCount - 1
	}
	v.cursorRow = clamp(saturatingAdd(v.cursorRow, deltaRow), 0, maxRow)

	maxCol := v.width - 1
	if deltaCol != 0 {
		maxCol = min(maxCol, max(lineLen, 0))
		v.cursorCol = clamp(saturatingAdd(v.cursorCol, deltaCol), 0, maxCol)
		return
	}
	v.cursorCol = clamp(v.cursorCol, 0, maxCol)
}

// ScrollToCursor adjusts the scroll offset so the cursor row is visible.
// Calling it again without moving the cursor changes nothing.
func (v *Viewport) ScrollToCursor() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrollToCursor()
}

// scrollToCursor is ScrollToCursor without locking.
func (v *Viewport) scrollToCursor() {
	if v.cursorRow < v.scrollOffset {
		v.scrollOffset = v.cursorRow
	}
	if v.cursorRow >= v.scrollOffset+v.height {
		v.scrollOffset = v.cursorRow - v.height + 1
	}
}

// VisibleRowRange returns the visible document rows as [start, end).
func (v *Viewport) VisibleRowRange() (start, end int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.scrollOffset, saturatingAdd(v.scrollOffset, v.height)
}

// ScreenCursor returns the cursor in screen coordinates (0-indexed).
func (v *Viewport) ScreenCursor() (row, col int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cursorRow - v.scrollOffset, v.cursorCol
}

// saturatingAdd returns a+b clamped to the int range.
func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
