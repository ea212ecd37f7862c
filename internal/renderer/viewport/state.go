package viewport

import "fmt"

// State is a point-in-time copy of the viewport.
type State struct {
	Width        int
	Height       int
	ScrollOffset int
	CursorRow    int
	CursorCol    int
}

// String formats the state for log lines.
func (s State) String() string {
	return fmt.Sprintf("%dx%d offset=%d cursor=%d:%d",
		s.Width, s.Height, s.ScrollOffset, s.CursorRow, s.CursorCol)
}

// Snapshot returns the current state.
func (v *Viewport) Snapshot() State {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return State{
		Width:        v.width,
		Height:       v.height,
		ScrollOffset: v.scrollOffset,
		CursorRow:    v.cursorRow,
		CursorCol:    v.cursorCol,
	}
}
