package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics tracks per-session counters. They are written by the session
// loop and may be read from any goroutine.
type Metrics struct {
	frameCount    atomic.Uint64
	frameBytes    atomic.Uint64
	renderTotalNs atomic.Int64
	renderMaxNs   atomic.Int64

	eventCount  atomic.Uint64
	ignoredKeys atomic.Uint64
	moveCount   atomic.Uint64
	resizeCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records one frame written to the terminal.
func (m *Metrics) RecordFrame(size int, renderTime time.Duration) {
	ns := renderTime.Nanoseconds()

	m.frameCount.Add(1)
	m.frameBytes.Add(uint64(size))
	m.renderTotalNs.Add(ns)

	for {
		old := m.renderMaxNs.Load()
		if ns <= old {
			break
		}
		if m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records one key event, whether it mapped to an action and whether it moved
// the cursor.
func (m *Metrics) RecordEvent(handled, moved bool) {
	m.eventCount.Add(1)
	if !handled {
		m.ignoredKeys.Add(1)
	}
	if moved {
		m.moveCount.Add(1)
	}
}

// RecordResize records a terminal size change.
func (m *Metrics) RecordResize() {
	m.resizeCount.Add(1)
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	Frames      uint64
	FrameBytes  uint64
	AvgRender   time.Duration
	MaxRender   time.Duration
	Events      uint64
	IgnoredKeys uint64
	Moves       uint64
	Resizes     uint64
	Uptime      time.Duration
}

// Snapshot returns the current values.
func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		Frames:      m.frameCount.Load(),
		FrameBytes:  m.frameBytes.Load(),
		MaxRender:   time.Duration(m.renderMaxNs.Load()),
		Events:      m.eventCount.Load(),
		IgnoredKeys: m.ignoredKeys.Load(),
		Moves:       m.moveCount.Load(),
		Resizes:     m.resizeCount.Load(),
		Uptime:      time.Since(m.startTime),
	}
	if s.Frames > 0 {
		s.AvgRender = time.Duration(m.renderTotalNs.Load() / int64(s.Frames))
	}
	return s
}

// String formats the snapshot for the session log.
func (s Snapshot) String() string {
	return fmt.Sprintf("frames=%d bytes=%d render_avg=%s render_max=%s events=%d ignored=%d moves=%d resizes=%d uptime=%s",
		s.Frames, s.FrameBytes, s.AvgRender, s.MaxRender, s.Events, s.IgnoredKeys, s.Moves, s.Resizes, s.Uptime.Round(time.Millisecond))
}
