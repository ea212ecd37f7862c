// Package backend provides the terminal the editor draws on and reads keys from.
package backend

import (
	"errors"
	"sync"

	"github.com/dshills/quill/internal/input/key"
)

// Backend errors.
var (
	// ErrNotTerminal indicates stdin is not attached to a terminal.
	ErrNotTerminal = errors.New("backend: stdin is not a terminal")

	// ErrClosed indicates the backend has been shut down or its input ended.
	ErrClosed = errors.New("backend: closed")
)

// Backend defines the interface for terminal backends.
// All methods are called from the session loop goroutine except Shutdown,
// which may also be called from a signal handler.
type Backend interface {
	// Init switches the terminal into raw mode.
	Init() error

	// Shutdown restores the terminal. It is safe to call more than once.
	Shutdown()

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// PollEvent blocks until the next key event is available.
	PollEvent() (key.Event, error)

	// Write sends a complete frame to the terminal.
	Write(frame []byte) error
}

// AltChordSetter is implemented by backends that decode raw input and can
// read ESC-prefixed keys as Alt chords.
type AltChordSetter interface {
	SetAltChords(on bool)
}

// NullBackend is an in-memory backend for testing.
// Events are replayed in order; frames are recorded.
type NullBackend struct {
	mu sync.Mutex

	width, height int
	events        []key.Event
	sizes         [][2]int
	frames        [][]byte

	initCount     int
	shutdownCount int
	writeErr      error
	altChords     bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initCount++
	return nil
}

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shutdownCount++
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// PollEvent returns the next scripted event, or ErrClosed when none remain.
// A size change queued with ResizeAfter takes effect as its event is returned.
func (b *NullBackend) PollEvent() (key.Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == 0 {
		return key.Event{}, ErrClosed
	}
	ev := b.events[0]
	b.events = b.events[1:]

	if len(b.sizes) > 0 {
		sz := b.sizes[0]
		b.sizes = b.sizes[1:]
		if sz[0] > 0 && sz[1] > 0 {
			b.width, b.height = sz[0], sz[1]
		}
	}
	return ev, nil
}

func (b *NullBackend) Write(frame []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.writeErr != nil {
		return b.writeErr
	}
	b.frames = append(b.frames, append([]byte(nil), frame...))
	return nil
}

// PostEvent queues events for PollEvent.
func (b *NullBackend) PostEvent(events ...key.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ev := range events {
		b.events = append(b.events, ev)
		b.sizes = append(b.sizes, [2]int{})
	}
}

// ResizeAfter queues an event that also changes the terminal size to
// width x height once it has been polled.
func (b *NullBackend) ResizeAfter(ev key.Event, width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
	b.sizes = append(b.sizes, [2]int{width, height})
}

// Resize changes the terminal size immediately.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width = width
	b.height = height
}

// FailWrites makes every subsequent Write return err.
func (b *NullBackend) FailWrites(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeErr = err
}

// Frames returns copies of every frame written so far.
func (b *NullBackend) Frames() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([][]byte, len(b.frames))
	copy(out, b.frames)
	return out
}

// InitCount returns how many times Init was called.
func (b *NullBackend) InitCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initCount
}

// ShutdownCount returns how many times Shutdown was called.
func (b *NullBackend) ShutdownCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shutdownCount
}

// SetAltChords records the setting for inspection.
func (b *NullBackend) SetAltChords(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.altChords = on
}

// AltChords returns the last value passed to SetAltChords.
func (b *NullBackend) AltChords() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.altChords
}
