package backend

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/quill/internal/input/decode"
	"github.com/dshills/quill/internal/input/key"
)

const (
	readBufferSize = 256

	fallbackWidth  = 80
	fallbackHeight = 24
)

// Terminal implements Backend on the process's controlling terminal.
// Raw mode and window size come from tcell's Tty; frames are written
// as-is and input bytes are decoded into key events.
type Terminal struct {
	tty     tcell.Tty
	decoder *decode.Decoder
	queue   []key.Event
	buf     []byte

	mu           sync.Mutex
	width        int
	height       int
	started      bool
	shutdownOnce sync.Once
}

// NewTerminal creates a terminal backend on stdin/stdout.
// It fails with ErrNotTerminal when stdin is redirected.
func NewTerminal() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	tty, err := tcell.NewStdIoTty()
	if err != nil {
		return nil, fmt.Errorf("open tty: %w", err)
	}
	return newTerminal(tty), nil
}

func newTerminal(tty tcell.Tty) *Terminal {
	return &Terminal{
		tty:     tty,
		decoder: decode.New(),
		buf:     make([]byte, readBufferSize),
		width:   fallbackWidth,
		height:  fallbackHeight,
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.tty.Start(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.started = true
	return nil
}

func (t *Terminal) Shutdown() {
	t.shutdownOnce.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		if t.started {
			_ = t.tty.Stop()
		}
		_ = t.tty.Close()
	})
}

// Size returns the current window size. If the size cannot be queried the
// last known size is returned.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ws, err := t.tty.WindowSize()
	if err == nil && ws.Width > 0 && ws.Height > 0 {
		t.width, t.height = ws.Width, ws.Height
	}
	return t.width, t.height
}

// SetAltChords configures the input decoder. Call it before the first
// PollEvent.
func (t *Terminal) SetAltChords(on bool) {
	t.decoder.SetAltChords(on)
}

// PollEvent reads from the terminal until at least one key event decodes.
func (t *Terminal) PollEvent() (key.Event, error) {
	for len(t.queue) == 0 {
		n, err := t.tty.Read(t.buf)
		if n > 0 {
			t.queue = append(t.queue, t.decoder.Feed(t.buf[:n])...)
		}
		if err != nil && len(t.queue) == 0 {
			return key.Event{}, fmt.Errorf("read input: %w", err)
		}
	}

	ev := t.queue[0]
	t.queue = t.queue[1:]
	return ev, nil
}

func (t *Terminal) Write(frame []byte) error {
	if _, err := t.tty.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
