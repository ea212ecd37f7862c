// Package mode defines the editor's input modes.
//
// Command mode is the default: navigation keys and single-letter commands
// apply. Insert mode accepts navigation keys only and leaves letters alone.
// The dispatcher gates which keys act in which mode.
package mode

import (
	"fmt"
	"strings"
)

// Mode is the editor's current input mode.
type Mode uint8

const (
	// Command is the default mode.
	Command Mode = iota
	// Insert is entered with "i" or the Insert key and left with Escape.
	Insert
)

// All returns every mode.
func All() []Mode {
	return []Mode{Command, Insert}
}

// String returns the mode name used in config and logs.
func (m Mode) String() string {
	switch m {
	case Command:
		return "command"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// DisplayName returns a label for the user.
func (m Mode) DisplayName() string {
	return strings.ToUpper(m.String())
}

// Parse returns the mode with the given name (case-insensitive).
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "command", "normal":
		return Command, nil
	case "insert":
		return Insert, nil
	default:
		return Command, fmt.Errorf("unknown mode %q", name)
	}
}
