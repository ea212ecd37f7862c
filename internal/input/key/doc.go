// Package key defines the logical key events the editor reacts to.
//
// The input decoder turns raw terminal bytes into Event values; the
// dispatcher maps them to actions. Events are comparable and can be used as
// map keys.
//
// # Key Names
//
// Events have a canonical name used in configuration and logs:
//
//   - Navigation: "left", "down", "up", "right", "page_up", "page_down", "home", "end"
//   - Mode keys: "insert", "escape"
//   - Control chords: "ctrl+q", "ctrl+c"
//   - Characters: "h", "j", "~"
//
// Parse accepts the canonical names plus a few aliases ("esc", "pgup",
// "C-q", "Ctrl+Q").
package key
