// Package config provides the configuration system for quill.
//
// Configuration is resolved in layers, higher layers overriding lower:
//
//	┌──────────────────────────────┐
//	│  4. Command line flags       │  ← Highest priority (applied by cmd/quill)
//	├──────────────────────────────┤
//	│  3. QUILL_* environment      │
//	├──────────────────────────────┤
//	│  2. config.toml              │  ← $XDG_CONFIG_HOME/quill/config.toml
//	├──────────────────────────────┤
//	│  1. Built-in defaults        │  ← Lowest priority
//	└──────────────────────────────┘
//
// # File Format
//
//	[log]
//	level = "info"          # debug, info, warn, error
//	file  = "/tmp/quill.log"
//
//	[ui]
//	banner   = "Quill editor -- version 0.1.0"
//	farewell = "Gbye :) "
//
//	[keymap.command]
//	x = "editor.quit"
//	"ctrl+d" = "cursor.page_down"
//
//	[keymap.insert]
//	"ctrl+d" = "cursor.page_down"
//
// Keymap tables bind key names (see input/key.Parse) to action names (see
// dispatcher.ActionNames). Bindings are layered over the default keymap; an
// action of "none" disables a default binding.
//
// # Environment
//
//	QUILL_LOG_LEVEL, QUILL_LOG_FILE, QUILL_BANNER, QUILL_FAREWELL
//	QUILL_KEYMAP_<MODE>_<KEY>=<action>
package config
