// Package dispatcher maps logical key events to editor actions.
//
// Dispatch is a pure, total function over (event, mode): every event is
// classified, and events without a binding in the current mode become
// ActionNone rather than an error. Apply carries an action out against the
// viewport.
//
// # Actions
//
// Actions are registered by name ("cursor.down", "mode.insert",
// "editor.quit"). Keymaps bind key names to action names per mode and can be
// overridden from configuration.
//
// # Default Bindings
//
//	command mode  arrows, page_up/page_down, home/end, h j k l, i, insert, ctrl+q
//	insert mode   escape, ctrl+q
//
// Home and End move one screen width, which lands on the line boundary for
// any line narrower than the screen.
package dispatcher
