package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnknownAction indicates a binding names an action that is not registered.
	ErrUnknownAction = errors.New("dispatcher: unknown action")

	// ErrInvalidBinding indicates a binding's key specification could not be parsed.
	ErrInvalidBinding = errors.New("dispatcher: invalid key binding")
)
