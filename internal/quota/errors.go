package quota

import "errors"

var (
	// ErrLimit is returned when a daily ceiling has been reached.
	ErrLimit = errors.New("daily limit exceeded")

	ErrUnknownAction = errors.New("unknown quota action")
)
