package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidKey    = errors.New("invalid key")
	ErrEmptyContent  = errors.New("shared note content is required")
)
