package crypto

import "errors"

var (
	// ErrInvalidKey hides whether decryption or the parse afterwards failed.
	ErrInvalidKey = errors.New("invalid key")

	ErrUnknownFormat = errors.New("unknown blob format")
	ErrEmptyKey      = errors.New("empty key")
)
