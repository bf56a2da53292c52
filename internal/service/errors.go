package service

import "errors"

var (
	ErrInvalidKey = errors.New("invalid key")
	ErrNotFound   = errors.New("not found")
	ErrExists     = errors.New("already exists")
	ErrLimit      = errors.New("daily limit exceeded")
	ErrMalformed  = errors.New("malformed id or key")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// client side
	ErrAlreadyExists     = errors.New("shared note already exists locally")
	ErrEntityNotFound    = errors.New("entity not found")
	ErrSharedNoteIsEmpty = errors.New("shared note has no root")
	ErrServerFailure     = errors.New("server reported a failure")
)
