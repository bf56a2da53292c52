package entity

import "errors"

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrMoveIntoItself = errors.New("cannot move a folder into itself")
	ErrInvalidImport  = errors.New("import file is not a note tree")
)
