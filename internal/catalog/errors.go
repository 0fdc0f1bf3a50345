package catalog

import "errors"

var (
	// ErrUnknownItem means an item key has no registered category prefix.
	ErrUnknownItem = errors.New("item key matches no registered category")
)
