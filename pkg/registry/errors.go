package registry

import (
	"errors"
)

var (
	// ErrNotFound is returned by Lookup when no instance is registered
	// under the given name or ID.
	ErrNotFound = errors.New("registry: no such beap")
)
