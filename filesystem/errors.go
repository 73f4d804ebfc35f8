package filesystem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when a name holds a character outside its kind's allow-list
	ErrInvalidName = errors.New("name not allowed")
	// ErrReservedName is returned for files named "." or ".."
	ErrReservedName = errors.New("reserved name")
	// ErrDuplicateName is returned when a sibling with the same name already exists
	ErrDuplicateName = errors.New("name already exists")
	ErrNotFound      = errors.New("no such file or directory")
	ErrNotADirectory = errors.New("not a directory")
)

// NameError records a failed tree operation and the name that caused it.
type NameError struct {
	Op   string // mkdir, touch, cd, ...
	Name string
	Err  error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *NameError) Unwrap() error { return e.Err }
