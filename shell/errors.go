package shell

import (
	"errors"
	"fmt"

	"github.com/brettbedarf/dirsh/filesystem"
)

var (
	// ErrArity is returned when a known command gets the wrong number of arguments
	ErrArity          = errors.New("incorrect arguments")
	ErrUnknownCommand = errors.New("unknown command")
)

// CommandError records a command line that could not be dispatched.
type CommandError struct {
	Command string
	Got     int // Arguments given; ErrArity only
	Want    int // Arguments expected; ErrArity only
	Err     error
}

func (e *CommandError) Error() string {
	if errors.Is(e.Err, ErrArity) {
		return fmt.Sprintf("%s: %v: got %d, want %d", e.Command, e.Err, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Message renders an error from a single command line for the user.
func Message(err error) string {
	var nameErr *filesystem.NameError
	var cmdErr *CommandError
	name := ""
	if errors.As(err, &nameErr) {
		name = nameErr.Name
	}
	if errors.As(err, &cmdErr) {
		name = cmdErr.Command
	}

	switch {
	case errors.Is(err, filesystem.ErrInvalidName):
		return fmt.Sprintf("Name not allowed: %q", name)
	case errors.Is(err, filesystem.ErrReservedName):
		return fmt.Sprintf("Reserved name: %q", name)
	case errors.Is(err, filesystem.ErrDuplicateName):
		return fmt.Sprintf("Already exists: %q", name)
	case errors.Is(err, filesystem.ErrNotFound):
		return fmt.Sprintf("No such directory: %q", name)
	case errors.Is(err, filesystem.ErrNotADirectory):
		return fmt.Sprintf("Must be a directory, not a file: %q", name)
	case errors.Is(err, ErrArity):
		if cmd, ok := lookup(name); ok {
			return "Incorrect arguments, usage: " + cmd.usage()
		}
		return "Incorrect arguments"
	case errors.Is(err, ErrUnknownCommand):
		return fmt.Sprintf("Unknown command: %q", name)
	default:
		return err.Error()
	}
}
