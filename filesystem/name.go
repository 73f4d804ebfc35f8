package filesystem

import (
	"errors"
	"strings"
)

// ValidateName returns name unchanged when every character of it appears in
// allowed. An empty name is valid.
func ValidateName(name, allowed string) (string, error) {
	if strings.IndexFunc(name, func(r rune) bool { return !strings.ContainsRune(allowed, r) }) != -1 {
		return "", &NameError{Op: "validate", Name: name, Err: ErrInvalidName}
	}
	return name, nil
}

// validateNew runs every check a node of kind must pass to be named name.
// Errors are tagged with op.
func validateNew(op string, kind Kind, name string) error {
	if _, err := ValidateName(name, kind.AllowedCharacters()); err != nil {
		var nameErr *NameError
		if errors.As(err, &nameErr) {
			nameErr.Op = op
		}
		return err
	}
	if kind == FileKind && isReservedFileName(name) {
		return &NameError{Op: op, Name: name, Err: ErrReservedName}
	}
	return nil
}

// isReservedFileName reports names a file may never take
func isReservedFileName(name string) bool {
	return name == "." || name == ".."
}

// trimDirSlash strips a single trailing "/" used to address directories
func trimDirSlash(name string) string {
	return strings.TrimSuffix(name, "/")
}
