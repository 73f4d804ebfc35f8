package shell

import "strings"

// Tokenize splits a raw line on runs of whitespace. Blank lines yield no tokens.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
