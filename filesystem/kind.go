package filesystem

// Characters allowed in every node name
const BaseAllowedCharacters = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789_-"

// Files may additionally carry extensions
const FileAllowedCharacters = BaseAllowedCharacters + "."

// Kind is the closed set of node variants.
type Kind uint8

const (
	DirKind Kind = iota + 1
	FileKind
)

// AllowedCharacters returns the allow-list names of this kind are validated against
func (k Kind) AllowedCharacters() string {
	if k == FileKind {
		return FileAllowedCharacters
	}
	return BaseAllowedCharacters
}

// PathSuffix is appended after the name in paths and listings
func (k Kind) PathSuffix() string {
	if k == DirKind {
		return "/"
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case DirKind:
		return "dir"
	case FileKind:
		return "file"
	default:
		return "unknown"
	}
}
