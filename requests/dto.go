package requests

import "github.com/brettbedarf/dirsh"

// NodeRequestDTO is the file representation of [dirsh.NodeRequest].
//
// Type may be omitted: paths ending in "/" default to a directory, anything
// else to a file.
type NodeRequestDTO struct {
	Path string          `json:"path" yaml:"path"`
	Type *dirsh.NodeType `json:"type,omitempty" yaml:"type,omitempty"`
}
