// Package dirsh models an in-memory directory tree driven by a tiny shell.
//
// The tree itself lives in the filesystem package, the command loop in the
// shell package. This package holds the types shared between entrypoints
// (CLI, seed files) and the tree.
package dirsh

import "fmt"

type NodeType string

const (
	FileNodeType NodeType = "file"
	DirNodeType  NodeType = "dir"
)

// Valid reports whether t is a known node type
func (t NodeType) Valid() bool {
	return t == FileNodeType || t == DirNodeType
}

// NodeRequest represents user input for node creation. It should be passed from
// entrypoints (i.e. cli, seed files) to the filesystem AddNode method.
//
// Path is "/" separated and relative to the root; missing parent directories
// are created on the way.
type NodeRequest struct {
	Path string   `json:"path" yaml:"path"`
	Type NodeType `json:"type" yaml:"type"`
}

// Validate checks the request shape; name rules are enforced by the tree
func (r *NodeRequest) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("unknown node type %q for path %q", r.Type, r.Path)
	}
	if r.Path == "" {
		return fmt.Errorf("empty path for %s node", r.Type)
	}
	return nil
}
