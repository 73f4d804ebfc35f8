package dirsh

// NodeInfo provides read-only access to node information for external consumers
type NodeInfo interface {
	// Name returns the node's validated name without any path suffix
	Name() string

	// NodeID returns the unique node identifier
	NodeID() uint64

	// FullPath returns the path from the root including every ancestor's suffix
	FullPath() string

	// IsDir reports whether the node is a directory
	IsDir() bool
}
