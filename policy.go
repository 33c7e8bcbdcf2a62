package htmlayout

// UnknownTagPolicy controls what the builder does with a node whose tag
// has no registry entry. Unresolved tags are never errors.
type UnknownTagPolicy int

const (
	// UnknownElide drops the node and its entire subtree. Siblings and
	// ancestors are built normally. Default.
	UnknownElide UnknownTagPolicy = iota
	// UnknownKeep builds a passthrough Element in place, preserving the
	// node's position, attributes and children.
	UnknownKeep
)
