package encoding

import "errors"

var (
	// ErrNotLinear is returned when a graph cannot be represented as a
	// Linear encoding because it branches, has more than one root, or
	// leaves nodes unreachable from the root.
	ErrNotLinear = errors.New("graph does not reduce to a single unbranched path")

	// ErrNoRoot is returned when a tree view is requested for a graph in
	// which every node has an incoming edge.
	ErrNoRoot = errors.New("graph has no root")

	// ErrMultipleRoots is returned when a tree view is requested for a
	// graph with more than one root. No virtual root is synthesized.
	ErrMultipleRoots = errors.New("graph has more than one root")

	// ErrUnreachableNodes is returned when a tree view is requested for a
	// graph in which some nodes cannot be reached from the root, such as a
	// cycle hanging off to the side. A tree must carry every node.
	ErrUnreachableNodes = errors.New("graph has nodes unreachable from the root")

	// ErrMalformedMatrix is returned when a matrix is not square or its
	// side length does not match the label count.
	ErrMalformedMatrix = errors.New("matrix is not square or does not match its labels")
)
