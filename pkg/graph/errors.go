package graph

import (
	"errors"
	"fmt"

	"github.com/matzehuels/composite/pkg/node"
)

var (
	// ErrMissingNodes is returned by [System.Add] when referenced
	// ancestors or descendants are not already keys in the graph. The
	// error message names the absent nodes.
	ErrMissingNodes = errors.New("nodes are not in the graph")

	// ErrNodeNotFound is returned by [System.Delete] and
	// [System.Disconnect] when the named node is not a key in the graph.
	ErrNodeNotFound = errors.New("node is not in the graph")

	// ErrSelfLoop is returned by [System.Connect] when start equals stop.
	// A System is acyclic at this layer, so directed self-edges are
	// rejected even though the adjacency encoding can represent them.
	ErrSelfLoop = errors.New("edge start must differ from stop")

	// ErrUnsupportedType is returned by [System.Merge], [System.Append],
	// and [System.Prepend] when the value is not a graph, adjacency, edge
	// list, matrix, or node collection. The error message names the
	// offending Go type.
	ErrUnsupportedType = errors.New("unsupported graph value")

	// ErrInvalidSubset is returned by [System.Subset] when neither
	// include nor exclude is given.
	ErrInvalidSubset = errors.New("either include or exclude must be given")
)

// missingNodes wraps ErrMissingNodes with the role (ancestors or
// descendants) and the absent IDs.
func missingNodes(role string, ids []node.ID) error {
	return fmt.Errorf("%s %v: %w", role, ids, ErrMissingNodes)
}

// notFound wraps ErrNodeNotFound with the absent ID.
func notFound(id node.ID) error {
	return fmt.Errorf("%q: %w", id, ErrNodeNotFound)
}
