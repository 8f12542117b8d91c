package encoding

import (
	"maps"
	"slices"

	"github.com/matzehuels/composite/pkg/node"
)

// Adjacency maps each node to the set of its direct successors. It is the
// hub representation: graph operations and most cross-encoding conversions
// work in terms of it.
//
// Invariant: every ID that appears in a successor set also appears as a
// key, with an empty set when it has no outgoing edges. Conversion
// functions restore this invariant; code that builds an Adjacency by hand
// can call [Adjacency.Normalize] to do the same.
type Adjacency map[node.ID]Set

// NewAdjacency returns an empty Adjacency.
func NewAdjacency() Adjacency {
	return make(Adjacency)
}

// Normalize vivifies every successor as a key with an empty set if absent,
// restoring the adjacency invariant in place. It returns the receiver for
// chaining.
func (a Adjacency) Normalize() Adjacency {
	for _, succs := range a {
		for id := range succs {
			if _, ok := a[id]; !ok {
				a[id] = NewSet()
			}
		}
	}
	for id, succs := range a {
		if succs == nil {
			a[id] = NewSet()
		}
	}
	return a
}

// Clone returns a deep copy: the map, every successor set, nothing shared.
func (a Adjacency) Clone() Adjacency {
	out := make(Adjacency, len(a))
	for id, succs := range a {
		out[id] = succs.Clone()
	}
	return out
}

// Nodes returns all keys in ascending order.
func (a Adjacency) Nodes() []node.ID {
	return slices.Sorted(maps.Keys(a))
}

// Equal reports whether both adjacencies have the same keys with the same
// successor sets.
func (a Adjacency) Equal(other Adjacency) bool {
	if len(a) != len(other) {
		return false
	}
	for id, succs := range a {
		if !succs.Equal(other[id]) {
			return false
		}
	}
	return true
}

// Adjacency is the identity conversion. It returns the receiver itself;
// this is the one conversion allowed to alias.
func (a Adjacency) Adjacency() Adjacency { return a }

// Edges returns the edge-list view. Nodes with no outgoing edges
// contribute no entries (the lossy boundary of the Edges encoding).
func (a Adjacency) Edges() Edges { return AdjacencyToEdges(a) }

// Matrix returns the adjacency-matrix view with labels in sorted order.
func (a Adjacency) Matrix() Matrix { return AdjacencyToMatrix(a) }

// Linear returns the path view, or ErrNotLinear when the graph branches.
func (a Adjacency) Linear() (Linear, error) { return AdjacencyToLinear(a) }

// Tree returns the hierarchy view, or an error when the graph has no
// unique root.
func (a Adjacency) Tree() (*Tree, error) { return AdjacencyToTree(a) }
