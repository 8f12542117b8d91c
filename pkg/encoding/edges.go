package encoding

import (
	"slices"

	"github.com/matzehuels/composite/pkg/node"
)

// Edges is an ordered list of directed edges. Duplicates are allowed (no
// implicit dedup), and isolated nodes cannot be expressed at all: a node
// with no edges simply does not appear. Converting through Edges is
// therefore lossy for graphs with isolated nodes.
type Edges []node.Edge

// Adjacency returns the hub view. Duplicate edges collapse under set
// semantics and every endpoint is vivified as a key.
func (e Edges) Adjacency() Adjacency { return EdgesToAdjacency(e) }

// Edges is the identity conversion; it returns an independent copy.
func (e Edges) Edges() Edges { return slices.Clone(e) }

// Matrix returns the adjacency-matrix view.
func (e Edges) Matrix() Matrix { return AdjacencyToMatrix(EdgesToAdjacency(e)) }

// Linear returns the path view, or ErrNotLinear when the edges branch.
func (e Edges) Linear() (Linear, error) { return AdjacencyToLinear(EdgesToAdjacency(e)) }

// Tree returns the hierarchy view, or an error when there is no unique root.
func (e Edges) Tree() (*Tree, error) { return AdjacencyToTree(EdgesToAdjacency(e)) }
