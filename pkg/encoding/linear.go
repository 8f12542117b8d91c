package encoding

import (
	"slices"

	"github.com/matzehuels/composite/pkg/node"
)

// Linear is an ordered node sequence representing one path with no
// branching. A single-element sequence is an isolated node with no
// outgoing edge; an empty sequence is the empty graph.
type Linear []node.ID

// Adjacency returns the hub view: each consecutive pair becomes a
// directed edge.
func (l Linear) Adjacency() Adjacency { return LinearToAdjacency(l) }

// Edges returns the consecutive pairs as an edge list, preserving path
// order.
func (l Linear) Edges() Edges {
	if len(l) < 2 {
		return Edges{}
	}
	out := make(Edges, 0, len(l)-1)
	for i := 0; i+1 < len(l); i++ {
		out = append(out, node.NewEdge(l[i], l[i+1]))
	}
	return out
}

// Matrix returns the adjacency-matrix view.
func (l Linear) Matrix() Matrix { return AdjacencyToMatrix(LinearToAdjacency(l)) }

// Linear is the identity conversion; it returns an independent copy.
func (l Linear) Linear() (Linear, error) { return slices.Clone(l), nil }

// Tree returns the path as a single-branch hierarchy.
func (l Linear) Tree() (*Tree, error) { return LinearToTree(l) }
