package encoding

import (
	"slices"

	"github.com/matzehuels/composite/pkg/node"
)

// Matrix is a square 0/1 adjacency matrix paired with an ordered label
// list. Cells[i][j] == 1 means an edge from Labels[i] to Labels[j]; row
// and column order both follow Labels.
type Matrix struct {
	Cells  [][]int
	Labels []node.ID
}

// NewMatrix returns a zero matrix sized for the given labels.
func NewMatrix(labels []node.ID) Matrix {
	cells := make([][]int, len(labels))
	for i := range cells {
		cells[i] = make([]int, len(labels))
	}
	return Matrix{Cells: cells, Labels: slices.Clone(labels)}
}

// Validate checks the squareness invariant: len(Cells) == len(Labels) and
// every row has that same length. Returns ErrMalformedMatrix otherwise.
func (m Matrix) Validate() error {
	if len(m.Cells) != len(m.Labels) {
		return ErrMalformedMatrix
	}
	for _, row := range m.Cells {
		if len(row) != len(m.Labels) {
			return ErrMalformedMatrix
		}
	}
	return nil
}

// Clone returns an independent copy of the matrix and its labels.
func (m Matrix) Clone() Matrix {
	cells := make([][]int, len(m.Cells))
	for i, row := range m.Cells {
		cells[i] = slices.Clone(row)
	}
	return Matrix{Cells: cells, Labels: slices.Clone(m.Labels)}
}

// Equal reports whether both matrices have identical labels (in order) and
// identical cells.
func (m Matrix) Equal(other Matrix) bool {
	if !slices.Equal(m.Labels, other.Labels) {
		return false
	}
	if len(m.Cells) != len(other.Cells) {
		return false
	}
	for i := range m.Cells {
		if !slices.Equal(m.Cells[i], other.Cells[i]) {
			return false
		}
	}
	return true
}

// Adjacency returns the hub view. Rows missing from a short matrix still
// vivify their label as a key with no successors.
func (m Matrix) Adjacency() Adjacency { return MatrixToAdjacency(m) }

// Edges returns the edge-list view.
func (m Matrix) Edges() Edges { return AdjacencyToEdges(MatrixToAdjacency(m)) }

// Matrix is the identity conversion; it returns an independent copy.
func (m Matrix) Matrix() Matrix { return m.Clone() }

// Linear returns the path view, or ErrNotLinear when the matrix branches.
func (m Matrix) Linear() (Linear, error) { return AdjacencyToLinear(MatrixToAdjacency(m)) }

// Tree returns the hierarchy view, or an error when there is no unique root.
func (m Matrix) Tree() (*Tree, error) { return AdjacencyToTree(MatrixToAdjacency(m)) }
