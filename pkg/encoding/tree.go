package encoding

import (
	"errors"
	"slices"

	"github.com/matzehuels/composite/pkg/node"
)

var (
	// ErrAlreadyAttached is returned by [Tree.Add] when the child already
	// has a parent. A tree node has at most one parent.
	ErrAlreadyAttached = errors.New("node already has a parent")

	// ErrOwnAncestor is returned by [Tree.Add] when attaching the child
	// would make a node a descendant of itself. Trees stay acyclic by this
	// insertion discipline, not by runtime cycle checks elsewhere.
	ErrOwnAncestor = errors.New("node cannot be a descendant of itself")
)

// Tree is a rooted hierarchy: a node that owns an ordered sequence of
// child trees and keeps a back-reference to its parent. The parent link is
// a non-owning pointer; ownership always flows root-to-leaf. The parent is
// nil only at the root.
//
// A nil *Tree is the empty tree and is safe to walk and convert.
type Tree struct {
	id       node.ID
	parent   *Tree
	children []*Tree
}

// NewTree returns a detached single-node tree.
func NewTree(id node.ID) *Tree {
	return &Tree{id: id}
}

// ID returns the node's identity name.
func (t *Tree) ID() node.ID { return t.id }

// Parent returns the parent tree, or nil at the root.
func (t *Tree) Parent() *Tree { return t.parent }

// Children returns the ordered child list. The slice is a copy; the child
// pointers still refer into the tree.
func (t *Tree) Children() []*Tree {
	if t == nil {
		return nil
	}
	return slices.Clone(t.children)
}

// IsRoot reports whether the node has no parent.
func (t *Tree) IsRoot() bool { return t.parent == nil }

// IsLeaf reports whether the node has no children.
func (t *Tree) IsLeaf() bool { return len(t.children) == 0 }

// Add attaches child as the last child of t. It fails with
// ErrAlreadyAttached when the child is already in a tree, and with
// ErrOwnAncestor when child is t or one of t's ancestors.
func (t *Tree) Add(child *Tree) error {
	if child == nil {
		return errors.New("child must not be nil")
	}
	if child.parent != nil {
		return ErrAlreadyAttached
	}
	for cur := t; cur != nil; cur = cur.parent {
		if cur == child {
			return ErrOwnAncestor
		}
	}
	child.parent = t
	t.children = append(t.children, child)
	return nil
}

// Walk returns the node IDs in depth-first preorder. Uses an explicit
// stack so deep trees cannot exhaust the call stack.
func (t *Tree) Walk() []node.ID {
	if t == nil {
		return nil
	}
	var out []node.ID
	stack := []*Tree{t}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.id)
		// Push children in reverse so they pop in declared order.
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
	return out
}

// Find returns the first node with the given ID in preorder, or nil.
func (t *Tree) Find(id node.ID) *Tree {
	if t == nil {
		return nil
	}
	stack := []*Tree{t}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.id == id {
			return cur
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
	return nil
}

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	n := 1
	for _, c := range t.children {
		n += c.Len()
	}
	return n
}

// Clone returns a deep copy of the subtree rooted at t. The copy is
// detached: its root has no parent.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	out := &Tree{id: t.id}
	for _, c := range t.children {
		child := c.Clone()
		child.parent = out
		out.children = append(out.children, child)
	}
	return out
}

// Equal reports whether both trees have the same IDs with children in the
// same order.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	if t.id != other.id || len(t.children) != len(other.children) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// Adjacency returns the hub view: one key per node, parent → child edges.
func (t *Tree) Adjacency() Adjacency { return TreeToAdjacency(t) }

// Edges returns the parent → child pairs as an edge list.
func (t *Tree) Edges() Edges { return AdjacencyToEdges(TreeToAdjacency(t)) }

// Matrix returns the adjacency-matrix view.
func (t *Tree) Matrix() Matrix { return AdjacencyToMatrix(TreeToAdjacency(t)) }

// Linear returns the path view. Only single-branch trees reduce to a
// Linear; anything else fails with ErrNotLinear.
func (t *Tree) Linear() (Linear, error) { return TreeToLinear(t) }

// Tree is the identity conversion; it returns a deep copy.
func (t *Tree) Tree() (*Tree, error) { return t.Clone(), nil }
