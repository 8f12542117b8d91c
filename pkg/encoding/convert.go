package encoding

import (
	"github.com/matzehuels/composite/pkg/node"
)

// This file holds the conversion functions between every ordered pair of
// encodings. Adjacency is the hub: the eight conversions touching it are
// implemented directly and the remaining twelve compose through it.
//
// Every converter is total over well-formed input: empty inputs produce
// empty instances, repeated nodes and self-loops are represented
// faithfully, and inputs that cannot be represented in the target encoding
// return a sentinel error instead of panicking.

// =============================================================================
// To Adjacency
// =============================================================================

// EdgesToAdjacency folds an edge list into an adjacency mapping. Duplicate
// edges are idempotent under set semantics, and every stop node is
// vivified as a key even when it has no outgoing edges. Self-loops are
// kept: a node can be its own successor.
func EdgesToAdjacency(items Edges) Adjacency {
	adj := make(Adjacency, len(items))
	for _, e := range items {
		if _, ok := adj[e.Start]; !ok {
			adj[e.Start] = NewSet()
		}
		adj[e.Start].Add(e.Stop)
		if _, ok := adj[e.Stop]; !ok {
			adj[e.Stop] = NewSet()
		}
	}
	return adj
}

// MatrixToAdjacency reads every truthy cell as an edge between the
// corresponding labels. Labels without a row still become keys with an
// empty successor set.
func MatrixToAdjacency(m Matrix) Adjacency {
	adj := make(Adjacency, len(m.Labels))
	for _, label := range m.Labels {
		adj[label] = NewSet()
	}
	for i, row := range m.Cells {
		if i >= len(m.Labels) {
			break
		}
		for j, cell := range row {
			if j >= len(m.Labels) || cell == 0 {
				continue
			}
			adj[m.Labels[i]].Add(m.Labels[j])
		}
	}
	return adj
}

// LinearToAdjacency slides a window of size two over the sequence; each
// consecutive pair becomes a directed edge. A singleton produces one key
// with an empty successor set.
func LinearToAdjacency(l Linear) Adjacency {
	adj := make(Adjacency, len(l))
	if len(l) == 0 {
		return adj
	}
	for _, id := range l {
		if _, ok := adj[id]; !ok {
			adj[id] = NewSet()
		}
	}
	for i := 0; i+1 < len(l); i++ {
		adj[l[i]].Add(l[i+1])
	}
	return adj
}

// TreeToAdjacency walks the tree depth-first, recording a parent → child
// edge for every link. Every node appears as a key; leaves map to empty
// sets.
func TreeToAdjacency(t *Tree) Adjacency {
	adj := make(Adjacency)
	if t == nil {
		return adj
	}
	stack := []*Tree{t}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := adj[cur.id]; !ok {
			adj[cur.id] = NewSet()
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			child := cur.children[i]
			adj[cur.id].Add(child.id)
			stack = append(stack, child)
		}
	}
	return adj
}

// =============================================================================
// From Adjacency
// =============================================================================

// AdjacencyToEdges flattens (key, successor) pairs into an edge list in
// sorted order for determinism. Nodes with empty successor sets contribute
// no edges - the documented lossy boundary of the Edges encoding.
func AdjacencyToEdges(a Adjacency) Edges {
	var out Edges
	for _, id := range a.Nodes() {
		for _, succ := range a[id].Sorted() {
			out = append(out, node.NewEdge(id, succ))
		}
	}
	if out == nil {
		out = Edges{}
	}
	return out
}

// AdjacencyToMatrix fixes a sorted label order over the keys and fills a
// zero matrix with a 1 wherever Labels[j] is a successor of Labels[i].
func AdjacencyToMatrix(a Adjacency) Matrix {
	labels := a.Nodes()
	m := NewMatrix(labels)
	index := make(map[node.ID]int, len(labels))
	for i, id := range labels {
		index[id] = i
	}
	for id, succs := range a {
		i := index[id]
		for succ := range succs {
			if j, ok := index[succ]; ok {
				m.Cells[i][j] = 1
			}
		}
	}
	return m
}

// AdjacencyToLinear reduces the graph to its single path. It fails with
// ErrNotLinear when any node has more than one successor, when there is
// not exactly one root, or when the path does not reach every node.
func AdjacencyToLinear(a Adjacency) (Linear, error) {
	if len(a) == 0 {
		return Linear{}, nil
	}
	roots := rootsOf(a)
	if len(roots) != 1 {
		return nil, ErrNotLinear
	}

	out := make(Linear, 0, len(a))
	seen := NewSet()
	cur := roots[0]
	for {
		out = append(out, cur)
		seen.Add(cur)
		succs := a[cur]
		switch succs.Len() {
		case 0:
			if len(out) != len(a) {
				return nil, ErrNotLinear
			}
			return out, nil
		case 1:
			next := succs.Sorted()[0]
			if seen.Has(next) {
				return nil, ErrNotLinear
			}
			cur = next
		default:
			return nil, ErrNotLinear
		}
	}
}

// AdjacencyToTree builds the hierarchy view in a single depth-first pass,
// recording parent links as it descends. The graph must have exactly one
// root and every node must be reachable from it; a shared (diamond) node
// is duplicated under each of its parents, and revisits along the current
// path are skipped so cycles cannot recurse. Nodes the walk never reaches
// (a cycle hanging off the side) fail with ErrUnreachableNodes rather than
// silently vanishing from the tree.
func AdjacencyToTree(a Adjacency) (*Tree, error) {
	if len(a) == 0 {
		return nil, nil
	}
	roots := rootsOf(a)
	switch {
	case len(roots) == 0:
		return nil, ErrNoRoot
	case len(roots) > 1:
		return nil, ErrMultipleRoots
	}

	reached := NewSet()
	var build func(id node.ID, path Set) *Tree
	build = func(id node.ID, path Set) *Tree {
		t := NewTree(id)
		reached.Add(id)
		path.Add(id)
		for _, succ := range a[id].Sorted() {
			if path.Has(succ) {
				continue
			}
			child := build(succ, path)
			child.parent = t
			t.children = append(t.children, child)
		}
		path.Delete(id)
		return t
	}
	root := build(roots[0], NewSet())
	if reached.Len() != len(a) {
		return nil, ErrUnreachableNodes
	}
	return root, nil
}

// rootsOf returns the keys that never appear as a successor, sorted.
func rootsOf(a Adjacency) []node.ID {
	incoming := NewSet()
	for _, succs := range a {
		for id := range succs {
			incoming.Add(id)
		}
	}
	var roots []node.ID
	for _, id := range a.Nodes() {
		if !incoming.Has(id) {
			roots = append(roots, id)
		}
	}
	return roots
}

// =============================================================================
// Composed conversions (routed through the Adjacency hub)
// =============================================================================

// EdgesToMatrix converts an edge list to a matrix via the hub.
func EdgesToMatrix(items Edges) Matrix {
	return AdjacencyToMatrix(EdgesToAdjacency(items))
}

// EdgesToLinear converts an edge list to a path via the hub.
func EdgesToLinear(items Edges) (Linear, error) {
	return AdjacencyToLinear(EdgesToAdjacency(items))
}

// EdgesToTree converts an edge list to a hierarchy via the hub.
func EdgesToTree(items Edges) (*Tree, error) {
	return AdjacencyToTree(EdgesToAdjacency(items))
}

// MatrixToEdges converts a matrix to an edge list via the hub.
func MatrixToEdges(m Matrix) Edges {
	return AdjacencyToEdges(MatrixToAdjacency(m))
}

// MatrixToLinear converts a matrix to a path via the hub.
func MatrixToLinear(m Matrix) (Linear, error) {
	return AdjacencyToLinear(MatrixToAdjacency(m))
}

// MatrixToTree converts a matrix to a hierarchy via the hub.
func MatrixToTree(m Matrix) (*Tree, error) {
	return AdjacencyToTree(MatrixToAdjacency(m))
}

// LinearToEdges converts a path to its consecutive-pair edge list.
func LinearToEdges(l Linear) Edges {
	return l.Edges()
}

// LinearToMatrix converts a path to a matrix via the hub.
func LinearToMatrix(l Linear) Matrix {
	return AdjacencyToMatrix(LinearToAdjacency(l))
}

// LinearToTree converts a path to a single-branch hierarchy. Repeated IDs
// make the sequence non-representable as a tree and fail with
// ErrOwnAncestor semantics folded into ErrNotLinear.
func LinearToTree(l Linear) (*Tree, error) {
	if len(l) == 0 {
		return nil, nil
	}
	seen := NewSet()
	root := NewTree(l[0])
	seen.Add(l[0])
	cur := root
	for _, id := range l[1:] {
		if seen.Has(id) {
			return nil, ErrNotLinear
		}
		seen.Add(id)
		child := NewTree(id)
		child.parent = cur
		cur.children = append(cur.children, child)
		cur = child
	}
	return root, nil
}

// TreeToEdges converts a hierarchy to an edge list via the hub.
func TreeToEdges(t *Tree) Edges {
	return AdjacencyToEdges(TreeToAdjacency(t))
}

// TreeToMatrix converts a hierarchy to a matrix via the hub.
func TreeToMatrix(t *Tree) Matrix {
	return AdjacencyToMatrix(TreeToAdjacency(t))
}

// TreeToLinear reduces a single-branch hierarchy to a path. Trees with any
// branching fail with ErrNotLinear.
func TreeToLinear(t *Tree) (Linear, error) {
	if t == nil {
		return Linear{}, nil
	}
	out := make(Linear, 0, t.Len())
	for cur := t; ; {
		out = append(out, cur.id)
		switch len(cur.children) {
		case 0:
			return out, nil
		case 1:
			cur = cur.children[0]
		default:
			return nil, ErrNotLinear
		}
	}
}
