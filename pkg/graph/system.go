package graph

import (
	"fmt"
	"slices"

	"github.com/matzehuels/composite/pkg/encoding"
	"github.com/matzehuels/composite/pkg/node"
)

// =============================================================================
// System - Directed Graph Engine
// =============================================================================

// System is a mutable directed graph keyed by node ID. Internally it owns
// a normalized adjacency mapping: every successor is also a key. The zero
// value is not usable; construct with [New], [FromAdjacency], or
// [FromEncoding].
type System struct {
	adj encoding.Adjacency
}

// New returns an empty System.
func New() *System {
	return &System{adj: encoding.NewAdjacency()}
}

// FromAdjacency builds a System over a deep copy of a, normalized so every
// successor appears as a key. The caller keeps ownership of a.
func FromAdjacency(a encoding.Adjacency) *System {
	return &System{adj: a.Clone().Normalize()}
}

// FromEncoding builds a System from any encoding through its adjacency view.
func FromEncoding(e encoding.Encoding) *System {
	if e == nil {
		return New()
	}
	return &System{adj: e.Adjacency().Normalize()}
}

// Len reports the number of nodes.
func (s *System) Len() int { return len(s.adj) }

// Has reports whether id is a node in the graph.
func (s *System) Has(id node.ID) bool {
	_, ok := s.adj[id]
	return ok
}

// Nodes returns the node IDs in sorted order.
func (s *System) Nodes() []node.ID { return s.adj.Nodes() }

// Successors returns the direct successors of id, sorted. The result is
// nil when id is not a node.
func (s *System) Successors(id node.ID) []node.ID {
	succs, ok := s.adj[id]
	if !ok {
		return nil
	}
	return succs.Sorted()
}

// String renders the graph as its sorted adjacency for debugging.
func (s *System) String() string {
	return fmt.Sprintf("System%v", s.adj)
}

// =============================================================================
// Encoding Views
// =============================================================================

// Adjacency returns a deep copy of the graph as an adjacency mapping.
func (s *System) Adjacency() encoding.Adjacency { return s.adj.Clone() }

// Edges returns the graph as an edge list. Isolated nodes do not appear.
func (s *System) Edges() encoding.Edges { return encoding.AdjacencyToEdges(s.adj) }

// Matrix returns the graph as an adjacency matrix over sorted labels.
func (s *System) Matrix() encoding.Matrix { return encoding.AdjacencyToMatrix(s.adj) }

// Linear returns the graph as a single path, or ErrNotLinear when the
// graph is not one unbroken chain.
func (s *System) Linear() (encoding.Linear, error) {
	return encoding.AdjacencyToLinear(s.adj)
}

// Tree returns the graph as a hierarchy rooted at its single root. Shared
// nodes are duplicated under each parent.
func (s *System) Tree() (*encoding.Tree, error) {
	return encoding.AdjacencyToTree(s.adj)
}

// =============================================================================
// Mutation
// =============================================================================

// Add inserts id as a node. When descendants are given they become the
// node's exact successor set and must already be nodes; when ancestors are
// given each gains an edge to id and must already be nodes. Validation
// happens before any mutation, so a failed Add leaves the graph unchanged.
func (s *System) Add(id node.ID, ancestors, descendants []node.ID) error {
	if absent := s.absent(descendants); len(absent) > 0 {
		return missingNodes("descendants", absent)
	}
	if absent := s.absent(ancestors); len(absent) > 0 {
		return missingNodes("ancestors", absent)
	}
	if slices.Contains(ancestors, id) {
		return fmt.Errorf("ancestor %q: %w", id, ErrSelfLoop)
	}

	s.adj[id] = encoding.NewSet(descendants...)
	for _, anc := range ancestors {
		s.adj[anc].Add(id)
	}
	return nil
}

// absent returns the ids that are not nodes, preserving input order.
func (s *System) absent(ids []node.ID) []node.ID {
	var out []node.ID
	for _, id := range ids {
		if !s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Connect adds a directed edge from start to stop, inserting either
// endpoint that is not yet a node. Existing successor sets are preserved.
// Self-loops are rejected and leave the graph unchanged.
func (s *System) Connect(start, stop node.ID) error {
	if start == stop {
		return fmt.Errorf("%q: %w", start, ErrSelfLoop)
	}
	if !s.Has(start) {
		s.adj[start] = encoding.NewSet()
	}
	if !s.Has(stop) {
		s.adj[stop] = encoding.NewSet()
	}
	s.adj[start].Add(stop)
	return nil
}

// Delete removes id and every edge pointing at it.
func (s *System) Delete(id node.ID) error {
	if !s.Has(id) {
		return notFound(id)
	}
	delete(s.adj, id)
	for _, succs := range s.adj {
		succs.Delete(id)
	}
	return nil
}

// Disconnect removes the edge from start to stop. A missing start node is
// an error; a missing edge is a silent no-op.
func (s *System) Disconnect(start, stop node.ID) error {
	if !s.Has(start) {
		return notFound(start)
	}
	s.adj[start].Delete(stop)
	return nil
}

// =============================================================================
// Composition
// =============================================================================

// Merge folds another graph value into this one. Keys present in both take
// the incoming successor set wholesale: merge replaces, it does not union.
// Accepted values are *System, any encoding, node ID collections, and
// single node values; anything else fails with ErrUnsupportedType and the
// graph is unchanged.
func (s *System) Merge(item any) error {
	incoming, err := coerce(item)
	if err != nil {
		return err
	}
	for id, succs := range incoming {
		s.adj[id] = succs
	}
	return nil
}

// Append merges item into the graph and then connects every pre-existing
// endpoint to every root of the incoming subgraph, extending the flow
// downstream. Appending to an empty graph is a plain merge.
func (s *System) Append(item any) error {
	incoming, err := coerce(item)
	if err != nil {
		return err
	}
	frontier := s.Endpoints().Sorted()
	joints := rootIDs(incoming)
	for id, succs := range incoming {
		s.adj[id] = succs
	}
	return s.bridge(frontier, joints)
}

// Prepend merges item into the graph and then connects every endpoint of
// the incoming subgraph to every pre-existing root, extending the flow
// upstream.
func (s *System) Prepend(item any) error {
	incoming, err := coerce(item)
	if err != nil {
		return err
	}
	frontier := s.Roots().Sorted()
	joints := endpointIDs(incoming)
	for id, succs := range incoming {
		s.adj[id] = succs
	}
	return s.bridge(joints, frontier)
}

// bridge connects every start to every stop, skipping pairs that would
// form a self-loop when the two subgraphs overlap.
func (s *System) bridge(starts, stops []node.ID) error {
	for _, start := range starts {
		for _, stop := range stops {
			if start == stop {
				continue
			}
			if err := s.Connect(start, stop); err != nil {
				return err
			}
		}
	}
	return nil
}

// coerce converts a graph-like value into a normalized adjacency the
// caller owns. It is the single coercion point for Merge, Append, and
// Prepend.
func coerce(item any) (encoding.Adjacency, error) {
	switch v := item.(type) {
	case *System:
		return v.adj.Clone(), nil
	case encoding.Adjacency:
		return v.Clone().Normalize(), nil
	case encoding.Edges:
		return encoding.EdgesToAdjacency(v), nil
	case encoding.Matrix:
		return encoding.MatrixToAdjacency(v), nil
	case encoding.Linear:
		return encoding.LinearToAdjacency(v), nil
	case *encoding.Tree:
		return encoding.TreeToAdjacency(v), nil
	case Pipeline:
		return encoding.LinearToAdjacency(encoding.Linear(v)), nil
	case []node.ID:
		return encoding.LinearToAdjacency(encoding.Linear(v)), nil
	case []string, []node.Identity, []any:
		return encoding.LinearToAdjacency(encoding.Linear(node.Sequence(v))), nil
	case node.ID:
		return encoding.Adjacency{v: encoding.NewSet()}, nil
	case string:
		return encoding.Adjacency{node.ID(v): encoding.NewSet()}, nil
	case node.Identity:
		return encoding.Adjacency{v.ID(): encoding.NewSet()}, nil
	default:
		return nil, fmt.Errorf("%T: %w", item, ErrUnsupportedType)
	}
}

// =============================================================================
// Subsetting
// =============================================================================

// Subset returns a new System restricted to include and purged of exclude.
// At least one of the two must be given. Exclusion cascades: removing a
// node also removes every edge pointing at it, exactly as Delete would.
// The receiver is never mutated.
func (s *System) Subset(include, exclude []node.ID) (*System, error) {
	if include == nil && exclude == nil {
		return nil, ErrInvalidSubset
	}

	drop := encoding.NewSet()
	if include != nil {
		keep := encoding.NewSet(include...)
		for id := range s.adj {
			if !keep.Has(id) {
				drop.Add(id)
			}
		}
	}
	for _, id := range exclude {
		if s.Has(id) {
			drop.Add(id)
		}
	}

	out := &System{adj: s.adj.Clone()}
	for _, id := range drop.Sorted() {
		if err := out.Delete(id); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// =============================================================================
// Traversal
// =============================================================================

// Roots returns the nodes with no incoming edges.
func (s *System) Roots() encoding.Set {
	return encoding.NewSet(rootIDs(s.adj)...)
}

// Endpoints returns the nodes with no outgoing edges.
func (s *System) Endpoints() encoding.Set {
	return encoding.NewSet(endpointIDs(s.adj)...)
}

func rootIDs(a encoding.Adjacency) []node.ID {
	incoming := encoding.NewSet()
	for _, succs := range a {
		for id := range succs {
			incoming.Add(id)
		}
	}
	var out []node.ID
	for _, id := range a.Nodes() {
		if !incoming.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

func endpointIDs(a encoding.Adjacency) []node.ID {
	var out []node.ID
	for _, id := range a.Nodes() {
		if a[id].Len() == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Walk enumerates every simple path from start to stop using an explicit
// stack, so traversal depth is bounded by the heap rather than the
// goroutine stack. A node already on the current path is never revisited,
// which keeps the walk finite even when the adjacency holds a cycle.
// Walk(x, x) yields the trivial path [x]; otherwise a start that is not a
// node yields nothing.
func (s *System) Walk(start, stop node.ID) []Pipeline {
	type frame struct {
		id   node.ID
		path Pipeline
	}

	var out []Pipeline
	stack := []frame{{id: start}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path := append(slices.Clone(f.path), f.id)
		if f.id == stop {
			out = append(out, path)
			continue
		}
		// Successors are pushed in reverse sorted order so paths pop in
		// lexicographic order.
		succs := s.adj[f.id].Sorted()
		for i := len(succs) - 1; i >= 0; i-- {
			if !slices.Contains(path, succs[i]) {
				stack = append(stack, frame{id: succs[i], path: path})
			}
		}
	}
	return out
}

// Paths enumerates every simple path from any root to any endpoint, in
// lexicographic (root, endpoint) order.
func (s *System) Paths() []Pipeline {
	var out []Pipeline
	for _, root := range s.Roots().Sorted() {
		for _, end := range s.Endpoints().Sorted() {
			out = append(out, s.Walk(root, end)...)
		}
	}
	return out
}

// Pipelines is an alias for [System.Paths] that names the result by its
// type.
func (s *System) Pipelines() []Pipeline { return s.Paths() }
