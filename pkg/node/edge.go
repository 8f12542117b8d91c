package node

import (
	"cmp"
	"fmt"
)

// Edge is an ordered (start, stop) pair of node IDs. It is an immutable
// value: equality and ordering derive from the tuple, so edges can be used
// directly as map keys and sorted with [Edge.Compare].
type Edge struct {
	Start ID
	Stop  ID
}

// NewEdge returns the directed edge start → stop.
func NewEdge(start, stop ID) Edge {
	return Edge{Start: start, Stop: stop}
}

// At provides positional access: index 0 is Start, index 1 is Stop.
// Any other index panics, matching slice semantics.
func (e Edge) At(i int) ID {
	switch i {
	case 0:
		return e.Start
	case 1:
		return e.Stop
	}
	panic(fmt.Sprintf("node: edge index %d out of range [0, 2)", i))
}

// Len returns 2, the number of endpoints.
func (e Edge) Len() int { return 2 }

// IsLoop reports whether the edge starts and stops at the same node.
func (e Edge) IsLoop() bool { return e.Start == e.Stop }

// Compare orders edges lexicographically by (Start, Stop). It returns a
// negative value when e sorts before other, zero when equal, and a positive
// value otherwise, suitable for slices.SortFunc.
func (e Edge) Compare(other Edge) int {
	if c := cmp.Compare(e.Start, other.Start); c != 0 {
		return c
	}
	return cmp.Compare(e.Stop, other.Stop)
}

// String renders the edge as "start -> stop".
func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.Start, e.Stop)
}
