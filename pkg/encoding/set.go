package encoding

import (
	"maps"
	"slices"

	"github.com/matzehuels/composite/pkg/node"
)

// Set is an unordered collection of node IDs, used as the successor value
// type in [Adjacency]. The zero value is not usable; use [NewSet].
type Set map[node.ID]struct{}

// NewSet creates a Set containing the given IDs.
func NewSet(ids ...node.ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set. Adding an existing ID is a no-op.
func (s Set) Add(id node.ID) { s[id] = struct{}{} }

// Has reports whether id is in the set.
func (s Set) Has(id node.ID) bool {
	_, ok := s[id]
	return ok
}

// Delete removes id from the set if present.
func (s Set) Delete(id node.ID) { delete(s, id) }

// Len returns the number of IDs in the set.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	return maps.Clone(s)
}

// Equal reports whether both sets contain exactly the same IDs.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Sorted returns the set's IDs in ascending order. Iteration over a Set is
// unordered; use this wherever deterministic output matters.
func (s Set) Sorted() []node.ID {
	return slices.Sorted(maps.Keys(s))
}
