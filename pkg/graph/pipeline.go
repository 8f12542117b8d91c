package graph

import (
	"slices"
	"strings"

	"github.com/matzehuels/composite/pkg/encoding"
	"github.com/matzehuels/composite/pkg/node"
)

// Pipeline is a single simple path through a System: an ordered node
// sequence with one root and one endpoint. It is the linear
// specialization of a graph, so the general traversal accessors collapse
// to trivial lookups.
type Pipeline []node.ID

// NewPipeline builds a Pipeline from any node sequence value accepted by
// [node.Sequence].
func NewPipeline(value any) Pipeline {
	return Pipeline(node.Sequence(value))
}

// Root returns the first node, or the zero ID when the pipeline is empty.
func (p Pipeline) Root() node.ID {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Endpoint returns the last node, or the zero ID when the pipeline is
// empty.
func (p Pipeline) Endpoint() node.ID {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Walk returns the only path from root to endpoint: the pipeline itself,
// as a copy the caller may mutate.
func (p Pipeline) Walk() []Pipeline {
	if len(p) == 0 {
		return nil
	}
	return []Pipeline{slices.Clone(p)}
}

// Linear returns the pipeline as the linear encoding.
func (p Pipeline) Linear() encoding.Linear {
	return encoding.Linear(slices.Clone(p))
}

// System expands the pipeline into a full graph engine over its chain.
func (p Pipeline) System() *System {
	return FromEncoding(p.Linear())
}

// Equal reports whether two pipelines visit the same nodes in the same
// order.
func (p Pipeline) Equal(other Pipeline) bool {
	return slices.Equal(p, other)
}

// String renders the pipeline as "a -> b -> c".
func (p Pipeline) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = string(id)
	}
	return strings.Join(parts, " -> ")
}
