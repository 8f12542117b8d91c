package codec

import (
	"encoding/json"

	"github.com/matzehuels/composite/pkg/encoding"
	"github.com/matzehuels/composite/pkg/graph"
	"github.com/matzehuels/composite/pkg/node"
)

// =============================================================================
// Graph - Node-Link Serialization
// =============================================================================

// Graph is the canonical serialization format for composite graphs.
// Used for API responses, storage, caching, and cross-tool compatibility.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node is a single graph node in the wire format.
type Node struct {
	ID    string         `json:"id" bson:"id"`
	Label string         `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
	Meta  map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge represents a directed edge in the wire format.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// =============================================================================
// System ↔ Graph Conversion
// =============================================================================

// FromSystem converts a System to its serialization format. Nodes and
// edges are sorted for deterministic output, and isolated nodes are kept.
func FromSystem(s *graph.System) Graph {
	ids := s.Nodes()
	edges := s.Edges()

	out := Graph{
		Nodes: make([]Node, len(ids)),
		Edges: make([]Edge, len(edges)),
	}
	for i, id := range ids {
		out.Nodes[i] = Node{ID: string(id)}
	}
	for i, e := range edges {
		out.Edges[i] = Edge{From: string(e.Start), To: string(e.Stop)}
	}
	return out
}

// ToSystem converts a wire document to a System. Every listed node becomes
// a key even without edges; edge endpoints absent from the node list are
// vivified. Self-loop edges are rejected by the engine and fail the
// decode.
func ToSystem(doc Graph) (*graph.System, error) {
	adj := encoding.NewAdjacency()
	for _, n := range doc.Nodes {
		adj[node.ID(n.ID)] = encoding.NewSet()
	}
	s := graph.FromAdjacency(adj)

	for _, e := range doc.Edges {
		if err := s.Connect(node.ID(e.From), node.ID(e.To)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// UnmarshalGraph deserializes JSON bytes to a Graph document.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}
