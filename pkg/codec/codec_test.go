package codec

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/composite/pkg/encoding"
	"github.com/matzehuels/composite/pkg/graph"
)

func sampleSystem() *graph.System {
	return graph.FromAdjacency(encoding.Adjacency{
		"extract":   encoding.NewSet("transform"),
		"transform": encoding.NewSet("load"),
		"load":      encoding.NewSet(),
		"orphan":    encoding.NewSet(),
	})
}

func TestRoundTrip(t *testing.T) {
	s := sampleSystem()

	data, err := MarshalGraph(s)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ReadGraph(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if !back.Adjacency().Equal(s.Adjacency()) {
		t.Errorf("round-trip = %v, want %v", back.Adjacency(), s.Adjacency())
	}
}

func TestIsolatedNodesSurvive(t *testing.T) {
	// The document carries the full node list, so isolated nodes are not
	// lost the way they are in the raw edge-list encoding.
	doc := FromSystem(sampleSystem())

	var found bool
	for _, n := range doc.Nodes {
		if n.ID == "orphan" {
			found = true
		}
	}
	if !found {
		t.Errorf("isolated node missing from document: %v", doc.Nodes)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	a, err := MarshalGraph(sampleSystem())
	if err != nil {
		t.Fatal(err)
	}
	b, err := MarshalGraph(sampleSystem())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("marshal output should be deterministic")
	}
}

func TestToSystemVivifiesEdgeEndpoints(t *testing.T) {
	doc := Graph{
		Edges: []Edge{{From: "a", To: "b"}},
	}
	s, err := ToSystem(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Has("a") || !s.Has("b") {
		t.Errorf("endpoints not vivified: %v", s.Adjacency())
	}
}

func TestToSystemRejectsSelfLoop(t *testing.T) {
	doc := Graph{
		Nodes: []Node{{ID: "a"}},
		Edges: []Edge{{From: "a", To: "a"}},
	}
	if _, err := ToSystem(doc); !errors.Is(err, graph.ErrSelfLoop) {
		t.Errorf("err = %v, want ErrSelfLoop", err)
	}
}

func TestReadGraphMalformed(t *testing.T) {
	if _, err := ReadGraph(strings.NewReader("{not json")); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestGraphFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	s := sampleSystem()

	if err := WriteGraphFile(s, path); err != nil {
		t.Fatal(err)
	}
	back, err := ReadGraphFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Adjacency().Equal(s.Adjacency()) {
		t.Error("file round-trip should preserve the graph")
	}
}

func TestDisplayLabel(t *testing.T) {
	n := Node{ID: "extract"}
	if got := n.DisplayLabel(); got != "extract" {
		t.Errorf("DisplayLabel = %q", got)
	}
	n.Label = "Extract Stage"
	if got := n.DisplayLabel(); got != "Extract Stage" {
		t.Errorf("DisplayLabel = %q", got)
	}
}
