package encoding

import (
	"slices"
	"testing"

	"github.com/matzehuels/composite/pkg/node"
)

func chainAdjacency() Adjacency {
	return Adjacency{
		"a": NewSet("b"),
		"b": NewSet("c"),
		"c": NewSet(),
	}
}

func TestIdentityConversions(t *testing.T) {
	t.Run("Adjacency", func(t *testing.T) {
		a := chainAdjacency()
		if got := a.Adjacency(); !got.Equal(a) {
			t.Error("identity conversion should be equivalent")
		}
	})

	t.Run("Edges", func(t *testing.T) {
		e := Edges{node.NewEdge("a", "b")}
		got := e.Edges()
		if !slices.Equal(got, e) {
			t.Error("identity conversion should be equivalent")
		}
		got[0] = node.NewEdge("x", "y")
		if e[0].Start != "a" {
			t.Error("identity conversion must not alias")
		}
	})

	t.Run("Matrix", func(t *testing.T) {
		m := AdjacencyToMatrix(chainAdjacency())
		got := m.Matrix()
		if !got.Equal(m) {
			t.Error("identity conversion should be equivalent")
		}
		got.Cells[0][0] = 9
		if m.Cells[0][0] == 9 {
			t.Error("identity conversion must not alias")
		}
	})

	t.Run("Linear", func(t *testing.T) {
		l := Linear{"a", "b"}
		got, err := l.Linear()
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, l) {
			t.Error("identity conversion should be equivalent")
		}
	})

	t.Run("Tree", func(t *testing.T) {
		root := NewTree("a")
		root.Add(NewTree("b"))
		got, err := root.Tree()
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(root) {
			t.Error("identity conversion should be equivalent")
		}
		if got == root {
			t.Error("identity conversion must return a copy")
		}
	})
}

func TestEncodingViewsAgree(t *testing.T) {
	// Whatever encoding we start from, the adjacency view is the same graph.
	adj := chainAdjacency()
	views := []struct {
		name string
		enc  Encoding
	}{
		{"Adjacency", adj},
		{"Edges", adj.Edges()},
		{"Matrix", adj.Matrix()},
		{"Linear", Linear{"a", "b", "c"}},
	}

	for _, tt := range views {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.enc.Adjacency(); !got.Equal(adj) {
				t.Errorf("adjacency view = %v, want %v", got, adj)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	a := Adjacency{"a": NewSet("b", "c")}
	a.Normalize()

	for _, id := range []node.ID{"b", "c"} {
		succs, ok := a[id]
		if !ok {
			t.Errorf("successor %s not vivified as key", id)
			continue
		}
		if succs.Len() != 0 {
			t.Errorf("vivified key %s should have empty set", id)
		}
	}
}

func TestAdjacencyCloneIndependence(t *testing.T) {
	a := chainAdjacency()
	c := a.Clone()
	c["a"].Add("z")
	if a["a"].Has("z") {
		t.Error("Clone must not share successor sets")
	}
}

func TestSetSorted(t *testing.T) {
	s := NewSet("c", "a", "b")
	want := []node.ID{"a", "b", "c"}
	if got := s.Sorted(); !slices.Equal(got, want) {
		t.Errorf("Sorted = %v, want %v", got, want)
	}
}

func TestMatrixValidate(t *testing.T) {
	m := NewMatrix([]node.ID{"a", "b"})
	if err := m.Validate(); err != nil {
		t.Errorf("valid matrix: %v", err)
	}

	m.Cells = m.Cells[:1]
	if err := m.Validate(); err == nil {
		t.Error("short matrix should fail validation")
	}
}
