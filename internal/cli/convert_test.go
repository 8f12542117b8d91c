package cli

import (
	"errors"
	"testing"

	"github.com/matzehuels/composite/pkg/encoding"
	"github.com/matzehuels/composite/pkg/graph"
)

func chainSystem() *graph.System {
	return graph.FromEncoding(encoding.Linear{"extract", "transform", "load"})
}

func TestEncodeAs(t *testing.T) {
	sys := chainSystem()

	t.Run("Adjacency", func(t *testing.T) {
		view, err := encodeAs(sys, "adjacency")
		if err != nil {
			t.Fatal(err)
		}
		adj, ok := view.(map[string][]string)
		if !ok {
			t.Fatalf("view type = %T", view)
		}
		if len(adj) != 3 || adj["extract"][0] != "transform" {
			t.Errorf("adjacency = %v", adj)
		}
	})

	t.Run("Linear", func(t *testing.T) {
		view, err := encodeAs(sys, "linear")
		if err != nil {
			t.Fatal(err)
		}
		l, ok := view.(encoding.Linear)
		if !ok || len(l) != 3 {
			t.Errorf("linear = %v (%T)", view, view)
		}
	})

	t.Run("Tree", func(t *testing.T) {
		view, err := encodeAs(sys, "tree")
		if err != nil {
			t.Fatal(err)
		}
		doc, ok := view.(treeDoc)
		if !ok || doc.ID != "extract" || len(doc.Children) != 1 {
			t.Errorf("tree = %+v", view)
		}
	})

	t.Run("LinearNotRepresentable", func(t *testing.T) {
		diamond := graph.FromAdjacency(encoding.Adjacency{
			"a": encoding.NewSet("b", "c"),
			"b": encoding.NewSet("d"),
			"c": encoding.NewSet("d"),
			"d": encoding.NewSet(),
		})
		if _, err := encodeAs(diamond, "linear"); !errors.Is(err, encoding.ErrNotLinear) {
			t.Errorf("err = %v, want ErrNotLinear", err)
		}
	})
}
