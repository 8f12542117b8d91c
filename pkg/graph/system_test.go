package graph

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/composite/pkg/encoding"
	"github.com/matzehuels/composite/pkg/node"
)

// diamond builds the canonical four-node diamond a → {b, c} → d.
func diamond() *System {
	s := New()
	s.Connect("a", "b")
	s.Connect("a", "c")
	s.Connect("b", "d")
	s.Connect("c", "d")
	return s
}

// sortPaths canonicalizes path sets so tests never depend on enumeration
// order.
func sortPaths(paths []Pipeline) []Pipeline {
	out := slices.Clone(paths)
	slices.SortFunc(out, func(a, b Pipeline) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

func pathsEqual(got, want []Pipeline) bool {
	got, want = sortPaths(got), sortPaths(want)
	return slices.EqualFunc(got, want, Pipeline.Equal)
}

func TestSystemAdd(t *testing.T) {
	t.Run("Bare", func(t *testing.T) {
		s := New()
		if err := s.Add("a", nil, nil); err != nil {
			t.Fatal(err)
		}
		if !s.Has("a") || len(s.Successors("a")) != 0 {
			t.Errorf("graph = %v", s.Adjacency())
		}
	})

	t.Run("WithDescendants", func(t *testing.T) {
		s := New()
		s.Add("b", nil, nil)
		s.Add("c", nil, nil)
		if err := s.Add("a", nil, []node.ID{"b", "c"}); err != nil {
			t.Fatal(err)
		}
		want := []node.ID{"b", "c"}
		if got := s.Successors("a"); !slices.Equal(got, want) {
			t.Errorf("successors = %v, want %v", got, want)
		}
	})

	t.Run("WithAncestors", func(t *testing.T) {
		s := New()
		s.Add("a", nil, nil)
		if err := s.Add("b", []node.ID{"a"}, nil); err != nil {
			t.Fatal(err)
		}
		if got := s.Successors("a"); !slices.Equal(got, []node.ID{"b"}) {
			t.Errorf("ancestor edge missing: %v", s.Adjacency())
		}
	})

	t.Run("ReAddResetsSuccessors", func(t *testing.T) {
		s := New()
		s.Connect("a", "b")
		if err := s.Add("a", nil, nil); err != nil {
			t.Fatal(err)
		}
		if len(s.Successors("a")) != 0 {
			t.Errorf("re-add should reset the successor set: %v", s.Adjacency())
		}
	})
}

func TestSystemAddMissingNodesAtomic(t *testing.T) {
	s := New()
	s.Add("a", nil, nil)
	before := s.Adjacency()

	err := s.Add("x", []node.ID{"a"}, []node.ID{"ghost", "phantom"})
	if !errors.Is(err, ErrMissingNodes) {
		t.Fatalf("err = %v, want ErrMissingNodes", err)
	}
	for _, name := range []string{"ghost", "phantom"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %q: %v", name, err)
		}
	}
	if !s.Adjacency().Equal(before) {
		t.Errorf("failed Add must not mutate: %v", s.Adjacency())
	}
}

func TestSystemAddMissingAncestorsAtomic(t *testing.T) {
	s := New()
	s.Add("a", nil, nil)
	before := s.Adjacency()

	err := s.Add("x", []node.ID{"ghost"}, []node.ID{"a"})
	if !errors.Is(err, ErrMissingNodes) {
		t.Fatalf("err = %v, want ErrMissingNodes", err)
	}
	if !s.Adjacency().Equal(before) {
		t.Errorf("failed Add must not mutate: %v", s.Adjacency())
	}
}

func TestSystemConnect(t *testing.T) {
	s := New()
	if err := s.Connect("a", "b"); err != nil {
		t.Fatal(err)
	}
	if !s.Has("a") || !s.Has("b") {
		t.Error("connect should vivify both endpoints")
	}

	// Connecting into an existing node must not reset its successors.
	s.Connect("b", "c")
	s.Connect("a", "b")
	if got := s.Successors("b"); !slices.Equal(got, []node.ID{"c"}) {
		t.Errorf("existing successors lost: %v", got)
	}
}

func TestSystemConnectSelfLoop(t *testing.T) {
	s := New()
	s.Connect("a", "b")
	before := s.Adjacency()

	if err := s.Connect("a", "a"); !errors.Is(err, ErrSelfLoop) {
		t.Fatalf("err = %v, want ErrSelfLoop", err)
	}
	if !s.Adjacency().Equal(before) {
		t.Errorf("failed Connect must not mutate: %v", s.Adjacency())
	}
}

func TestSystemDelete(t *testing.T) {
	s := diamond()
	if err := s.Delete("d"); err != nil {
		t.Fatal(err)
	}
	want := encoding.Adjacency{
		"a": encoding.NewSet("b", "c"),
		"b": encoding.NewSet(),
		"c": encoding.NewSet(),
	}
	if got := s.Adjacency(); !got.Equal(want) {
		t.Errorf("after delete = %v, want %v", got, want)
	}

	if err := s.Delete("ghost"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("err = %v, want ErrNodeNotFound", err)
	}
}

func TestSystemDisconnect(t *testing.T) {
	s := New()
	s.Connect("a", "b")

	if err := s.Disconnect("ghost", "b"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("missing start: err = %v, want ErrNodeNotFound", err)
	}
	// A missing edge is a silent no-op.
	if err := s.Disconnect("b", "a"); err != nil {
		t.Errorf("missing edge: err = %v, want nil", err)
	}
	if err := s.Disconnect("a", "b"); err != nil {
		t.Fatal(err)
	}
	if len(s.Successors("a")) != 0 {
		t.Errorf("edge should be gone: %v", s.Adjacency())
	}
	if !s.Has("b") {
		t.Error("disconnect must not remove nodes")
	}
}

func TestSystemMerge(t *testing.T) {
	tests := []struct {
		name string
		item any
		want encoding.Adjacency
	}{
		{
			name: "System",
			item: diamond(),
			want: diamond().Adjacency(),
		},
		{
			name: "Adjacency",
			item: encoding.Adjacency{"a": encoding.NewSet("b")},
			want: encoding.Adjacency{"a": encoding.NewSet("b"), "b": encoding.NewSet()},
		},
		{
			name: "Edges",
			item: encoding.Edges{node.NewEdge("a", "b")},
			want: encoding.Adjacency{"a": encoding.NewSet("b"), "b": encoding.NewSet()},
		},
		{
			name: "Linear",
			item: encoding.Linear{"a", "b", "c"},
			want: encoding.Adjacency{
				"a": encoding.NewSet("b"),
				"b": encoding.NewSet("c"),
				"c": encoding.NewSet(),
			},
		},
		{
			name: "IDSlice",
			item: []node.ID{"a", "b"},
			want: encoding.Adjacency{"a": encoding.NewSet("b"), "b": encoding.NewSet()},
		},
		{
			name: "StringSlice",
			item: []string{"a", "b"},
			want: encoding.Adjacency{"a": encoding.NewSet("b"), "b": encoding.NewSet()},
		},
		{
			name: "SingleString",
			item: "solo",
			want: encoding.Adjacency{"solo": encoding.NewSet()},
		},
		{
			name: "Identity",
			item: node.Named("solo", 42),
			want: encoding.Adjacency{"solo": encoding.NewSet()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if err := s.Merge(tt.item); err != nil {
				t.Fatal(err)
			}
			if got := s.Adjacency(); !got.Equal(tt.want) {
				t.Errorf("merged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSystemMergeMatrix(t *testing.T) {
	m := encoding.NewMatrix([]node.ID{"a", "b"})
	m.Cells[0][1] = 1

	s := New()
	if err := s.Merge(m); err != nil {
		t.Fatal(err)
	}
	want := encoding.Adjacency{"a": encoding.NewSet("b"), "b": encoding.NewSet()}
	if got := s.Adjacency(); !got.Equal(want) {
		t.Errorf("merged = %v, want %v", got, want)
	}
}

func TestSystemMergeReplacesSuccessors(t *testing.T) {
	// Merge replaces successor sets key by key; it never unions them.
	s := New()
	s.Merge(encoding.Adjacency{"a": encoding.NewSet("y")})
	s.Merge(encoding.Adjacency{"a": encoding.NewSet("x")})

	if got := s.Successors("a"); !slices.Equal(got, []node.ID{"x"}) {
		t.Errorf("successors = %v, want [x]", got)
	}
	if !s.Has("y") {
		t.Error("previously vivified node should survive the merge")
	}
}

func TestSystemMergeUnsupportedType(t *testing.T) {
	s := New()
	s.Add("a", nil, nil)
	before := s.Adjacency()

	err := s.Merge(3.14)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
	if !strings.Contains(err.Error(), "float64") {
		t.Errorf("error should name the offending type: %v", err)
	}
	if !s.Adjacency().Equal(before) {
		t.Errorf("failed Merge must not mutate: %v", s.Adjacency())
	}
}

func TestSystemAppend(t *testing.T) {
	s := FromEncoding(encoding.Linear{"a", "b"})
	if err := s.Append(encoding.Linear{"x", "y"}); err != nil {
		t.Fatal(err)
	}

	// The old endpoint b is wired to the incoming root x.
	if got := s.Successors("b"); !slices.Equal(got, []node.ID{"x"}) {
		t.Errorf("successors(b) = %v, want [x]", got)
	}
	if got := s.Roots().Sorted(); !slices.Equal(got, []node.ID{"a"}) {
		t.Errorf("roots = %v, want [a]", got)
	}
	if got := s.Endpoints().Sorted(); !slices.Equal(got, []node.ID{"y"}) {
		t.Errorf("endpoints = %v, want [y]", got)
	}
}

func TestSystemAppendToEmpty(t *testing.T) {
	s := New()
	if err := s.Append(encoding.Linear{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	want := encoding.Adjacency{"a": encoding.NewSet("b"), "b": encoding.NewSet()}
	if got := s.Adjacency(); !got.Equal(want) {
		t.Errorf("append to empty = %v, want %v", got, want)
	}
}

func TestSystemPrepend(t *testing.T) {
	s := FromEncoding(encoding.Linear{"a", "b"})
	if err := s.Prepend(encoding.Linear{"x", "y"}); err != nil {
		t.Fatal(err)
	}

	// The incoming endpoint y is wired to the old root a.
	if got := s.Successors("y"); !slices.Equal(got, []node.ID{"a"}) {
		t.Errorf("successors(y) = %v, want [a]", got)
	}
	if got := s.Roots().Sorted(); !slices.Equal(got, []node.ID{"x"}) {
		t.Errorf("roots = %v, want [x]", got)
	}
}

func TestSystemSubset(t *testing.T) {
	t.Run("Include", func(t *testing.T) {
		s := diamond()
		sub, err := s.Subset([]node.ID{"a", "b"}, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := encoding.Adjacency{"a": encoding.NewSet("b"), "b": encoding.NewSet()}
		if got := sub.Adjacency(); !got.Equal(want) {
			t.Errorf("subset = %v, want %v", got, want)
		}
	})

	t.Run("Exclude", func(t *testing.T) {
		s := diamond()
		sub, err := s.Subset(nil, []node.ID{"c", "d"})
		if err != nil {
			t.Fatal(err)
		}
		want := encoding.Adjacency{"a": encoding.NewSet("b"), "b": encoding.NewSet()}
		if got := sub.Adjacency(); !got.Equal(want) {
			t.Errorf("subset = %v, want %v", got, want)
		}
	})

	t.Run("ExcludeAbsentNode", func(t *testing.T) {
		s := diamond()
		sub, err := s.Subset(nil, []node.ID{"ghost"})
		if err != nil {
			t.Fatal(err)
		}
		if !sub.Adjacency().Equal(s.Adjacency()) {
			t.Error("excluding an absent node should be a no-op")
		}
	})

	t.Run("NeitherGiven", func(t *testing.T) {
		if _, err := diamond().Subset(nil, nil); !errors.Is(err, ErrInvalidSubset) {
			t.Errorf("err = %v, want ErrInvalidSubset", err)
		}
	})

	t.Run("SourceUntouched", func(t *testing.T) {
		s := diamond()
		before := s.Adjacency()
		sub, _ := s.Subset([]node.ID{"a"}, nil)
		sub.Connect("a", "z")
		if !s.Adjacency().Equal(before) {
			t.Errorf("subset must deep-copy: %v", s.Adjacency())
		}
	})
}

func TestSystemRootsEndpoints(t *testing.T) {
	s := diamond()
	if got := s.Roots().Sorted(); !slices.Equal(got, []node.ID{"a"}) {
		t.Errorf("roots = %v, want [a]", got)
	}
	if got := s.Endpoints().Sorted(); !slices.Equal(got, []node.ID{"d"}) {
		t.Errorf("endpoints = %v, want [d]", got)
	}

	empty := New()
	if empty.Roots().Len() != 0 || empty.Endpoints().Len() != 0 {
		t.Error("empty graph has no roots or endpoints")
	}
}

func TestSystemWalk(t *testing.T) {
	tests := []struct {
		name        string
		sys         *System
		start, stop node.ID
		want        []Pipeline
	}{
		{
			name:  "Diamond",
			sys:   diamond(),
			start: "a",
			stop:  "d",
			want: []Pipeline{
				{"a", "b", "d"},
				{"a", "c", "d"},
			},
		},
		{
			name:  "Trivial",
			sys:   diamond(),
			start: "a",
			stop:  "a",
			want:  []Pipeline{{"a"}},
		},
		{
			name:  "Unreachable",
			sys:   diamond(),
			start: "d",
			stop:  "a",
			want:  nil,
		},
		{
			name:  "AbsentStart",
			sys:   diamond(),
			start: "ghost",
			stop:  "d",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sys.Walk(tt.start, tt.stop); !pathsEqual(got, tt.want) {
				t.Errorf("Walk = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSystemWalkCycleGuard(t *testing.T) {
	// A raw cycle merged in must not hang the walk: nodes already on the
	// current path are skipped.
	s := New()
	s.Merge(encoding.Adjacency{
		"r": encoding.NewSet("a"),
		"a": encoding.NewSet("b"),
		"b": encoding.NewSet("a", "e"),
		"e": encoding.NewSet(),
	})

	want := []Pipeline{{"r", "a", "b", "e"}}
	if got := s.Walk("r", "e"); !pathsEqual(got, want) {
		t.Errorf("Walk = %v, want %v", got, want)
	}
}

func TestSystemPaths(t *testing.T) {
	want := []Pipeline{
		{"a", "b", "d"},
		{"a", "c", "d"},
	}
	if got := diamond().Paths(); !pathsEqual(got, want) {
		t.Errorf("Paths = %v, want %v", got, want)
	}
	if got := diamond().Pipelines(); !pathsEqual(got, want) {
		t.Errorf("Pipelines = %v, want %v", got, want)
	}
}

func TestSystemEncodingViews(t *testing.T) {
	s := FromEncoding(encoding.Linear{"a", "b", "c"})

	l, err := s.Linear()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(l, encoding.Linear{"a", "b", "c"}) {
		t.Errorf("linear = %v", l)
	}

	tr, err := s.Tree()
	if err != nil {
		t.Fatal(err)
	}
	if tr.ID() != "a" || tr.Len() != 3 {
		t.Errorf("tree root = %s len = %d", tr.ID(), tr.Len())
	}

	if got := s.Edges(); len(got) != 2 {
		t.Errorf("edges = %v", got)
	}
	if got := s.Matrix(); len(got.Labels) != 3 {
		t.Errorf("matrix labels = %v", got.Labels)
	}

	// Views are copies: mutating one must not touch the graph.
	adj := s.Adjacency()
	adj["a"].Add("z")
	if slices.Contains(s.Successors("a"), "z") {
		t.Error("Adjacency view must not alias internal state")
	}
}
