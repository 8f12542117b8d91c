// Package pkg provides the core libraries for Composite graph manipulation.
//
// # Overview
//
// Composite manipulates directed graphs through interchangeable encodings:
// the same structure can be viewed as an adjacency map, an edge list, an
// adjacency matrix, a linear chain, or a rooted tree, and converted freely
// between them. The pkg directory is organized into these areas:
//
//  1. [node] - Node identity (IDs, labeled identities, edges)
//  2. [encoding] - The five graph encodings and conversions between them
//  3. [graph] - The mutable System engine and Pipeline paths
//  4. [codec] - Node-link JSON serialization
//  5. [errors] - Structured error codes, classification, and input validation
//  6. [cache] - Result caching (file, Redis, null) with content-hash keys
//  7. [store] - Graph persistence (memory, MongoDB)
//  8. [render] - Graphviz DOT, SVG, and PNG output
//  9. [observability] - Optional hooks for metrics and tracing
//  10. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow through Composite:
//
//	node-link JSON document
//	         ↓
//	    [codec] package (decode to the engine)
//	         ↓
//	    [graph] package (mutate, walk, enumerate pipelines)
//	         ↓
//	    [encoding] package (view as any encoding)
//	         ↓
//	    JSON/DOT/SVG/PNG output
//
// # Quick Start
//
// Build a graph, connect nodes, and enumerate its pipelines:
//
//	import (
//	    "github.com/matzehuels/composite/pkg/graph"
//	    "github.com/matzehuels/composite/pkg/node"
//	)
//
//	// 1. Build the graph
//	sys := graph.New()
//	_ = sys.Add("extract", nil, []node.ID{"transform"})
//	_ = sys.Add("load", []node.ID{"transform"}, nil)
//
//	// 2. Enumerate root-to-endpoint pipelines
//	for _, p := range sys.Paths() {
//	    fmt.Println(p) // extract -> transform -> load
//	}
//
//	// 3. View as another encoding
//	m := sys.Matrix()
//
// # Main Packages
//
// [node] - The node.ID ground type, node.Identity for anything that can name
// a node, and node.Edge for directed pairs.
//
// [encoding] - Adjacency (the hub), Edges, Matrix, Linear, and Tree. Every
// pairwise conversion routes through Adjacency. Linear and Tree are partial:
// graphs that branch or share nodes are not representable and conversion
// returns ErrNotLinear or ErrNotTree.
//
// [graph] - System wraps an adjacency map with validated mutation (Add,
// Connect, Delete, Merge, Append, Prepend, Subset) and traversal (Walk,
// Paths). Pipeline is an ordered node sequence.
//
// [codec] - The node-link document format: an explicit node list plus an
// edge list, so isolated nodes survive a round trip.
//
// [errors] - Error codes shared by the CLI and HTTP API, sentinel
// classification, and validation of graph names, node IDs, and paths.
//
// [cache] - Cache interface with file, Redis, and null backends. Keys are
// derived from content hashes so stale entries are never served.
//
// [store] - Store interface with in-memory and MongoDB backends.
//
// [render] - DOT generation with root/endpoint styling, SVG and PNG
// rendering via Graphviz.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/encoding/...     # Specific package
//
// [node]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/node
// [encoding]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/encoding
// [graph]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/graph
// [codec]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/codec
// [errors]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/errors
// [cache]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/store
// [render]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/render
// [observability]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/buildinfo
package pkg
