// Package codec provides the canonical wire format for composite graphs.
//
// This package defines the node-link JSON document used for files, API
// responses, caching, and storage. The format is human-readable and
// designed for round-trip fidelity: encode → decode reproduces the same
// graph.
//
//	{
//	  "nodes": [{"id": "extract"}, {"id": "load"}],
//	  "edges": [{"from": "extract", "to": "load"}]
//	}
//
// Unlike the edge-list encoding, the document carries isolated nodes: the
// nodes array is the full key set, so nothing is lost across the boundary.
//
// Common operations:
//
//	s, _ := codec.ReadGraphFile("graph.json")   // File → System
//	codec.WriteGraphFile(s, "out.json")         // System → File
//	data, _ := codec.MarshalGraph(s)            // System → []byte
//	doc, _ := codec.UnmarshalGraph(data)        // []byte → Graph
//
// All functions are safe for concurrent reads but not concurrent writes.
package codec
