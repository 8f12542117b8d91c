package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/composite/pkg/graph"
)

// MarshalGraph converts a System to JSON bytes.
// Nodes are sorted by ID for deterministic output.
func MarshalGraph(s *graph.System) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes a System to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(s *graph.System, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(s, f)
}

// WriteGraph writes a System as JSON to an io.Writer.
// Use MarshalGraph for in-memory serialization or WriteGraphFile for files.
func WriteGraph(s *graph.System, w io.Writer) error {
	return writeGraphTo(s, w)
}

// ReadGraphFile reads a JSON file and returns the decoded System.
// Returns validation errors for malformed documents or engine constraint
// violations.
func ReadGraphFile(path string) (*graph.System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readGraphFrom(f)
}

// ReadGraph decodes a JSON graph from an io.Reader into a System.
// Use ReadGraphFile for files or pass bytes.NewReader for in-memory data.
func ReadGraph(r io.Reader) (*graph.System, error) {
	return readGraphFrom(r)
}

func writeGraphTo(s *graph.System, w io.Writer) error {
	out := FromSystem(s)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readGraphFrom(r io.Reader) (*graph.System, error) {
	var doc Graph
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToSystem(doc)
}
