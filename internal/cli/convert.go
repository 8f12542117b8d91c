package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/composite/pkg/codec"
	"github.com/matzehuels/composite/pkg/encoding"
	apperrors "github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/graph"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	target string // target encoding: adjacency, edges, matrix, linear, tree
	output string // output file path; stdout when empty
}

// newConvertCmd creates the convert command for re-encoding graph
// documents. The input is a node-link JSON file; the output is the graph
// in the requested encoding, as JSON.
func newConvertCmd() *cobra.Command {
	opts := convertOpts{target: "adjacency"}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Re-encode a graph document as another encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apperrors.ValidateEncodingName(opts.target); err != nil {
				return err
			}
			return runConvert(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "to", "t", opts.target, "target encoding: adjacency (default), edges, matrix, linear, tree")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runConvert(ctx context.Context, input string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Loading %s", input)

	sys, err := codec.ReadGraphFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", sys.Len(), len(sys.Edges()))

	view, err := encodeAs(sys, opts.target)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if opts.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return err
	}
	printSuccess("Converted to %s", opts.target)
	printFile(opts.output)
	return nil
}

// treeDoc is the JSON shape of the hierarchy encoding.
type treeDoc struct {
	ID       string    `json:"id"`
	Children []treeDoc `json:"children,omitempty"`
}

func toTreeDoc(t *encoding.Tree) treeDoc {
	out := treeDoc{ID: string(t.ID())}
	for _, child := range t.Children() {
		out.Children = append(out.Children, toTreeDoc(child))
	}
	return out
}

// encodeAs produces the JSON-ready view of the graph in the target
// encoding.
func encodeAs(sys *graph.System, target string) (any, error) {
	switch target {
	case "adjacency":
		adj := sys.Adjacency()
		out := make(map[string][]string, len(adj))
		for _, id := range adj.Nodes() {
			succs := make([]string, 0, adj[id].Len())
			for _, succ := range adj[id].Sorted() {
				succs = append(succs, string(succ))
			}
			out[string(id)] = succs
		}
		return out, nil
	case "edges":
		return codec.FromSystem(sys).Edges, nil
	case "matrix":
		m := sys.Matrix()
		return map[string]any{"labels": m.Labels, "cells": m.Cells}, nil
	case "linear":
		return sys.Linear()
	case "tree":
		t, err := sys.Tree()
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, nil
		}
		return toTreeDoc(t), nil
	default:
		return nil, fmt.Errorf("unknown encoding: %s", target)
	}
}
