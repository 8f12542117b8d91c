package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/composite/pkg/codec"
	"github.com/matzehuels/composite/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from input when empty
	format   string // output format: "dot", "svg", or "png"
	detailed bool   // include successor counts in node labels
	rankdir  string // layout direction passed to Graphviz
}

// validRenderFormats is the set of supported output formats.
var validRenderFormats = map[string]bool{"dot": true, "svg": true, "png": true}

// newRenderCmd creates the render command for drawing node-link diagrams.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: "svg", rankdir: "TB"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph document as a node-link diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validRenderFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", opts.format)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default derived from input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show successor counts in node labels")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", opts.rankdir, "layout direction: TB (default), LR, BT, RL")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	sys, err := codec.ReadGraphFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", sys.Len(), len(sys.Edges()))

	dot := render.ToDOT(sys, render.Options{
		Detailed: opts.detailed,
		Rankdir:  opts.rankdir,
	})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		logger.Debug("Rendering SVG")
		data, err = render.RenderSVG(dot)
	case "png":
		logger.Debug("Rendering PNG")
		data, err = render.RenderPNG(dot)
	}
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}

	printSuccess("Rendered %s diagram", opts.format)
	printFile(outputPath)
	printDetail("%d bytes", len(data))
	return nil
}
