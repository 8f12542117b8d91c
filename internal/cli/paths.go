package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/composite/pkg/codec"
	"github.com/matzehuels/composite/pkg/graph"
	"github.com/matzehuels/composite/pkg/node"
)

// pathsOpts holds the command-line flags for the paths command.
type pathsOpts struct {
	start string // walk start node; empty enumerates from every root
	stop  string // walk stop node; empty enumerates to every endpoint
}

// newPathsCmd creates the paths command for enumerating pipelines.
// Without flags it lists every root-to-endpoint path; with --start and
// --stop it walks between the two nodes.
func newPathsCmd() *cobra.Command {
	var opts pathsOpts

	cmd := &cobra.Command{
		Use:   "paths [file]",
		Short: "Enumerate root-to-endpoint pipelines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.start == "") != (opts.stop == "") {
				return fmt.Errorf("--start and --stop must be given together")
			}
			return runPaths(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "walk start node")
	cmd.Flags().StringVar(&opts.stop, "stop", "", "walk stop node")

	return cmd
}

func runPaths(ctx context.Context, input string, opts *pathsOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sys, err := codec.ReadGraphFile(input)
	if err != nil {
		return err
	}
	printStats(sys.Len(), len(sys.Edges()))

	var paths []graph.Pipeline
	if opts.start != "" {
		paths = sys.Walk(node.ID(opts.start), node.ID(opts.stop))
	} else {
		paths = sys.Paths()
	}
	prog.done(fmt.Sprintf("Enumerated %d pipelines", len(paths)))

	if len(paths) == 0 {
		printInfo("No pipelines found")
		return nil
	}
	for _, p := range paths {
		ids := make([]string, len(p))
		for i, id := range p {
			ids[i] = string(id)
		}
		printPipeline(ids)
	}
	return nil
}
