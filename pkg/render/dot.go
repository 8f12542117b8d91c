package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/composite/pkg/graph"
	"github.com/matzehuels/composite/pkg/observability"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the successor count in node labels.
	// When false, only the node ID is shown.
	Detailed bool

	// Rankdir sets the Graphviz layout direction. Defaults to "TB".
	Rankdir string
}

// ToDOT converts a System to Graphviz DOT format for node-link
// visualization. The resulting DOT string can be rendered using
// [RenderSVG] or [RenderPNG].
//
// Roots are filled light blue and endpoints light grey so the flow ends
// are distinguishable from interior nodes. Output is deterministic: nodes
// and edges appear in sorted order.
func ToDOT(s *graph.System, opts Options) string {
	rankdir := opts.Rankdir
	if rankdir == "" {
		rankdir = "TB"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	roots := s.Roots()
	endpoints := s.Endpoints()
	for _, id := range s.Nodes() {
		label := string(id)
		if opts.Detailed {
			label = fmt.Sprintf("%s\nsuccessors: %d", id, len(s.Successors(id)))
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		switch {
		case roots.Has(id) && endpoints.Has(id):
			// An isolated node is both ends of its own flow.
			attrs = append(attrs, "fillcolor=lightyellow")
		case roots.Has(id):
			attrs = append(attrs, "fillcolor=lightblue")
		case endpoints.Has(id):
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range s.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Start, e.Stop)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderFormat(dot, graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderFormat(dot, graphviz.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderFormat(dot string, format graphviz.Format, buf *bytes.Buffer) (err error) {
	ctx := context.Background()

	observability.Render().OnRenderStart(ctx, string(format))
	start := time.Now()
	defer func() {
		observability.Render().OnRenderComplete(ctx, string(format), buf.Len(), time.Since(start), err)
	}()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the view box starts at
// the origin, which keeps embedding in web pages predictable.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
