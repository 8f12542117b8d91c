// Package render draws composite graphs as node-link diagrams.
//
// Graphs are first converted to Graphviz DOT with [ToDOT], then rasterized
// with [RenderSVG] or [RenderPNG]. Roots and endpoints carry distinct
// fills so the flow direction is readable at a glance.
//
//	dot := render.ToDOT(s, render.Options{})
//	svg, err := render.RenderSVG(dot)
//	png, err := render.RenderPNG(dot)
package render
