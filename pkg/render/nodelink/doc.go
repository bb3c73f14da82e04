// Package nodelink renders lineage trees as node-link diagrams.
//
// # Overview
//
// Each branch becomes a box and each parent-to-child edge an arrow. Sibling
// branches (a parallel group) are placed on the same rank so every
// branch point reads as one horizontal split.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot, err := nodelink.ToDOT(t, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// PNG is rendered by Graphviz directly:
//
//	png, err := nodelink.RenderPNG(dot)
//
// # Options
//
//   - Detailed: node labels include the branch duration and its absolute
//     pseudotime interval
//
// The DOT source can also be written out and processed with external
// Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
package nodelink
