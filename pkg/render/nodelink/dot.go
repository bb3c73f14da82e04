package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/scottgigante/prosstt/pkg/lineage"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the duration and absolute interval to each label.
	// When false, only the branch ID is shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT source. Branches are emitted
// breadth-first from the root and edges in declaration order, so the output
// is stable for a given tree. The root is drawn with a double outline.
func ToDOT(t *lineage.Tree, opts Options) (string, error) {
	var times map[lineage.Branch]lineage.Interval
	if opts.Detailed {
		var err error
		if times, err = t.BranchTimes(); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, b := range t.Branches() {
		d, _ := t.Duration(b)
		label := fmtLabel(b, d, times, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", b, strings.Join(fmtAttrs(b == t.Root(), label), ", "))
	}

	buf.WriteString("\n")
	for _, e := range t.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Parent, e.Child)
	}

	groups := t.ParallelGroups()
	if len(groups) > 0 {
		buf.WriteString("\n")
	}
	for _, parent := range slices.Sorted(maps.Keys(groups)) {
		quoted := make([]string, len(groups[parent]))
		for i, c := range groups[parent] {
			quoted[i] = strconv.Quote(string(c))
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(quoted, "; "))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func fmtLabel(b lineage.Branch, duration int, times map[lineage.Branch]lineage.Interval, detailed bool) string {
	if !detailed {
		return string(b)
	}
	return fmt.Sprintf("%s\nduration: %d\ntime: %s", b, duration, times[b])
}

func fmtAttrs(root bool, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if root {
		attrs = append(attrs, "peripheries=2")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	svg, err := render(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(svg), nil
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz <svg> tag with one whose viewBox
// starts at the origin and whose size matches it.
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

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
