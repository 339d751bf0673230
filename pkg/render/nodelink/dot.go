package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/ang-cai/dinner/pkg/guest"
)

// Options configures dislike-graph rendering.
type Options struct {
	// Invited highlights the guests on the final invite list with a green
	// fill, so a rendered graph doubles as a visual answer sheet.
	Invited []string

	// Detailed includes each guest's dislike degree in the node label.
	// When false, only the guest name is shown.
	Detailed bool
}

// ToDOT converts a dislike graph to Graphviz DOT format.
// The graph is undirected: each canonical dislike edge appears once as
// "A -- B". Isolated guests are rendered with dashed outlines and grey fill
// to show they sit outside the combinatorial search; invited guests (see
// [Options.Invited]) are filled green.
//
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(g *guest.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("\n")

	for _, name := range g.Guests() {
		attrs := fmtAttrs(g, name, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(g *guest.Graph, name string, opts Options) []string {
	label := name
	if opts.Detailed {
		label = fmt.Sprintf("%s\ndislikes: %d", name, g.Degree(name))
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case slices.Contains(opts.Invited, name):
		attrs = append(attrs, "fillcolor=palegreen")
	case g.Degree(name) == 0:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
