package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures [ToDOT].
type DOTOptions struct {
	// EdgeLabel names the edge decided at a level. When nil, nodes are
	// labelled with their level number.
	EdgeLabel func(level int) string

	// Frontier appends the node's frontier state to its label. States of
	// released levels are omitted.
	Frontier bool

	// HideReject drops the Reject sentinel and every arc into it.
	HideReject bool
}

// ToDOT converts d to Graphviz DOT. Nodes of one level share a rank; skip
// arcs are dashed and take arcs solid. Only nodes reachable from the root
// are emitted.
func ToDOT(d *Diagram, opts DOTOptions) string {
	reach := d.reachable()

	var buf bytes.Buffer
	buf.WriteString("digraph D {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	if !opts.HideReject && reach[Reject] {
		buf.WriteString("  n0 [label=\"0\", shape=box, fillcolor=lightgrey];\n")
	}
	if reach[Accept] {
		buf.WriteString("  n1 [label=\"1\", shape=box, fillcolor=palegreen];\n")
	}

	for lvl := range d.Levels() {
		lo, hi := d.LevelRange(lvl)
		var ids []string
		for h := lo; h < hi; h++ {
			if !reach[h] {
				continue
			}
			fmt.Fprintf(&buf, "  n%d [label=%q];\n", h, d.label(h, opts))
			ids = append(ids, fmt.Sprintf("n%d", h))
		}
		if len(ids) > 1 {
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		}
	}

	buf.WriteString("\n")
	for h := Handle(2); int(h) < d.Len(); h++ {
		if !reach[h] || !d.Linked(h) {
			continue
		}
		n := d.nodes[h]
		if !(opts.HideReject && n.skip == Reject) {
			fmt.Fprintf(&buf, "  n%d -> n%d [style=dashed];\n", h, n.skip)
		}
		if !(opts.HideReject && n.take == Reject) {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", h, n.take)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func (d *Diagram) label(h Handle, opts DOTOptions) string {
	lvl := d.nodes[h].level
	label := strconv.Itoa(lvl)
	if opts.EdgeLabel != nil {
		label = opts.EdgeLabel(lvl)
	}
	if st := d.frontiers[h]; opts.Frontier && st != nil && st.Len() > 0 {
		label += "\n" + st.String()
	}
	return label
}

// reachable marks every handle reachable from the root.
func (d *Diagram) reachable() []bool {
	reach := make([]bool, len(d.nodes))
	reach[d.root] = true
	// parents precede children, so one ascending pass suffices
	for h := d.root; int(h) < len(d.nodes); h++ {
		if !reach[h] || h.IsTerminal() {
			continue
		}
		n := d.nodes[h]
		if n.skip != unset {
			reach[n.skip] = true
			reach[n.take] = true
		}
	}
	return reach
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from a zero
// origin with explicit pixel dimensions.
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
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
