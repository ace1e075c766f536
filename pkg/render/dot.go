package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-graphviz"

	"github.com/seatwise/seatwise/pkg/seating"
)

// Options configures preference-graph rendering.
type Options struct {
	// HideSevered drops the dashed edges for pairs split by a "without"
	// constraint. By default severed edges are shown, since they are the
	// interesting part of the diagram.
	HideSevered bool
}

// ToDOT converts a resolved preference graph to Graphviz DOT text.
//
// Nodes cover the roster plus anyone referenced only in preferences.
// A surviving "with" relation renders as a solid edge; a pair in
// removed renders dashed. Output is deterministic: nodes follow roster
// order (preference-only names sorted afterwards) and edges are
// deduplicated with the lexicographically smaller endpoint first.
func ToDOT(people []string, prefs seating.Preferences, removed []seating.Pair, opts Options) string {
	severed := make(map[[2]string]bool, len(removed))
	for _, p := range removed {
		severed[edgeKey(p.A, p.B)] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, name := range nodeOrder(people, prefs) {
		fmt.Fprintf(&buf, "  %q;\n", name)
	}

	buf.WriteString("\n")
	seen := make(map[[2]string]bool)
	for _, a := range slices.Sorted(maps.Keys(prefs.With)) {
		for _, b := range prefs.With[a] {
			key := edgeKey(a, b)
			if seen[key] || severed[key] {
				continue
			}
			seen[key] = true
			fmt.Fprintf(&buf, "  %q -- %q;\n", key[0], key[1])
		}
	}

	if !opts.HideSevered {
		for _, p := range removed {
			fmt.Fprintf(&buf, "  %q -- %q [style=dashed, color=red, label=\"without\"];\n", p.A, p.B)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT text to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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

// nodeOrder lists roster names in input order followed by
// preference-only names in sorted order, without duplicates.
func nodeOrder(people []string, prefs seating.Preferences) []string {
	seen := make(map[string]bool, len(people))
	out := make([]string, 0, len(people))
	for _, name := range people {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	extras := make(map[string]bool)
	collect := func(m map[string][]string) {
		for person, others := range m {
			if !seen[person] {
				extras[person] = true
			}
			for _, other := range others {
				if !seen[other] {
					extras[other] = true
				}
			}
		}
	}
	collect(prefs.With)
	collect(prefs.Without)

	out = append(out, slices.Sorted(maps.Keys(extras))...)
	return out
}

func edgeKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
