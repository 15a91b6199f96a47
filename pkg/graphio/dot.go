// Package graphio renders dependency traversals as Graphviz graphs.
//
// The DOT output mirrors the traversal exactly: one line per visited or
// excluded edge, in the order the walker produced them. Excluded edges and
// their target nodes stay in the output, marked gray, so the graph shows
// what was pruned; excluded subtrees, however, are absent because the
// walker never descends past an excluded edge.
package graphio

import (
	"fmt"
	"io"
)

// excludedAttrs marks excluded nodes and edges so they remain visible but
// visually distinct.
const excludedAttrs = `[color="gray" fontcolor="gray"]`

// DotWriter emits a directed-graph description edge by edge. It satisfies
// the walker's sink contract. Write errors stick: after the first failure
// every subsequent call returns the same error.
type DotWriter struct {
	w   io.Writer
	err error
}

// NewDotWriter creates a DotWriter emitting to w.
func NewDotWriter(w io.Writer) *DotWriter {
	return &DotWriter{w: w}
}

// Begin writes the graph header. Call it once before the traversal.
func (d *DotWriter) Begin() error {
	return d.printf("digraph {\n")
}

// Edge records a visited dependency edge.
func (d *DotWriter) Edge(from, to string) error {
	return d.printf("  %q -> %q;\n", from, to)
}

// ExcludedEdge records a pruned dependency edge. The target node is
// restyled gray along with the edge itself.
func (d *DotWriter) ExcludedEdge(from, to string) error {
	if err := d.printf("  %q %s;\n", to, excludedAttrs); err != nil {
		return err
	}
	return d.printf("  %q -> %q %s;\n", from, to, excludedAttrs)
}

// End writes the graph footer. Call it once after the traversal.
func (d *DotWriter) End() error {
	return d.printf("}\n")
}

// Err returns the first write error encountered, if any.
func (d *DotWriter) Err() error {
	return d.err
}

func (d *DotWriter) printf(format string, args ...any) error {
	if d.err != nil {
		return d.err
	}
	if _, err := fmt.Fprintf(d.w, format, args...); err != nil {
		d.err = err
	}
	return d.err
}
