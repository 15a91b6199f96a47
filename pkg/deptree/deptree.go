// Package deptree implements the depth-first dependency traversal at the
// heart of shipdeps.
//
// Starting from a root binary whose path is already known, the walker pulls
// each binary's direct dependencies, evaluates every edge against the
// exclusion list, deduplicates work through a visited set, stages a copy of
// each newly seen library, and reports every edge to an optional graph sink.
//
// # Exclusion propagation
//
// Exclusion is decided per edge, using only the dependency's own name —
// never the path taken to reach it. Recursion happens strictly past the
// exclusion check, so an excluded library's subtree is pruned, yet a
// library reachable both through an excluded path and a non-excluded path
// is still visited via the non-excluded edge.
//
// # Dedupe and cycles
//
// A library is staged and recursed into exactly once no matter how many
// ancestors depend on it. The visited set is consulted before recursing,
// so cycles cannot cause unbounded recursion; later encounters still
// render a graph edge but perform no further work.
package deptree

import (
	"context"

	"github.com/matzehuels/shipdeps/pkg/elfbin"
	"github.com/matzehuels/shipdeps/pkg/exclude"
	"github.com/matzehuels/shipdeps/pkg/fscopy"
	"github.com/matzehuels/shipdeps/pkg/ldd"
)

// DepsFunc returns the sonames a binary directly requires, in declaration
// order. The default is [elfbin.Needed].
type DepsFunc func(path string) ([]string, error)

// StageFunc copies src into destdir, reporting the destination path and
// whether an existing file was reused. The default is [fscopy.Stage].
type StageFunc func(src, destdir string) (dest string, skipped bool, err error)

// Sink receives traversal edges in the order the walker produces them.
// Excluded edges are reported but never walked further.
type Sink interface {
	Edge(from, to string) error
	ExcludedEdge(from, to string) error
}

// Options configures a Walker. The zero value walks without staging
// (graph-only mode when a sink is attached).
type Options struct {
	// DestDir receives the staged copies. Empty disables staging.
	DestDir string

	// DryRun walks the full graph and feeds the sink exactly like a real
	// run, but performs no filesystem copies.
	DryRun bool

	// Sink, when non-nil, receives every visited and excluded edge.
	Sink Sink

	// Deps overrides the direct-dependency reader. Nil means elfbin.Needed.
	Deps DepsFunc

	// Stage overrides the copy primitive. Nil means fscopy.Stage.
	Stage StageFunc

	// Logger receives per-library progress messages. Nil means silent.
	Logger func(msg string, args ...any)
}

// Summary reports what a walk did.
type Summary struct {
	Libraries int // distinct libraries visited (root excluded)
	Staged    int // copies performed, or would-be copies in dry-run mode
	Reused    int // copies skipped because the destination already existed
	Excluded  int // edges pruned by the exclusion list
}

// Walker performs the traversal. It owns its visited set; create a fresh
// Walker per run. Walker is single-threaded by design — the traversal is
// synchronous depth-first recursion with no suspension points beyond
// ordinary blocking I/O.
type Walker struct {
	table   ldd.Table
	excl    *exclude.List
	opts    Options
	visited map[string]bool
	summary Summary
}

// New creates a Walker over the given soname table and exclusion list.
// The table must already contain every resolvable library in the closure,
// including a seeded entry for the traversal root.
func New(table ldd.Table, excl *exclude.List, opts Options) *Walker {
	if opts.Deps == nil {
		opts.Deps = elfbin.Needed
	}
	if opts.Stage == nil {
		opts.Stage = fscopy.Stage
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return &Walker{
		table:   table,
		excl:    excl,
		opts:    opts,
		visited: make(map[string]bool),
	}
}

// Walk traverses the dependency graph from root (a name present in the
// table). It stops at the first fatal condition: an unresolved library, a
// failed dependency read, a failed copy, or context cancellation. Files
// already staged stay staged.
func (w *Walker) Walk(ctx context.Context, root string) (Summary, error) {
	if _, err := w.table.Lookup(root); err != nil {
		return w.summary, err
	}
	if err := w.visit(ctx, root); err != nil {
		return w.summary, err
	}
	return w.summary, nil
}

func (w *Walker) visit(ctx context.Context, binary string) error {
	path, err := w.table.Lookup(binary)
	if err != nil {
		return err
	}

	deps, err := w.opts.Deps(path)
	if err != nil {
		return err
	}

	for _, dep := range deps {
		if err := ctx.Err(); err != nil {
			return err
		}

		if w.excl.Match(dep) {
			w.summary.Excluded++
			if w.opts.Sink != nil {
				if err := w.opts.Sink.ExcludedEdge(binary, dep); err != nil {
					return err
				}
			}
			continue
		}

		if w.opts.Sink != nil {
			if err := w.opts.Sink.Edge(binary, dep); err != nil {
				return err
			}
		}

		if w.visited[dep] {
			continue
		}
		w.visited[dep] = true
		w.summary.Libraries++

		resolved, err := w.table.Lookup(dep)
		if err != nil {
			return err
		}

		if err := w.stage(resolved); err != nil {
			return err
		}

		if err := w.visit(ctx, dep); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) stage(resolved string) error {
	if w.opts.DestDir == "" {
		return nil
	}
	if w.opts.DryRun {
		w.summary.Staged++
		w.opts.Logger("Would copy %s to %s", resolved, w.opts.DestDir)
		return nil
	}

	dest, skipped, err := w.opts.Stage(resolved, w.opts.DestDir)
	if err != nil {
		return err
	}
	if skipped {
		w.summary.Reused++
		w.opts.Logger("Skipping %s, already present", dest)
		return nil
	}
	w.summary.Staged++
	w.opts.Logger("Copying %s to %s", resolved, dest)
	return nil
}
