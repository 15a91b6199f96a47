// Package pkg provides the core libraries for shipdeps dependency staging.
//
// # Overview
//
// shipdeps computes the transitive closure of shared-library dependencies
// of an executable and stages a copy of every non-excluded dependency into
// a destination directory, optionally emitting a Graphviz graph of the
// traversal. The pkg directory is organized by concern:
//
//  1. [ldd] - Dynamic-linker introspection (soname → path table)
//  2. [elfbin] - Direct dependency reading from ELF dynamic sections
//  3. [exclude] - Glob-based exclusion lists
//  4. [deptree] - The depth-first dependency traversal
//  5. [graphio] - DOT emission and Graphviz rendering
//  6. [fscopy] - File staging into the destination directory
//  7. [config] - TOML defaults file
//  8. [errors] - Structured error codes
//
// # Architecture
//
// The typical data flow through shipdeps:
//
//	ldd output ──► [ldd] soname path table
//	                      │
//	ELF DT_NEEDED ──► [deptree] depth-first walk ──► [fscopy] staging
//	                      │
//	                 [graphio] DOT / SVG / PNG
//
// # Quick Start
//
// Resolve a binary's closure and stage its libraries:
//
//	table, _ := ldd.Resolve(ctx, "/usr/bin/app")
//	table.Seed("app", "/usr/bin/app")
//
//	w := deptree.New(table, exclude.Default(), deptree.Options{
//	    DestDir: "dist",
//	})
//	summary, _ := w.Walk(ctx, "app")
//
// [ldd]: https://pkg.go.dev/github.com/matzehuels/shipdeps/pkg/ldd
// [elfbin]: https://pkg.go.dev/github.com/matzehuels/shipdeps/pkg/elfbin
// [exclude]: https://pkg.go.dev/github.com/matzehuels/shipdeps/pkg/exclude
// [deptree]: https://pkg.go.dev/github.com/matzehuels/shipdeps/pkg/deptree
// [graphio]: https://pkg.go.dev/github.com/matzehuels/shipdeps/pkg/graphio
// [fscopy]: https://pkg.go.dev/github.com/matzehuels/shipdeps/pkg/fscopy
// [config]: https://pkg.go.dev/github.com/matzehuels/shipdeps/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/shipdeps/pkg/errors
package pkg
