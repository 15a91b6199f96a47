package ldd

import (
	"github.com/matzehuels/shipdeps/pkg/errors"
)

// Table maps sonames to resolved filesystem paths. It covers the entire
// transitive dependency closure of the executable it was built for, because
// the dynamic linker reports the full closure in one pass.
//
// A Table is built once by [Parse] or [Resolve] and is read-only during
// traversal, except for [Table.Seed] which registers the root binary.
type Table map[string]string

// Lookup returns the resolved path for a soname. A name absent from the
// table means the dependency closure is inconsistent (a binary names a
// library the linker never reported), which is a fatal condition.
func (t Table) Lookup(name string) (string, error) {
	path, ok := t[name]
	if !ok {
		return "", errors.New(errors.ErrCodeMissingLibrary, "no resolved path for %s", name)
	}
	return path, nil
}

// Seed registers a name → path entry. It is used to insert the root
// executable under its basename before traversal, since ldd reports only
// the executable's dependencies, not the executable itself.
func (t Table) Seed(name, path string) {
	t[name] = path
}
