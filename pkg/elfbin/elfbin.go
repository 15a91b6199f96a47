// Package elfbin reads direct shared-library dependencies from a binary's
// ELF dynamic section.
//
// Unlike [ldd], which reports the full transitive closure with resolved
// paths, this package answers a narrower question: which sonames does this
// one binary name directly, and in what order. The traversal uses it to
// walk the dependency graph edge by edge.
package elfbin

import (
	"debug/elf"

	"github.com/matzehuels/shipdeps/pkg/errors"
)

// Needed returns the sonames the binary at path directly requires, in the
// order they are declared in its dynamic section (DT_NEEDED entries).
//
// A binary with no dynamic section yields an empty list, not an error:
// statically linked binaries are ordinary leaves of the dependency graph.
// A file that cannot be opened or is not valid ELF is an error.
func Needed(path string) ([]string, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	libs, err := f.ImportedLibraries()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read dynamic section of %s", path)
	}
	return libs, nil
}
