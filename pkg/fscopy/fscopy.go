// Package fscopy stages resolved library files into a destination directory.
package fscopy

import (
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"

	"github.com/matzehuels/shipdeps/pkg/errors"
)

// Stage copies src to destdir/basename(src), preserving permissions.
//
// If a file with that name already exists at the destination it is left
// untouched and skipped reports true; incremental invocations reuse
// previously staged files. Any other failure is fatal to the caller's
// traversal, so it is returned as-is without cleanup.
func Stage(src, destdir string) (dest string, skipped bool, err error) {
	dest = filepath.Join(destdir, filepath.Base(src))

	if _, err := os.Stat(dest); err == nil {
		return dest, true, nil
	} else if !os.IsNotExist(err) {
		return dest, false, errors.Wrap(errors.ErrCodeIO, err, "stat %s", dest)
	}

	opts := cp.Options{PermissionControl: cp.PerservePermission}
	if err := cp.Copy(src, dest, opts); err != nil {
		return dest, false, errors.Wrap(errors.ErrCodeIO, err, "copy %s to %s", src, dest)
	}
	return dest, false, nil
}
