//go:build linux

package elfbin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/shipdeps/pkg/errors"
)

func TestNeededDynamicBinary(t *testing.T) {
	bin := "/bin/sh"
	if _, err := os.Stat(bin); err != nil {
		t.Skipf("%s not available: %v", bin, err)
	}

	libs, err := Needed(bin)
	if err != nil {
		t.Fatalf("Needed(%s): %v", bin, err)
	}
	if len(libs) == 0 {
		t.Fatalf("no DT_NEEDED entries for %q", bin)
	}
	// Every entry is a soname, not a path.
	for _, lib := range libs {
		if strings.Contains(lib, "/") {
			t.Errorf("entry %q looks like a path, want a soname", lib)
		}
	}
}

func TestNeededNotELF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("not an elf file"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Needed(path)
	if err == nil {
		t.Fatal("expected error for non-ELF file")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeIO {
		t.Errorf("code = %q, want %q", got, errors.ErrCodeIO)
	}
}

func TestNeededMissingFile(t *testing.T) {
	_, err := Needed(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
