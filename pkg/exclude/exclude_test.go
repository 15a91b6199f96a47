package exclude

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/shipdeps/pkg/errors"
)

func TestMatch(t *testing.T) {
	list, err := New("libfoo.so*", "libbar.so.?", "lib[xyz].so")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		arg  string
		want bool
	}{
		{"StarSuffix", "libfoo.so.1.2.3", true},
		{"ExactStem", "libfoo.so", true},
		{"QuestionMark", "libbar.so.5", true},
		{"QuestionMarkTooLong", "libbar.so.55", false},
		{"BracketClass", "liby.so", true},
		{"BracketClassMiss", "libw.so", false},
		{"NoMatch", "libqt.so.5", false},
		{"DefaultLoader", "ld-linux-x86-64.so.2", true},
		{"DefaultLoaderGeneric", "ld-linux.so.3", true},
		{"BasenameOnly", "/very/deep/path/libfoo.so.1", true},
		{"CaseSensitive", "LIBFOO.SO.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := list.Match(tt.arg); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestDefaultOnlyLoaders(t *testing.T) {
	list := Default()
	if list.Match("libc.so.6") {
		t.Error("defaults must not exclude ordinary libraries")
	}
	if !list.Match("ld-linux.so.2") {
		t.Error("defaults must exclude the dynamic loader")
	}
}

func TestNewInvalidPattern(t *testing.T) {
	_, err := New("lib[.so") // unterminated character class
	if err == nil {
		t.Fatal("expected error for malformed pattern")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidPattern {
		t.Errorf("code = %q, want %q", got, errors.ErrCodeInvalidPattern)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.txt")
	content := `# loader noise
libssl.so*

  libcrypto.so*
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	list := Default()
	if err := list.Load(path); err != nil {
		t.Fatal(err)
	}

	// File patterns are appended after the built-in defaults.
	want := append(Default().Patterns(), "libssl.so*", "libcrypto.so*")
	got := list.Patterns()
	if len(got) != len(want) {
		t.Fatalf("patterns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("patterns[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if !list.Match("libssl.so.3") {
		t.Error("loaded pattern should match")
	}
}

func TestLoadMissingFile(t *testing.T) {
	list := Default()
	err := list.Load(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing exclude file")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeIO {
		t.Errorf("code = %q, want %q", got, errors.ErrCodeIO)
	}
}
