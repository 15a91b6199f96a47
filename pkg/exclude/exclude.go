// Package exclude decides which libraries are omitted from staging and from
// further traversal, using ordered shell-glob patterns.
package exclude

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/shipdeps/pkg/errors"
)

// defaultPatterns excludes Linux dynamic loaders. They do not fit the
// soname => path shape of ldd output and belong to the target platform,
// never to the staged bundle.
var defaultPatterns = []string{
	"ld-linux.so.*",
	"ld-linux-x86-64.so.*",
}

// List is an ordered sequence of glob patterns. Any match excludes; order
// is preserved for diagnostics. A List is read-only during traversal.
type List struct {
	patterns []string
}

// Default returns a List containing only the built-in loader exclusions.
func Default() *List {
	return &List{patterns: append([]string(nil), defaultPatterns...)}
}

// New returns a List with the given patterns appended to the defaults.
// Each pattern is validated eagerly so the traversal never encounters a
// malformed one.
func New(patterns ...string) (*List, error) {
	l := Default()
	if err := l.add(patterns); err != nil {
		return nil, err
	}
	return l, nil
}

// Load appends patterns read from a file, one per line. Blank lines and
// lines starting with '#' are ignored.
func (l *List) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "open exclude file %s", path)
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read exclude file %s", path)
	}
	return l.add(patterns)
}

// Patterns returns the patterns in order. The returned slice is a copy.
func (l *List) Patterns() []string {
	return append([]string(nil), l.patterns...)
}

// Match reports whether the name's final path component matches any
// pattern. The first match wins; remaining patterns are not evaluated.
func (l *List) Match(name string) bool {
	base := filepath.Base(name)
	for _, pattern := range l.patterns {
		// Patterns are validated on the way in, so Match cannot fail here.
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func (l *List) add(patterns []string) error {
	for _, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPattern, err, "pattern %q", pattern)
		}
		l.patterns = append(l.patterns, pattern)
	}
	return nil
}
