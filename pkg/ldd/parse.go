// Package ldd builds the soname → path table for an executable by invoking
// the platform's dynamic-linker introspection tool and parsing its output.
//
// ldd reports the executable's full transitive dependency closure in one
// pass, so a single invocation against the root binary is enough to resolve
// every library the traversal will ever encounter. Output lines come in
// three shapes:
//
//	linux-vdso.so.1 =>  (0x00007ffd6f3cd000)                        virtual, no file
//	libcrypto.so.1.0.0 => /opt/app/libcrypto.so.1.0.0 (0x00007f5e)  resolved
//	/lib64/ld-linux-x86-64.so.2 (0x0000562cf1094000)                loader, self-resolving
//
// Unresolvable libraries appear as "name => not found"; all such names are
// collected and reported together in a single [errors.MissingLibrariesError].
package ldd

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/shipdeps/pkg/errors"
)

// Parse reads dynamic-linker output and accumulates a soname → path table.
//
// Lines are independent; later duplicate keys overwrite earlier ones. Blank
// lines and virtual entries ("=>  (" with no path) contribute nothing. A
// bare-path line maps its first token to itself. A "not found" entry still
// occupies its key (pointing at the literal status text) so lookups fail
// predictably, but any such entry makes Parse fail as a whole with a
// MissingLibrariesError naming every missing soname in input order.
func Parse(r io.Reader) (Table, error) {
	table := make(Table)
	var missing []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		// Virtual objects (vdso) have an arrow but no file behind it.
		if strings.Contains(line, "=>  (") {
			continue
		}

		tokens := strings.Fields(line)

		if !strings.Contains(line, "=>") {
			// Loader-style line: one bare path, self-resolving.
			table[tokens[0]] = tokens[0]
			continue
		}

		if len(tokens) < 2 || tokens[1] != "=>" {
			return nil, errors.New(errors.ErrCodeParse, "unexpected ldd line: %q", line)
		}
		if len(tokens) < 3 {
			return nil, errors.New(errors.ErrCodeParse, "unexpected ldd line: %q", line)
		}

		name := tokens[0]
		if len(tokens) >= 4 && tokens[2] == "not" && tokens[3] == "found" {
			missing = append(missing, name)
			table[name] = "not found"
			continue
		}

		table[name] = tokens[2]
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "reading ldd output")
	}

	if len(missing) > 0 {
		return nil, &errors.MissingLibrariesError{Names: missing}
	}
	return table, nil
}
