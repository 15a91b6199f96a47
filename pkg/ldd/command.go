package ldd

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/shipdeps/pkg/errors"
)

// Command configures a dynamic-linker introspection invocation.
//
// The environment is explicit rather than inherited: ldd output is parsed
// textually, so the invocation always pins LANG=C to keep the output
// untranslated. Callers never mutate process-wide state to achieve this.
type Command struct {
	// Program is the introspection tool to run. Empty means "ldd".
	Program string

	// Env is the complete environment for the invocation. Empty means
	// just LANG=C. LD_PRELOAD and friends are deliberately not inherited.
	Env []string
}

// Resolve runs the command against executable and parses the resulting
// closure into a Table.
//
// A statically linked executable ("not a dynamic executable") yields an
// empty table, matching the traversal's treatment of "no dependencies" as
// a normal leaf condition. Any other tool failure is ErrCodeLddFailed.
func (c Command) Resolve(ctx context.Context, executable string) (Table, error) {
	program := c.Program
	if program == "" {
		program = "ldd"
	}
	env := c.Env
	if len(env) == 0 {
		env = []string{"LANG=C"}
	}

	cmd := exec.CommandContext(ctx, program, executable)
	cmd.Env = env

	out, err := cmd.CombinedOutput()
	if err != nil {
		if strings.Contains(string(out), "not a dynamic executable") {
			return make(Table), nil
		}
		return nil, errors.Wrap(errors.ErrCodeLddFailed, err,
			"%s %s: %s", program, executable, strings.TrimSpace(string(out)))
	}

	return Parse(bytes.NewReader(out))
}

// Resolve runs ldd with the default configuration. See [Command.Resolve].
func Resolve(ctx context.Context, executable string) (Table, error) {
	return Command{}.Resolve(ctx, executable)
}
