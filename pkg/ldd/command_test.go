//go:build unix

package ldd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shipdeps/pkg/errors"
)

// stubTool writes an executable shell script that mimics ldd.
func stubTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ldd")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommandResolve(t *testing.T) {
	tool := stubTool(t, `printf '\tlibz.so.1 => /lib/libz.so.1 (0x1)\n\t/lib64/ld-linux-x86-64.so.2 (0x2)\n'`)

	table, err := Command{Program: tool}.Resolve(context.Background(), "/usr/bin/app")
	require.NoError(t, err)
	assert.Equal(t, Table{
		"libz.so.1":                   "/lib/libz.so.1",
		"/lib64/ld-linux-x86-64.so.2": "/lib64/ld-linux-x86-64.so.2",
	}, table)
}

func TestCommandResolveStaticExecutable(t *testing.T) {
	tool := stubTool(t, `printf '\tnot a dynamic executable\n' >&2; exit 1`)

	table, err := Command{Program: tool}.Resolve(context.Background(), "/usr/bin/static")
	require.NoError(t, err)
	assert.Empty(t, table, "static executables resolve to an empty table")
}

func TestCommandResolveToolFailure(t *testing.T) {
	tool := stubTool(t, `echo "boom" >&2; exit 2`)

	_, err := Command{Program: tool}.Resolve(context.Background(), "/usr/bin/app")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeLddFailed, errors.GetCode(err))
	assert.Contains(t, err.Error(), "boom")
}
