package executor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInterpreter puts a stub python3 on a private PATH so tests do not depend
// on a real Python installation.
func fakeInterpreter(t *testing.T, script string) {
	bin := t.TempDir()
	path := filepath.Join(bin, "python3")

	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	t.Setenv("PATH", bin)
}

func TestNewCreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")

	_, err := New(dir)

	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestWriteAndRun(t *testing.T) {
	fakeInterpreter(t, `echo "ran $1"`)

	e, err := New(t.TempDir())
	require.NoError(t, err)

	result, err := e.WriteAndRun(context.Background(), "print('hello')")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Stdout, "ran "))
	assert.Empty(t, result.Stderr)
	assert.FileExists(t, result.ScriptPath)

	written, err := os.ReadFile(result.ScriptPath)
	require.NoError(t, err)
	assert.Equal(t, "print('hello')", string(written))
}

func TestWriteAndRunScriptFailureIsNotAnError(t *testing.T) {
	fakeInterpreter(t, "echo 'Traceback' >&2; exit 1")

	e, err := New(t.TempDir())
	require.NoError(t, err)

	result, err := e.WriteAndRun(context.Background(), "raise Exception()")

	require.NoError(t, err)
	assert.Contains(t, result.Stderr, "Traceback")
}

func TestWriteAndRunNoInterpreter(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	e, err := New(t.TempDir())
	require.NoError(t, err)

	result, err := e.WriteAndRun(context.Background(), "print('hello')")

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "no python interpreter")
}

func TestInstallPackages(t *testing.T) {
	fakeInterpreter(t, `echo "$@"`)

	e, err := New(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, e.InstallPackages(context.Background(), []string{"numpy", "requests"}))
}

func TestInstallPackagesEmpty(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	e, err := New(t.TempDir())
	require.NoError(t, err)

	// Nothing to install: must not even look for an interpreter.
	assert.NoError(t, e.InstallPackages(context.Background(), nil))
}
