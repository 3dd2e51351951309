package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fatal error (missing input directory) must exit non-zero and leave no
// partial output file behind, even when --output was requested.
func TestFatalErrorWritesNoOutputFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.csv")

	cmd := newRootCmd()
	cmd.SetArgs([]string{filepath.Join(dir, "nope"), "--output", out, "--color", "never"})
	require.Error(t, cmd.Execute())

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "fatal error must not create the output file")
}

func TestMissingInputDirArgIsAnError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--color", "never"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input directory")
}
