package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdInlineMove(t *testing.T) {
	srcDir, destDir := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "lime.txt"), []byte("lime"), 0644))
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"-s", srcDir, "-d", destDir, "m/lime/Lime Files"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "moved")
	moved, err := os.ReadFile(filepath.Join(destDir, "Lime Files", "lime.txt"))
	require.NoError(t, err)
	assert.Equal(t, "lime", string(moved))
	_, err = os.Stat(filepath.Join(srcDir, "lime.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCmdDryRun(t *testing.T) {
	srcDir, destDir := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "lime.txt"), []byte("lime"), 0644))
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"-n", "-s", srcDir, "-d", destDir, "m/lime/Lime Files"})
	defer func() { dryRun = false }()

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "would move")
	assert.Contains(t, buf.String(), "dry run")
	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = os.Stat(filepath.Join(srcDir, "lime.txt"))
	assert.NoError(t, err)
}

func TestVersionCmd(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	rootCmd.SetArgs([]string{"version"})
	assert.NoError(t, rootCmd.Execute())
}
