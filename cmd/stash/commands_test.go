// cmd/stash/commands_test.go
// TEST TYPE: CLI Test
// DEPENDENCIES: Real filesystem (temp dir)
// PURPOSE: Test the stash commands end to end

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/stash/pkg/filesystem"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestSaveGetDelete(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(filesystem.EnvDataDir, dir)

	require.NoError(t, runCommand(t, "save", "message.txt", "Hello World!"))

	content, err := os.ReadFile(filepath.Join(dir, "message.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", string(content))

	require.NoError(t, runCommand(t, "get", "message.txt"))

	require.NoError(t, runCommand(t, "delete", "message.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "message.txt"))
}

func TestGet_MissingFile(t *testing.T) {
	t.Setenv(filesystem.EnvDataDir, t.TempDir())

	err := runCommand(t, "get", "never-saved.txt")
	assert.Error(t, err)
}

func TestConfigDataDir(t *testing.T) {
	t.Setenv(filesystem.EnvDataDir, "")

	dataDir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data_dir = \""+dataDir+"\"\n"), 0644))

	require.NoError(t, runCommand(t, "--config", cfgPath, "save", "note.txt", "from config"))
	assert.FileExists(t, filepath.Join(dataDir, "note.txt"))
}
