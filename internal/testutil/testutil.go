// Package testutil provides common test helpers for the jsh project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempEnvFile creates a temporary env.json with the given content
// and returns its path. The file is automatically cleaned up.
func TempEnvFile(t *testing.T, content string) string {
	t.Helper()
	return writeTemp(t, "env.json", content, 0600)
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()
	return writeTemp(t, "config.toml", content, 0600)
}

// TempJumpDB creates a directory holding a single targets.yaml with the
// given content and returns the directory path.
func TempJumpDB(t *testing.T, content string) string {
	t.Helper()
	return filepath.Dir(writeTemp(t, "targets.yaml", content, 0600))
}

// WriteStub creates an executable /bin/sh script with the given body and
// returns its path. Used where a test needs a real process to spawn.
func WriteStub(t *testing.T, name, body string) string {
	t.Helper()
	return writeTemp(t, name, "#!/bin/sh\n"+body+"\n", 0755)
}

// Cwd returns the current working directory with symlinks resolved.
func Cwd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Cwd: %v", err)
	}
	return Resolve(t, wd)
}

// Resolve returns path with symlinks resolved, so that temp directories
// compare equal on systems where /tmp is itself a link.
func Resolve(t *testing.T, path string) string {
	t.Helper()

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return resolved
}

func writeTemp(t *testing.T, name, content string, perm os.FileMode) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writeTemp: write %s failed: %v", name, err)
	}

	return path
}
