package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeffs/conf/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShell_Zsh(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	assert.Equal(t, "zsh", DetectShell())
}

func TestDetectShell_Bash(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/bash")
	assert.Equal(t, "bash", DetectShell())
}

func TestDetectShell_Fish(t *testing.T) {
	t.Setenv("SHELL", "/usr/local/bin/fish")
	assert.Equal(t, "fish", DetectShell())
}

func TestDetectShell_LoginAndUnset(t *testing.T) {
	t.Setenv("SHELL", "-zsh")
	assert.Equal(t, "zsh", DetectShell())

	t.Setenv("SHELL", "")
	assert.Empty(t, DetectShell())
}

func TestShellRCPath(t *testing.T) {
	assert.Equal(t, "/h/.zshrc", ShellRCPath("zsh", "/h"))
	assert.Equal(t, "/h/.bashrc", ShellRCPath("bash", "/h"))
	assert.Equal(t, "/h/.config/fish/conf.d/jsh.fish", ShellRCPath("fish", "/h"))
	assert.Empty(t, ShellRCPath("tcsh", "/h"))
}

func TestInstallShellHook_Zsh(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")

	action, err := InstallShellHook("zsh", rcPath)
	require.NoError(t, err)
	assert.Equal(t, HookAppended, action)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "jsh shell integration")
	assert.Contains(t, string(content), "jsh prompt branch")
}

func TestInstallShellHook_FishCreatesDirs(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".config", "fish", "conf.d", "jsh.fish")

	_, err := InstallShellHook("fish", rcPath)
	require.NoError(t, err)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, shell.HookSnippet("fish"), string(content))
}

func TestInstallShellHook_Idempotent(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("alias ll='ls -l'\n"), 0600))

	_, err := InstallShellHook("bash", rcPath)
	require.NoError(t, err)
	first, err := os.ReadFile(rcPath)
	require.NoError(t, err)

	action, err := InstallShellHook("bash", rcPath)
	require.NoError(t, err)
	assert.Equal(t, HookUnchanged, action)
	second, err := os.ReadFile(rcPath)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(second), "alias ll='ls -l'")
}

func TestInstallShellHook_Unsupported(t *testing.T) {
	_, err := InstallShellHook("tcsh", filepath.Join(t.TempDir(), ".tcshrc"))
	assert.Error(t, err)
}

func TestInstallShellHook_ReplacesOutdatedBlock(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")
	old := "export A=1\n" +
		shell.HookBegin + " (zsh)\neval \"$(jsh env)\"\n" + shell.HookEnd + "\n" +
		"alias g=git\n"
	require.NoError(t, os.WriteFile(rcPath, []byte(old), 0600))

	action, err := InstallShellHook("zsh", rcPath)
	require.NoError(t, err)
	assert.Equal(t, HookReplaced, action)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, "export A=1\n"+shell.HookSnippet("zsh")+"alias g=git\n", string(content))
}

func TestInstallShellHook_UnterminatedBlockLeftAlone(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	edited := shell.HookBegin + " (bash)\n# hand edited\n"
	require.NoError(t, os.WriteFile(rcPath, []byte(edited), 0600))

	action, err := InstallShellHook("bash", rcPath)
	require.NoError(t, err)
	assert.Equal(t, HookUnchanged, action)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, edited, string(content))
}

func TestInstallShellHook_MissingTrailingNewline(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("alias g=git"), 0600))

	_, err := InstallShellHook("zsh", rcPath)
	require.NoError(t, err)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, "alias g=git\n\n"+shell.HookSnippet("zsh"), string(content))
}
