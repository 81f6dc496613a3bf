package shell_test

import (
	"strings"
	"testing"

	"github.com/jeffs/conf/internal/session"
	"github.com/jeffs/conf/internal/shell"
	"github.com/stretchr/testify/assert"
)

func testState() *session.State {
	st := session.NewState(nil)
	st.Set("EDITOR", session.String("hx"))
	st.Set("CDPATH", session.List("/a", "/b c"))
	st.Set("QUOTE", session.String("it's"))
	return st
}

func TestExports_PosixShell(t *testing.T) {
	output := shell.Exports(testState(), []string{"CDPATH", "EDITOR", "QUOTE", "ABSENT"}, "zsh")
	assert.Equal(t, "export CDPATH='/a:/b c'\nexport EDITOR='hx'\nexport QUOTE='it'\\''s'\n", output)
}

func TestExports_Bash(t *testing.T) {
	output := shell.Exports(testState(), []string{"EDITOR"}, "bash")
	assert.Contains(t, output, `export EDITOR='hx'`)
}

func TestExports_Fish(t *testing.T) {
	output := shell.Exports(testState(), []string{"CDPATH", "QUOTE"}, "fish")
	assert.Contains(t, output, `set -gx CDPATH '/a' '/b c'`)
	assert.Contains(t, output, `set -gx QUOTE 'it\'s'`)
}

func TestUnsets(t *testing.T) {
	assert.Equal(t, "unset A\nunset B\n", shell.Unsets([]string{"A", "B"}, "zsh"))
	assert.Equal(t, "set -e A\n", shell.Unsets([]string{"A"}, "fish"))
}

func TestHookSnippet_Zsh(t *testing.T) {
	snippet := shell.HookSnippet("zsh")
	assert.Contains(t, snippet, "precmd_functions")
	assert.Contains(t, snippet, "jsh prompt branch")
	assert.Contains(t, snippet, "jsh env --shell zsh")
}

func TestHookSnippet_Bash(t *testing.T) {
	snippet := shell.HookSnippet("bash")
	assert.Contains(t, snippet, "PROMPT_COMMAND")
	assert.Contains(t, snippet, "jsh prompt branch")
}

func TestHookSnippet_Fish(t *testing.T) {
	snippet := shell.HookSnippet("fish")
	assert.Contains(t, snippet, "--on-event fish_prompt")
	assert.Contains(t, snippet, "| source")
}

func TestHookSnippet_Delimited(t *testing.T) {
	for _, sh := range []string{"zsh", "bash", "fish"} {
		snippet := shell.HookSnippet(sh)
		assert.True(t, strings.HasPrefix(snippet, shell.HookBegin+" ("+sh+")\n"), sh)
		assert.True(t, strings.HasSuffix(snippet, shell.HookEnd+"\n"), sh)
	}
}

func TestHookSnippet_Unknown(t *testing.T) {
	assert.Empty(t, shell.HookSnippet("tcsh"))
	assert.False(t, shell.IsSupported("tcsh"))
	assert.True(t, shell.IsSupported("fish"))
}
