package prompt_test

import (
	"context"
	"os"
	"testing"

	"github.com/jeffs/conf/internal/navigate"
	"github.com/jeffs/conf/internal/prompt"
	"github.com/jeffs/conf/internal/testutil"
	"github.com/jeffs/conf/internal/vcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const logCmd = "jj log -r heads(::@ & bookmarks()) --no-graph -T bookmarks ++ ' '"

func resolver(fake *testutil.FakeRunner) *prompt.BranchResolver {
	return &prompt.BranchResolver{Source: vcs.NewAdapter(fake, "")}
}

func TestResolve_Success(t *testing.T) {
	fake := testutil.NewFakeRunner()
	fake.Register(logCmd, "main \n", 0)

	got, ok := resolver(fake).Resolve(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "main", got)
}

func TestResolve_EmptyBookmarksIsPresent(t *testing.T) {
	fake := testutil.NewFakeRunner()
	fake.Register(logCmd, "", 0)

	got, ok := resolver(fake).Resolve(context.Background())
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestResolve_NotARepo(t *testing.T) {
	fake := testutil.NewFakeRunner()
	fake.Register(logCmd, "", 1)

	got, ok := resolver(fake).Resolve(context.Background())
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestResolve_JJMissing(t *testing.T) {
	fake := testutil.NewFakeRunner()
	fake.RegisterMissing("jj")

	_, ok := resolver(fake).Resolve(context.Background())
	assert.False(t, ok)
}

func TestResolve_NotCached(t *testing.T) {
	fake := testutil.NewFakeRunner()
	fake.Register(logCmd, "a", 0)
	r := resolver(fake)

	r.Resolve(context.Background())
	fake.Register(logCmd, "b", 0)
	got, _ := r.Resolve(context.Background())

	assert.Equal(t, "b", got)
	assert.Equal(t, 2, fake.CallCount("jj log"))
}

func TestResolve_NilResolver(t *testing.T) {
	var r *prompt.BranchResolver
	_, ok := r.Resolve(context.Background())
	assert.False(t, ok)
}

func TestDefaultFields(t *testing.T) {
	home := t.TempDir()
	t.Chdir(home)
	fake := testutil.NewFakeRunner()
	fake.Register(logCmd, "dev", 0)

	wd, err := os.Getwd()
	require.NoError(t, err)

	fields := prompt.DefaultFields(resolver(fake), &navigate.Navigator{Home: wd})
	assert.Equal(t, []string{prompt.FieldBranch, prompt.FieldCwd}, fields.Names())

	values := fields.Resolve(context.Background())
	assert.Equal(t, "dev", values[prompt.FieldBranch])
	assert.Equal(t, "~", values[prompt.FieldCwd])
}

func TestFields_ResolveDropsAbsent(t *testing.T) {
	fake := testutil.NewFakeRunner()
	fake.RegisterMissing("jj")
	fields := prompt.Fields{prompt.FieldBranch: resolver(fake).Resolve}

	assert.Empty(t, fields.Resolve(context.Background()))
}

func TestLine(t *testing.T) {
	assert.Equal(t, "~/src [main] $ ", prompt.Line(map[string]string{"cwd": "~/src", "curr_branch": "main"}, false))
	assert.Equal(t, "~/src $ ", prompt.Line(map[string]string{"cwd": "~/src"}, false))
	assert.Equal(t, "$ ", prompt.Line(nil, false))
}
