package jump_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeffs/conf/internal/jump"
	"github.com/jeffs/conf/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, content string) *jump.DB {
	t.Helper()
	db, err := jump.Load([]string{testutil.TempJumpDB(t, content)})
	require.NoError(t, err)
	return db
}

func TestReadFile_Shapes(t *testing.T) {
	tests := []struct {
		name, yaml, key, want string
	}{
		{"single key", "~/conf: c\n", "c", "~/conf"},
		{"list of keys", "~/conf: [c, conf]\n", "conf", "~/conf"},
		{"quoted value", "\"value with spaces\": key\n", "key", "value with spaces"},
		{"quoted key", "~/path: \"key with spaces\"\n", "key with spaces", "~/path"},
		{"quoted key in list", "~/path: [simple, \"key with spaces\"]\n", "key with spaces", "~/path"},
		{"comments", "# comment\n~/conf: c\n", "c", "~/conf"},
		{"blank lines", "\n~/conf: c\n\n", "c", "~/conf"},
		{"url", "https://example.com: ex\n", "ex", "https://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parse(t, tt.yaml).Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFile_EmptyFile(t *testing.T) {
	assert.Equal(t, 0, parse(t, "").Len())
}

func TestReadFile_Invalid(t *testing.T) {
	dir := testutil.TempJumpDB(t, "~/conf: {nested: map}\n")
	_, err := jump.Load([]string{dir})
	assert.Error(t, err)

	dir = testutil.TempJumpDB(t, "- just\n- a list\n")
	_, err = jump.Load([]string{dir})
	assert.Error(t, err)
}

func TestLoad_LaterOverrides(t *testing.T) {
	first := testutil.TempJumpDB(t, "/first: x\n/only-first: a\n")
	second := testutil.TempJumpDB(t, "/second: x\n")

	db, err := jump.Load([]string{first, second})
	require.NoError(t, err)

	got, _ := db.Get("x")
	assert.Equal(t, "/second", got)
	got, _ = db.Get("a")
	assert.Equal(t, "/only-first", got)
}

func TestReadDir_NameOrderAndExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("/from-b: k\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("/from-a: k\n/a-only: a\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("not yaml: ["), 0600))

	db, err := jump.Load([]string{dir})
	require.NoError(t, err)

	got, _ := db.Get("k")
	assert.Equal(t, "/from-b", got)
	assert.Equal(t, 2, db.Len())
}

func TestLoad_MissingDirIgnored(t *testing.T) {
	db, err := jump.Load([]string{"/nonexistent/jump"})
	require.NoError(t, err)
	assert.Equal(t, 0, db.Len())
}

func TestDirs(t *testing.T) {
	assert.Equal(t, []string{"/home/u/.config/jump"}, jump.Dirs("", "/home/u"))
	assert.Equal(t, []string{"/a", "/b"}, jump.Dirs("/a::/b", "/home/u"))
}
