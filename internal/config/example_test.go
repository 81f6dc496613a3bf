package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeffs/conf/internal/config"
	"github.com/jeffs/conf/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `version = 1
env_file = "~/dotfiles/env.json"
interactive = true
log_root = "~/journal"

[bin]
jj = "/opt/bin/jj"
yazi = "/opt/bin/yazi"

[passthrough]
glow = ["glow", "--pager"]
jl = ["jj", "log", "-r", "all()"]`

	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "~/dotfiles/env.json", cfg.EnvFile)
	assert.Equal(t, "~/journal", cfg.LogRoot)
	assert.Equal(t, "/opt/bin/jj", cfg.Bin.JJ)
	assert.Equal(t, "/opt/bin/yazi", cfg.Bin.Yazi)
	assert.Equal(t, "jump", cfg.Bin.Jump)
	assert.Equal(t, []string{"glow", "--pager"}, cfg.Passthrough["glow"])

	interactive, set := cfg.IsInteractive()
	assert.True(t, set)
	assert.True(t, interactive)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := testutil.TempConfigFile(t, "")
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, config.DefaultEnvFile, cfg.EnvFile)
	assert.Equal(t, config.DefaultLogRoot, cfg.LogRoot)
	assert.Equal(t, "jj", cfg.Bin.JJ)
	assert.Equal(t, "eza", cfg.Bin.Eza)
	assert.NotEmpty(t, cfg.Bin.Opener)
	_, set := cfg.IsInteractive()
	assert.False(t, set)
}

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "this is not valid toml [[[")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidPassthrough(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty command", "[passthrough]\nx = []"},
		{"name with space", "[passthrough]\n\"a b\" = [\"ls\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(testutil.TempConfigFile(t, tt.content))
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestValidateFilePermissions(t *testing.T) {
	path := testutil.TempConfigFile(t, "version = 1")
	require.NoError(t, config.ValidateFilePermissions(path))

	require.NoError(t, os.Chmod(path, 0644))
	assert.Error(t, config.ValidateFilePermissions(path))
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "/home/u/.config/jsh/config.toml", config.DefaultPath("/home/u"))
}

func TestBinaries_Sorted(t *testing.T) {
	bins := config.Default().Binaries()
	for i := 1; i < len(bins); i++ {
		assert.Less(t, bins[i-1].Key, bins[i].Key)
	}
}
