package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hamidzr/movebox/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitCLI tests CLI initialization
func TestInitCLI(t *testing.T) {
	cmd := InitCLI()

	require.NotNil(t, cmd)
	assert.Equal(t, "movebox", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

// TestCLIFlags tests that CLI flags are properly defined
func TestCLIFlags(t *testing.T) {
	cmd := InitCLI()
	flags := cmd.PersistentFlags()

	for _, name := range []string{
		"title", "duration", "easing", "overlap",
		"element-width", "element-height", "padding-left", "padding-right",
		"window-width", "window-height", "terminal", "log-level",
		"remember-window", "init-config",
	} {
		assert.NotNil(t, flags.Lookup(name), "%s flag should exist", name)
	}

	assert.Equal(t, "1000", flags.Lookup("duration").DefValue)
	assert.Equal(t, "ease-in-out", flags.Lookup("easing").DefValue)
}

// TestCLIConfigInitialization tests --init-config writing the default file
func TestCLIConfigInitialization(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	cmd := InitCLI()
	cmd.SetArgs([]string{"--init-config"})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(home, ".config", "movebox", "config.yaml"))
	require.NoError(t, err)

	// a second run refuses to overwrite
	cmd = InitCLI()
	cmd.SetArgs([]string{"--init-config"})
	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInvalidConfigFailsBeforeStart(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	cmd := InitCLI()
	cmd.SetArgs([]string{"--overlap", "queue"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidOverlapPolicy)
}

func TestWindowCacheDisabled(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.RememberWindow = false
	assert.Nil(t, windowCache(cfg))
}

func TestWindowCacheEnabled(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache := windowCache(model.DefaultConfig())
	require.NotNil(t, cache)

	cached, err := cache.LoadCache()
	require.NoError(t, err)
	assert.False(t, cached.Valid())
}
