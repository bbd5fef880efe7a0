package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	dir := filepath.Join(home, ".dictpanel")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0600))
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DICTPANEL_HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.ActiveProfile)
	assert.False(t, cfg.IsValid())
	assert.Equal(t, DefaultLocale, cfg.Locale())
	assert.Equal(t, DefaultDownloadDir, cfg.DownloadDir())
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout())

	info, err := os.Stat(filepath.Join(home, ".dictpanel", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfig_EnvOverridesProfile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `{
		"profiles": {"prod": {"base_url": "https://mb.example.com", "session_token": "s1", "locale": "es"}},
		"active_profile": "prod"
	}`)
	t.Setenv("DICTPANEL_HOME", home)
	t.Setenv("DICTPANEL_SESSION_TOKEN", "s2")
	t.Setenv("DICTPANEL_HTTP_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsValid())
	assert.Equal(t, "https://mb.example.com", cfg.BaseURL())
	assert.Equal(t, "s2", cfg.SessionToken())
	assert.Equal(t, "es", cfg.Locale())
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout())
}

func TestLoadConfig_BadTimeout(t *testing.T) {
	t.Setenv("DICTPANEL_HOME", t.TempDir())
	t.Setenv("DICTPANEL_HTTP_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_MissingActiveProfileFallsBack(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `{"profiles": {"b": {}, "a": {"base_url": "http://a"}}, "active_profile": "gone"}`)
	t.Setenv("DICTPANEL_HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "a", cfg.ActiveProfile)
	assert.Equal(t, "http://a", cfg.BaseURL())
}

func TestUseAndSave(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `{"profiles": {"a": {"base_url": "http://a"}, "b": {"base_url": "http://b"}}, "active_profile": "a"}`)
	t.Setenv("DICTPANEL_HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Error(t, cfg.Use("missing"))
	require.NoError(t, cfg.Use("b"))
	require.NoError(t, cfg.Save())

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "b", again.ActiveProfile)
	assert.Equal(t, "http://b", again.BaseURL())
	assert.Equal(t, []string{"a", "b"}, again.ProfileNames())
}
