package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lu0/novel-downloader/internal/scraper"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "output", cfg.Output)
	assert.Equal(t, 1, cfg.ChapterWorkers)
	assert.Equal(t, 30, cfg.TimeoutSec)
	assert.False(t, cfg.KeepChapters)
	assert.Equal(t, scraper.DefaultSelectors(), cfg.Selectors)
}

func Test_LoadMerged_IgnoreConfigAppliesFlags(t *testing.T) {
	cfg, used, err := LoadMerged(Options{
		IgnoreConfig:   true,
		Debug:          true,
		Output:         "/tmp/books",
		ChapterWorkers: 4,
		DefaultURL:     "https://novels.test/my-novel/",
	})

	require.NoError(t, err)
	assert.Equal(t, "(ignored config)", used)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/books", cfg.Output)
	assert.Equal(t, 4, cfg.ChapterWorkers)
	assert.Equal(t, "https://novels.test/my-novel/", cfg.DefaultURL)
}

func Test_LoadMerged_FlagsOverrideProfile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", "")

	_, err := InitDefaultConfig()
	require.NoError(t, err)

	active, err := ActiveConfigPath()
	require.NoError(t, err)

	stored := DefaultConfig()
	stored.DefaultURL = "https://novels.test/stored/"
	stored.ChapterWorkers = 2
	require.NoError(t, SaveYAML(stored, active))

	cfg, used, err := LoadMerged(Options{DefaultURL: "https://novels.test/flag/"})

	require.NoError(t, err)
	assert.Equal(t, active, used)
	assert.Equal(t, "https://novels.test/flag/", cfg.DefaultURL)
	assert.Equal(t, 2, cfg.ChapterWorkers, "profile value survives when the flag is unset")
}

func Test_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")

	cfg := DefaultConfig()
	cfg.DefaultURL = "https://novels.test/my-novel/"
	cfg.KeepChapters = true
	cfg.Selectors.Content = "#reader"
	cfg.Selectors.SkipLinks = 3

	require.NoError(t, SaveYAML(cfg, path))

	loaded, err := loadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func Test_NormalizeDefaults_FillsEmptySelectors(t *testing.T) {
	cfg := &Config{}

	normalizeDefaults(cfg)

	assert.Equal(t, "output", cfg.Output)
	assert.Equal(t, 1, cfg.ChapterWorkers)
	assert.Equal(t, 30, cfg.TimeoutSec)
	assert.Equal(t, scraper.DefaultSelectors(), cfg.Selectors)
}

func Test_SwitchConfig_UnknownLabel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", "")

	err := SwitchConfig("nope")

	assert.Error(t, err)
}

func Test_ListConfigs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", "")

	_, err := InitDefaultConfig()
	require.NoError(t, err)

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Default", list[0].Label)
	assert.True(t, list[0].Active)
}
