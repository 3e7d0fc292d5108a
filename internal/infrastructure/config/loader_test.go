package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lectern/internal/domain/entity"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	return root
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestSetDefaults(t *testing.T) {
	isolateXDG(t)
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 10000, mgr.viper.GetInt("presentation.autoplay_interval_ms"))
	assert.Equal(t, 50, mgr.viper.GetInt("presentation.swipe_threshold_px"))
	assert.Equal(t, "both", mgr.viper.GetString("presentation.language"))
	assert.Equal(t, "#ef3340", mgr.viper.GetString("appearance.palette.accent"))
	assert.False(t, mgr.viper.GetBool("appearance.high_contrast"))
	assert.Equal(t, "127.0.0.1:7331", mgr.viper.GetString("server.addr"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	want := filepath.Join(root, "config", "lectern", "config.toml")
	assert.Equal(t, want, mgr.ConfigFile())
	assert.FileExists(t, want)

	cfg := mgr.Get()
	assert.Equal(t, 10*time.Second, cfg.Presentation.AutoplayInterval())
	assert.Equal(t, entity.LanguageBoth, cfg.Presentation.LanguageMode())
	assert.Equal(t, ExportFormatHTML, cfg.Export.Format)
	assert.Equal(t, filepath.Join(root, "state", "lectern", "logs"), cfg.Logging.LogDir)
	assert.Equal(t, filepath.Join(root, "data", "lectern", "exports"), cfg.Export.Dir)
}

func TestManager_LoadReadsFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "custom", "lectern.toml")
	writeConfig(t, path, `
[presentation]
autoplay_interval_ms = 2500
language = "VI"

[export]
format = "md"

[deck]
path = "  ./talk.yaml "
`)

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 2500*time.Millisecond, cfg.Presentation.AutoplayInterval())
	assert.Equal(t, entity.LanguageVietnamese, cfg.Presentation.LanguageMode())
	assert.Equal(t, ExportFormatMarkdown, cfg.Export.Format)
	assert.Equal(t, "./talk.yaml", cfg.Deck.Path)
	// untouched keys keep their defaults
	assert.Equal(t, 50, cfg.Presentation.SwipeThresholdPx)
}

func TestManager_EnvOverrides(t *testing.T) {
	root := isolateXDG(t)
	t.Setenv("LECTERN_PRESENTATION_SWIPE_THRESHOLD_PX", "80")
	t.Setenv("LECTERN_SERVER_ADDR", "0.0.0.0:9000")
	t.Setenv("LECTERN_LOG_LEVEL", "debug")

	mgr, err := NewManagerForFile(filepath.Join(root, "c.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 80, cfg.Presentation.SwipeThresholdPx)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "bad.toml")
	writeConfig(t, path, `
[presentation]
autoplay_interval_ms = 0
language = "fr"
`)

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presentation.autoplay_interval_ms must be positive")
	assert.Contains(t, err.Error(), "presentation.language must be one of: en, vi, both")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "broken.toml")
	writeConfig(t, path, "[presentation\nautoplay_interval_ms = ")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManagerForFile(filepath.Join(t.TempDir(), "c.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Presentation, mgr.Get().Presentation)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	root := isolateXDG(t)
	mgr, err := NewManagerForFile(filepath.Join(root, "c.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Presentation.AutoplayIntervalMs = 1

	assert.Equal(t, 10000, mgr.Get().Presentation.AutoplayIntervalMs)
}

func TestNewManagerForFile_EmptyPath(t *testing.T) {
	_, err := NewManagerForFile("")
	require.Error(t, err)
}
