package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/bnema/lectern/internal/infrastructure/deckfile"
)

// isolate points every XDG directory at a temp dir and returns a config
// file path inside it.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("LECTERN_LOG_LEVEL", "error")
	return filepath.Join(root, "config", "lectern", "config.toml")
}

func resetFlags() {
	configFile, deckPath = "", ""
	deckLang = ""
	exportFormat, exportOut, exportLang, exportNotes = "", "", "", false
	configKeysSection, configKeysJSON = "", false
	logsFollow, logsLines, logsClearAll = false, defaultLogsLines, false
	presentAutoplay, presentLang, presentNoWatch = false, "", false
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDeckList(t *testing.T) {
	cfg := isolate(t)

	out, err := execute(t, "--config", cfg, "deck", "list", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Singapore")
	assert.Contains(t, out, "welcome")
	assert.Contains(t, out, "food-cuisine")
	assert.FileExists(t, cfg)
}

func TestDeckList_UnknownLanguage(t *testing.T) {
	cfg := isolate(t)

	_, err := execute(t, "--config", cfg, "deck", "list", "--lang", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown language "fr"`)
}

func TestDeckValidate(t *testing.T) {
	cfg := isolate(t)

	t.Run("bundled deck", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "deck", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "bundled deck is valid")
		assert.Contains(t, out, "14 slides")
	})

	t.Run("file from argument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "talk.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title: Talk\nslides:\n  - {id: '1', slug: intro, title: Intro}\n"), 0o644))

		out, err := execute(t, "--config", cfg, "deck", "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, path+" is valid")
		assert.Contains(t, out, "1 slides")
	})

	t.Run("invalid block", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("slides:\n  - id: '1'\n    slug: a\n    content:\n      - {type: video, text: x}\n"), 0o644))

		_, err := execute(t, "--config", cfg, "deck", "validate", path)
		require.ErrorIs(t, err, deckfile.ErrInvalidBlock)
	})
}

func TestDeckSchema(t *testing.T) {
	isolate(t)

	out, err := execute(t, "deck", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "speakerNotes")
}

func TestConfigShow(t *testing.T) {
	cfg := isolate(t)

	out, err := execute(t, "--config", cfg, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "autoplay_interval_ms: 10000")
	assert.Contains(t, out, "addr: 127.0.0.1:7331")
}

func TestConfigKeys(t *testing.T) {
	cfg := isolate(t)

	t.Run("section", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "config", "keys", "--section", "Server")
		require.NoError(t, err)
		assert.Contains(t, out, "server.addr")
		assert.NotContains(t, out, "presentation.autoplay_interval_ms")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "config", "keys", "--json")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "["))
		assert.Contains(t, out, "presentation.swipe_threshold_px")
	})

	t.Run("unknown section", func(t *testing.T) {
		_, err := execute(t, "--config", cfg, "config", "keys", "--section", "nope")
		require.Error(t, err)
	})
}

func TestExport_Markdown(t *testing.T) {
	cfg := isolate(t)
	dir := t.TempDir()

	out, err := execute(t, "--config", cfg, "export", "--format", "md", "--out", dir, "--notes", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")

	matches, err := filepath.Glob(filepath.Join(dir, "lectern-*.md"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Singapore")
	assert.Contains(t, string(data), "Present key statistics")
}

func TestExport_UnsupportedFormat(t *testing.T) {
	cfg := isolate(t)

	_, err := execute(t, "--config", cfg, "export", "--format", "pdf", "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestVersion(t *testing.T) {
	cfg := isolate(t)
	SetBuildInfo(buildInfo)

	out, err := execute(t, "--config", cfg, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "github.com/bnema/lectern")
}

func TestPresent_RequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("running attached to a terminal")
	}
	cfg := isolate(t)

	_, err := execute(t, "--config", cfg, "present")
	require.ErrorIs(t, err, errNotInteractive)
}

func TestDocsDir(t *testing.T) {
	isolate(t)

	dir, err := docsDir("markdown", "")
	require.NoError(t, err)
	assert.Equal(t, "./docs", dir)

	dir, err = docsDir("man", "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, filepath.Join("man", "man1")), dir)

	dir, err = docsDir("man", "/tmp/out")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", dir)

	_, err = docsDir("pdf", "")
	require.Error(t, err)
}

func TestGenDocs_Markdown(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Cleanup(func() { genDocsOutputDir, genDocsFormat = "", "man" })

	out, err := execute(t, "gen-docs", "--format", "markdown", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "lectern_present.md")
	assert.FileExists(t, filepath.Join(dir, "lectern.md"))
}

func TestDisplayAddr(t *testing.T) {
	assert.Equal(t, "localhost:8080", displayAddr(":8080"))
	assert.Equal(t, "127.0.0.1:7331", displayAddr("127.0.0.1:7331"))
}
