package styles_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lectern/internal/cli/styles"
	"github.com/bnema/lectern/internal/domain/deck/decktest"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/infrastructure/config"
	"github.com/bnema/lectern/internal/ui/input"
)

func TestNewTheme_UsesConfigPalette(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Accent = "#123456"

	theme := styles.NewTheme(cfg)
	assert.Equal(t, "#123456", string(theme.Accent))

	fallback := styles.NewTheme(nil)
	assert.Equal(t, config.DefaultConfig().Appearance.Palette.Accent, string(fallback.Accent))
}

func TestNewTheme_HighContrast(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.HighContrast = true

	theme := styles.NewTheme(cfg)
	require.True(t, theme.HighContrast)
	assert.Equal(t, "#000000", string(theme.Background))
	assert.Equal(t, "#ffffff", string(theme.Text))
	assert.Equal(t, "#ffff00", string(theme.Accent))
	assert.True(t, theme.Normal.GetBold())

	bg := theme.SlideBackground("#1e3a5f", "#cbd5e1")
	assert.Equal(t, theme.Background, bg.GetBackground())
	assert.Equal(t, theme.Text, bg.GetForeground())

	plain := styles.NewTheme(config.DefaultConfig())
	assert.False(t, plain.HighContrast)
	assert.Equal(t, lipgloss.Color("#1e3a5f"), plain.SlideBackground("#1e3a5f", "").GetBackground())
}

func TestPresenterKeyMap_FollowsShortcutTables(t *testing.T) {
	km := styles.NewPresenterKeyMap(input.NewShortcutSet(context.Background()))

	assert.ElementsMatch(t, []string{"right", "space"}, km.Next.Keys())
	assert.Equal(t, "→/␣", km.Next.Help().Key)
	assert.ElementsMatch(t, []string{"/", "ctrl+f"}, km.Search.Keys())
	assert.ElementsMatch(t, []string{"ctrl+c", "q"}, km.Quit.Keys())
	assert.Len(t, km.FullHelp(), 4)
}

func TestSlideRenderer_Languages(t *testing.T) {
	slide := decktest.Slides(1)[0]
	slide.SpeakerNotes = "Mention the harbour"
	theme := styles.NewTheme(nil)

	both := styles.NewSlideRenderer(theme, entity.LanguageBoth, 60).Render(slide, false)
	assert.Contains(t, both, "Slide 1")
	assert.Contains(t, both, "Trang 1")
	assert.NotContains(t, both, "harbour")

	en := styles.NewSlideRenderer(theme, entity.LanguageEnglish, 60).Render(slide, true)
	assert.Contains(t, en, "Body of slide 1")
	assert.NotContains(t, en, "Trang 1")
	assert.Contains(t, en, "harbour")

	vi := styles.NewSlideRenderer(theme, entity.LanguageVietnamese, 60).Render(slide, false)
	assert.Contains(t, vi, "Nội dung trang 1")
	assert.NotContains(t, vi, "Body of slide 1")
}

func TestSlideRenderer_Visuals(t *testing.T) {
	slide := decktest.Slides(1)[0]
	slide.Visual = entity.Visual{
		Facts: []entity.KeyFact{{Icon: entity.IconUsers, Label: "Population", Value: "5.9M", Source: "SingStat", Year: "2023"}},
		Chart: &entity.ChartConfig{
			Kind:  entity.ChartBar,
			Title: "GDP",
			Data:  []map[string]any{{"name": "2020", "value": 10}, {"name": "2021", "value": 20}},
		},
		Timeline: &entity.TimelineConfig{Events: []entity.TimelineEvent{{Year: "1965", Title: "Independence", Description: "Separation"}}},
		Map: &entity.MapConfig{Markers: []entity.MapMarker{{Position: [2]float64{1.29, 103.85}, Title: "Marina Bay"}}},
	}

	out := styles.NewSlideRenderer(styles.NewTheme(nil), entity.LanguageEnglish, 80).Render(slide, false)
	assert.Contains(t, out, "Population")
	assert.Contains(t, out, "(SingStat, 2023)")
	assert.Contains(t, out, "GDP")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "1965")
	assert.Contains(t, out, "Marina Bay")
	assert.Contains(t, out, "(1.2900, 103.8500)")
}

func TestSlideRenderer_ClampsWidth(t *testing.T) {
	slide := decktest.Slides(1)[0]
	slide.Content[0].Text = "alpha beta gamma delta epsilon zeta eta theta iota kappa"

	out := styles.NewSlideRenderer(styles.NewTheme(nil), entity.LanguageEnglish, 5).Render(slide, false)
	assert.Contains(t, out, "alpha beta gamma")
	assert.NotContains(t, out, "alpha beta gamma delta epsilon zeta eta")
}

func TestConfigSchemaRenderer_SectionOrder(t *testing.T) {
	keys := []entity.ConfigKeyInfo{
		{Key: "logging.level", Type: "string", Section: "Logging"},
		{Key: "server.addr", Type: "string", Section: "Server"},
		{Key: "presentation.language", Type: "string", Section: "Presentation"},
	}
	r := styles.NewConfigSchemaRenderer(styles.NewTheme(nil))

	out := r.Render(keys, []string{"Presentation", "Logging"})
	pres := strings.Index(out, "presentation.language")
	logs := strings.Index(out, "logging.level")
	server := strings.Index(out, "server.addr")
	require.True(t, pres >= 0 && logs >= 0 && server >= 0)
	assert.Less(t, pres, logs)
	assert.Less(t, logs, server)

	js, err := r.RenderJSON(keys)
	require.NoError(t, err)
	assert.Contains(t, js, `"server.addr"`)
}

func TestRenderDeckTable(t *testing.T) {
	out := styles.RenderDeckTable(styles.NewTheme(nil), decktest.Slides(3), entity.LanguageVietnamese)
	assert.Contains(t, out, "slide-3")
	assert.Contains(t, out, "Trang 2")
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))
	assert.Contains(t, r.RenderConfigInfo("/tmp/lectern/config.toml"), "config.toml")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
	assert.Contains(t, r.RenderExported("/tmp/out.html"), "/tmp/out.html")
}

func TestModeBadges(t *testing.T) {
	theme := styles.NewTheme(nil)
	assert.Empty(t, theme.ModeBadges(entity.InitialNavigationState()))

	state := entity.NavigationState{PresenterMode: true, AutoplayEnabled: true, Paused: true, SearchQuery: "trade"}
	badges := theme.ModeBadges(state)
	require.Len(t, badges, 3)
	assert.Contains(t, badges[1], "paused")
	assert.Contains(t, badges[2], "trade")
}

func TestNewSearchInput_PlaceholderNamesSearchedFields(t *testing.T) {
	ti := styles.NewSearchInput(styles.NewTheme(config.DefaultConfig()))
	assert.NotContains(t, ti.Placeholder, "category")
	assert.Contains(t, ti.Placeholder, "content")
}
