package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lectern/internal/application/port/mocks"
	"github.com/bnema/lectern/internal/domain/deck/decktest"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/infrastructure/clock"
	"github.com/bnema/lectern/internal/infrastructure/config"
)

func newTestModel(t *testing.T, mutate func(*PresenterModelConfig)) *PresenterModel {
	t.Helper()
	cfg := PresenterModelConfig{
		Store:     decktest.Store(t, 5),
		DeckTitle: "Test deck",
		Config:    config.DefaultConfig(),
		Clock:     clock.Fake(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := NewPresenterModel(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func press(m *PresenterModel, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func currentSlug(t *testing.T, m *PresenterModel) string {
	t.Helper()
	slide, ok := m.Session().Navigator().CurrentSlide()
	require.True(t, ok)
	return slide.Slug
}

func TestPresenterModel_ArrowKeysNavigate(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "slide-2", currentSlug(t, m))

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, "slide-3", currentSlug(t, m))

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "slide-2", currentSlug(t, m))

	press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, "slide-5", currentSlug(t, m))

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "slide-1", currentSlug(t, m), "next wraps to the first slide")
}

func TestPresenterModel_AnnouncesInStatusLine(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Navigated to forward slide: Slide 2. Slide 2 of 5", m.region.Message())
	assert.Contains(t, m.View(), "Slide 2 of 5")
}

func TestPresenterModel_InitialSlug(t *testing.T) {
	m := newTestModel(t, func(c *PresenterModelConfig) { c.InitialSlug = "slide-4" })
	assert.Equal(t, "slide-4", currentSlug(t, m))

	missing := newTestModel(t, func(c *PresenterModelConfig) { c.InitialSlug = "nowhere" })
	assert.Equal(t, "slide-1", currentSlug(t, missing))
	assert.Contains(t, missing.View(), "nowhere not found")
}

func TestPresenterModel_SearchOverlay(t *testing.T) {
	m := newTestModel(t, nil)
	nav := m.Session().Navigator()

	press(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	require.True(t, nav.State().SearchOverlayOpen)
	assert.True(t, m.search.Focused())

	// Navigation keys type into the overlay instead of moving.
	press(m, runes("q"))
	assert.Equal(t, "q", nav.State().SearchQuery)
	assert.Equal(t, 0, nav.EffectiveLength())
	assert.Contains(t, m.View(), `No slides match "q"`)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	for _, r := range "slide 3" {
		press(m, runes(string(r)))
	}
	assert.Equal(t, "slide 3", nav.State().SearchQuery)
	assert.Equal(t, 1, nav.EffectiveLength())
	assert.Equal(t, "slide-3", currentSlug(t, m))

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, nav.State().SearchOverlayOpen)
	assert.False(t, m.search.Focused())
	assert.Equal(t, "slide 3", nav.State().SearchQuery, "submitting keeps the filter")
}

func TestPresenterModel_SlashTypesIntoOpenOverlay(t *testing.T) {
	m := newTestModel(t, nil)
	nav := m.Session().Navigator()

	press(m, runes("/"))
	require.True(t, nav.State().SearchOverlayOpen)
	require.Empty(t, m.search.Value(), "the opening key is not typed")

	for _, r := range "1/2" {
		press(m, runes(string(r)))
	}
	assert.Equal(t, "1/2", nav.State().SearchQuery)
	assert.True(t, nav.State().SearchOverlayOpen)
}

func TestPresenterModel_EscapeClosesOverlayAndPresenterMode(t *testing.T) {
	m := newTestModel(t, nil)
	nav := m.Session().Navigator()

	press(m, tea.KeyMsg{Type: tea.KeyCtrlP})
	require.True(t, nav.State().PresenterMode)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	require.True(t, nav.State().SearchOverlayOpen)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, nav.State().SearchOverlayOpen)
	assert.False(t, nav.State().PresenterMode)
}

func TestPresenterModel_PresenterModeShowsNotes(t *testing.T) {
	slides := decktest.Slides(2)
	slides[0].SpeakerNotes = "Remember the harbour"
	m := newTestModel(t, func(c *PresenterModelConfig) { c.Store = decktest.StoreOf(t, slides...) })
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.NotContains(t, m.View(), "harbour")
	press(m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Contains(t, m.View(), "harbour")
}

func TestPresenterModel_LanguageToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Equal(t, entity.LanguageBoth, m.lang)

	press(m, runes("l"))
	assert.Equal(t, entity.LanguageEnglish, m.lang)
	assert.NotContains(t, m.View(), "Trang 1")

	press(m, runes("l"))
	assert.Equal(t, entity.LanguageVietnamese, m.lang)
	assert.Contains(t, m.View(), "Trang 1")
}

func TestPresenterModel_ContrastToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.False(t, m.theme.HighContrast)
	accent := m.theme.Accent

	press(m, runes("c"))
	assert.True(t, m.theme.HighContrast)
	assert.Equal(t, "#ffff00", string(m.theme.Accent))

	press(m, runes("c"))
	assert.False(t, m.theme.HighContrast)
	assert.Equal(t, accent, m.theme.Accent)

	press(m, runes("/"))
	press(m, runes("c"))
	assert.False(t, m.theme.HighContrast)
	assert.Equal(t, "c", m.session.Navigator().State().SearchQuery)
}

func TestPresenterModel_HighContrastFromConfig(t *testing.T) {
	m := newTestModel(t, func(c *PresenterModelConfig) {
		c.Config.Appearance.HighContrast = true
	})
	assert.True(t, m.theme.HighContrast)

	press(m, runes("c"))
	assert.False(t, m.theme.HighContrast)
	assert.Equal(t, config.DefaultConfig().Appearance.Palette.Accent, string(m.theme.Accent))
}

func TestPresenterModel_QuitKey(t *testing.T) {
	m := newTestModel(t, nil)

	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestPresenterModel_HistoryKeys(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "slide-3", currentSlug(t, m))

	press(m, tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	assert.Equal(t, "slide-2", currentSlug(t, m))

	press(m, tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	assert.Equal(t, "slide-3", currentSlug(t, m))
}

func TestPresenterModel_MouseDragSwipes(t *testing.T) {
	m := newTestModel(t, nil)

	drag := func(from, to int) {
		m.Update(tea.MouseMsg{X: from, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		m.Update(tea.MouseMsg{X: (from + to) / 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
		m.Update(tea.MouseMsg{X: to, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	}

	// 15 cells at 8px is 120px, past the 50px threshold.
	drag(30, 15)
	assert.Equal(t, "slide-2", currentSlug(t, m))

	drag(15, 30)
	assert.Equal(t, "slide-1", currentSlug(t, m))

	// 5 cells is 40px, under the threshold.
	drag(30, 25)
	assert.Equal(t, "slide-1", currentSlug(t, m))

	// Motion without a press is ignored.
	m.Update(tea.MouseMsg{X: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, "slide-1", currentSlug(t, m))
}

func TestPresenterModel_AutoplayRelay(t *testing.T) {
	fc := clock.Fake(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
	var fires []func()
	m := newTestModel(t, func(c *PresenterModelConfig) {
		c.Clock = fc
		c.StartAutoplay = true
		c.Relay = func(fire func()) { fires = append(fires, fire) }
	})

	fc.Advance(10 * time.Second)
	require.Len(t, fires, 1)
	assert.Equal(t, "slide-1", currentSlug(t, m), "the relay defers the move to the update loop")

	m.Update(AutoplayFireMsg{Fire: fires[0]})
	assert.Equal(t, "slide-2", currentSlug(t, m))
	assert.Contains(t, m.View(), "autoplay")
}

func TestPresenterModel_ConfigReload(t *testing.T) {
	m := newTestModel(t, nil)

	cfg := config.DefaultConfig()
	cfg.Presentation.AutoplayIntervalMs = 2500
	cfg.Presentation.SwipeThresholdPx = 120
	cfg.Presentation.CellWidthPx = 10
	cfg.Presentation.Language = "vi"

	m.Update(ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, 2500*time.Millisecond, m.Session().Autoplay().Period())
	assert.Equal(t, 120.0, m.Session().Dispatcher().Swipe().Threshold())
	assert.Equal(t, 10, m.cellWidthPx)
	assert.Equal(t, entity.LanguageVietnamese, m.lang)
	assert.Contains(t, m.View(), "config reloaded")
}

func TestPresenterModel_Print(t *testing.T) {
	printer := mocks.NewMockPrinter(t)
	done := make(chan struct{})
	printer.EXPECT().Print(mock.Anything, mock.Anything).
		Run(func(_ context.Context, slides []entity.Slide) {
			assert.Len(t, slides, 5)
			close(done)
		}).
		Return("/tmp/lectern.html", nil)

	m := newTestModel(t, func(c *PresenterModelConfig) { c.Printer = printer })

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.NotNil(t, cmd, "starting an export ticks the spinner")
	assert.True(t, m.printing)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("printer was not called")
	}

	m.Update(PrintedMsg{Path: "/tmp/lectern.html"})
	assert.False(t, m.printing)
	assert.Contains(t, m.View(), "/tmp/lectern.html")

	m.Update(PrintedMsg{Err: errors.New("disk full")})
	assert.Contains(t, m.View(), "disk full")
}

func TestPresenterModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	short := m.View()
	press(m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
	assert.Contains(t, m.View(), "export")
}

func TestProgramBridge_DropsWhenUnbound(t *testing.T) {
	b := NewProgramBridge()
	called := false
	b.Relay(func() { called = true })
	b.Printed("/tmp/x", nil)
	b.ConfigChanged(config.DefaultConfig())
	assert.False(t, called)
}

func TestNextLanguage(t *testing.T) {
	assert.Equal(t, entity.LanguageEnglish, nextLanguage(entity.LanguageBoth))
	assert.Equal(t, entity.LanguageVietnamese, nextLanguage(entity.LanguageEnglish))
	assert.Equal(t, entity.LanguageBoth, nextLanguage(entity.LanguageVietnamese))
	assert.Equal(t, entity.LanguageBoth, nextLanguage("klingon"))
}
