package model

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lectern/internal/app/presenter"
	"github.com/bnema/lectern/internal/application/port"
	"github.com/bnema/lectern/internal/application/usecase"
	"github.com/bnema/lectern/internal/cli/styles"
	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/infrastructure/config"
	"github.com/bnema/lectern/internal/logging"
	"github.com/bnema/lectern/internal/ui/input"
)

const (
	defaultCellWidthPx = 8
	defaultWidth       = 80
	defaultHeight      = 24
)

// StatusRegion is the terminal live region: the status line shows the
// last announcement until the next one replaces it.
type StatusRegion struct {
	mu      sync.Mutex
	message string
}

// Announce implements port.LiveRegion.
func (r *StatusRegion) Announce(_ context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.message = message
}

// Message returns the current announcement.
func (r *StatusRegion) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}

// PresenterModelConfig holds configuration for the presenter model.
type PresenterModelConfig struct {
	Store       *deck.Store
	DeckTitle   string
	InitialSlug string
	Config      *config.Config

	// Optional collaborators. Nil values fall back to session defaults.
	Clock    port.Clock
	Location port.Location
	Printer  port.Printer
	Bridge   *ProgramBridge
	Relay    usecase.AutoplayRelay

	StartAutoplay bool
}

// PresenterModel is the Bubble Tea model for a terminal presentation.
// Raw terminal events are pushed through an input bus; the session's
// dispatcher turns them into navigator transitions.
type PresenterModel struct {
	// UI components
	help    help.Model
	keys    styles.PresenterKeyMap
	search  textinput.Model
	spinner spinner.Model

	// State
	width       int
	height      int
	cellWidthPx int
	lang        entity.Language
	showHelp    bool
	printing    bool
	quitting    bool
	notice      string
	dragging    bool

	// Dependencies
	cfg       *config.Config
	ctx       context.Context
	session   *presenter.Session
	bus       *input.Bus
	region    *StatusRegion
	theme     *styles.Theme
	deckTitle string
}

// NewPresenterModel opens a presentation session and builds its model.
// Close must be called once the program exits.
func NewPresenterModel(ctx context.Context, cfg PresenterModelConfig) (*PresenterModel, error) {
	if cfg.Config == nil {
		cfg.Config = config.DefaultConfig()
	}
	pres := cfg.Config.Presentation
	ctx = logging.WithComponent(ctx, "tui")

	m := &PresenterModel{
		width:       defaultWidth,
		height:      defaultHeight,
		cellWidthPx: pres.CellWidthPx,
		lang:        pres.LanguageMode(),
		ctx:         ctx,
		bus:         input.NewBus(),
		region:      &StatusRegion{},
		theme:       styles.NewTheme(cfg.Config),
		cfg:         cfg.Config,
		deckTitle:   cfg.DeckTitle,
	}
	if m.cellWidthPx <= 0 {
		m.cellWidthPx = defaultCellWidthPx
	}

	relay := cfg.Relay
	var printed func(string, error)
	if cfg.Bridge != nil {
		if relay == nil {
			relay = cfg.Bridge.Relay
		}
		printed = cfg.Bridge.Printed
	}

	session, err := presenter.Open(ctx, presenter.Options{
		Store:          cfg.Store,
		InitialSlug:    cfg.InitialSlug,
		Clock:          cfg.Clock,
		LiveRegion:     m.region,
		Location:       cfg.Location,
		Printer:        cfg.Printer,
		Input:          m.bus,
		AutoplayPeriod: pres.AutoplayInterval(),
		AutoplayRelay:  relay,
		StartAutoplay:  cfg.StartAutoplay,
		SwipeThreshold: float64(pres.SwipeThresholdPx),
		HistoryLimit:   pres.HistoryLimit,
		OnPrintStarted: func() { m.printing = true },
		OnPrinted:      printed,
		OnQuit:         func() { m.quitting = true },
	})
	if err != nil {
		return nil, err
	}
	m.session = session
	if err := session.InitialErr(); err != nil {
		m.notice = fmt.Sprintf("%s not found, starting at the first slide", cfg.InitialSlug)
	}

	m.help = styles.NewStyledHelp(m.theme)
	m.keys = styles.NewPresenterKeyMap(session.Dispatcher().Shortcuts())
	m.search = styles.NewSearchInput(m.theme)
	m.spinner = styles.NewDefaultSpinner(m.theme)
	return m, nil
}

// Session returns the underlying presentation session.
func (m *PresenterModel) Session() *presenter.Session { return m.session }

// Close releases the session.
func (m *PresenterModel) Close() error {
	return m.session.Close()
}

// Init implements tea.Model.
func (m *PresenterModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.deckTitle)
}

// Update implements tea.Model.
func (m *PresenterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(10, msg.Width-10)

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		m.handleMouse(msg)

	case AutoplayFireMsg:
		if msg.Fire != nil {
			msg.Fire()
		}

	case PrintedMsg:
		m.printing = false
		if msg.Err != nil {
			m.notice = styles.IconX + " export failed: " + msg.Err.Error()
		} else {
			m.notice = styles.IconExport + " exported " + msg.Path
		}

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)

	case spinner.TickMsg:
		if m.printing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, tea.Batch(cmds...)
}

func (m *PresenterModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	nav := m.session.Navigator()
	wasOpen := nav.State().SearchOverlayOpen
	wasPrinting := m.printing
	m.notice = ""

	if !wasOpen {
		switch msg.String() {
		case "?":
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return nil
		case "l":
			m.lang = nextLanguage(m.lang)
			return nil
		case "c":
			m.toggleContrast()
			return nil
		}
	}

	var cmd tea.Cmd
	if !m.bus.EmitKey(msg.String()) && wasOpen {
		m.search, cmd = m.search.Update(msg)
		if q := m.search.Value(); q != nav.State().SearchQuery {
			nav.SetSearchQuery(q)
		}
	}

	isOpen := nav.State().SearchOverlayOpen
	switch {
	case isOpen && !wasOpen:
		m.search.SetValue(nav.State().SearchQuery)
		m.search.CursorEnd()
		cmd = m.search.Focus()
	case !isOpen && wasOpen:
		m.search.Blur()
	}

	if m.printing && !wasPrinting {
		return tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

// handleMouse turns a left-button drag into pointer events. Terminal
// cells are converted to pixels so the swipe threshold keeps its unit.
func (m *PresenterModel) handleMouse(msg tea.MouseMsg) {
	x := float64(msg.X * m.cellWidthPx)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.dragging = true
		m.bus.EmitPointer(port.PointerEvent{Phase: port.PointerStart, X: x})
	case tea.MouseActionMotion:
		if m.dragging {
			m.bus.EmitPointer(port.PointerEvent{Phase: port.PointerMove, X: x})
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.bus.EmitPointer(port.PointerEvent{Phase: port.PointerEnd, X: x})
		}
	}
}

func (m *PresenterModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	pres := cfg.Presentation
	m.session.SetAutoplayPeriod(pres.AutoplayInterval())
	m.session.SetSwipeThreshold(float64(pres.SwipeThresholdPx))
	if pres.CellWidthPx > 0 {
		m.cellWidthPx = pres.CellWidthPx
	}
	m.lang = pres.LanguageMode()
	m.cfg = cfg
	m.setTheme(styles.NewTheme(cfg))

	logging.FromContext(m.ctx).Debug().
		Dur("autoplay_period", pres.AutoplayInterval()).
		Int("swipe_threshold_px", pres.SwipeThresholdPx).
		Str("language", string(m.lang)).
		Msg("config applied")
	m.notice = styles.IconInfo + " config reloaded"
}

// toggleContrast flips between the configured palette and the
// high-contrast one for the rest of the session.
func (m *PresenterModel) toggleContrast() {
	if m.theme.HighContrast {
		base := *m.cfg
		base.Appearance.HighContrast = false
		m.setTheme(styles.NewTheme(&base))
		return
	}
	m.setTheme(styles.NewHighContrastTheme())
}

func (m *PresenterModel) setTheme(t *styles.Theme) {
	m.theme = t
	m.help = styles.NewStyledHelp(t)
	m.help.Width = m.width
	m.help.ShowAll = m.showHelp
	styles.RestyleInput(&m.search, t)
	m.spinner.Style = t.Bar
}

func nextLanguage(l entity.Language) entity.Language {
	langs := entity.Languages()
	for i, v := range langs {
		if v == l {
			return langs[(i+1)%len(langs)]
		}
	}
	return entity.LanguageBoth
}

// View implements tea.Model.
func (m *PresenterModel) View() string {
	if m.quitting {
		return ""
	}

	nav := m.session.Navigator()
	state := nav.State()
	frame := nav.Frame()

	header := m.renderHeader(state, frame)
	footer := m.renderFooter(state)
	bodyHeight := max(1, m.height-lipgloss.Height(header)-lipgloss.Height(footer))

	var body string
	if frame.Slide == nil {
		body = m.theme.Subtle.Render(fmt.Sprintf("No slides match %q", frame.Query))
	} else {
		r := styles.NewSlideRenderer(m.theme, m.lang, m.width-4)
		body = m.theme.SlideBackground(frame.Slide.Style.BackgroundColor, frame.Slide.Style.TextColor).
			Padding(0, 2).
			Render(r.Render(*frame.Slide, frame.PresenterMode))
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *PresenterModel) renderHeader(state entity.NavigationState, frame entity.Frame) string {
	parts := []string{m.theme.Title.Render(styles.IconSlides + " " + m.deckTitle)}
	if frame.Total > 0 {
		parts = append(parts, m.theme.PositionBadge(frame.Index, frame.Total))
	}
	parts = append(parts, m.theme.LanguageBadge(m.lang))
	parts = append(parts, m.theme.ModeBadges(state)...)
	return strings.Join(parts, " ") + "\n" + m.renderProgress()
}

// renderProgress draws one dot per slide in the effective sequence.
func (m *PresenterModel) renderProgress() string {
	nav := m.session.Navigator()
	current := nav.CurrentOriginalIndex()
	entries := nav.EffectiveSlides()
	dots := make([]string, len(entries))
	for i, e := range entries {
		if e.OriginalIndex == current {
			dots[i] = m.theme.DotActive.Render("●")
		} else {
			dots[i] = m.theme.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (m *PresenterModel) renderFooter(state entity.NavigationState) string {
	var lines []string

	if state.SearchOverlayOpen {
		lines = append(lines, m.theme.InputBox(m.search.View(), true))
		lines = append(lines, m.help.View(styles.DefaultSearchKeyMap()))
	}

	status := m.region.Message()
	if m.printing {
		status = m.spinner.View() + " exporting... " + status
	}
	if m.notice != "" {
		status = strings.TrimSpace(status + "  " + m.notice)
	}
	lines = append(lines, m.theme.StatusBar.Width(max(1, m.width)).Render(status))

	if !state.SearchOverlayOpen {
		lines = append(lines, m.help.View(m.keys))
	}
	return strings.Join(lines, "\n")
}
