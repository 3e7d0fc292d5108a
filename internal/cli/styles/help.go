package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lectern/internal/ui/input"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PresenterKeyMap describes the presenter shortcuts for the help bar.
// The keys come from the dispatcher's shortcut tables so the help never
// drifts from what is actually bound.
type PresenterKeyMap struct {
	Next      key.Binding
	Previous  key.Binding
	First     key.Binding
	Last      key.Binding
	Presenter key.Binding
	Search    key.Binding
	Autoplay  key.Binding
	Pause     key.Binding
	Print     key.Binding
	Back      key.Binding
	Forward   key.Binding
	Escape    key.Binding
	Help      key.Binding
	Language  key.Binding
	Contrast  key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PresenterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Search, k.Presenter, k.Autoplay, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PresenterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First, k.Last},
		{k.Back, k.Forward, k.Search, k.Escape},
		{k.Presenter, k.Autoplay, k.Pause, k.Print},
		{k.Help, k.Language, k.Contrast, k.Quit},
	}
}

// NewPresenterKeyMap builds the help bindings from set.
func NewPresenterKeyMap(set *input.ShortcutSet) PresenterKeyMap {
	bind := func(action input.Action, desc string) key.Binding {
		keys := set.Bindings(action)
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), desc),
		)
	}

	return PresenterKeyMap{
		Next:      bind(input.ActionNext, "next"),
		Previous:  bind(input.ActionPrevious, "previous"),
		First:     bind(input.ActionFirst, "first"),
		Last:      bind(input.ActionLast, "last"),
		Presenter: bind(input.ActionTogglePresenter, "notes"),
		Search:    bind(input.ActionOpenSearch, "search"),
		Autoplay:  bind(input.ActionToggleAutoplay, "autoplay"),
		Pause:     bind(input.ActionTogglePause, "pause"),
		Print:     bind(input.ActionPrint, "export"),
		Back:      bind(input.ActionHistoryBack, "back"),
		Forward:   bind(input.ActionHistoryForward, "forward"),
		Escape:    bind(input.ActionEscape, "close"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "language"),
		),
		Contrast: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "contrast"),
		),
		Quit: bind(input.ActionQuit, "quit"),
	}
}

var keyGlyphs = strings.NewReplacer(
	"right", "→",
	"left", "←",
	"space", "␣",
)

func helpKeys(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = keyGlyphs.Replace(k)
	}
	return strings.Join(out, "/")
}

// SearchKeyMap defines keybindings while the search overlay is open.
type SearchKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k SearchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// FullHelp returns keybindings for expanded help.
func (k SearchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Cancel}}
}

// DefaultSearchKeyMap returns the search overlay keybindings.
func DefaultSearchKeyMap() SearchKeyMap {
	return SearchKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "keep filter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
