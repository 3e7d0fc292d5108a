// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lectern/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.ColorPalette)
	Background     lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	HighlightColor lipgloss.Color
	Border         lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Slide body styles
	Vietnamese lipgloss.Style
	Quote      lipgloss.Style
	Statistic  lipgloss.Style
	Notes      lipgloss.Style
	Bar        lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	StatusBar lipgloss.Style
	Dot       lipgloss.Style
	DotActive lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style

	// HighContrast ignores per-slide colors.
	HighContrast bool
}

// NewTheme creates a Theme from config, falling back to the default palette.
// appearance.high_contrast takes precedence over the configured palette.
func NewTheme(cfg *config.Config) *Theme {
	if cfg != nil && cfg.Appearance.HighContrast {
		return NewHighContrastTheme()
	}
	p := config.DefaultConfig().Appearance.Palette
	if cfg != nil && cfg.Appearance.Palette.Background != "" {
		p = cfg.Appearance.Palette
	}
	return NewThemeFromPalette(p)
}

// HighContrastPalette is pure black and white with a yellow accent.
func HighContrastPalette() config.ColorPalette {
	return config.ColorPalette{
		Background: "#000000",
		Text:       "#ffffff",
		Muted:      "#ffffff",
		Accent:     "#ffff00",
		Highlight:  "#ffff00",
		Border:     "#ffffff",
	}
}

// NewHighContrastTheme builds the high-contrast theme. Body text is bold
// and slide-declared colors are dropped.
func NewHighContrastTheme() *Theme {
	t := NewThemeFromPalette(HighContrastPalette())
	t.HighContrast = true
	t.Normal = t.Normal.Bold(true)
	t.Vietnamese = t.Vietnamese.Bold(true)
	t.Quote = t.Quote.Bold(true)
	t.Subtle = t.Subtle.Bold(true)
	return t
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		HighlightColor: lipgloss.Color(p.Highlight),
		Border:         lipgloss.Color(p.Border),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color(p.Highlight),
		Success: lipgloss.Color("#4ade80"),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.Vietnamese = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	t.Quote = lipgloss.NewStyle().
		Foreground(t.Text).
		Italic(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(t.Accent).
		PaddingLeft(1)

	t.Statistic = lipgloss.NewStyle().
		Foreground(t.HighlightColor).
		Bold(true)

	t.Notes = lipgloss.NewStyle().
		Foreground(t.HighlightColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(t.Border).
		MarginTop(1)

	t.Bar = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Border).
		Padding(0, 1)

	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.InputFocused = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(t.Border)

	t.Dot = lipgloss.NewStyle().
		Foreground(t.Border)

	t.DotActive = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}

// SlideBackground returns a style that paints a slide's own colors when
// it declares them.
func (t *Theme) SlideBackground(bg, fg string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.HighContrast {
		return s.Background(t.Background).Foreground(t.Text)
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	return s
}
