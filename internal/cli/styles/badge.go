package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lectern/internal/domain/entity"
)

// CategoryBadge renders a slide category.
func (t *Theme) CategoryBadge(category string) string {
	return t.Badge.Render(category)
}

// PositionBadge renders "i / n" for a one-based position.
func (t *Theme) PositionBadge(index, total int) string {
	return t.BadgeMuted.Render(fmt.Sprintf("%d / %d", index+1, total))
}

// LanguageBadge renders the active language mode.
func (t *Theme) LanguageBadge(lang entity.Language) string {
	return t.BadgeMuted.Render(string(lang))
}

// ModeBadges renders one badge per active presentation mode.
func (t *Theme) ModeBadges(state entity.NavigationState) []string {
	var out []string
	if state.PresenterMode {
		out = append(out, t.StatusBadge(IconNotes+" notes", t.Background, t.HighlightColor))
	}
	if state.AutoplayEnabled {
		if state.Paused {
			out = append(out, t.StatusBadge(IconPause+" paused", t.Text, t.Border))
		} else {
			out = append(out, t.StatusBadge(IconPlay+" autoplay", t.Background, t.Success))
		}
	}
	if state.SearchQuery != "" {
		out = append(out, t.StatusBadge(IconSearch+" "+state.SearchQuery, t.Background, t.Accent))
	}
	return out
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}
