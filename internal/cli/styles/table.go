package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lectern/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// DeckTableColumns returns columns for the slide listing.
func DeckTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Slug", Width: 22},
		{Title: "Category", Width: 18},
		{Title: "Title", Width: 36},
	}
}

// SlideRow converts a slide at a zero-based index to a table row.
func SlideRow(index int, s entity.Slide, lang entity.Language) table.Row {
	return table.Row{intToString(index + 1), s.Slug, s.Category, lang.Pick(s.Title, s.TitleVi)}
}

// RenderDeckTable renders slides as a static table.
func RenderDeckTable(theme *Theme, slides []entity.Slide, lang entity.Language) string {
	rows := make([]table.Row, len(slides))
	width := 0
	for _, c := range DeckTableColumns() {
		width += c.Width + 2
	}
	for i, s := range slides {
		rows[i] = SlideRow(i, s, lang)
	}
	// Header and its bottom border take two lines
	t := NewStyledTable(theme, DeckTableColumns(), rows, width, len(rows)+2)
	return t.View()
}

// intToString converts int to string without fmt.
func intToString(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + intToString(-n)
	}

	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
