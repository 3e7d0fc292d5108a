package styles

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/bnema/lectern/internal/domain/entity"
)

const (
	minSlideWidth = 20
	maxBarWidth   = 40
)

// SlideRenderer draws a slide as terminal text.
type SlideRenderer struct {
	theme *Theme
	lang  entity.Language
	width int
}

// NewSlideRenderer creates a renderer that wraps text to width columns.
func NewSlideRenderer(theme *Theme, lang entity.Language, width int) *SlideRenderer {
	if width < minSlideWidth {
		width = minSlideWidth
	}
	return &SlideRenderer{theme: theme, lang: lang, width: width}
}

// Render draws slide with its body, visuals and, when notes is set, the
// speaker notes.
func (r *SlideRenderer) Render(slide entity.Slide, notes bool) string {
	var parts []string

	parts = append(parts, r.theme.CategoryBadge(slide.Category), "")
	parts = append(parts, r.theme.Title.Render(r.wrap(r.lang.Pick(slide.Title, slide.TitleVi))))
	if r.lang == entity.LanguageBoth && slide.TitleVi != "" {
		parts = append(parts, r.theme.Vietnamese.Render(r.wrap(slide.TitleVi)))
	}
	if slide.Subtitle != "" {
		parts = append(parts, r.theme.Subtitle.Render(r.wrap(r.lang.Pick(slide.Subtitle, slide.SubtitleVi))))
	}
	parts = append(parts, "")

	for _, block := range slide.Content {
		parts = append(parts, r.renderBlock(block), "")
	}

	if facts := r.renderFacts(slide.Visual.Facts); facts != "" {
		parts = append(parts, facts, "")
	}
	if chart := r.renderChart(slide.Visual.Chart); chart != "" {
		parts = append(parts, chart, "")
	}
	if timeline := r.renderTimeline(slide.Visual.Timeline); timeline != "" {
		parts = append(parts, timeline, "")
	}
	if markers := r.renderMap(slide.Visual.Map); markers != "" {
		parts = append(parts, markers, "")
	}

	if notes && slide.SpeakerNotes != "" {
		parts = append(parts, r.theme.Notes.Render(r.wrap(IconNotes+" "+slide.SpeakerNotes)))
	}

	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}

func (r *SlideRenderer) wrap(s string) string {
	return wordwrap.String(s, r.width)
}

// bilingual renders en and its translation according to the language mode.
func (r *SlideRenderer) bilingual(en, vi string, style lipgloss.Style) string {
	text := style.Render(r.wrap(r.lang.Pick(en, vi)))
	if r.lang == entity.LanguageBoth && vi != "" {
		text += "\n" + r.theme.Vietnamese.Render(r.wrap(vi))
	}
	return text
}

func (r *SlideRenderer) renderBlock(b entity.ContentBlock) string {
	switch b.Kind {
	case entity.BlockQuote:
		return r.theme.Quote.Width(r.width - 2).Render(r.bilingual(b.Text, b.TextVi, lipgloss.NewStyle()))
	case entity.BlockStatistic:
		return r.bilingual(b.Text, b.TextVi, r.theme.Statistic)
	case entity.BlockList:
		var lines []string
		if b.Text != "" {
			lines = append(lines, r.bilingual(b.Text, b.TextVi, r.theme.Normal))
		}
		for _, item := range b.Items {
			text := r.bilingual(item.Text, item.TextVi, r.theme.Normal)
			lines = append(lines, r.theme.Highlight.Render("•")+" "+strings.TrimLeft(indent.String(text, 2), " "))
		}
		return strings.Join(lines, "\n")
	default:
		return r.bilingual(b.Text, b.TextVi, r.theme.Normal)
	}
}

func (r *SlideRenderer) renderFacts(facts []entity.KeyFact) string {
	if len(facts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(facts))
	for _, f := range facts {
		line := fmt.Sprintf("%s %s  %s",
			f.Icon.Glyph(),
			r.theme.Subtle.Render(r.lang.Pick(f.Label, f.LabelVi)),
			r.theme.Statistic.Render(r.lang.Pick(f.Value, f.ValueVi)),
		)
		if src := factSource(f); src != "" {
			line += " " + r.theme.Subtle.Render(src)
		}
		lines = append(lines, line)
	}
	return r.theme.Box.Render(strings.Join(lines, "\n"))
}

func factSource(f entity.KeyFact) string {
	switch {
	case f.Source != "" && f.Year != "":
		return fmt.Sprintf("(%s, %s)", f.Source, f.Year)
	case f.Source != "":
		return "(" + f.Source + ")"
	case f.Year != "":
		return "(" + f.Year + ")"
	}
	return ""
}

// renderChart draws every chart kind as horizontal bars scaled to the
// largest magnitude.
func (r *SlideRenderer) renderChart(chart *entity.ChartConfig) string {
	points := chart.Points()
	if len(points) == 0 {
		return ""
	}

	labelWidth, peak := 0, 0.0
	for _, p := range points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
		peak = math.Max(peak, math.Abs(p.Value))
	}
	barWidth := min(maxBarWidth, max(1, r.width-labelWidth-12))

	lines := []string{r.theme.Subtitle.Render(chart.Title)}
	for _, p := range points {
		n := 0
		if peak > 0 {
			n = int(math.Round(math.Abs(p.Value) / peak * float64(barWidth)))
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %g",
			labelWidth, p.Label,
			r.theme.Bar.Render(strings.Repeat("█", n)),
			p.Value,
		))
	}
	return strings.Join(lines, "\n")
}

func (r *SlideRenderer) renderTimeline(tl *entity.TimelineConfig) string {
	if tl == nil || len(tl.Events) == 0 {
		return ""
	}
	lines := make([]string, 0, len(tl.Events))
	for _, ev := range tl.Events {
		head := r.theme.Highlight.Render(ev.Year) + " " + r.theme.Title.Render(r.lang.Pick(ev.Title, ev.TitleVi))
		body := indent.String(r.wrap(r.lang.Pick(ev.Description, ev.DescriptionVi)), 2)
		lines = append(lines, head, r.theme.Subtle.Render(body))
	}
	return strings.Join(lines, "\n")
}

func (r *SlideRenderer) renderMap(m *entity.MapConfig) string {
	if m == nil || len(m.Markers) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.Markers))
	for _, mk := range m.Markers {
		lines = append(lines, fmt.Sprintf("%s %s %s  %s",
			entity.IconMapPin.Glyph(),
			r.theme.Title.Render(r.lang.Pick(mk.Title, mk.TitleVi)),
			r.theme.Subtle.Render(fmt.Sprintf("(%.4f, %.4f)", mk.Position[0], mk.Position[1])),
			r.lang.Pick(mk.Description, mk.DescriptionVi),
		))
	}
	return strings.Join(lines, "\n")
}
