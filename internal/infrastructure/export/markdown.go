// Package export renders a deck for printing and writes it to disk.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/lectern/internal/domain/entity"
)

// Options controls what a printed deck contains.
type Options struct {
	Title    string
	Language entity.Language
	// SpeakerNotes includes each slide's notes after its content.
	SpeakerNotes bool
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`|`, `\|`,
)

func esc(s string) string {
	return inlineEscaper.Replace(s)
}

// Markdown renders slides as one Markdown document, one section per slide.
func Markdown(slides []entity.Slide, opts Options) string {
	lang := opts.Language
	if lang == "" {
		lang = entity.LanguageBoth
	}

	var b strings.Builder
	if opts.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", esc(opts.Title))
	}
	for i, s := range slides {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		writeSlide(&b, i, len(slides), s, lang, opts.SpeakerNotes)
	}
	return b.String()
}

// bilingual writes en and/or vi per lang. With both, vi follows in italics.
func bilingual(b *strings.Builder, lang entity.Language, prefix, en, vi string) {
	switch {
	case lang == entity.LanguageBoth:
		fmt.Fprintf(b, "%s%s\n", prefix, esc(en))
		if vi != "" {
			fmt.Fprintf(b, "%s*%s*\n", prefix, esc(vi))
		}
	default:
		fmt.Fprintf(b, "%s%s\n", prefix, esc(lang.Pick(en, vi)))
	}
}

func writeSlide(b *strings.Builder, i, total int, s entity.Slide, lang entity.Language, notes bool) {
	fmt.Fprintf(b, "## %d. %s\n\n", i+1, esc(lang.Pick(s.Title, s.TitleVi)))
	if lang == entity.LanguageBoth && s.TitleVi != "" && s.TitleVi != s.Title {
		fmt.Fprintf(b, "*%s*\n\n", esc(s.TitleVi))
	}
	fmt.Fprintf(b, "`%s` · %d / %d\n\n", s.Category, i+1, total)

	if s.Subtitle != "" {
		fmt.Fprintf(b, "### %s\n\n", esc(lang.Pick(s.Subtitle, s.SubtitleVi)))
	}

	for _, block := range s.Content {
		writeBlock(b, block, lang)
		b.WriteString("\n")
	}

	writeFacts(b, s.Visual.Facts, lang)
	writeChart(b, s.Visual.Chart)
	writeTimeline(b, s.Visual.Timeline, lang)
	writeMap(b, s.Visual.Map, lang)

	if notes && s.SpeakerNotes != "" {
		fmt.Fprintf(b, "#### Speaker notes\n\n%s\n\n", esc(s.SpeakerNotes))
	}
}

func writeBlock(b *strings.Builder, block entity.ContentBlock, lang entity.Language) {
	switch block.Kind {
	case entity.BlockQuote:
		if lang == entity.LanguageBoth {
			fmt.Fprintf(b, "> %s\n", esc(block.Text))
			if block.TextVi != "" {
				fmt.Fprintf(b, ">\n> *%s*\n", esc(block.TextVi))
			}
			return
		}
		fmt.Fprintf(b, "> %s\n", esc(lang.Pick(block.Text, block.TextVi)))
	case entity.BlockStatistic:
		fmt.Fprintf(b, "**%s**\n", esc(lang.Pick(block.Text, block.TextVi)))
		if lang == entity.LanguageBoth && block.TextVi != "" {
			fmt.Fprintf(b, "*%s*\n", esc(block.TextVi))
		}
	case entity.BlockList:
		if block.Text != "" {
			bilingual(b, lang, "", block.Text, block.TextVi)
			b.WriteString("\n")
		}
		for _, item := range block.Items {
			if lang == entity.LanguageBoth && item.TextVi != "" {
				fmt.Fprintf(b, "- %s  \n  *%s*\n", esc(item.Text), esc(item.TextVi))
				continue
			}
			fmt.Fprintf(b, "- %s\n", esc(lang.Pick(item.Text, item.TextVi)))
		}
	default:
		bilingual(b, lang, "", block.Text, block.TextVi)
	}
}

func writeFacts(b *strings.Builder, facts []entity.KeyFact, lang entity.Language) {
	if len(facts) == 0 {
		return
	}
	b.WriteString("| Fact | Value | Source |\n|---|---|---|\n")
	for _, f := range facts {
		label := lang.Pick(f.Label, f.LabelVi)
		value := lang.Pick(f.Value, f.ValueVi)
		if lang == entity.LanguageBoth {
			if f.LabelVi != "" && f.LabelVi != f.Label {
				label += " / " + f.LabelVi
			}
			if f.ValueVi != "" {
				value += " / " + f.ValueVi
			}
		}
		source := f.Source
		if f.Year != "" {
			source = strings.TrimSpace(source + " (" + f.Year + ")")
		}
		fmt.Fprintf(b, "| %s | %s | %s |\n", esc(label), esc(value), esc(source))
	}
	b.WriteString("\n")
}

func writeChart(b *strings.Builder, chart *entity.ChartConfig) {
	points := chart.Points()
	if len(points) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s** (%s)\n\n", esc(chart.Title), chart.Kind)
	b.WriteString("| | |\n|---|---:|\n")
	for _, p := range points {
		fmt.Fprintf(b, "| %s | %s |\n", esc(p.Label), strconv.FormatFloat(p.Value, 'f', -1, 64))
	}
	b.WriteString("\n")
}

func writeTimeline(b *strings.Builder, tl *entity.TimelineConfig, lang entity.Language) {
	if tl == nil || len(tl.Events) == 0 {
		return
	}
	for _, e := range tl.Events {
		fmt.Fprintf(b, "- **%s** %s: %s\n",
			esc(e.Year), esc(lang.Pick(e.Title, e.TitleVi)), esc(lang.Pick(e.Description, e.DescriptionVi)))
	}
	b.WriteString("\n")
}

func writeMap(b *strings.Builder, m *entity.MapConfig, lang entity.Language) {
	if m == nil || len(m.Markers) == 0 {
		return
	}
	for _, mk := range m.Markers {
		fmt.Fprintf(b, "- %s (%.4f, %.4f): %s\n",
			esc(lang.Pick(mk.Title, mk.TitleVi)), mk.Position[0], mk.Position[1],
			esc(lang.Pick(mk.Description, mk.DescriptionVi)))
	}
	b.WriteString("\n")
}
