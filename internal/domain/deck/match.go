package deck

import (
	"strings"

	"github.com/bnema/lectern/internal/domain/entity"
)

// MatchQuery returns a case-insensitive substring predicate over a
// slide's titles, subtitles and content text in both languages.
// An empty or blank query matches every slide.
func MatchQuery(query string) func(entity.Slide) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return func(entity.Slide) bool { return true }
	}

	return func(slide entity.Slide) bool {
		for _, field := range searchableText(slide) {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
}

func searchableText(slide entity.Slide) []string {
	fields := []string{slide.Title, slide.TitleVi, slide.Subtitle, slide.SubtitleVi}
	for _, block := range slide.Content {
		fields = append(fields, block.Text, block.TextVi)
		for _, item := range block.Items {
			fields = append(fields, item.Text, item.TextVi)
		}
	}
	return fields
}
