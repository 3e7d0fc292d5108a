package web

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/bnema/lectern/internal/application/usecase"
	"github.com/bnema/lectern/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var slideTemplate = template.Must(template.New("slide.html").Funcs(template.FuncMap{
	"pick": func(lang entity.Language, en, vi string) string { return lang.Pick(en, vi) },
	"both": func(lang entity.Language) bool { return lang == entity.LanguageBoth },
	"glyph": func(i entity.Icon) string {
		return i.Glyph()
	},
}).ParseFS(templateFS, "templates/slide.html"))

type slideQuery struct {
	presenter    bool
	via          entity.Action
	lang         entity.Language
	highContrast bool
	largeText    bool
}

// carry returns the query suffix that keeps display modes across links.
func (q slideQuery) carry() string {
	var b strings.Builder
	if q.presenter {
		b.WriteString("&presenter=1")
	}
	if q.highContrast {
		b.WriteString("&contrast=high")
	}
	if q.largeText {
		b.WriteString("&text=large")
	}
	return b.String()
}

type progressDot struct {
	Path    string
	Title   string
	Current bool
}

type bar struct {
	Label   string
	Value   string
	Percent int
}

type slideView struct {
	DeckTitle    string
	Lang         entity.Language
	Slide        entity.Slide
	Number       int
	Total        int
	PrevPath     string
	NextPath     string
	Presenter    bool
	HighContrast bool
	LargeText    bool
	Announcement string
	Progress     []progressDot
	Bars         []bar
}

func (s *Server) buildSlideView(idx int, q slideQuery) slideView {
	n := s.store.Count()
	slide, _ := s.store.ByIndex(idx)
	prev, _ := s.store.ByIndex((idx - 1 + n) % n)
	next, _ := s.store.ByIndex((idx + 1) % n)

	suffix := q.carry()

	view := slideView{
		DeckTitle: s.options().Title,
		Lang:      q.lang,
		Slide:     slide,
		Number:    idx + 1,
		Total:     n,
		PrevPath:  usecase.SlidePath(prev.Slug) + "?via=" + string(entity.ActionPrevious) + suffix,
		NextPath:  usecase.SlidePath(next.Slug) + "?via=" + string(entity.ActionNext) + suffix,
		Presenter: q.presenter,

		HighContrast: q.highContrast,
		LargeText:    q.largeText,
	}

	// Only arrivals through a navigation link are announced
	switch q.via {
	case entity.ActionNext, entity.ActionPrevious, entity.ActionJump:
		view.Announcement = usecase.Announcement(q.via, slide.Title, idx, n)
	}

	view.Progress = make([]progressDot, n)
	for i, sl := range s.store.All() {
		view.Progress[i] = progressDot{
			Path:    usecase.SlidePath(sl.Slug) + "?via=" + string(entity.ActionJump) + suffix,
			Title:   sl.Title,
			Current: i == idx,
		}
	}

	view.Bars = chartBars(slide.Visual.Chart)
	return view
}

// chartBars scales chart points to percentages of the largest magnitude.
func chartBars(chart *entity.ChartConfig) []bar {
	points := chart.Points()
	if len(points) == 0 {
		return nil
	}
	peak := 0.0
	for _, p := range points {
		peak = math.Max(peak, math.Abs(p.Value))
	}
	bars := make([]bar, len(points))
	for i, p := range points {
		pct := 0
		if peak > 0 {
			pct = int(math.Round(math.Abs(p.Value) / peak * 100))
		}
		bars[i] = bar{Label: p.Label, Value: fmt.Sprintf("%g", p.Value), Percent: pct}
	}
	return bars
}
