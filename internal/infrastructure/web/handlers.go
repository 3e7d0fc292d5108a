package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bnema/lectern/internal/application/usecase"
	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/infrastructure/export"
	"github.com/bnema/lectern/internal/logging"
)

func (s *Server) firstPath() string {
	first, _ := s.store.ByIndex(0)
	return usecase.SlidePath(first.Slug)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.firstPath(), http.StatusFound)
}

// handleSlide renders one slide. Unknown slugs redirect to the first slide.
func (s *Server) handleSlide(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	idx, err := usecase.ResolveInitial(logging.WithSlug(s.ctx, slug), s.store, slug)
	if err != nil {
		http.Redirect(w, r, s.firstPath(), http.StatusFound)
		return
	}

	q := r.URL.Query()
	lang := s.options().Language
	if l := q.Get("lang"); l != "" {
		lang = entity.ParseLanguage(l)
	}
	view := s.buildSlideView(idx, slideQuery{
		presenter:    q.Get("presenter") == "1",
		via:          entity.Action(q.Get("via")),
		lang:         lang,
		highContrast: q.Get("contrast") == "high",
		largeText:    q.Get("text") == "large",
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := slideTemplate.Execute(w, view); err != nil {
		logging.FromContext(s.ctx).Warn().Err(err).Str("slug", slug).Msg("render slide")
	}
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	base := s.options()
	lang := base.Language
	if l := r.URL.Query().Get("lang"); l != "" {
		lang = entity.ParseLanguage(l)
	}
	opts := export.Options{
		Title:        base.Title,
		Language:     lang,
		SpeakerNotes: r.URL.Query().Get("notes") == "1",
	}
	page, err := export.HTML(export.Markdown(s.store.All(), opts), opts)
	if err != nil {
		logging.FromContext(s.ctx).Warn().Err(err).Msg("render print view")
		http.Error(w, "print view unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

type slideSummary struct {
	Index    int    `json:"index"`
	Slug     string `json:"slug"`
	Path     string `json:"path"`
	Category string `json:"category"`
	Title    string `json:"title"`
	TitleVi  string `json:"titleVi"`
}

type slideDetail struct {
	Index int          `json:"index"`
	Total int          `json:"total"`
	Prev  string       `json:"prev"`
	Next  string       `json:"next"`
	Path  string       `json:"path"`
	Slide entity.Slide `json:"slide"`
}

func (s *Server) handleAPIList(w http.ResponseWriter, _ *http.Request) {
	slides := s.store.All()
	out := make([]slideSummary, len(slides))
	for i, sl := range slides {
		out[i] = slideSummary{
			Index:    i,
			Slug:     sl.Slug,
			Path:     usecase.SlidePath(sl.Slug),
			Category: sl.Category,
			Title:    sl.Title,
			TitleVi:  sl.TitleVi,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAPISlide(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	slide, idx, err := s.store.BySlug(slug)
	if err != nil {
		if errors.Is(err, deck.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	n := s.store.Count()
	prev, _ := s.store.ByIndex((idx - 1 + n) % n)
	next, _ := s.store.ByIndex((idx + 1) % n)
	writeJSON(w, http.StatusOK, slideDetail{
		Index: idx,
		Total: n,
		Prev:  prev.Slug,
		Next:  next.Slug,
		Path:  usecase.SlidePath(slide.Slug),
		Slide: slide,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
