package usecase

import (
	"context"
	"testing"

	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/domain/deck/decktest"
	"github.com/bnema/lectern/internal/domain/entity"
)

var singaporeSlugs = []string{
	"welcome", "quick-facts", "geography-climate", "flag-symbols",
	"history-early", "independence", "modern-history", "government",
	"economy", "trade-finance", "education", "research-innovation",
	"culture-society", "food-cuisine",
}

// singaporeStore mirrors the shape of the bundled deck: 14 slides, with
// only "economy" and "trade-finance" mentioning the economy.
func singaporeStore(t *testing.T) *deck.Store {
	t.Helper()
	slides := decktest.Slides(len(singaporeSlugs))
	for i := range slides {
		slides[i].Slug = singaporeSlugs[i]
	}
	slides[0].Title = "Singapore"
	slides[8].Title = "Economic Overview"
	slides[8].Content[0].Text = "A highly developed free-market economy."
	slides[9].Title = "Trade & Finance"
	slides[9].Content[0].Text = "The economy depends on exports."
	return decktest.StoreOf(t, slides...)
}

type changeRecorder struct {
	changes []entity.Change
}

func (r *changeRecorder) record(c entity.Change) {
	r.changes = append(r.changes, c)
}

func (r *changeRecorder) actions() []entity.Action {
	out := make([]entity.Action, len(r.changes))
	for i, c := range r.changes {
		out[i] = c.Action
	}
	return out
}

func newTestNavigator(t *testing.T, store *deck.Store) (*Navigator, *changeRecorder) {
	t.Helper()
	nav := NewNavigator(context.Background(), store)
	rec := &changeRecorder{}
	t.Cleanup(nav.Subscribe(rec.record))
	return nav, rec
}
