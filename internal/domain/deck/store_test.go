package deck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/domain/deck/decktest"
	"github.com/bnema/lectern/internal/domain/entity"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		slides  func() []entity.Slide
		wantErr error
	}{
		{
			name:    "empty deck",
			slides:  func() []entity.Slide { return nil },
			wantErr: deck.ErrEmptyDeck,
		},
		{
			name: "duplicate slug",
			slides: func() []entity.Slide {
				s := decktest.Slides(3)
				s[2].Slug = s[0].Slug
				return s
			},
			wantErr: deck.ErrDuplicateSlug,
		},
		{
			name: "duplicate id",
			slides: func() []entity.Slide {
				s := decktest.Slides(3)
				s[1].ID = s[0].ID
				return s
			},
			wantErr: deck.ErrDuplicateID,
		},
		{
			name: "slug not url safe",
			slides: func() []entity.Slide {
				s := decktest.Slides(2)
				s[1].Slug = "Quick Facts"
				return s
			},
			wantErr: deck.ErrInvalidSlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := deck.New(tt.slides())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, store)
		})
	}
}

func TestStore_ByIndex(t *testing.T) {
	store := decktest.Store(t, 3)
	assert.Equal(t, 3, store.Count())

	slide, err := store.ByIndex(2)
	require.NoError(t, err)
	assert.Equal(t, "slide-3", slide.Slug)

	for _, i := range []int{-1, 3, 100} {
		_, err := store.ByIndex(i)
		assert.ErrorIs(t, err, deck.ErrOutOfRange, "index %d", i)
	}
}

func TestStore_BySlug(t *testing.T) {
	store := decktest.Store(t, 5)

	slide, idx, err := store.BySlug("slide-4")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.Equal(t, "Slide 4", slide.Title)

	_, idx, err = store.BySlug("nonexistent-slug")
	assert.ErrorIs(t, err, deck.ErrNotFound)
	assert.Equal(t, -1, idx)
}

func TestStore_IsolatedFromCaller(t *testing.T) {
	slides := decktest.Slides(2)
	store, err := deck.New(slides)
	require.NoError(t, err)

	slides[0].Title = "mutated"
	all := store.All()
	all[1].Title = "also mutated"

	first, _ := store.ByIndex(0)
	second, _ := store.ByIndex(1)
	assert.Equal(t, "Slide 1", first.Title)
	assert.Equal(t, "Slide 2", second.Title)
}

func TestStore_FilteredPreservesOrder(t *testing.T) {
	store := decktest.Store(t, 6)

	entries := store.Filtered(func(s entity.Slide) bool {
		return s.ID == "2" || s.ID == "5" || s.ID == "6"
	})
	require.Len(t, entries, 3)
	assert.Equal(t, []int{1, 4, 5}, []int{entries[0].OriginalIndex, entries[1].OriginalIndex, entries[2].OriginalIndex})
	assert.Equal(t, "slide-5", entries[1].Slide.Slug)

	assert.Len(t, store.Filtered(nil), 6)
}

func TestMatchQuery(t *testing.T) {
	slide := entity.Slide{
		Title:      "Economic Overview",
		TitleVi:    "Tổng quan Kinh tế",
		Subtitle:   "Global Financial Hub",
		SubtitleVi: "Trung tâm Tài chính",
		Content: []entity.ContentBlock{
			{Kind: entity.BlockParagraph, Text: "Free-market economy", TextVi: "Nền kinh tế thị trường"},
			{Kind: entity.BlockList, Items: []entity.ListItem{{Text: "Port of Singapore", TextVi: "Cảng"}}},
		},
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"economy", true},
		{"ECONOMIC", true},
		{"kinh tế", true},
		{"financial hub", true},
		{"tài chính", true},
		{"port of", true},
		{"durian", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, deck.MatchQuery(tt.query)(slide))
		})
	}
}

func TestMatchQuery_IgnoresCategory(t *testing.T) {
	slide := decktest.Slides(1)[0]
	slide.Category = "Economy"

	assert.False(t, deck.MatchQuery("economy")(slide))
	slide.Subtitle = "Economy today"
	assert.True(t, deck.MatchQuery("economy")(slide))
}
