package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lectern/internal/application/port/mocks"
	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/domain/deck/decktest"
	"github.com/bnema/lectern/internal/infrastructure/history"
)

func TestSlugFromPath(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/slides/economy", "economy", true},
		{"/slides/economy/", "economy", true},
		{"/slides/economy?presenter=1", "economy", true},
		{"/slides/economy#notes", "economy", true},
		{"/slides/", "", false},
		{"/slides/a/b", "", false},
		{"/economy", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := SlugFromPath(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlidePath_RoundTrip(t *testing.T) {
	store := singaporeStore(t)
	for _, slide := range store.All() {
		slug, ok := SlugFromPath(SlidePath(slide.Slug))
		require.True(t, ok)

		_, idx, err := store.BySlug(slug)
		require.NoError(t, err)

		nav := NewNavigator(context.Background(), store)
		require.NoError(t, nav.Seed(idx))
		current, _ := nav.CurrentSlide()
		assert.Equal(t, slide.Slug, current.Slug)
	}
}

func TestResolveInitial(t *testing.T) {
	store := singaporeStore(t)
	ctx := context.Background()

	idx, err := ResolveInitial(ctx, store, "")
	assert.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = ResolveInitial(ctx, store, "economy")
	assert.NoError(t, err)
	assert.Equal(t, 8, idx)

	idx, err = ResolveInitial(ctx, store, "nonexistent-slug")
	assert.ErrorIs(t, err, deck.ErrNotFound)
	assert.Equal(t, 0, idx)
}

func TestLocationSync_UnknownDeepLinkStartsAtFirstSlide(t *testing.T) {
	store := singaporeStore(t)
	nav := NewNavigator(context.Background(), store)
	loc := history.NewMemory(10)
	sync := NewLocationSync(context.Background(), nav, loc)
	defer sync.Close()

	idx, err := ResolveInitial(context.Background(), store, "nonexistent-slug")
	require.ErrorIs(t, err, deck.ErrNotFound)
	require.NoError(t, nav.Seed(idx))

	assert.Equal(t, 0, nav.State().CurrentIndex)
	assert.Equal(t, "/slides/welcome", loc.Current())
}

func TestLocationSync_PushesOnSlideMoves(t *testing.T) {
	nav := NewNavigator(context.Background(), singaporeStore(t))
	loc := history.NewMemory(10)
	NewLocationSync(context.Background(), nav, loc)

	require.NoError(t, nav.Seed(0))
	nav.Next()
	require.NoError(t, nav.GoToSlug("economy"))
	nav.TogglePresenterMode()
	nav.ToggleAutoplay()

	assert.Equal(t, 3, loc.Len())
	assert.Equal(t, "/slides/economy", loc.Current())
}

func TestLocationSync_SearchResetPushes(t *testing.T) {
	nav := NewNavigator(context.Background(), singaporeStore(t))
	loc := mocks.NewMockLocation(t)
	loc.EXPECT().Current().Return("/slides/welcome").Once()
	loc.EXPECT().Push("/slides/economy").Return().Once()
	NewLocationSync(context.Background(), nav, loc)

	nav.SetSearchQuery("economy")
}

func TestLocationSync_SkipsDuplicatePush(t *testing.T) {
	nav := NewNavigator(context.Background(), decktest.Store(t, 1))
	loc := history.NewMemory(10)
	NewLocationSync(context.Background(), nav, loc)

	require.NoError(t, nav.Seed(0))
	nav.Next()
	nav.Next()
	assert.Equal(t, 1, loc.Len())
}

func TestLocationSync_BackForwardRestore(t *testing.T) {
	nav := NewNavigator(context.Background(), singaporeStore(t))
	loc := history.NewMemory(10)
	sync := NewLocationSync(context.Background(), nav, loc)
	rec := &changeRecorder{}
	nav.Subscribe(rec.record)

	require.NoError(t, nav.Seed(0))
	nav.Next()
	nav.Next()
	require.Equal(t, 3, loc.Len())

	moved, err := sync.Back()
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 1, nav.State().CurrentIndex)
	assert.Equal(t, "/slides/quick-facts", loc.Current())
	assert.Equal(t, 3, loc.Len(), "restore does not push")

	moved, err = sync.Back()
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 0, nav.State().CurrentIndex)

	moved, err = sync.Back()
	require.NoError(t, err)
	assert.False(t, moved)

	moved, err = sync.Forward()
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 1, nav.State().CurrentIndex)

	last := rec.changes[len(rec.changes)-1]
	assert.Equal(t, "restore", string(last.Action))
}

func TestLocationSync_BackForwardAcrossHidingFilter(t *testing.T) {
	nav := NewNavigator(context.Background(), singaporeStore(t))
	loc := history.NewMemory(10)
	sync := NewLocationSync(context.Background(), nav, loc)
	region := mocks.NewMockLiveRegion(t)
	got := captureAnnouncements(region)
	NewAnnouncer(context.Background(), nav, region)

	require.NoError(t, nav.Seed(0))
	nav.Next()
	nav.Next()
	require.NoError(t, nav.GoToSlug("economy"))
	nav.SetSearchQuery("economy")
	nav.Next()
	require.Equal(t, "/slides/trade-finance", loc.Current())
	require.Equal(t, 5, loc.Len())

	_, err := sync.Back()
	require.NoError(t, err)
	assert.Equal(t, "/slides/economy", loc.Current())

	*got = nil
	moved, err := sync.Back()
	require.NoError(t, err)
	assert.True(t, moved)

	slide, ok := nav.CurrentSlide()
	require.True(t, ok)
	assert.Equal(t, "geography-climate", slide.Slug)
	assert.Empty(t, nav.State().SearchQuery)
	assert.Equal(t, "/slides/geography-climate", loc.Current())
	assert.Equal(t, 5, loc.Len(), "forward entries survive")
	assert.Equal(t, []string{"Navigated to jumped slide: Slide 3. Slide 3 of 14"}, *got)

	_, err = sync.Forward()
	require.NoError(t, err)
	_, err = sync.Forward()
	require.NoError(t, err)
	assert.Equal(t, "/slides/trade-finance", loc.Current())
	slide, _ = nav.CurrentSlide()
	assert.Equal(t, "trade-finance", slide.Slug)
}

func TestLocationSync_RestoreUnknownPath(t *testing.T) {
	nav := NewNavigator(context.Background(), singaporeStore(t))
	loc := mocks.NewMockLocation(t)
	loc.EXPECT().Back().Return("/slides/gone", true).Once()
	loc.EXPECT().Forward().Return("/elsewhere", true).Once()
	sync := NewLocationSync(context.Background(), nav, loc)

	_, err := sync.Back()
	assert.ErrorIs(t, err, deck.ErrNotFound)

	_, err = sync.Forward()
	assert.ErrorIs(t, err, deck.ErrNotFound)
	assert.Equal(t, 0, nav.State().CurrentIndex)
}

func TestLocationSync_Close(t *testing.T) {
	nav := NewNavigator(context.Background(), singaporeStore(t))
	loc := mocks.NewMockLocation(t)
	sync := NewLocationSync(context.Background(), nav, loc)

	sync.Close()
	sync.Close()
	nav.Next()
	assert.Equal(t, 0, nav.SubscriberCount())
}
