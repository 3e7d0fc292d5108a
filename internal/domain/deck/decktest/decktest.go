// Package decktest builds small synthetic decks for tests.
package decktest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/domain/entity"
)

// Slides returns n slides with ids "1".."n", slugs "slide-1".."slide-n"
// and titles "Slide 1".."Slide n".
func Slides(n int) []entity.Slide {
	slides := make([]entity.Slide, n)
	for i := range slides {
		slides[i] = entity.Slide{
			ID:       fmt.Sprint(i + 1),
			Slug:     fmt.Sprintf("slide-%d", i+1),
			Category: "Test",
			Title:    fmt.Sprintf("Slide %d", i+1),
			TitleVi:  fmt.Sprintf("Trang %d", i+1),
			Content: []entity.ContentBlock{{
				Kind:   entity.BlockParagraph,
				Text:   fmt.Sprintf("Body of slide %d", i+1),
				TextVi: fmt.Sprintf("Nội dung trang %d", i+1),
			}},
		}
	}
	return slides
}

// Store builds a validated store of n synthetic slides.
func Store(t testing.TB, n int) *deck.Store {
	t.Helper()
	store, err := deck.New(Slides(n))
	require.NoError(t, err)
	return store
}

// StoreOf builds a validated store from the given slides.
func StoreOf(t testing.TB, slides ...entity.Slide) *deck.Store {
	t.Helper()
	store, err := deck.New(slides)
	require.NoError(t, err)
	return store
}
