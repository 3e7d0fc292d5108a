// Package deck holds the immutable, ordered slide sequence.
package deck

import (
	"errors"
	"fmt"

	"github.com/bnema/lectern/internal/domain/entity"
)

var (
	ErrOutOfRange    = errors.New("slide index out of range")
	ErrNotFound      = errors.New("slide not found")
	ErrEmptyDeck     = errors.New("deck has no slides")
	ErrDuplicateSlug = errors.New("duplicate slide slug")
	ErrDuplicateID   = errors.New("duplicate slide id")
	ErrInvalidSlug   = errors.New("invalid slide slug")
)

// Entry pairs a slide with its position in the full deck.
type Entry struct {
	OriginalIndex int
	Slide         entity.Slide
}

// Store is a read-only ordered slide sequence indexed by position and slug.
type Store struct {
	slides []entity.Slide
	bySlug map[string]int
}

// New validates slides and builds a Store. The slice is copied.
func New(slides []entity.Slide) (*Store, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}

	s := &Store{
		slides: make([]entity.Slide, len(slides)),
		bySlug: make(map[string]int, len(slides)),
	}
	copy(s.slides, slides)

	ids := make(map[string]int, len(slides))
	for i, slide := range s.slides {
		if !entity.ValidSlug(slide.Slug) {
			return nil, fmt.Errorf("slide %d: %w: %q", i, ErrInvalidSlug, slide.Slug)
		}
		if prev, ok := s.bySlug[slide.Slug]; ok {
			return nil, fmt.Errorf("slides %d and %d: %w: %q", prev, i, ErrDuplicateSlug, slide.Slug)
		}
		if prev, ok := ids[slide.ID]; ok {
			return nil, fmt.Errorf("slides %d and %d: %w: %q", prev, i, ErrDuplicateID, slide.ID)
		}
		s.bySlug[slide.Slug] = i
		ids[slide.ID] = i
	}
	return s, nil
}

// Count returns the number of slides.
func (s *Store) Count() int {
	return len(s.slides)
}

// ByIndex returns the slide at position i.
func (s *Store) ByIndex(i int) (entity.Slide, error) {
	if i < 0 || i >= len(s.slides) {
		return entity.Slide{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(s.slides))
	}
	return s.slides[i], nil
}

// BySlug returns the slide with the given slug and its position.
func (s *Store) BySlug(slug string) (entity.Slide, int, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return entity.Slide{}, -1, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return s.slides[i], i, nil
}

// Filtered returns the slides accepted by pred, in deck order.
// A nil predicate accepts everything.
func (s *Store) Filtered(pred func(entity.Slide) bool) []Entry {
	entries := make([]Entry, 0, len(s.slides))
	for i, slide := range s.slides {
		if pred == nil || pred(slide) {
			entries = append(entries, Entry{OriginalIndex: i, Slide: slide})
		}
	}
	return entries
}

// All returns a copy of every slide in order.
func (s *Store) All() []entity.Slide {
	out := make([]entity.Slide, len(s.slides))
	copy(out, s.slides)
	return out
}
