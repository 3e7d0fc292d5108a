package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/lectern/internal/application/port"
	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/logging"
)

// SlidePathPrefix is the path segment that precedes a slug.
const SlidePathPrefix = "/slides/"

// SlidePath returns the shareable path for slug.
func SlidePath(slug string) string {
	return SlidePathPrefix + slug
}

// SlugFromPath extracts the slug from a path produced by SlidePath.
// A trailing slash, query string or fragment is ignored.
func SlugFromPath(path string) (string, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	rest, ok := strings.CutPrefix(path, SlidePathPrefix)
	if !ok {
		return "", false
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

// ResolveInitial maps an incoming slug to a deck index. An empty slug
// means the first slide. An unknown slug also yields 0, together with an
// error wrapping deck.ErrNotFound that callers should treat as a warning.
func ResolveInitial(ctx context.Context, store *deck.Store, slug string) (int, error) {
	if slug == "" {
		return 0, nil
	}
	_, idx, err := store.BySlug(slug)
	if err != nil {
		logging.FromContext(ctx).Warn().Str("slug", slug).Msg("unknown slug, starting at first slide")
		return 0, err
	}
	return idx, nil
}

// LocationSync mirrors the displayed slide into a navigable location and
// walks that location's history back into the navigator.
type LocationSync struct {
	nav         *Navigator
	location    port.Location
	ctx         context.Context
	unsubscribe func()
	closeOnce   sync.Once
}

// NewLocationSync subscribes to nav and starts reflecting changes.
func NewLocationSync(ctx context.Context, nav *Navigator, location port.Location) *LocationSync {
	s := &LocationSync{
		nav:      nav,
		location: location,
		ctx:      logging.WithComponent(ctx, "location"),
	}
	s.unsubscribe = nav.Subscribe(s.handle)
	return s
}

// Close stops reflecting changes. It is safe to call more than once.
func (s *LocationSync) Close() {
	s.closeOnce.Do(s.unsubscribe)
}

func (s *LocationSync) handle(c entity.Change) {
	if c.Action == entity.ActionRestore || c.AfterSlide < 0 {
		return
	}
	if c.Action != entity.ActionSeed && !c.SlideMoved() {
		return
	}

	slide, err := s.nav.Store().ByIndex(c.AfterSlide)
	if err != nil {
		return
	}
	path := SlidePath(slide.Slug)
	if path == s.location.Current() {
		return
	}
	s.location.Push(path)
	logging.FromContext(s.ctx).Debug().Str("path", path).Msg("location pushed")
}

// Back restores the previous location entry. It reports false when
// there is nothing to go back to.
func (s *LocationSync) Back() (bool, error) {
	path, ok := s.location.Back()
	if !ok {
		return false, nil
	}
	return true, s.restore(path)
}

// Forward restores the next location entry. It reports false when
// there is nothing to go forward to.
func (s *LocationSync) Forward() (bool, error) {
	path, ok := s.location.Forward()
	if !ok {
		return false, nil
	}
	return true, s.restore(path)
}

func (s *LocationSync) restore(path string) error {
	slug, ok := SlugFromPath(path)
	if !ok {
		return fmt.Errorf("restore %q: %w", path, deck.ErrNotFound)
	}
	_, idx, err := s.nav.Store().BySlug(slug)
	if err != nil {
		return fmt.Errorf("restore %q: %w", path, err)
	}
	if err := s.nav.Restore(idx); err != nil {
		logging.FromContext(s.ctx).Warn().Err(err).Str("path", path).Msg("restore failed")
		return err
	}
	return nil
}
