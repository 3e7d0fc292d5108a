package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/logging"
)

// ChangeListener receives every committed transition, in order.
// Listeners run while the navigator is locked and must not call its
// mutating methods.
type ChangeListener func(entity.Change)

type subscriber struct {
	id int
	fn ChangeListener
}

// Navigator is the single authority over a session's NavigationState.
// All transitions are serialized; listeners observe them synchronously
// in the order they were committed.
type Navigator struct {
	store *deck.Store
	ctx   context.Context

	mu     sync.Mutex
	state  entity.NavigationState
	view   []deck.Entry
	subs   []subscriber
	nextID int
}

// NewNavigator creates a navigator over store in the initial state.
func NewNavigator(ctx context.Context, store *deck.Store) *Navigator {
	return &Navigator{
		store: store,
		ctx:   logging.WithComponent(ctx, "navigator"),
		state: entity.InitialNavigationState(),
		view:  store.Filtered(nil),
	}
}

// Store returns the underlying slide store.
func (n *Navigator) Store() *deck.Store {
	return n.store
}

// Subscribe registers fn for change notifications. The returned function
// removes it and is safe to call more than once.
func (n *Navigator) Subscribe(fn ChangeListener) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			for i, s := range n.subs {
				if s.id == id {
					n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// SubscriberCount returns how many listeners are attached.
func (n *Navigator) SubscriberCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// Next advances cyclically through the effective sequence.
// It does nothing when the sequence is empty.
func (n *Navigator) Next() {
	n.NextIf(nil)
}

// NextIf advances like Next, but only when guard (evaluated under the
// navigator lock) approves the current state. It reports whether a
// transition was committed.
func (n *Navigator) NextIf(guard func(entity.NavigationState) bool) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.view) == 0 {
		return false
	}
	if guard != nil && !guard(n.state) {
		return false
	}

	before, beforeSlide := n.snapshotLocked()
	n.state.CurrentIndex = (n.state.CurrentIndex + 1) % len(n.view)
	n.state.LastDirection = entity.Forward
	n.commitLocked(entity.ActionNext, before, beforeSlide)
	return true
}

// Previous steps back cyclically through the effective sequence.
// It does nothing when the sequence is empty.
func (n *Navigator) Previous() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.view) == 0 {
		return
	}

	before, beforeSlide := n.snapshotLocked()
	n.state.CurrentIndex = (n.state.CurrentIndex - 1 + len(n.view)) % len(n.view)
	n.state.LastDirection = entity.Backward
	n.commitLocked(entity.ActionPrevious, before, beforeSlide)
}

// GoTo jumps to position i of the effective sequence. Out of range
// targets fail with deck.ErrOutOfRange and leave the state untouched.
func (n *Navigator) GoTo(i int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.goToLocked(i, entity.ActionJump)
}

// GoToSlug jumps to the slide with the given slug if it is part of the
// effective sequence.
func (n *Navigator) GoToSlug(slug string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, e := range n.view {
		if e.Slide.Slug == slug {
			return n.goToLocked(i, entity.ActionJump)
		}
	}
	return fmt.Errorf("%w: %q not in current view", deck.ErrNotFound, slug)
}

func (n *Navigator) goToLocked(i int, action entity.Action) error {
	if i < 0 || i >= len(n.view) {
		return fmt.Errorf("%w: %d not in [0, %d)", deck.ErrOutOfRange, i, len(n.view))
	}

	before, beforeSlide := n.snapshotLocked()
	if i > n.state.CurrentIndex {
		n.state.LastDirection = entity.Forward
	} else {
		n.state.LastDirection = entity.Backward
	}
	n.state.CurrentIndex = i
	n.commitLocked(action, before, beforeSlide)
	return nil
}

// Restore shows the slide at originalIndex in the full deck without
// being treated as a new navigation. If a search filter hides the slide,
// the filter is cleared first.
func (n *Navigator) Restore(originalIndex int) error {
	return n.placeAt(originalIndex, entity.ActionRestore)
}

// Seed positions a fresh session on the slide at originalIndex.
func (n *Navigator) Seed(originalIndex int) error {
	return n.placeAt(originalIndex, entity.ActionSeed)
}

func (n *Navigator) placeAt(originalIndex int, action entity.Action) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := n.store.ByIndex(originalIndex); err != nil {
		return err
	}

	pos := n.positionLocked(originalIndex)
	if pos >= 0 {
		return n.goToLocked(pos, action)
	}

	// The filter hides the target: clearing it and moving is one change,
	// so subscribers never see the intermediate first slide.
	before, beforeSlide := n.snapshotLocked()
	n.state.SearchQuery = ""
	n.view = n.store.Filtered(nil)
	n.state.CurrentIndex = originalIndex
	if originalIndex > beforeSlide {
		n.state.LastDirection = entity.Forward
	} else {
		n.state.LastDirection = entity.Backward
	}
	n.commitLocked(action, before, beforeSlide)
	return nil
}

// SetSearchQuery filters the effective sequence. If the displayed slide
// drops out of the new view, or the query is cleared, the position
// resets to the first slide of the new view.
func (n *Navigator) SetSearchQuery(q string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if q == n.state.SearchQuery {
		return
	}

	before, beforeSlide := n.snapshotLocked()
	// Whitespace-only queries match everything, same as an empty one.
	cleared := strings.TrimSpace(q) == "" && strings.TrimSpace(before.SearchQuery) != ""

	n.state.SearchQuery = q
	n.view = n.store.Filtered(deck.MatchQuery(q))

	pos := n.positionLocked(beforeSlide)
	if cleared || pos < 0 {
		pos = 0
	}
	n.state.CurrentIndex = pos

	logging.FromContext(n.ctx).Debug().
		Str("query", q).
		Int("matches", len(n.view)).
		Int("index", pos).
		Msg("search query applied")

	n.commitLocked(entity.ActionSearch, before, beforeSlide)
}

// TogglePresenterMode flips presenter mode.
func (n *Navigator) TogglePresenterMode() {
	n.flip(entity.ActionTogglePresenter, func(s *entity.NavigationState) bool {
		s.PresenterMode = !s.PresenterMode
		return true
	})
}

// ExitPresenterMode turns presenter mode off if it is on.
func (n *Navigator) ExitPresenterMode() {
	n.flip(entity.ActionTogglePresenter, func(s *entity.NavigationState) bool {
		if !s.PresenterMode {
			return false
		}
		s.PresenterMode = false
		return true
	})
}

// ToggleAutoplay flips autoplay. Turning it off leaves Paused alone.
func (n *Navigator) ToggleAutoplay() {
	n.flip(entity.ActionToggleAutoplay, func(s *entity.NavigationState) bool {
		s.AutoplayEnabled = !s.AutoplayEnabled
		return true
	})
}

// TogglePause flips the pause flag.
func (n *Navigator) TogglePause() {
	n.flip(entity.ActionTogglePause, func(s *entity.NavigationState) bool {
		s.Paused = !s.Paused
		return true
	})
}

// OpenSearchOverlay opens the search overlay.
func (n *Navigator) OpenSearchOverlay() {
	n.flip(entity.ActionOpenSearch, func(s *entity.NavigationState) bool {
		if s.SearchOverlayOpen {
			return false
		}
		s.SearchOverlayOpen = true
		return true
	})
}

// CloseSearchOverlay closes the search overlay. The index is unchanged.
func (n *Navigator) CloseSearchOverlay() {
	n.flip(entity.ActionCloseSearch, func(s *entity.NavigationState) bool {
		if !s.SearchOverlayOpen {
			return false
		}
		s.SearchOverlayOpen = false
		return true
	})
}

func (n *Navigator) flip(action entity.Action, apply func(*entity.NavigationState) bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	before, beforeSlide := n.snapshotLocked()
	if !apply(&n.state) {
		return
	}
	n.commitLocked(action, before, beforeSlide)
}

// State returns a copy of the current state.
func (n *Navigator) State() entity.NavigationState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// EffectiveLength returns the length of the effective sequence.
func (n *Navigator) EffectiveLength() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.view)
}

// EffectiveSlides returns the effective sequence with original indices.
func (n *Navigator) EffectiveSlides() []deck.Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]deck.Entry, len(n.view))
	copy(out, n.view)
	return out
}

// CurrentSlide returns the displayed slide, or false when the effective
// sequence is empty.
func (n *Navigator) CurrentSlide() (entity.Slide, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.view) == 0 {
		return entity.Slide{}, false
	}
	return n.view[n.state.CurrentIndex].Slide, true
}

// CurrentOriginalIndex returns the deck position of the displayed slide,
// or -1 when the effective sequence is empty.
func (n *Navigator) CurrentOriginalIndex() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.originalLocked()
}

// Frame returns what a renderer needs for the current state.
func (n *Navigator) Frame() entity.Frame {
	n.mu.Lock()
	defer n.mu.Unlock()

	f := entity.Frame{
		PresenterMode: n.state.PresenterMode,
		Paused:        n.state.Paused,
		Index:         n.state.CurrentIndex,
		Total:         len(n.view),
		Query:         n.state.SearchQuery,
	}
	if len(n.view) > 0 {
		slide := n.view[n.state.CurrentIndex].Slide
		f.Slide = &slide
	}
	return f
}

func (n *Navigator) originalLocked() int {
	if len(n.view) == 0 {
		return -1
	}
	return n.view[n.state.CurrentIndex].OriginalIndex
}

func (n *Navigator) positionLocked(originalIndex int) int {
	if originalIndex < 0 {
		return -1
	}
	for i, e := range n.view {
		if e.OriginalIndex == originalIndex {
			return i
		}
	}
	return -1
}

func (n *Navigator) snapshotLocked() (entity.NavigationState, int) {
	return n.state, n.originalLocked()
}

func (n *Navigator) commitLocked(action entity.Action, before entity.NavigationState, beforeSlide int) {
	change := entity.Change{
		Action:          action,
		Before:          before,
		After:           n.state,
		BeforeSlide:     beforeSlide,
		AfterSlide:      n.originalLocked(),
		EffectiveLength: len(n.view),
	}

	logging.FromContext(n.ctx).Debug().
		Str("action", string(action)).
		Int("index", change.After.CurrentIndex).
		Int("slide", change.AfterSlide).
		Int("of", change.EffectiveLength).
		Msg("transition committed")

	for _, s := range n.subs {
		s.fn(change)
	}
}
