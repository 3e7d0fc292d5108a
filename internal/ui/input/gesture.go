package input

import (
	"math"
	"sync"

	"github.com/bnema/lectern/internal/application/port"
)

// DefaultSwipeThreshold is the minimum horizontal travel, in pixels,
// for a gesture to count as a swipe.
const DefaultSwipeThreshold = 50.0

// SwipeTracker recognizes horizontal swipes from start/move/end events.
// Sequences that do not begin with a start event are ignored.
type SwipeTracker struct {
	mu        sync.Mutex
	threshold float64
	active    bool
	startX    float64
	lastX     float64
}

// NewSwipeTracker creates a tracker. A non-positive threshold uses
// DefaultSwipeThreshold.
func NewSwipeTracker(threshold float64) *SwipeTracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeTracker{threshold: threshold}
}

// Threshold returns the swipe threshold in pixels.
func (s *SwipeTracker) Threshold() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threshold
}

// SetThreshold changes the swipe threshold. Non-positive values are ignored.
func (s *SwipeTracker) SetThreshold(px float64) {
	if px <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threshold = px
}

// Handle feeds one event and returns the recognized action, if any.
// A leftward swipe means next, a rightward swipe means previous.
func (s *SwipeTracker) Handle(ev port.PointerEvent) (Action, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Phase {
	case port.PointerStart:
		s.active = true
		s.startX = ev.X
		s.lastX = ev.X
	case port.PointerMove:
		if s.active {
			s.lastX = ev.X
		}
	case port.PointerEnd:
		if !s.active {
			return ActionNone, false
		}
		s.active = false
		s.lastX = ev.X
		dx := s.lastX - s.startX
		if math.IsNaN(dx) || math.Abs(dx) <= s.threshold {
			return ActionNone, false
		}
		if dx < 0 {
			return ActionNext, true
		}
		return ActionPrevious, true
	case port.PointerCancel:
		s.active = false
	}
	return ActionNone, false
}
