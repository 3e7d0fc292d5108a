package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/lectern/internal/application/port"
)

func swipe(s *SwipeTracker, from, to float64) (Action, bool) {
	s.Handle(port.PointerEvent{Phase: port.PointerStart, X: from})
	s.Handle(port.PointerEvent{Phase: port.PointerMove, X: (from + to) / 2})
	return s.Handle(port.PointerEvent{Phase: port.PointerEnd, X: to})
}

func TestSwipeTracker(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     Action
		wantOk   bool
	}{
		{"leftward past threshold", 300, 200, ActionNext, true},
		{"rightward past threshold", 100, 200, ActionPrevious, true},
		{"exactly threshold", 100, 150, ActionNone, false},
		{"just over threshold", 100, 150.5, ActionPrevious, true},
		{"small jitter", 100, 90, ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := swipe(NewSwipeTracker(0), tt.from, tt.to)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSwipeTracker_MalformedSequences(t *testing.T) {
	s := NewSwipeTracker(50)

	_, ok := s.Handle(port.PointerEvent{Phase: port.PointerEnd, X: 0})
	assert.False(t, ok, "end without start")

	s.Handle(port.PointerEvent{Phase: port.PointerMove, X: 500})
	_, ok = s.Handle(port.PointerEvent{Phase: port.PointerEnd, X: 0})
	assert.False(t, ok, "move without start")

	s.Handle(port.PointerEvent{Phase: port.PointerStart, X: 500})
	s.Handle(port.PointerEvent{Phase: port.PointerCancel})
	_, ok = s.Handle(port.PointerEvent{Phase: port.PointerEnd, X: 0})
	assert.False(t, ok, "cancelled gesture")
}

func TestSwipeTracker_Threshold(t *testing.T) {
	s := NewSwipeTracker(-1)
	assert.Equal(t, DefaultSwipeThreshold, s.Threshold())

	s.SetThreshold(120)
	s.SetThreshold(0)
	assert.Equal(t, 120.0, s.Threshold())

	_, ok := swipe(s, 200, 100)
	assert.False(t, ok)
	action, ok := swipe(s, 300, 100)
	assert.True(t, ok)
	assert.Equal(t, ActionNext, action)
}
