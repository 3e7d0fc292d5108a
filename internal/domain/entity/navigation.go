package entity

// Direction records which way the last transition moved.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// NavigationState is the presentation state of one session.
// CurrentIndex is relative to the effective (filtered) sequence.
type NavigationState struct {
	CurrentIndex      int
	LastDirection     Direction
	PresenterMode     bool
	AutoplayEnabled   bool
	Paused            bool
	SearchOverlayOpen bool
	SearchQuery       string
}

// InitialNavigationState returns the state every session starts from.
func InitialNavigationState() NavigationState {
	return NavigationState{LastDirection: Forward}
}

// AutoplayArmed reports whether the autoplay timer should be running.
func (s NavigationState) AutoplayArmed() bool {
	return s.AutoplayEnabled && !s.Paused
}

// Action names the operation that produced a Change.
type Action string

const (
	ActionNext            Action = "next"
	ActionPrevious        Action = "previous"
	ActionJump            Action = "jump"
	ActionSearch          Action = "search"
	ActionTogglePresenter Action = "toggle-presenter"
	ActionToggleAutoplay  Action = "toggle-autoplay"
	ActionTogglePause     Action = "toggle-pause"
	ActionOpenSearch      Action = "open-search"
	ActionCloseSearch     Action = "close-search"
	ActionRestore         Action = "restore"
	ActionSeed            Action = "seed"
)

// IsNavigation reports whether the action is a deliberate slide move.
func (a Action) IsNavigation() bool {
	switch a {
	case ActionNext, ActionPrevious, ActionJump, ActionRestore:
		return true
	}
	return false
}

// Change describes one committed transition.
// BeforeSlide and AfterSlide are original deck indices, -1 when the
// effective sequence was empty.
type Change struct {
	Action          Action
	Before          NavigationState
	After           NavigationState
	BeforeSlide     int
	AfterSlide      int
	EffectiveLength int
}

// SlideMoved reports whether the displayed slide changed.
func (c Change) SlideMoved() bool {
	return c.BeforeSlide != c.AfterSlide
}

// Frame is what a renderer needs to draw the current state.
// Slide is nil when the effective sequence is empty.
type Frame struct {
	Slide         *Slide
	PresenterMode bool
	Paused        bool
	Index         int
	Total         int
	Query         string
}
