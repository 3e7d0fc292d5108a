package input

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/lectern/internal/application/port"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/logging"
)

// Navigator is the part of the navigation state machine the dispatcher drives.
type Navigator interface {
	State() entity.NavigationState
	EffectiveLength() int
	Next()
	Previous()
	GoTo(i int) error
	TogglePresenterMode()
	ExitPresenterMode()
	ToggleAutoplay()
	TogglePause()
	OpenSearchOverlay()
	CloseSearchOverlay()
}

// ActionHandler is called for actions the navigator does not own
// (print, history, quit).
type ActionHandler func(ctx context.Context, action Action) error

// Result reports what the dispatcher did with an input.
type Result struct {
	Action  Action
	Handled bool
	// PreventDefault is set for every bound key so the host skips its own
	// behavior (scrolling on space, find-in-page on ctrl+f).
	PreventDefault bool
}

// Control names accepted by HandleControl. Goto controls are written
// "goto:<index>".
const (
	ControlPrev      = "prev"
	ControlNext      = "next"
	ControlPause     = "pause"
	ControlAutoplay  = "autoplay"
	ControlPresenter = "presenter"
	ControlSearch    = "search"
	ControlPrint     = "print"
	ControlBack      = "back"
	ControlForward   = "forward"
	ControlGoToPfx   = "goto:"
)

var controlActions = map[string]Action{
	ControlPrev:      ActionPrevious,
	ControlNext:      ActionNext,
	ControlPause:     ActionTogglePause,
	ControlAutoplay:  ActionToggleAutoplay,
	ControlPresenter: ActionTogglePresenter,
	ControlSearch:    ActionOpenSearch,
	ControlPrint:     ActionPrint,
	ControlBack:      ActionHistoryBack,
	ControlForward:   ActionHistoryForward,
}

// Dispatcher maps input events to navigator operations.
type Dispatcher struct {
	nav       Navigator
	shortcuts *ShortcutSet
	swipe     *SwipeTracker
	ctx       context.Context

	mu       sync.Mutex
	onAction ActionHandler
	releases []func()
	detached bool
}

// NewDispatcher creates a dispatcher for nav. swipeThreshold is in pixels.
func NewDispatcher(ctx context.Context, nav Navigator, swipeThreshold float64) *Dispatcher {
	ctx = logging.WithComponent(ctx, "input")
	return &Dispatcher{
		nav:       nav,
		shortcuts: NewShortcutSet(ctx),
		swipe:     NewSwipeTracker(swipeThreshold),
		ctx:       ctx,
	}
}

// SetOnAction sets the callback for actions outside the navigator.
func (d *Dispatcher) SetOnAction(fn ActionHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onAction = fn
}

// Shortcuts returns the active shortcut tables.
func (d *Dispatcher) Shortcuts() *ShortcutSet {
	return d.shortcuts
}

// Swipe returns the swipe tracker.
func (d *Dispatcher) Swipe() *SwipeTracker {
	return d.swipe
}

// Attach registers the dispatcher's listeners on src. The returned
// function removes them; Detach removes every attachment at once.
func (d *Dispatcher) Attach(src port.InputSource) (release func()) {
	removers := []func(){
		src.AddKeyListener(func(key string) bool {
			return d.HandleKey(key).PreventDefault
		}),
		src.AddPointerListener(func(ev port.PointerEvent) {
			d.HandlePointer(ev)
		}),
		src.AddControlListener(func(control string) {
			if _, err := d.HandleControl(control); err != nil {
				logging.FromContext(d.ctx).Debug().Err(err).Str("control", control).Msg("control rejected")
			}
		}),
	}

	var once sync.Once
	release = func() {
		once.Do(func() {
			for _, remove := range removers {
				remove()
			}
		})
	}

	d.mu.Lock()
	d.detached = false
	d.releases = append(d.releases, release)
	d.mu.Unlock()
	return release
}

// Detach removes all listeners and makes the dispatcher ignore further
// input. It is safe to call more than once.
func (d *Dispatcher) Detach() {
	d.mu.Lock()
	releases := d.releases
	d.releases = nil
	d.detached = true
	d.mu.Unlock()

	for _, release := range releases {
		release()
	}
}

func (d *Dispatcher) isDetached() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detached
}

// HandleKey dispatches a key press. Unbound keys are ignored and not
// marked PreventDefault.
func (d *Dispatcher) HandleKey(key string) Result {
	if d.isDetached() {
		return Result{}
	}

	binding, ok := ParseKeyString(key)
	if !ok {
		return Result{}
	}

	action, ok := d.shortcuts.Lookup(binding, d.nav.State().SearchOverlayOpen)
	if !ok {
		return Result{}
	}

	logging.FromContext(d.ctx).Trace().
		Str("key", binding.String()).
		Str("action", string(action)).
		Msg("key dispatched")

	d.perform(action)
	return Result{Action: action, Handled: true, PreventDefault: true}
}

// HandlePointer feeds a gesture event to the swipe tracker and
// navigates on a completed swipe.
func (d *Dispatcher) HandlePointer(ev port.PointerEvent) Result {
	if d.isDetached() {
		return Result{}
	}

	action, ok := d.swipe.Handle(ev)
	if !ok {
		return Result{}
	}
	d.perform(action)
	return Result{Action: action, Handled: true}
}

// HandleControl dispatches a named control. An out of range goto target
// is returned as an error and leaves the state unchanged.
func (d *Dispatcher) HandleControl(control string) (Result, error) {
	if d.isDetached() {
		return Result{}, nil
	}

	if target, ok := strings.CutPrefix(control, ControlGoToPfx); ok {
		i, err := strconv.Atoi(target)
		if err != nil {
			return Result{}, fmt.Errorf("parse goto target %q: %w", target, err)
		}
		if err := d.nav.GoTo(i); err != nil {
			return Result{}, err
		}
		return Result{Action: ActionGoTo, Handled: true}, nil
	}

	action, ok := controlActions[control]
	if !ok {
		return Result{}, nil
	}
	d.perform(action)
	return Result{Action: action, Handled: true}, nil
}

func (d *Dispatcher) perform(action Action) {
	switch action {
	case ActionNext:
		d.nav.Next()
	case ActionPrevious:
		d.nav.Previous()
	case ActionFirst:
		d.goTo(0)
	case ActionLast:
		d.goTo(d.nav.EffectiveLength() - 1)
	case ActionTogglePresenter:
		d.nav.TogglePresenterMode()
	case ActionEscape:
		d.nav.CloseSearchOverlay()
		d.nav.ExitPresenterMode()
	case ActionOpenSearch:
		d.nav.OpenSearchOverlay()
	case ActionSubmitSearch:
		d.nav.CloseSearchOverlay()
	case ActionToggleAutoplay:
		d.nav.ToggleAutoplay()
	case ActionTogglePause:
		d.nav.TogglePause()
	default:
		d.forward(action)
	}
}

// goTo ignores an empty view; there is nothing to jump to.
func (d *Dispatcher) goTo(i int) {
	if err := d.nav.GoTo(i); err != nil {
		logging.FromContext(d.ctx).Debug().Err(err).Int("target", i).Msg("goto ignored")
	}
}

func (d *Dispatcher) forward(action Action) {
	d.mu.Lock()
	fn := d.onAction
	d.mu.Unlock()

	if fn == nil {
		return
	}
	if err := fn(d.ctx, action); err != nil {
		logging.FromContext(d.ctx).Warn().Err(err).Str("action", string(action)).Msg("action failed")
	}
}
