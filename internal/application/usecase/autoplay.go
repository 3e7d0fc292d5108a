package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/lectern/internal/application/port"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/logging"
)

// DefaultAutoplayPeriod is how long each slide stays up during autoplay.
const DefaultAutoplayPeriod = 10 * time.Second

// AutoplayRelay hands a fire callback to the goroutine that owns the UI.
// The relay must eventually call fire exactly once, or drop it.
type AutoplayRelay func(fire func())

// Autoplay advances the navigator on a fixed period while autoplay is
// enabled and not paused. The countdown restarts on every transition.
type Autoplay struct {
	nav   *Navigator
	clock port.Clock
	ctx   context.Context
	relay AutoplayRelay

	mu          sync.Mutex
	period      time.Duration
	timer       port.Timer
	generation  uint64
	closed      bool
	unsubscribe func()
}

// AutoplayOption configures an Autoplay.
type AutoplayOption func(*Autoplay)

// WithAutoplayRelay routes timer fires through relay instead of calling
// the navigator from the timer goroutine.
func WithAutoplayRelay(relay AutoplayRelay) AutoplayOption {
	return func(a *Autoplay) {
		a.relay = relay
	}
}

// NewAutoplay subscribes to nav and arms the timer if the current state
// calls for it. A non-positive period falls back to DefaultAutoplayPeriod.
func NewAutoplay(ctx context.Context, nav *Navigator, clock port.Clock, period time.Duration, opts ...AutoplayOption) *Autoplay {
	if period <= 0 {
		period = DefaultAutoplayPeriod
	}
	a := &Autoplay{
		nav:    nav,
		clock:  clock,
		ctx:    logging.WithComponent(ctx, "autoplay"),
		period: period,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.unsubscribe = nav.Subscribe(a.handle)

	state := nav.State()
	a.mu.Lock()
	a.rearmLocked(state)
	a.mu.Unlock()
	return a
}

// Period returns the current autoplay period.
func (a *Autoplay) Period() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.period
}

// SetPeriod changes the period and restarts the countdown.
func (a *Autoplay) SetPeriod(d time.Duration) {
	if d <= 0 {
		return
	}
	state := a.nav.State()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.period = d
	a.rearmLocked(state)
}

// Armed reports whether a countdown is pending.
func (a *Autoplay) Armed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timer != nil
}

// Close disarms the timer and detaches from the navigator.
// It is safe to call more than once.
func (a *Autoplay) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.disarmLocked()
	unsubscribe := a.unsubscribe
	a.mu.Unlock()

	unsubscribe()
}

func (a *Autoplay) handle(c entity.Change) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rearmLocked(c.After)
}

func (a *Autoplay) disarmLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.generation++
}

func (a *Autoplay) rearmLocked(state entity.NavigationState) {
	a.disarmLocked()
	if a.closed || !state.AutoplayArmed() {
		return
	}

	gen := a.generation
	a.timer = a.clock.AfterFunc(a.period, func() {
		if a.relay != nil {
			a.relay(func() { a.fire(gen) })
			return
		}
		a.fire(gen)
	})
}

// fire advances the navigator unless the timer that scheduled it has
// since been superseded.
func (a *Autoplay) fire(gen uint64) {
	advanced := a.nav.NextIf(func(state entity.NavigationState) bool {
		a.mu.Lock()
		defer a.mu.Unlock()
		return !a.closed && gen == a.generation && state.AutoplayArmed()
	})
	if !advanced {
		logging.FromContext(a.ctx).Debug().Uint64("generation", gen).Msg("stale autoplay fire dropped")
	}
}
