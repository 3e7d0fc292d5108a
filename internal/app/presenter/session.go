// Package presenter wires the navigation use cases into one presentation
// session with scoped acquisition and teardown.
package presenter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/lectern/internal/application/port"
	"github.com/bnema/lectern/internal/application/usecase"
	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/infrastructure/clock"
	"github.com/bnema/lectern/internal/infrastructure/history"
	"github.com/bnema/lectern/internal/logging"
	"github.com/bnema/lectern/internal/ui/input"
)

// Options configures a Session. Store is required; other collaborators
// fall back to in-process defaults.
type Options struct {
	Store       *deck.Store
	InitialSlug string

	Clock      port.Clock
	LiveRegion port.LiveRegion
	Location   port.Location
	Printer    port.Printer
	Input      port.InputSource

	AutoplayPeriod time.Duration
	AutoplayRelay  usecase.AutoplayRelay
	StartAutoplay  bool
	SwipeThreshold float64
	HistoryLimit   int

	// OnPrintStarted is called before an export starts.
	OnPrintStarted func()
	// OnPrinted is called from the print goroutine when an export finishes.
	OnPrinted func(path string, err error)
	// OnQuit is called when the user asks to leave the presentation.
	OnQuit func()
}

// Session owns every resource of one presentation: the navigator and
// its subscribers, the autoplay timer and the input listeners.
type Session struct {
	opts       Options
	ctx        context.Context
	cancel     context.CancelFunc
	nav        *usecase.Navigator
	announcer  *usecase.Announcer
	location   *usecase.LocationSync
	autoplay   *usecase.Autoplay
	dispatcher *input.Dispatcher
	print      *usecase.PrintDeckUseCase
	initialErr error

	mu       sync.Mutex
	closed   bool
	releases []func()
	printing sync.WaitGroup
}

type discardRegion struct{}

func (discardRegion) Announce(context.Context, string) {}

// Open builds a session and seeds it from opts.InitialSlug. An unknown
// slug is not an error: the session starts on the first slide and
// InitialErr reports the miss. If Open fails, everything it acquired is
// released before it returns.
func Open(ctx context.Context, opts Options) (_ *Session, err error) {
	if opts.Store == nil {
		return nil, errors.New("open session: no slide store")
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.LiveRegion == nil {
		opts.LiveRegion = discardRegion{}
	}
	if opts.Location == nil {
		opts.Location = history.NewMemory(opts.HistoryLimit)
	}

	ctx = logging.WithComponent(ctx, "session")
	sessionCtx, cancel := context.WithCancel(ctx)
	s := &Session{
		opts:   opts,
		ctx:    sessionCtx,
		cancel: cancel,
	}
	s.releases = append(s.releases, cancel)
	defer func() {
		if err != nil {
			s.release()
		}
	}()

	s.nav = usecase.NewNavigator(sessionCtx, opts.Store)

	s.announcer = usecase.NewAnnouncer(sessionCtx, s.nav, opts.LiveRegion)
	s.releases = append(s.releases, s.announcer.Close)

	s.location = usecase.NewLocationSync(sessionCtx, s.nav, opts.Location)
	s.releases = append(s.releases, s.location.Close)

	idx, resolveErr := usecase.ResolveInitial(sessionCtx, opts.Store, opts.InitialSlug)
	s.initialErr = resolveErr
	if err = s.nav.Seed(idx); err != nil {
		return nil, fmt.Errorf("open session: seed: %w", err)
	}

	var apOpts []usecase.AutoplayOption
	if opts.AutoplayRelay != nil {
		apOpts = append(apOpts, usecase.WithAutoplayRelay(opts.AutoplayRelay))
	}
	s.autoplay = usecase.NewAutoplay(sessionCtx, s.nav, opts.Clock, opts.AutoplayPeriod, apOpts...)
	s.releases = append(s.releases, s.autoplay.Close)

	if opts.Printer != nil {
		s.print = usecase.NewPrintDeckUseCase(opts.Store, opts.Printer)
	}

	s.dispatcher = input.NewDispatcher(sessionCtx, s.nav, opts.SwipeThreshold)
	s.dispatcher.SetOnAction(s.handleAction)
	s.releases = append(s.releases, s.dispatcher.Detach)
	if opts.Input != nil {
		s.dispatcher.Attach(opts.Input)
	}

	if opts.StartAutoplay {
		s.nav.ToggleAutoplay()
	}

	logging.FromContext(sessionCtx).Info().
		Int("slides", opts.Store.Count()).
		Int("start", idx).
		Dur("autoplay_period", s.autoplay.Period()).
		Msg("session opened")

	return s, nil
}

// Close releases the autoplay timer, navigator subscriptions and input
// listeners, then waits for in-flight prints. It is safe to call more
// than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.release()
	s.printing.Wait()
	logging.FromContext(s.ctx).Info().Msg("session closed")
	return nil
}

// release runs cleanups in reverse acquisition order.
func (s *Session) release() {
	s.mu.Lock()
	releases := s.releases
	s.releases = nil
	s.mu.Unlock()

	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
}

// Closed reports whether Close was called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Navigator returns the session's navigation state machine.
func (s *Session) Navigator() *usecase.Navigator { return s.nav }

// Dispatcher returns the session's input dispatcher.
func (s *Session) Dispatcher() *input.Dispatcher { return s.dispatcher }

// Autoplay returns the session's autoplay timer.
func (s *Session) Autoplay() *usecase.Autoplay { return s.autoplay }

// History returns the session's location sync.
func (s *Session) History() *usecase.LocationSync { return s.location }

// InitialErr reports why the initial slug could not be used, if it
// could not. It wraps deck.ErrNotFound.
func (s *Session) InitialErr() error { return s.initialErr }

// SetAutoplayPeriod applies a new autoplay period, restarting the countdown.
func (s *Session) SetAutoplayPeriod(d time.Duration) {
	if s.Closed() {
		return
	}
	s.autoplay.SetPeriod(d)
}

// SetSwipeThreshold applies a new swipe threshold in pixels.
func (s *Session) SetSwipeThreshold(px float64) {
	s.dispatcher.Swipe().SetThreshold(px)
}

// Print starts an export in the background and returns immediately.
func (s *Session) Print() error {
	if s.print == nil {
		logging.FromContext(s.ctx).Warn().Msg("print requested but no printer configured")
		return nil
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return usecase.ErrSessionClosed
	}
	s.printing.Add(1)
	s.mu.Unlock()

	if s.opts.OnPrintStarted != nil {
		s.opts.OnPrintStarted()
	}

	go func() {
		defer s.printing.Done()
		path, err := s.print.Execute(s.ctx)
		if err != nil {
			logging.FromContext(s.ctx).Warn().Err(err).Msg("print failed")
		}
		if s.opts.OnPrinted != nil {
			s.opts.OnPrinted(path, err)
		}
	}()
	return nil
}

func (s *Session) handleAction(_ context.Context, action input.Action) error {
	switch action {
	case input.ActionPrint:
		return s.Print()
	case input.ActionHistoryBack:
		_, err := s.location.Back()
		return err
	case input.ActionHistoryForward:
		_, err := s.location.Forward()
		return err
	case input.ActionQuit:
		if s.opts.OnQuit != nil {
			s.opts.OnQuit()
		}
	}
	return nil
}
