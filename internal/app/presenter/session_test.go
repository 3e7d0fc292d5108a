package presenter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lectern/internal/application/port/mocks"
	"github.com/bnema/lectern/internal/application/usecase"
	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/domain/deck/decktest"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/infrastructure/clock"
	"github.com/bnema/lectern/internal/infrastructure/history"
	"github.com/bnema/lectern/internal/ui/input"
)

const period = 10 * time.Second

type fixture struct {
	session *Session
	clock   *clock.FakeClock
	bus     *input.Bus
	loc     *history.Memory
}

func open(t *testing.T, mutate func(*Options)) fixture {
	t.Helper()
	f := fixture{
		clock: clock.Fake(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)),
		bus:   input.NewBus(),
		loc:   history.NewMemory(20),
	}
	opts := Options{
		Store:          decktest.Store(t, 14),
		Clock:          f.clock,
		Location:       f.loc,
		Input:          f.bus,
		AutoplayPeriod: period,
		SwipeThreshold: 50,
	}
	if mutate != nil {
		mutate(&opts)
	}

	s, err := Open(context.Background(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	f.session = s
	return f
}

func TestOpen_RequiresStore(t *testing.T) {
	s, err := Open(context.Background(), Options{})
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestOpen_SeedsFromSlug(t *testing.T) {
	f := open(t, func(o *Options) { o.InitialSlug = "slide-6" })

	assert.NoError(t, f.session.InitialErr())
	assert.Equal(t, 5, f.session.Navigator().State().CurrentIndex)
	assert.Equal(t, "/slides/slide-6", f.loc.Current())
}

func TestOpen_UnknownSlugFallsBackToFirstSlide(t *testing.T) {
	f := open(t, func(o *Options) { o.InitialSlug = "nonexistent-slug" })

	assert.ErrorIs(t, f.session.InitialErr(), deck.ErrNotFound)
	assert.Equal(t, 0, f.session.Navigator().State().CurrentIndex)
	assert.False(t, f.session.Closed())
	assert.Equal(t, "/slides/slide-1", f.loc.Current())
}

func TestOpen_DefaultsCollaborators(t *testing.T) {
	s, err := Open(context.Background(), Options{Store: decktest.Store(t, 2)})
	require.NoError(t, err)
	defer s.Close()

	s.Navigator().Next()
	assert.Equal(t, usecase.DefaultAutoplayPeriod, s.Autoplay().Period())
	assert.NoError(t, s.Print(), "no printer configured is not an error")
}

func TestSession_InputDrivesNavigation(t *testing.T) {
	region := mocks.NewMockLiveRegion(t)
	var announced []string
	region.EXPECT().Announce(mock.Anything, mock.Anything).
		Run(func(_ context.Context, msg string) { announced = append(announced, msg) }).
		Return()
	f := open(t, func(o *Options) { o.LiveRegion = region })

	for i := 0; i < 14; i++ {
		assert.True(t, f.bus.EmitKey("right"))
	}

	state := f.session.Navigator().State()
	assert.Equal(t, 0, state.CurrentIndex)
	require.Len(t, announced, 14)
	assert.Contains(t, announced[13], "Slide 1 of 14")
}

func TestSession_HistoryKeys(t *testing.T) {
	f := open(t, nil)
	f.bus.EmitKey("right")
	f.bus.EmitKey("right")

	f.bus.EmitKey("alt+left")
	assert.Equal(t, 1, f.session.Navigator().State().CurrentIndex)
	f.bus.EmitKey("alt+left")
	assert.Equal(t, 0, f.session.Navigator().State().CurrentIndex)
	f.bus.EmitKey("alt+right")
	assert.Equal(t, 1, f.session.Navigator().State().CurrentIndex)
	assert.Equal(t, 3, f.loc.Len())
}

func TestSession_AutoplayStart(t *testing.T) {
	f := open(t, func(o *Options) { o.StartAutoplay = true })

	f.clock.Advance(period)
	assert.Equal(t, 1, f.session.Navigator().State().CurrentIndex)

	f.session.SetAutoplayPeriod(2 * time.Second)
	f.clock.Advance(2 * time.Second)
	assert.Equal(t, 2, f.session.Navigator().State().CurrentIndex)
}

func TestSession_CloseReleasesEverything(t *testing.T) {
	f := open(t, nil)
	f.bus.EmitKey("a")
	require.True(t, f.session.Autoplay().Armed())
	require.Equal(t, 3, f.bus.ListenerCount())
	require.Equal(t, 3, f.session.Navigator().SubscriberCount())

	require.NoError(t, f.session.Close())
	require.NoError(t, f.session.Close())

	assert.Equal(t, 0, f.bus.ListenerCount(), "input listeners detached")
	assert.Equal(t, 0, f.session.Navigator().SubscriberCount(), "subscriptions released")
	assert.Equal(t, 0, f.clock.Pending(), "timer released")

	before := f.session.Navigator().State()
	f.clock.Advance(10 * period)
	f.bus.EmitKey("right")
	f.bus.EmitControl("next")
	r := f.session.Dispatcher().HandleKey("right")

	assert.False(t, r.Handled)
	assert.Equal(t, before, f.session.Navigator().State(), "no fires or input after close")
	assert.ErrorIs(t, f.session.Print(), usecase.ErrSessionClosed)
}

func TestSession_PrintIsFireAndForget(t *testing.T) {
	printer := mocks.NewMockPrinter(t)
	release := make(chan struct{})
	printer.EXPECT().Print(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, []entity.Slide) (string, error) {
			<-release
			return "/tmp/deck.html", nil
		}).Once()

	var (
		mu   sync.Mutex
		done = make(chan struct{})
		got  string
	)
	f := open(t, func(o *Options) {
		o.Printer = printer
		o.OnPrinted = func(path string, err error) {
			mu.Lock()
			got = path
			mu.Unlock()
			close(done)
		}
	})

	f.bus.EmitKey("ctrl+s")
	f.bus.EmitKey("right")
	assert.Equal(t, 1, f.session.Navigator().State().CurrentIndex, "input keeps flowing while printing")

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("print did not complete")
	}
	mu.Lock()
	assert.Equal(t, "/tmp/deck.html", got)
	mu.Unlock()
}

func TestSession_PrintFailureIsReported(t *testing.T) {
	printer := mocks.NewMockPrinter(t)
	printer.EXPECT().Print(mock.Anything, mock.Anything).Return("", errors.New("read-only fs")).Once()

	errs := make(chan error, 1)
	f := open(t, func(o *Options) {
		o.Printer = printer
		o.OnPrinted = func(_ string, err error) { errs <- err }
	})

	require.NoError(t, f.session.Print())
	select {
	case err := <-errs:
		assert.ErrorContains(t, err, "read-only fs")
	case <-time.After(time.Second):
		t.Fatal("print did not complete")
	}
}

func TestSession_QuitCallback(t *testing.T) {
	quit := false
	f := open(t, func(o *Options) { o.OnQuit = func() { quit = true } })

	f.bus.EmitKey("q")
	assert.True(t, quit)
}
