package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/lectern/internal/application/port"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/logging"
)

// Announcer publishes a description of each slide move to a live region.
type Announcer struct {
	nav         *Navigator
	region      port.LiveRegion
	ctx         context.Context
	unsubscribe func()
	closeOnce   sync.Once
}

// NewAnnouncer subscribes to nav and starts announcing.
func NewAnnouncer(ctx context.Context, nav *Navigator, region port.LiveRegion) *Announcer {
	a := &Announcer{
		nav:    nav,
		region: region,
		ctx:    logging.WithComponent(ctx, "announcer"),
	}
	a.unsubscribe = nav.Subscribe(a.handle)
	return a
}

// Close stops announcing. It is safe to call more than once.
func (a *Announcer) Close() {
	a.closeOnce.Do(a.unsubscribe)
}

func (a *Announcer) handle(c entity.Change) {
	if !shouldAnnounce(c) {
		return
	}

	slide, err := a.nav.Store().ByIndex(c.AfterSlide)
	if err != nil {
		return
	}

	msg := Announcement(c.Action, slide.Title, c.After.CurrentIndex, c.EffectiveLength)
	logging.FromContext(a.ctx).Debug().Str("message", msg).Msg("announce")
	a.region.Announce(a.ctx, msg)
}

func shouldAnnounce(c entity.Change) bool {
	if c.AfterSlide < 0 {
		return false
	}
	if c.Action.IsNavigation() {
		return true
	}
	return c.Action == entity.ActionSearch && c.SlideMoved()
}

// Announcement formats the live-region text for a slide move.
// index is zero-based within a sequence of total slides.
func Announcement(action entity.Action, title string, index, total int) string {
	return fmt.Sprintf("Navigated to %s slide: %s. Slide %d of %d", announceVerb(action), title, index+1, total)
}

func announceVerb(action entity.Action) string {
	switch action {
	case entity.ActionNext:
		return "forward"
	case entity.ActionPrevious:
		return "previous"
	default:
		return "jumped"
	}
}
