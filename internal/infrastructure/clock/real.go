// Package clock provides the real and fake implementations of port.Clock.
package clock

import (
	"time"

	"github.com/bnema/lectern/internal/application/port"
)

// Real returns a Clock backed by the time package.
func Real() port.Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) port.Timer {
	return time.AfterFunc(d, f)
}
