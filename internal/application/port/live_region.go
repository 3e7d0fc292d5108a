package port

import "context"

// LiveRegion is the single text surface read by assistive technology.
// Implementations replace the previous message on every call.
type LiveRegion interface {
	Announce(ctx context.Context, message string)
}
