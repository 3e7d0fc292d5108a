package usecase

import "errors"

// ErrSessionClosed is returned by operations on a session that was torn down.
var ErrSessionClosed = errors.New("presentation session closed")
