package engine

import "errors"

var (
	// ErrAlreadyStarted is returned by Start on an engine that is running.
	ErrAlreadyStarted = errors.New("engine: already started")

	// ErrStopped is returned by Start after Stop. Engines are not restartable.
	ErrStopped = errors.New("engine: stopped")
)
