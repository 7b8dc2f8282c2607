package app

import "context"

// Composer captures snippet text from the user when no file or stdin is given.
// Implemented by infrastructure (e.g. EnvEditor spawning $EDITOR).
// The inline TUI composer does NOT implement this; it lives entirely
// in the Bubble Tea layer as a model.
type Composer interface {
	Compose(ctx context.Context) (string, error)
}
