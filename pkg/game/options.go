package game

import (
	"bigfive-server/internal/rng"
)

// Options configures a game session
type Options struct {
	// DrawRequiresTurn gates the draw command on turn ownership.
	// The original rules treat drawing as a free action, so the default is off.
	DrawRequiresTurn bool

	// Rand drives the shuffle and any random card selection.
	// Leave nil for a time-seeded generator; tests inject a fixed seed.
	Rand rng.Generator
}

// DefaultOptions returns the default game options
func DefaultOptions() Options {
	return Options{}
}
