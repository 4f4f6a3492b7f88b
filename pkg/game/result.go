package game

import (
	"bigfive-server/pkg/deck"
)

// PlayResult is the outcome of a resolved play command. A rejected command
// never produces a PlayResult; it returns an error and mutates nothing.
type PlayResult struct {
	// SkipTurn is true when the turn was consumed by a frozen status.
	// No card was placed and the hand is unchanged.
	SkipTurn bool `json:"skipTurn,omitempty"`

	// Message describes what happened, attributed to the acting player.
	// For a giraffe this includes the peeked cards and is only sent to the
	// acting player.
	Message string `json:"message,omitempty"`

	// SpecialEffect names the special card behavior that resolved, if any
	SpecialEffect string `json:"specialEffect,omitempty"`

	// BigFiveCompleted is true when the placement completed the big five
	BigFiveCompleted bool `json:"bigFiveCompleted,omitempty"`

	// Points awarded to the acting player on completion (3, or 6 with a zebra)
	Points int `json:"points,omitempty"`

	// BigFiveSummary describes the completion
	BigFiveSummary string `json:"bigFiveSummary,omitempty"`
}

// DrawResult is the outcome of a resolved draw command
type DrawResult struct {
	// Card is the drawn card
	Card *deck.Card `json:"card"`
}
