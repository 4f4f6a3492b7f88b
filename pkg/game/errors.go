package game

import "errors"

// game errors. Every rejection is recoverable: the command leaves the session
// untouched and the caller may retry with corrected input.
var (
	// ErrGameFull is an error when a third player tries to join
	ErrGameFull = errors.New("the game already has two players")

	// ErrGameStarted is an error when joining or starting an active game
	ErrGameStarted = errors.New("the game has already started")

	// ErrNotEnoughPlayers is an error when starting without two players
	ErrNotEnoughPlayers = errors.New("two players are required to start")

	// ErrGameNotActive is an error when playing before the game started
	ErrGameNotActive = errors.New("the game has not started yet")

	// ErrGameOver is an error when playing after a winner was decided
	ErrGameOver = errors.New("the game is over")

	// ErrPlayerNotFound is an error when the player is not in this game
	ErrPlayerNotFound = errors.New("player not found")

	// ErrNotYourTurn is an error when a player acts out of turn
	ErrNotYourTurn = errors.New("it is not your turn")

	// ErrCardNotFound is an error when the card is not in the player's hand
	ErrCardNotFound = errors.New("card not found in your hand")

	// ErrInvalidArea is an error when the play area does not exist
	ErrInvalidArea = errors.New("invalid play area")

	// ErrAreaBlocked is an error when a zebra blocks the area for the caller
	ErrAreaBlocked = errors.New("this play area is blocked for you")

	// ErrFieldSlotsFull is an error when all five field slots are taken
	ErrFieldSlotsFull = errors.New("the play area is full")

	// ErrSpecialSlotsFull is an error when both special slots are taken
	ErrSpecialSlotsFull = errors.New("the special card slots are full")

	// ErrDeckEmpty is an error when drawing from an empty deck
	ErrDeckEmpty = errors.New("deck empty")
)
