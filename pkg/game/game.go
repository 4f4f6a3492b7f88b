package game

import (
	"time"

	"bigfive-server/internal/rng"
	"bigfive-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// number of play areas and cards dealt per player
const (
	numAreas = 3
	handSize = 8
)

type state int

const (
	stateWaitingForPlayers state = iota
	stateActive
	stateFinished
)

// Game is a single two-player safari session. All state is in-memory and dies
// with the session; the hosting layer guarantees commands never interleave.
type Game struct {
	opts Options
	rand rng.Generator

	deck    *deck.Deck
	players []*Player
	areas   [numAreas]*playArea
	discard []*deck.Card

	currentPlayer int
	winner        int
	lastPlayed    *deck.Card
	state         state

	logger  logrus.FieldLogger
	logChan chan []*LogMessage
}

// NewGame creates a session with a built and shuffled deck and no players yet
func NewGame(logger logrus.FieldLogger, opts Options) *Game {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	gen := opts.Rand
	if gen == nil {
		gen = rng.NewSeeded(time.Now().UnixNano())
	}

	d := deck.New()
	d.Shuffle(gen)

	g := &Game{
		opts:    opts,
		rand:    gen,
		deck:    d,
		players: make([]*Player, 0, 2),
		discard: make([]*deck.Card, 0, deck.Size),
		winner:  noPlayer,
		logger:  logger,
		logChan: make(chan []*LogMessage, 256),
	}

	for i := range g.areas {
		g.areas[i] = newPlayArea()
	}

	return g
}

// Name returns "big-five-safari"
func (g *Game) Name() string {
	return "big-five-safari"
}

// AddPlayer attaches a player to the session. Fails once two players joined
// or after the game started.
func (g *Game) AddPlayer(playerID, name string) error {
	if g.state != stateWaitingForPlayers {
		return ErrGameStarted
	}

	if len(g.players) >= 2 {
		return ErrGameFull
	}

	g.players = append(g.players, newPlayer(playerID, name))
	g.logger.WithFields(logrus.Fields{
		"playerID": playerID,
		"name":     name,
	}).Debug("player joined")

	return nil
}

// Start deals eight cards to each player and activates the session.
// Requires exactly two players.
func (g *Game) Start() error {
	if g.state != stateWaitingForPlayers {
		return ErrGameStarted
	}

	if len(g.players) != 2 {
		return ErrNotEnoughPlayers
	}

	for _, player := range g.players {
		for i := 0; i < handSize; i++ {
			card, err := g.deck.Draw()
			if err != nil {
				// cannot happen with a 54-card deck and two hands of eight
				panic(err)
			}

			player.AddCard(card)
		}
	}

	g.state = stateActive
	g.sendLogMessages(newLogMessage("", nil, "The safari begins: %s vs %s", g.players[0].Name, g.players[1].Name))

	return nil
}

// PlayCard plays the card from the player's hand into the target area.
// A rejected play returns an error and leaves the session untouched.
func (g *Game) PlayCard(playerID, cardID string, areaID int) (*PlayResult, error) {
	switch g.state {
	case stateWaitingForPlayers:
		return nil, ErrGameNotActive
	case stateFinished:
		return nil, ErrGameOver
	}

	index, player := g.playerByID(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	if index != g.currentPlayer {
		return nil, ErrNotYourTurn
	}

	card := player.cardByID(cardID)
	if card == nil {
		return nil, ErrCardNotFound
	}

	// a polar bear freeze consumes the turn; nothing is placed
	if player.frozen {
		player.frozen = false
		g.nextTurn()

		msg := newLogMessage(player.ID, nil, "%s is frozen and skips a turn", player.Name)
		g.sendLogMessages(msg)

		return &PlayResult{
			SkipTurn: true,
			Message:  msg.Message,
		}, nil
	}

	if areaID < 0 || areaID >= numAreas {
		return nil, ErrInvalidArea
	}

	area := g.areas[areaID]
	if area.blockedAgainst(index) {
		return nil, ErrAreaBlocked
	}

	// checked before the effect resolves so a full area cannot leave a
	// half-applied special behind
	if !area.hasRoom(card) {
		if card.IsField() {
			return nil, ErrFieldSlotsFull
		}
		return nil, ErrSpecialSlotsFull
	}

	result := &PlayResult{}
	if card.Kind == deck.KindSpecial {
		result.SpecialEffect = string(card.Special)
		result.Message = g.resolveSpecial(card, index, areaID)
	} else {
		g.sendLogMessages(newLogMessage(player.ID, card, "%s places a %s in area %d", player.Name, card, areaID+1))
	}

	area.place(card, index)
	player.removeCard(card)
	g.lastPlayed = card

	if g.deck.CardsLeft() > 0 {
		drawn, err := g.deck.Draw()
		if err != nil {
			panic(err)
		}
		player.AddCard(drawn)
	}

	if points, summary := g.checkCompletion(areaID, index); points > 0 {
		result.BigFiveCompleted = true
		result.Points = points
		result.BigFiveSummary = summary
	}

	g.nextTurn()
	g.checkWinner()

	g.logger.WithFields(logrus.Fields{
		"playerID": playerID,
		"card":     card.String(),
		"area":     areaID,
	}).Debug("card played")

	return result, nil
}

// DrawCard draws one card from the deck into the player's hand. It does not
// consume the turn; turn gating is controlled by Options.DrawRequiresTurn.
func (g *Game) DrawCard(playerID string) (*DrawResult, error) {
	switch g.state {
	case stateWaitingForPlayers:
		return nil, ErrGameNotActive
	case stateFinished:
		return nil, ErrGameOver
	}

	index, player := g.playerByID(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	if g.opts.DrawRequiresTurn && index != g.currentPlayer {
		return nil, ErrNotYourTurn
	}

	if g.deck.CardsLeft() == 0 {
		return nil, ErrDeckEmpty
	}

	card, err := g.deck.Draw()
	if err != nil {
		panic(err)
	}

	player.AddCard(card)
	g.sendLogMessages(newLogMessage(player.ID, nil, "%s draws a card", player.Name))

	return &DrawResult{Card: card}, nil
}

// Winner returns the winning player and true once the game is decided
func (g *Game) Winner() (*Player, bool) {
	if g.winner == noPlayer {
		return nil, false
	}

	return g.players[g.winner], true
}

// Status returns the lifecycle state as a string
func (g *Game) Status() string {
	switch g.state {
	case stateWaitingForPlayers:
		return "waitingForPlayers"
	case stateActive:
		return "active"
	case stateFinished:
		return "finished"
	}

	panic("unknown state")
}

// PlayerNames returns the display names in seat order
func (g *Game) PlayerNames() []string {
	names := make([]string, len(g.players))
	for i, player := range g.players {
		names[i] = player.Name
	}

	return names
}

// PlayerCount returns how many players are attached
func (g *Game) PlayerCount() int {
	return len(g.players)
}

func (g *Game) playerByID(playerID string) (int, *Player) {
	for i, player := range g.players {
		if player.ID == playerID {
			return i, player
		}
	}

	return noPlayer, nil
}

func (g *Game) opponentOf(index int) *Player {
	return g.players[1-index]
}

// nextTurn flips the turn pointer. Exactly once per resolved play, skips
// included.
func (g *Game) nextTurn() {
	g.currentPlayer = (g.currentPlayer + 1) % 2
}

// checkWinner sets the winner once some player reaches the target score.
// With both players at the target, the lower seat index wins. A winner is
// never cleared or overwritten.
func (g *Game) checkWinner() {
	if g.winner != noPlayer {
		return
	}

	for i, player := range g.players {
		if player.score >= targetScore {
			g.winner = i
			g.state = stateFinished
			g.sendLogMessages(newLogMessage(player.ID, nil, "%s wins the safari with %d points", player.Name, player.score))
			return
		}
	}
}
