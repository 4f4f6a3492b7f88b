package game

import (
	"bigfive-server/pkg/deck"
)

// PlayerView is a player-specific snapshot of the session. It is rebuilt from
// scratch for every recipient on every broadcast and only ever contains
// copies: nothing in it aliases live game state, and the opponent's hand is
// reduced to face-down placeholders before it leaves the engine.
type PlayerView struct {
	Status         string         `json:"status"`
	YourIndex      int            `json:"yourIndex"`
	CurrentPlayer  int            `json:"currentPlayer"`
	Players        []*PlayerState `json:"players"`
	PlayAreas      []*AreaState   `json:"playAreas"`
	DiscardPile    []*deck.Card   `json:"discardPile"`
	DeckCount      int            `json:"deckCount"`
	Winner         *int           `json:"winner"`
	LastPlayedCard *deck.Card     `json:"lastPlayedCard,omitempty"`
}

// PlayerState is one player as seen by the view's recipient
type PlayerState struct {
	Name      string      `json:"name"`
	Score     int         `json:"score"`
	Position  int         `json:"position"`
	HandCount int         `json:"handCount"`
	Frozen    bool        `json:"frozen"`
	Hand      []*HandCard `json:"hand"`
}

// HandCard is a card in a hand. The recipient's own cards carry the card
// identity; the opponent's are face-down placeholders showing the card back.
type HandCard struct {
	Card   *deck.Card `json:"card,omitempty"`
	Hidden bool       `json:"hidden,omitempty"`
	Image  int        `json:"image"`
}

// AreaState is one play area with owner-tagged placements
type AreaState struct {
	Cards        []*PlacedCard `json:"cards"`
	SpecialCards []*PlacedCard `json:"specialCards"`
	Blocked      bool          `json:"blocked"`
	BlockedFor   *int          `json:"blockedFor,omitempty"`
}

// PlacedCard is a card on the board and the seat index of whoever placed it
type PlacedCard struct {
	Card  *deck.Card `json:"card"`
	Owner int        `json:"owner"`
}

// PlayerState returns the session state as the given player is allowed to
// see it
func (g *Game) PlayerState(playerID string) (*PlayerView, error) {
	index, viewer := g.playerByID(playerID)
	if viewer == nil {
		return nil, ErrPlayerNotFound
	}

	players := make([]*PlayerState, len(g.players))
	for i, player := range g.players {
		players[i] = &PlayerState{
			Name:      player.Name,
			Score:     player.score,
			Position:  player.Position(),
			HandCount: len(player.hand),
			Frozen:    player.frozen,
			Hand:      projectHand(player.hand, i == index),
		}
	}

	areas := make([]*AreaState, len(g.areas))
	for i, area := range g.areas {
		areas[i] = projectArea(area)
	}

	discard := make([]*deck.Card, len(g.discard))
	for i, card := range g.discard {
		discard[i] = card.Clone()
	}

	var winner *int
	if g.winner != noPlayer {
		w := g.winner
		winner = &w
	}

	var lastPlayed *deck.Card
	if g.lastPlayed != nil {
		lastPlayed = g.lastPlayed.Clone()
	}

	return &PlayerView{
		Status:         g.Status(),
		YourIndex:      index,
		CurrentPlayer:  g.currentPlayer,
		Players:        players,
		PlayAreas:      areas,
		DiscardPile:    discard,
		DeckCount:      g.deck.CardsLeft(),
		Winner:         winner,
		LastPlayedCard: lastPlayed,
	}, nil
}

func projectHand(hand []*deck.Card, own bool) []*HandCard {
	cards := make([]*HandCard, len(hand))
	for i, card := range hand {
		if own {
			cards[i] = &HandCard{Card: card.Clone(), Image: card.Image}
			continue
		}

		cards[i] = &HandCard{Hidden: true, Image: deck.BackImage}
	}

	return cards
}

func projectArea(area *playArea) *AreaState {
	state := &AreaState{
		Cards:        make([]*PlacedCard, len(area.cards)),
		SpecialCards: make([]*PlacedCard, len(area.specialCards)),
		Blocked:      area.blocked,
	}

	for i, pc := range area.cards {
		state.Cards[i] = &PlacedCard{Card: pc.card.Clone(), Owner: pc.owner}
	}

	for i, pc := range area.specialCards {
		state.SpecialCards[i] = &PlacedCard{Card: pc.card.Clone(), Owner: pc.owner}
	}

	if area.blocked {
		blockedFor := area.blockedFor
		state.BlockedFor = &blockedFor
	}

	return state
}
