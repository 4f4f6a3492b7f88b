package game

import (
	"bigfive-server/pkg/deck"
)

// targetScore is the score at which a player wins; the board position is
// displayed clamped to this value, the raw score may exceed it
const targetScore = 10

// Player is one of the two players in a game session
type Player struct {
	// ID is the identity assigned by the hosting layer
	ID string

	// Name is the display name
	Name string

	hand []*deck.Card

	// score only ever grows, by 3 or 6, on a completion
	score int

	// frozen is set by a polar bear and consumed as a turn skip
	frozen bool
}

func newPlayer(id, name string) *Player {
	return &Player{
		ID:   id,
		Name: name,
		hand: make([]*deck.Card, 0, handSize),
	}
}

// Hand returns the player's hand
func (p *Player) Hand() []*deck.Card {
	return p.hand
}

// Score returns the raw score
func (p *Player) Score() int {
	return p.score
}

// Position returns the displayed board position, clamped to the target score
func (p *Player) Position() int {
	if p.score > targetScore {
		return targetScore
	}

	return p.score
}

// AddCard adds a card to the player's hand
func (p *Player) AddCard(card *deck.Card) {
	p.hand = append(p.hand, card)
}

// cardByID returns the card in the hand with the given ID, or nil
func (p *Player) cardByID(cardID string) *deck.Card {
	for _, card := range p.hand {
		if card.ID == cardID {
			return card
		}
	}

	return nil
}

// removeCard takes the card out of the hand. Returns false if it's not there.
func (p *Player) removeCard(card *deck.Card) bool {
	for i, c := range p.hand {
		if c.ID == card.ID {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			return true
		}
	}

	return false
}

// removeCardAt takes the card at index i out of the hand
func (p *Player) removeCardAt(i int) *deck.Card {
	card := p.hand[i]
	p.hand = append(p.hand[:i], p.hand[i+1:]...)

	return card
}
