package game

import (
	"bigfive-server/pkg/deck"
)

// slot limits per play area
const (
	fieldSlots   = 5
	specialSlots = 2
)

const noPlayer = -1

// placedCard records a card on the board together with the index of the
// player who placed it. Ownership exists only from placement on; a card in a
// hand or in the deck has no owner.
type placedCard struct {
	card  *deck.Card
	owner int
}

// playArea is one of the three shared zones. Both players place into the same
// areas; field and special cards occupy separate slot sets.
type playArea struct {
	cards        []*placedCard
	specialCards []*placedCard

	// blocked is set by a zebra; blockedFor is the player index the block
	// applies to. At most one player is blocked at a time.
	blocked    bool
	blockedFor int
}

func newPlayArea() *playArea {
	return &playArea{
		cards:        make([]*placedCard, 0, fieldSlots),
		specialCards: make([]*placedCard, 0, specialSlots),
		blockedFor:   noPlayer,
	}
}

// blockedAgainst returns true if the area rejects plays from the given player
func (a *playArea) blockedAgainst(playerIndex int) bool {
	return a.blocked && a.blockedFor == playerIndex
}

// hasRoom returns true if the card's slot set has a free slot
func (a *playArea) hasRoom(card *deck.Card) bool {
	if card.IsField() {
		return len(a.cards) < fieldSlots
	}

	return len(a.specialCards) < specialSlots
}

// place puts the card in the appropriate slot set, stamping the owner
func (a *playArea) place(card *deck.Card, owner int) {
	pc := &placedCard{card: card, owner: owner}
	if card.IsField() {
		a.cards = append(a.cards, pc)
		return
	}

	a.specialCards = append(a.specialCards, pc)
}

// animals returns the union of animals contributed by all field cards,
// regardless of who placed them
func (a *playArea) animals() map[deck.Animal]bool {
	set := make(map[deck.Animal]bool)
	for _, pc := range a.cards {
		for _, animal := range pc.card.Contributes() {
			set[animal] = true
		}
	}

	return set
}

// ownsSpecial returns true if the given player placed a card of the given
// special kind in this area
func (a *playArea) ownsSpecial(owner int, special deck.Special) bool {
	for _, pc := range a.specialCards {
		if pc.owner == owner && pc.card.Special == special {
			return true
		}
	}

	return false
}

// ownsWildcard returns true if the given player placed a chameleon or a
// big five spotter in this area
func (a *playArea) ownsWildcard(owner int) bool {
	for _, pc := range a.specialCards {
		if pc.owner == owner && pc.card.IsWildcard() {
			return true
		}
	}

	return false
}

// clear empties the area and lifts any block. All cards, from both players,
// are returned in placement order, field cards first.
func (a *playArea) clear() []*deck.Card {
	cards := make([]*deck.Card, 0, len(a.cards)+len(a.specialCards))
	for _, pc := range a.cards {
		cards = append(cards, pc.card)
	}
	for _, pc := range a.specialCards {
		cards = append(cards, pc.card)
	}

	a.cards = a.cards[:0]
	a.specialCards = a.specialCards[:0]
	a.blocked = false
	a.blockedFor = noPlayer

	return cards
}
