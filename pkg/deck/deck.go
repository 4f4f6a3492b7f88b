package deck

import (
	"errors"
	"fmt"

	"bigfive-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the fixed number of cards in a deck:
// 5 animals x 7 cards, 7 specials x 2 copies, 5 combination cards
const Size = 54

// BackImage is the image number of a face-down card
const BackImage = 55

// copies per card class
const (
	animalCopies  = 7
	specialCopies = 2
)

// combinations are the five two-animal cards, in image order (36..40)
var combinations = [][2]Animal{
	{Lion, Elephant},
	{Lion, Leopard},
	{Buffalo, Rhino},
	{Buffalo, Leopard},
	{Elephant, Rhino},
}

// Deck is an ordered sequence of cards. Draws remove from the front and the
// deck only ever shrinks; it is never rebuilt or reshuffled mid-game.
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new, unshuffled deck of 54 cards.
// Call Shuffle exactly once, at session creation.
func New() *Deck {
	cards := make([]*Card, 0, Size)
	image := 1
	seq := 0

	for _, animal := range BigFive {
		for i := 0; i < animalCopies; i++ {
			cards = append(cards, &Card{
				ID:     fmt.Sprintf("%s-%d", animal, seq),
				Kind:   KindBigFive,
				Animal: animal,
				Image:  image,
			})
			image++
			seq++
		}
	}

	for _, combo := range combinations {
		cards = append(cards, &Card{
			ID:      fmt.Sprintf("combo-%d", seq),
			Kind:    KindCombination,
			Animals: []Animal{combo[0], combo[1]},
			Image:   image,
		})
		image++
		seq++
	}

	for _, special := range Specials {
		for i := 0; i < specialCopies; i++ {
			cards = append(cards, &Card{
				ID:      fmt.Sprintf("%s-%d", special, seq),
				Kind:    KindSpecial,
				Special: special,
				Image:   image,
			})
			image++
			seq++
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle performs a Fisher–Yates shuffle using the supplied generator
func (d *Deck) Shuffle(gen rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Peek returns up to n cards in draw order, nearest-to-draw first,
// without removing them
func (d *Deck) Peek(n int) []*Card {
	if n > len(d.Cards) {
		n = len(d.Cards)
	}

	cards := make([]*Card, n)
	copy(cards, d.Cards[:n])

	return cards
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
