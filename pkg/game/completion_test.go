package game

import (
	"testing"

	"bigfive-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

// playRound plays a card for whoever's turn it is and fails the test on error
func playRound(t *testing.T, g *Game, card *deck.Card, areaID int) *PlayResult {
	t.Helper()

	player := g.players[g.currentPlayer]
	res, err := g.PlayCard(player.ID, card.ID, areaID)
	assert.NoError(t, err)

	return res
}

func TestGame_completion_zebraDoublesScore(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, Options{})

	alice, bob := g.players[0], g.players[1]

	zebra := giveCard(t, g, alice, bySpecial(deck.Zebra))
	playRound(t, g, zebra, 1)

	// bob is blocked out of area 1, so he builds elsewhere
	for _, animal := range []deck.Animal{deck.Lion, deck.Elephant, deck.Leopard, deck.Buffalo} {
		card := giveCard(t, g, bob, byAnimal(animal))
		playRound(t, g, card, 0)

		mine := giveCard(t, g, alice, byAnimal(animal))
		playRound(t, g, mine, 1)
	}

	rhino := giveCard(t, g, alice, byAnimal(deck.Rhino))

	// bob passes the turn back with a non-completing play
	filler := giveCard(t, g, bob, byAnimal(deck.Lion))
	playRound(t, g, filler, 2)

	res := playRound(t, g, rhino, 1)
	a.True(res.BigFiveCompleted)
	a.Equal(6, res.Points)
	a.Equal(6, alice.Score())

	// the zebra went to the discard pile with the field cards
	a.Equal(0, len(g.areas[1].specialCards))
	a.False(g.areas[1].blocked)
	a.Equal(noPlayer, g.areas[1].blockedFor)
	a.Equal(deck.Size, totalCards(g))
}

func TestGame_completion_opponentZebraDoesNotDouble(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, Options{})

	alice, bob := g.players[0], g.players[1]

	// bob's zebra sits in area 0 and blocks alice... so alice cannot even
	// play there. Give the zebra to bob but stamp it as bob's in an area
	// alice completes: bob plays zebra into area 0, blocking alice out.
	// Instead alice completes area 0 is impossible; so bob completes in an
	// area holding *alice's* zebra to show owner scoping.
	zebra := giveCard(t, g, alice, bySpecial(deck.Zebra))
	playRound(t, g, zebra, 0) // alice's zebra, blocks bob from area 0

	// give bob an area alice's zebra cannot protect: area 0 is blocked for
	// bob, so bob cannot complete there at all; verify the block instead
	lion := giveCard(t, g, bob, byAnimal(deck.Lion))
	_, err := g.PlayCard(bob.ID, lion.ID, 0)
	a.Equal(ErrAreaBlocked, err)

	// alice's own wildcard in an area does not help bob either: bob
	// completes area 1 with alice's chameleon present and earns base points
	chameleon := giveCard(t, g, alice, bySpecial(deck.Chameleon))

	playRound(t, g, lion, 1)      // bob
	playRound(t, g, chameleon, 1) // alice

	for _, animal := range []deck.Animal{deck.Elephant, deck.Leopard, deck.Buffalo} {
		card := giveCard(t, g, bob, byAnimal(animal))
		playRound(t, g, card, 1)

		filler := giveCard(t, g, alice, byAnimal(animal))
		playRound(t, g, filler, 2)
	}

	rhino := giveCard(t, g, bob, byAnimal(deck.Rhino))
	res := playRound(t, g, rhino, 1)
	a.True(res.BigFiveCompleted)
	a.Equal(3, res.Points)
	a.Equal(3, bob.Score())
	a.Equal(0, alice.Score())
}

func TestGame_completion_wildcardFillsMissingAnimal(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, Options{})

	alice, bob := g.players[0], g.players[1]

	spotter := giveCard(t, g, alice, bySpecial(deck.BigFiveSpotter))
	playRound(t, g, spotter, 2)

	for _, animal := range []deck.Animal{deck.Lion, deck.Elephant, deck.Leopard} {
		card := giveCard(t, g, bob, byAnimal(animal))
		playRound(t, g, card, 0)

		mine := giveCard(t, g, alice, byAnimal(animal))
		playRound(t, g, mine, 2)
	}

	filler := giveCard(t, g, bob, byAnimal(deck.Lion))
	playRound(t, g, filler, 0)

	// four distinct animals plus alice's spotter completes the big five
	buffalo := giveCard(t, g, alice, byAnimal(deck.Buffalo))
	res := playRound(t, g, buffalo, 2)
	a.True(res.BigFiveCompleted)
	a.Equal(3, res.Points)
	a.Contains(res.BigFiveSummary, "wildcard")
	a.Contains(res.BigFiveSummary, "rhino")
	a.Equal(3, alice.Score())
	a.Equal(deck.Size, totalCards(g))
}

func TestGame_completion_fourAnimalsWithoutWildcard(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, Options{})

	bob := g.players[1]

	for _, animal := range []deck.Animal{deck.Lion, deck.Elephant, deck.Leopard} {
		mine := giveCard(t, g, g.players[0], byAnimal(animal))
		playRound(t, g, mine, 2)

		card := giveCard(t, g, bob, byAnimal(animal))
		playRound(t, g, card, 0)
	}

	buffalo := giveCard(t, g, g.players[0], byAnimal(deck.Buffalo))
	res := playRound(t, g, buffalo, 2)
	a.False(res.BigFiveCompleted)
	a.Equal(0, res.Points)
	a.Equal(4, len(g.areas[2].cards))
	a.Equal(0, g.players[0].Score())
}

func TestGame_completion_opponentWildcardIgnored(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, Options{})

	alice, bob := g.players[0], g.players[1]

	// bob parks his chameleon in area 2 early, before any run builds up
	playRound(t, g, giveCard(t, g, alice, byAnimal(deck.Lion)), 2)
	playRound(t, g, giveCard(t, g, bob, bySpecial(deck.Chameleon)), 2)

	for _, animal := range []deck.Animal{deck.Elephant, deck.Leopard} {
		mine := giveCard(t, g, alice, byAnimal(animal))
		playRound(t, g, mine, 2)

		filler := giveCard(t, g, bob, byAnimal(animal))
		playRound(t, g, filler, 0)
	}

	// area 2 reaches four distinct animals with only bob's wildcard there:
	// alice's placement must not complete off the opponent's special
	res := playRound(t, g, giveCard(t, g, alice, byAnimal(deck.Buffalo)), 2)
	a.False(res.BigFiveCompleted)
	a.Equal(0, alice.Score())

	// bob, who owns the wildcard, completes with his next placement there
	res = playRound(t, g, giveCard(t, g, bob, bySpecial(deck.Giraffe)), 2)
	a.True(res.BigFiveCompleted)
	a.Equal(3, bob.Score())
	a.Equal(deck.Size, totalCards(g))
}

func TestGame_completion_discardOrderAndClear(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, Options{})

	alice, bob := g.players[0], g.players[1]

	spotter := giveCard(t, g, alice, bySpecial(deck.BigFiveSpotter))
	playRound(t, g, spotter, 0)

	for _, animal := range []deck.Animal{deck.Lion, deck.Elephant, deck.Leopard, deck.Buffalo} {
		card := giveCard(t, g, bob, byAnimal(animal))
		playRound(t, g, card, 0)

		filler := giveCard(t, g, alice, byAnimal(animal))
		playRound(t, g, filler, 1)
	}

	rhino := giveCard(t, g, bob, byAnimal(deck.Rhino))
	res := playRound(t, g, rhino, 0)
	a.True(res.BigFiveCompleted)

	// both players' cards cleared: five field plus alice's spotter
	a.Equal(6, len(g.discard))
	a.Equal(0, len(g.areas[0].cards))
	a.Equal(0, len(g.areas[0].specialCards))
	a.Equal(deck.Size, totalCards(g))
}
