package deck

import (
	"testing"

	"bigfive-server/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Equal(Size, d.CardsLeft())

	counts := make(map[Kind]int)
	byAnimal := make(map[Animal]int)
	bySpecial := make(map[Special]int)
	ids := make(map[string]bool)
	images := make(map[int]bool)

	for _, card := range d.Cards {
		counts[card.Kind]++
		if card.Kind == KindBigFive {
			byAnimal[card.Animal]++
		}
		if card.Kind == KindSpecial {
			bySpecial[card.Special]++
		}

		a.False(ids[card.ID], "duplicate id: %s", card.ID)
		ids[card.ID] = true

		a.False(images[card.Image], "duplicate image: %d", card.Image)
		a.True(card.Image >= 1 && card.Image <= 54)
		images[card.Image] = true
	}

	a.Equal(35, counts[KindBigFive])
	a.Equal(14, counts[KindSpecial])
	a.Equal(5, counts[KindCombination])

	for _, animal := range BigFive {
		a.Equal(7, byAnimal[animal])
	}

	for _, special := range Specials {
		a.Equal(2, bySpecial[special])
	}
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.Shuffle(rng.NewSeeded(1))

	d2 := New()
	d2.Shuffle(rng.NewSeeded(1))

	a.Equal(Size, d1.CardsLeft())
	for i, card := range d1.Cards {
		a.Equal(card.ID, d2.Cards[i].ID)
	}

	d3 := New()
	d3.Shuffle(rng.NewSeeded(2))

	same := true
	for i, card := range d1.Cards {
		if card.ID != d3.Cards[i].ID {
			same = false
			break
		}
	}
	a.False(same)
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(54) {
		t.Error("expected CanDraw(54) to be true")
	}

	if d.CanDraw(55) {
		t.Error("expected CanDraw(55) to be false")
	}

	first := d.Cards[0]
	card, err := d.Draw()
	assert.NoError(t, err)
	assert.Equal(t, first, card)

	for i := 0; i < 53; i++ {
		card, err := d.Draw()
		assert.NotNil(t, card)
		assert.NoError(t, err)
	}

	card, err = d.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)
}

func TestDeck_Peek(t *testing.T) {
	a := assert.New(t)
	d := New()

	peeked := d.Peek(3)
	a.Equal(3, len(peeked))
	a.Equal(Size, d.CardsLeft())

	card, _ := d.Draw()
	a.Equal(peeked[0], card)

	d.Cards = d.Cards[:2]
	a.Equal(2, len(d.Peek(3)))
}
