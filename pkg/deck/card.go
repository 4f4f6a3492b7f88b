package deck

import (
	"fmt"
	"strings"
)

// Kind is the category of a card
type Kind string

// kind constants
const (
	KindBigFive     Kind = "bigfive"
	KindSpecial     Kind = "special"
	KindCombination Kind = "combination"
)

// Animal is one of the big five animals
type Animal string

// animal constants
const (
	Lion     Animal = "lion"
	Elephant Animal = "elephant"
	Leopard  Animal = "leopard"
	Buffalo  Animal = "buffalo"
	Rhino    Animal = "rhino"
)

// BigFive lists the five animals in canonical order
var BigFive = []Animal{Lion, Elephant, Leopard, Buffalo, Rhino}

// Special is the behavior of a special card
type Special string

// special constants
const (
	Chameleon      Special = "chameleon"
	Zebra          Special = "zebra"
	Crocodile      Special = "crocodile"
	Giraffe        Special = "giraffe"
	Vulture        Special = "vulture"
	PolarBear      Special = "polarBear"
	BigFiveSpotter Special = "bigFiveSpotter"
)

// Specials lists the special kinds in canonical (image) order
var Specials = []Special{Chameleon, Zebra, Crocodile, Giraffe, Vulture, PolarBear, BigFiveSpotter}

// Card is an individual safari card. The identity is immutable; ownership is
// tracked by the play area placement, never on the card itself.
type Card struct {
	ID      string   `json:"id"`
	Kind    Kind     `json:"kind"`
	Animal  Animal   `json:"animal,omitempty"`
	Animals []Animal `json:"animals,omitempty"`
	Special Special  `json:"special,omitempty"`
	Image   int      `json:"image"`
}

// IsField returns true if the card goes in a field slot (big five or combination)
func (c *Card) IsField() bool {
	return c.Kind == KindBigFive || c.Kind == KindCombination
}

// IsWildcard returns true for the two wildcard specials
func (c *Card) IsWildcard() bool {
	return c.Special == Chameleon || c.Special == BigFiveSpotter
}

// Contributes returns the animals the card adds to a play area
func (c *Card) Contributes() []Animal {
	switch c.Kind {
	case KindBigFive:
		return []Animal{c.Animal}
	case KindCombination:
		return c.Animals
	}

	return nil
}

func (c *Card) String() string {
	switch c.Kind {
	case KindBigFive:
		return string(c.Animal)
	case KindCombination:
		parts := make([]string, len(c.Animals))
		for i, a := range c.Animals {
			parts[i] = string(a)
		}
		return strings.Join(parts, "+")
	case KindSpecial:
		return string(c.Special)
	}

	panic(fmt.Sprintf("unknown kind: %s", c.Kind))
}

// Clone returns a copy of the card
func (c *Card) Clone() *Card {
	cp := *c
	if c.Animals != nil {
		cp.Animals = append([]Animal{}, c.Animals...)
	}

	return &cp
}
