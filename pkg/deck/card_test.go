package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_Contributes(t *testing.T) {
	a := assert.New(t)

	lion := &Card{Kind: KindBigFive, Animal: Lion}
	a.Equal([]Animal{Lion}, lion.Contributes())
	a.True(lion.IsField())
	a.False(lion.IsWildcard())
	a.Equal("lion", lion.String())

	combo := &Card{Kind: KindCombination, Animals: []Animal{Buffalo, Rhino}}
	a.Equal([]Animal{Buffalo, Rhino}, combo.Contributes())
	a.True(combo.IsField())
	a.Equal("buffalo+rhino", combo.String())

	zebra := &Card{Kind: KindSpecial, Special: Zebra}
	a.Nil(zebra.Contributes())
	a.False(zebra.IsField())
	a.False(zebra.IsWildcard())
	a.Equal("zebra", zebra.String())

	a.True((&Card{Kind: KindSpecial, Special: Chameleon}).IsWildcard())
	a.True((&Card{Kind: KindSpecial, Special: BigFiveSpotter}).IsWildcard())
}

func TestCard_Clone(t *testing.T) {
	a := assert.New(t)

	combo := &Card{ID: "combo-35", Kind: KindCombination, Animals: []Animal{Lion, Elephant}, Image: 36}
	clone := combo.Clone()

	a.Equal(combo, clone)

	clone.Animals[0] = Rhino
	a.Equal(Lion, combo.Animals[0])
}
