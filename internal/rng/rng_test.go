package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	for i := 0; i < 100; i++ {
		a.Equal(s1.Intn(54), s2.Intn(54))
	}

	v := NewSeeded(1).Intn(10)
	a.True(v >= 0 && v < 10)
}
