package room

import (
	"strings"
	"testing"

	"bigfive-server/pkg/game"

	"github.com/stretchr/testify/assert"
)

func TestBroker_CreateRoom(t *testing.T) {
	a := assert.New(t)

	broker := NewBroker()
	session := broker.CreateRoom(game.Options{})

	code := session.Code()
	a.Equal(codeLength, len(code))
	for _, r := range code {
		a.True(strings.ContainsRune(codeAlphabet, r), "unexpected rune: %c", r)
	}

	found, ok := broker.Room(code)
	a.True(ok)
	a.Equal(session, found)

	// lookup is case-insensitive
	found, ok = broker.Room(strings.ToLower(code))
	a.True(ok)
	a.Equal(session, found)

	_, ok = broker.Room("NOPE42")
	a.False(ok)

	a.Equal(1, broker.RoomCount())
}
