package room

import (
	"strings"
	"sync"

	"bigfive-server/internal/rng"
	"bigfive-server/pkg/game"

	"github.com/sirupsen/logrus"
)

const codeLength = 6
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Broker is the session repository. It maps room codes to live sessions with
// explicit create, lookup and delete; rooms disappear the moment a player
// disconnects.
type Broker struct {
	lock  sync.RWMutex
	rooms map[string]*Session
	codes rng.Generator
}

// NewBroker returns a new broker with no rooms
func NewBroker() *Broker {
	return &Broker{
		rooms: make(map[string]*Session),
		codes: rng.Crypto{},
	}
}

// CreateRoom creates a session under a fresh room code and starts its run loop
func (b *Broker) CreateRoom(opts game.Options) *Session {
	b.lock.Lock()
	defer b.lock.Unlock()

	var code string
	for {
		code = b.generateCode()
		if _, found := b.rooms[code]; !found {
			break
		}
	}

	session := newSession(b, code, opts)
	b.rooms[code] = session
	session.StartShift()

	logrus.WithField("room", code).Debug("room created")
	return session
}

// Room looks up the session for a room code
func (b *Broker) Room(code string) (*Session, bool) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	session, found := b.rooms[strings.ToUpper(code)]
	return session, found
}

// RoomCount returns the number of live rooms
func (b *Broker) RoomCount() int {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return len(b.rooms)
}

// removeRoom is called by a session tearing itself down
func (b *Broker) removeRoom(code string) {
	b.lock.Lock()
	defer b.lock.Unlock()

	delete(b.rooms, code)
	logrus.WithField("room", code).Debug("room removed")
}

func (b *Broker) generateCode() string {
	var sb strings.Builder
	for i := 0; i < codeLength; i++ {
		sb.WriteByte(codeAlphabet[b.codes.Intn(len(codeAlphabet))])
	}

	return sb.String()
}
