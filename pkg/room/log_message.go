package room

import (
	"bigfive-server/pkg/game"
)

const logMessageLimit = 25

// addLogMessages retains the most recent log messages so a player joining
// second still sees how the room got here.
// NOTE: must only be called from within the run loop
func (s *Session) addLogMessages(messages []*game.LogMessage) {
	m := append(s.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	s.logMessages = m
}
