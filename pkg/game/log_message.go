package game

import (
	"fmt"
	"time"

	"bigfive-server/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage is a game event for the table log. The hosting layer fans these
// out to every connected client.
type LogMessage struct {
	UUID      string       `json:"uuid"`
	PlayerIDs []string     `json:"playerIds,omitempty"`
	Cards     []*deck.Card `json:"cards,omitempty"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

func newLogMessage(playerID string, card *deck.Card, format string, a ...interface{}) *LogMessage {
	var playerIDs []string
	if playerID != "" {
		playerIDs = []string{playerID}
	}

	var cards []*deck.Card
	if card != nil {
		cards = []*deck.Card{card.Clone()}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Cards:     cards,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// LogChan returns a channel the game sends log messages on
func (g *Game) LogChan() <-chan []*LogMessage {
	return g.logChan
}

func (g *Game) sendLogMessages(msg ...*LogMessage) {
	if g.logChan != nil {
		g.logChan <- msg
	}
}
