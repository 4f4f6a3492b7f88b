package room

import (
	"fmt"

	"bigfive-server/pkg/game"

	"github.com/sirupsen/logrus"
)

// Session runs one room. All access to the underlying game happens inside the
// run loop, so commands on a session never interleave; distinct sessions are
// fully independent.
type Session struct {
	code   string
	broker *Broker
	game   *game.Game

	clients map[*Client]bool

	execInRunLoop chan func()
	done          chan bool

	logMessages []*game.LogMessage

	logger logrus.FieldLogger
}

// RoomInfo is a public summary of a room
type RoomInfo struct {
	Code    string   `json:"code"`
	Players []string `json:"players"`
	Status  string   `json:"status"`
}

func newSession(broker *Broker, code string, opts game.Options) *Session {
	logger := logrus.WithField("room", code)

	return &Session{
		code:          code,
		broker:        broker,
		game:          game.NewGame(logger, opts),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		done:          make(chan bool),
		logger:        logger,
	}
}

// Code returns the room code
func (s *Session) Code() string {
	return s.code
}

// StartShift starts the run loop
func (s *Session) StartShift() {
	go s.runLoop()
}

func (s *Session) runLoop() {
	s.logger.Debug("creating room run loop")

	for {
		select {
		case messages := <-s.game.LogChan():
			s.addLogMessages(messages)
			for client := range s.clients {
				client.Send <- &Response{Key: "logs", Data: messages}
			}
		case fn := <-s.execInRunLoop:
			fn()
		case <-s.done:
			s.logger.Debug("terminating room run loop")
			return
		}
	}
}

// exec runs fn inside the run loop; returns false if the room is gone
func (s *Session) exec(fn func()) bool {
	select {
	case s.execInRunLoop <- fn:
		return true
	case <-s.done:
		return false
	}
}

// Info returns a summary of the room, safe to call from any goroutine
func (s *Session) Info() (RoomInfo, bool) {
	ch := make(chan RoomInfo, 1)
	ok := s.exec(func() {
		ch <- RoomInfo{
			Code:    s.code,
			Players: s.game.PlayerNames(),
			Status:  s.game.Status(),
		}
	})

	if !ok {
		return RoomInfo{}, false
	}

	select {
	case info := <-ch:
		return info, true
	case <-s.done:
		return RoomInfo{}, false
	}
}

// AddClient attaches a connecting player to the room.
// This method must return quickly.
func (s *Session) AddClient(client *Client) {
	client.session = s

	s.exec(func() {
		if err := s.game.AddPlayer(client.PlayerID, client.Name); err != nil {
			client.Send <- newErrorResponse("", err)
			client.Close <- err.Error()
			return
		}

		s.clients[client] = true
		s.logger.WithField("client", client.String()).Debug("client joined")

		if len(s.logMessages) > 0 {
			client.Send <- &Response{Key: "logs", Data: s.logMessages}
		}

		if s.game.PlayerCount() == 2 {
			if err := s.game.Start(); err != nil {
				// cannot happen: the game is only started right here
				s.logger.WithError(err).Error("could not start game")
				return
			}
		}

		s.sendGameData()
	})
}

// RemoveClient is called when a player disconnects. Either player leaving
// tears the whole room down; there is no resume.
func (s *Session) RemoveClient(client *Client) {
	s.exec(func() {
		if !s.clients[client] {
			return
		}

		delete(s.clients, client)
		reason := fmt.Sprintf("%s left the safari", client.Name)
		for other := range s.clients {
			select {
			case other.Close <- reason:
			default:
			}
		}

		s.broker.removeRoom(s.code)
		close(s.done)
	})
}

// ReceivedMessage is called when a client sends a message to the server
func (s *Session) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "playCard":
		s.exec(func() {
			result, err := s.game.PlayCard(c.PlayerID, msg.CardID, msg.AreaID)
			if err != nil {
				c.Send <- newErrorResponse(msg.Context, err)
				return
			}

			c.Send <- &Response{Key: "playResult", Data: result, Context: msg.Context}
			s.sendGameData()
		})
	case "drawCard":
		s.exec(func() {
			result, err := s.game.DrawCard(c.PlayerID)
			if err != nil {
				c.Send <- newErrorResponse(msg.Context, err)
				return
			}

			c.Send <- &Response{Key: "drawResult", Data: result, Context: msg.Context}
			s.sendGameData()
		})
	default:
		c.Send <- newErrorResponse(msg.Context, fmt.Errorf("unknown action: %s", msg.Action))
	}
}

// sendGameData sends each client its own projection of the game state.
// NOTE: must only be called from the run loop
func (s *Session) sendGameData() {
	for client := range s.clients {
		view, err := s.game.PlayerState(client.PlayerID)
		if err != nil {
			s.logger.WithError(err).WithField("client", client.String()).Error("could not get player state")
			continue
		}

		client.Send <- &Response{Key: "game", Value: s.game.Name(), Data: view}
	}
}
