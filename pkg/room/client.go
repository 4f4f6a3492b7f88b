package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a player connected to a room via websockets. The player identity
// lives and dies with the connection; there is no reconnect.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Send is a channel for sending messages to the client
	Send chan interface{}

	// Close is a channel for closing the client with a reason
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// PlayerID is the identity assigned for this connection
	PlayerID string

	// Name is the display name
	Name string

	session *Session
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, name string) *Client {
	return &Client{
		Conn:     conn,
		Send:     make(chan interface{}, 256),
		Close:    make(chan string, 1),
		PlayerID: uuid.New().String(),
		Name:     name,
	}
}

// String returns a traceable identifier for the player
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.PlayerID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.session == nil {
		logrus.WithField("msg", msg).Warn("received message, but client has no room")
		return
	}

	c.session.ReceivedMessage(c, msg)
}
