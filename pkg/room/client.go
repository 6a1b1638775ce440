package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a player connected to a room via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	room *Room

	playerID string
	name     string
	balance  int
	roomID   string
}

// NewClient returns a new client for the named room. The balance is the
// player's bankroll at connect time and funds their seat when they join.
func NewClient(conn *websocket.Conn, playerID, name string, balance int, roomID string) *Client {
	return &Client{
		Conn:     conn,
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
		playerID: playerID,
		name:     name,
		balance:  balance,
		roomID:   roomID,
	}
}

// PlayerID returns the connected player's identifier
func (c *Client) PlayerID() string {
	return c.playerID
}

// Send sends a message to the web client without blocking. A false return
// means the client's buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.playerID, c.roomID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.room == nil {
		logrus.WithField("msg", msg).Warn("received message, but room not found")
		return
	}

	c.room.ReceivedMessage(c, msg)
}
