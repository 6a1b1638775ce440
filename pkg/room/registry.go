package room

import (
	"errors"

	"texaspoker-server/pkg/holdem"

	"github.com/sirupsen/logrus"
)

var errUnknownAction = errors.New("unknown action")

// Registry is responsible for dispatching players to rooms. Rooms come into
// existence when their first client connects and are torn down when the last
// one leaves.
type Registry struct {
	log       logrus.FieldLogger
	opts      holdem.Options
	persister holdem.BalancePersister

	rooms      map[string]*Room
	connect    chan *Client
	disconnect chan *Client
}

// NewRegistry returns a new dispatch object. Every room it creates plays
// with the supplied options and settles balances through the persister.
func NewRegistry(log logrus.FieldLogger, opts holdem.Options, persister holdem.BalancePersister) *Registry {
	return &Registry{
		log:        log,
		opts:       opts,
		persister:  persister,
		rooms:      make(map[string]*Room),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the Registry run loop
func (reg *Registry) StartShift() {
	go reg.runLoop()
}

func (reg *Registry) runLoop() {
	for {
		select {
		case client := <-reg.connect:
			reg.log.WithField("player", client.String()).Debug("client connected")
			room, found := reg.rooms[client.roomID]
			if !found {
				var err error
				room, err = NewRoom(reg, client.roomID)
				if err != nil {
					reg.log.WithError(err).Error("could not create room")
					client.Close <- "could not create room"
					continue
				}

				room.StartShift()
				reg.rooms[client.roomID] = room
			}

			room.AddClient(client)
		case client := <-reg.disconnect:
			reg.log.WithField("player", client.String()).Debug("client disconnected")
			room, found := reg.rooms[client.roomID]
			if !found {
				reg.log.WithField("room", client.roomID).WithField("type", "exception").Error("room not found")
				continue
			}

			if room.RemoveClient(client) {
				room.EndShift()
				delete(reg.rooms, client.roomID)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (reg *Registry) ClientConnected(client *Client) {
	reg.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (reg *Registry) ClientDisconnected(client *Client) {
	reg.disconnect <- client
}
