package room

import (
	"sync"
	"time"

	"texaspoker-server/pkg/action"
	"texaspoker-server/pkg/holdem"

	"github.com/sirupsen/logrus"
)

// tickInterval is how often a room polls its table for due work, such as
// a bot move or the start of the next hand
const tickInterval = time.Millisecond * 100

// Room owns one table and the clients watching it. All table access happens
// on the room's run loop, which is the serialization boundary for the game.
type Room struct {
	registry *Registry
	id       string
	game     *holdem.Game
	log      logrus.FieldLogger

	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	stateChanged  chan struct{}
	close         chan bool
}

// NewRoom creates a room and its table
// This is called from a blocking state, so it needs to return quickly
func NewRoom(registry *Registry, id string) (*Room, error) {
	r := &Room{
		registry:      registry,
		id:            id,
		log:           registry.log.WithField("room", id),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan struct{}, 256),
		close:         make(chan bool),
	}

	game, err := holdem.New(registry.log, id, registry.opts, registry.persister, r)
	if err != nil {
		return nil, err
	}

	r.game = game
	return r, nil
}

// Clients will return a slice of connected (at the time) clients
func (r *Room) Clients() []*Client {
	r.lock.RLock()
	defer r.lock.RUnlock()

	clients := make([]*Client, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (r *Room) StartShift() {
	go r.runLoop()
}

func (r *Room) runLoop() {
	r.log.Debug("creating room run loop")
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stateChanged:
			r.sendGameData()
		case fn := <-r.execInRunLoop:
			fn()
		case <-ticker.C:
			changed, err := r.game.Tick()
			if err != nil {
				r.log.WithError(err).Error("tick failed")
			}

			if changed {
				r.sendGameData()
			}
		case <-r.close:
			r.log.Debug("terminating room run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (r *Room) AddClient(client *Client) {
	r.lock.Lock()
	client.room = r
	r.clients[client] = true
	r.lock.Unlock()

	r.execInRunLoop <- func() {
		client.Send(&Response{Key: "game", Data: r.game.BuildSnapshot(client.playerID)})
	}
}

// RemoveClient removes a client. If the departed player has no other
// connection their seat is released (or folded, mid-hand).
// This method must return quickly
func (r *Room) RemoveClient(client *Client) (lastClient bool) {
	r.lock.Lock()
	delete(r.clients, client)
	nClients := len(r.clients)
	stillConnected := false
	for other := range r.clients {
		if other.playerID == client.playerID {
			stillConnected = true
			break
		}
	}
	r.lock.Unlock()

	if !stillConnected {
		r.execInRunLoop <- func() {
			changed, err := r.game.RemovePlayer(client.playerID)
			if err != nil {
				r.log.WithError(err).Error("could not remove player")
			}

			if changed {
				r.signalState()
			}
		}
	}

	return nClients == 0
}

// EndShift is called when the room is no longer needed
func (r *Room) EndShift() {
	close(r.close)
}

// ActionTaken forwards a table action to every connected client.
// NOTE: only called from the run loop, via the game.
func (r *Room) ActionTaken(e *holdem.ActionEvent) {
	for _, client := range r.Clients() {
		client.Send(&Response{Key: "action", Data: e})
	}
}

// HandFinished forwards the end-of-hand result to every connected client.
// NOTE: only called from the run loop, via the game.
func (r *Room) HandFinished(e *holdem.ResultEvent) {
	for _, client := range r.Clients() {
		client.Send(&Response{Key: "result", Data: e})
	}
}

// NOTE: must only be called from the run loop
func (r *Room) sendGameData() {
	for _, client := range r.Clients() {
		client.Send(&Response{Key: "game", Data: r.game.BuildSnapshot(client.playerID)})
	}
}

func (r *Room) signalState() {
	select {
	case r.stateChanged <- struct{}{}:
	default:
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (r *Room) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "join":
		r.mutate(c, msg, func() error {
			return r.game.AddPlayer(c.playerID, c.name, c.balance)
		})
	case "addBot":
		r.mutate(c, msg, func() error {
			return r.game.AddBot()
		})
	case "start":
		r.mutate(c, msg, func() error {
			return r.game.Start()
		})
	case "leave":
		r.mutate(c, msg, func() error {
			_, err := r.game.RemovePlayer(c.playerID)
			return err
		})
	case "fold", "check", "call", "raise":
		act, err := action.FromString(msg.Action)
		if err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		amount, _ := msg.AdditionalData.GetInt("amount")
		r.mutate(c, msg, func() error {
			return r.game.Act(c.playerID, act, amount)
		})
	default:
		c.Send(newErrorResponse(msg.Context, errUnknownAction))
	}
}

// mutate runs fn on the run loop, replies to the caller, and pushes fresh
// state to everyone on success
func (r *Room) mutate(c *Client, msg *PayloadIn, fn func() error) {
	r.execInRunLoop <- func() {
		if err := fn(); err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(OK(msg.Context))
		r.signalState()
	}
}
