package holdem

import (
	"texaspoker-server/pkg/action"
)

// BalancePersister stores a player's balance after a hand settles.
// Calls are best-effort and fired from their own goroutine; a failure must
// never stall the table.
type BalancePersister interface {
	PersistBalance(playerID string, balance int) error
}

// Emitter receives the discrete events a table produces. The transport layer
// forwards them verbatim to connected clients. Emitter calls happen
// synchronously inside the table's serialization discipline and must return
// quickly.
type Emitter interface {
	// ActionTaken fires once per applied player action
	ActionTaken(e *ActionEvent)

	// HandFinished fires once per settled hand
	HandFinished(e *ResultEvent)
}

// ActionEvent is a per-action notice
type ActionEvent struct {
	PlayerID string        `json:"playerId"`
	Name     string        `json:"name"`
	Action   action.Action `json:"action"`
	Amount   int           `json:"amount"`
	Pot      int           `json:"pot"`
}

// ResultEvent is the end-of-hand result
type ResultEvent struct {
	Winners []*Winner `json:"winners"`
	Reveals []*Reveal `json:"reveals,omitempty"`
}

// Winner is one seat's share of the settled pot
type Winner struct {
	PlayerID    string `json:"playerId"`
	Name        string `json:"name"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

// Reveal is one showdown hand shown to the table
type Reveal struct {
	PlayerID    string   `json:"playerId"`
	Name        string   `json:"name"`
	Cards       []string `json:"cards"`
	Description string   `json:"description"`
}

type nopEmitter struct{}

func (nopEmitter) ActionTaken(*ActionEvent)  {}
func (nopEmitter) HandFinished(*ResultEvent) {}

type nopPersister struct{}

func (nopPersister) PersistBalance(string, int) error { return nil }
