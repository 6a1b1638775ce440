package holdem

import (
	"errors"
	"fmt"
)

// ErrGameInProgress is an error when a waiting-only request arrives mid-hand
var ErrGameInProgress = errors.New("a hand is already in progress")

// ErrTableFull happens when all nine seats are taken
var ErrTableFull = errors.New("the table is full")

// ErrAlreadySeated happens when an identity tries to take a second seat
var ErrAlreadySeated = errors.New("player is already seated at the table")

// ErrNotEnoughPlayers is an error when a hand needs at least two funded seats
var ErrNotEnoughPlayers = errors.New("need at least two players with chips")

// ErrNoActionAllowed is an error for actions outside a betting round
var ErrNoActionAllowed = errors.New("no actions are accepted right now")

// ErrNotPlayersTurn is returned when it's not the player's turn
var ErrNotPlayersTurn = errors.New("it is not your turn")

// ErrCheckNotAllowed happens when a player checks into a live bet
var ErrCheckNotAllowed = errors.New("there is a bet to call, cannot check")

// ErrNothingToCall happens when a call arrives with no outstanding bet
var ErrNothingToCall = errors.New("there is nothing to call")

// ErrInvalidPlayer is an error for a join with missing identity fields
var ErrInvalidPlayer = errors.New("player id and name are required")

// ErrInvalidAction is an error for an unrecognized action
var ErrInvalidAction = errors.New("unknown action")

// MinRaiseError is an error when a raise is below the legal minimum
type MinRaiseError int

func (m MinRaiseError) Error() string {
	return fmt.Sprintf("raise must be at least %d", int(m))
}
