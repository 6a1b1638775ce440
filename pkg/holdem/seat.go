package holdem

import (
	"texaspoker-server/pkg/deck"
)

// Seat represents an individual player at the table.
// Seats are owned exclusively by the Game; only the balance outlives a hand.
type Seat struct {
	PlayerID string
	Name     string

	balance  int
	cards    deck.Hand
	roundBet int
	handBet  int
	folded   bool
	allIn    bool
	isBot    bool
	left     bool
	index    int
}

// Balance returns the seat's chip count
func (s *Seat) Balance() int {
	return s.balance
}

// IsBot returns true for a computer-controlled seat
func (s *Seat) IsBot() bool {
	return s.isBot
}

// canAct returns true if the seat can still make a decision this round
func (s *Seat) canAct() bool {
	return !s.folded && !s.allIn
}

// newHand resets the seat's transient state for the next hand.
// A seat with no chips sits the hand out.
func (s *Seat) newHand() {
	s.cards = make(deck.Hand, 0, 2)
	s.roundBet = 0
	s.handBet = 0
	s.folded = s.balance == 0 || s.left
	s.allIn = false
}

// newRound resets the per-street betting state
func (s *Seat) newRound() {
	s.roundBet = 0
}
