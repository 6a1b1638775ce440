package holdem

import "texaspoker-server/pkg/deck"

// Snapshot is a viewer-specific picture of the table suitable for sending
// over the wire
type Snapshot struct {
	RoomID       string          `json:"roomId"`
	Stage        Stage           `json:"stage"`
	Community    []string        `json:"community"`
	Pot          int             `json:"pot"`
	CurrentBet   int             `json:"currentBet"`
	MinRaiseTo   int             `json:"minRaiseTo"`
	DealerIndex  int             `json:"dealerIndex"`
	CurrentIndex int             `json:"currentIndex"`
	Seats        []*SeatSnapshot `json:"seats"`
	Log          []*LogEntry     `json:"log"`
}

// SeatSnapshot describes one seat from the viewer's perspective. Cards are
// only present for the viewer's own seat, or for every live seat once the
// hand reaches showdown.
type SeatSnapshot struct {
	PlayerID   string   `json:"playerId"`
	Name       string   `json:"name"`
	Balance    int      `json:"balance"`
	RoundBet   int      `json:"roundBet"`
	HandBet    int      `json:"handBet"`
	Folded     bool     `json:"folded"`
	AllIn      bool     `json:"allIn"`
	IsBot      bool     `json:"isBot"`
	IsTurn     bool     `json:"isTurn"`
	CallAmount int      `json:"callAmount"`
	Cards      []string `json:"cards,omitempty"`
}

// BuildSnapshot returns the table as the named viewer is allowed to see it.
// An empty viewerID produces a spectator view with no hole cards.
func (g *Game) BuildSnapshot(viewerID string) *Snapshot {
	snapshot := &Snapshot{
		RoomID:       g.roomID,
		Stage:        g.stage,
		Community:    cardStrings(g.community),
		Pot:          g.pot,
		CurrentBet:   g.currentBet,
		DealerIndex:  g.dealerIndex,
		CurrentIndex: -1,
		Seats:        make([]*SeatSnapshot, 0, len(g.seats)),
		Log:          g.trailingLog(snapshotLogEntries),
	}

	if g.stage.isBetting() {
		snapshot.CurrentIndex = g.currentIndex
		snapshot.MinRaiseTo = g.MinRaiseTo()
	}

	for i, seat := range g.seats {
		ss := &SeatSnapshot{
			PlayerID: seat.PlayerID,
			Name:     seat.Name,
			Balance:  seat.balance,
			RoundBet: seat.roundBet,
			HandBet:  seat.handBet,
			Folded:   seat.folded,
			AllIn:    seat.allIn,
			IsBot:    seat.isBot,
			IsTurn:   snapshot.CurrentIndex == i,
		}

		if callAmount := g.currentBet - seat.roundBet; callAmount > 0 && seat.canAct() {
			ss.CallAmount = callAmount
		}

		if g.canSeeCards(viewerID, seat) {
			ss.Cards = cardStrings(seat.cards)
		}

		snapshot.Seats = append(snapshot.Seats, ss)
	}

	return snapshot
}

// canSeeCards enforces hole-card visibility: your own cards always, anyone
// still in the hand at showdown
func (g *Game) canSeeCards(viewerID string, seat *Seat) bool {
	if len(seat.cards) == 0 {
		return false
	}

	if seat.PlayerID == viewerID {
		return true
	}

	return g.stage == StageShowdown && g.revealed && !seat.folded
}

func cardStrings(cards deck.Hand) []string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = deck.CardToString(card)
	}

	return out
}
