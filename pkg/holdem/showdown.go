package holdem

import (
	"texaspoker-server/pkg/poker"

	"github.com/sirupsen/logrus"
)

// doShowdown evaluates the remaining hands, pays out every pot layer, and
// schedules the next hand
func (g *Game) doShowdown() error {
	g.stage = StageShowdown
	g.revealed = true

	ranks := make(map[*Seat]*poker.HandRank)
	result := &ResultEvent{}
	for _, seat := range g.seats {
		if seat.folded {
			continue
		}

		rank := poker.Evaluate(append(seat.cards.Clone(), g.community...))
		ranks[seat] = rank

		result.Reveals = append(result.Reveals, &Reveal{
			PlayerID:    seat.PlayerID,
			Name:        seat.Name,
			Cards:       cardStrings(seat.cards),
			Description: rank.Description(),
		})
		g.addLog("%s shows %s (%s)", seat.Name, seat.cards.String(), rank.Description())
	}

	winnings := make(map[*Seat]int)
	for _, layer := range g.buildPots() {
		winners := bestSeats(layer.eligible, ranks)
		if len(winners) == 0 {
			// every contributor to this layer folded; the uncalled
			// chips go back where they came from
			for _, seat := range g.seatsFromButton() {
				if refund := layer.contributions[seat]; refund > 0 {
					seat.balance += refund
					g.addLog("%s is returned %d uncalled chips", seat.Name, refund)
				}
			}

			continue
		}

		share := layer.amount / len(winners)
		remainder := layer.amount % len(winners)

		for _, seat := range winners {
			winnings[seat] += share
		}

		// odd chips go to the first winner past the button
		for _, seat := range g.seatsFromButton() {
			if remainder == 0 {
				break
			}

			if containsSeat(winners, seat) {
				winnings[seat] += remainder
				remainder = 0
			}
		}
	}

	for _, seat := range g.seatsFromButton() {
		amount, ok := winnings[seat]
		if !ok {
			continue
		}

		seat.balance += amount
		result.Winners = append(result.Winners, &Winner{
			PlayerID:    seat.PlayerID,
			Name:        seat.Name,
			Amount:      amount,
			Description: ranks[seat].Description(),
		})
		g.addLog("%s wins %d with %s", seat.Name, amount, ranks[seat].Description())
	}

	g.pot = 0
	g.persistBalances()
	g.emitter.HandFinished(result)
	g.scheduleRestart(g.opts.ShowdownDelay)
	return nil
}

// settleFoldWin awards the pot to the last seat standing without a reveal
func (g *Game) settleFoldWin() error {
	g.stage = StageShowdown

	var winner *Seat
	for _, seat := range g.seats {
		if !seat.folded {
			winner = seat
			break
		}
	}

	if winner == nil {
		// everyone left mid-hand; chips stay where they fell
		g.pot = 0
		g.scheduleRestart(g.opts.FoldWinDelay)
		return nil
	}

	winner.balance += g.pot
	g.addLog("%s wins %d", winner.Name, g.pot)
	g.emitter.HandFinished(&ResultEvent{
		Winners: []*Winner{{
			PlayerID: winner.PlayerID,
			Name:     winner.Name,
			Amount:   g.pot,
		}},
	})

	g.pot = 0
	g.persistBalances()
	g.scheduleRestart(g.opts.FoldWinDelay)
	return nil
}

// persistBalances writes every human seat's balance back to storage without
// blocking the table
func (g *Game) persistBalances() {
	for _, seat := range g.seats {
		if seat.isBot {
			continue
		}

		go func(playerID string, balance int) {
			if err := g.persister.PersistBalance(playerID, balance); err != nil {
				g.log.WithError(err).WithFields(logrus.Fields{
					"player":  playerID,
					"balance": balance,
				}).Error("could not persist balance")
			}
		}(seat.PlayerID, seat.balance)
	}
}

// bestSeats returns every eligible seat holding the strongest hand
func bestSeats(eligible []*Seat, ranks map[*Seat]*poker.HandRank) []*Seat {
	var winners []*Seat
	var best *poker.HandRank
	for _, seat := range eligible {
		rank := ranks[seat]
		if rank == nil {
			continue
		}

		switch {
		case best == nil || poker.Compare(rank, best) > 0:
			best = rank
			winners = []*Seat{seat}
		case poker.Compare(rank, best) == 0:
			winners = append(winners, seat)
		}
	}

	return winners
}

// seatsFromButton returns the seats in order starting left of the dealer
func (g *Game) seatsFromButton() []*Seat {
	n := len(g.seats)
	ordered := make([]*Seat, 0, n)
	for i := 1; i <= n; i++ {
		ordered = append(ordered, g.seats[(g.dealerIndex+i)%n])
	}

	return ordered
}

func containsSeat(seats []*Seat, seat *Seat) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}

	return false
}
