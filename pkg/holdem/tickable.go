package holdem

import (
	"time"

	"texaspoker-server/pkg/action"
	"texaspoker-server/pkg/bot"
)

// Tick performs any time-based work that is due: bot moves while a bot is on
// the clock, and cleanup plus the next deal once a finished hand's pause has
// elapsed. It returns true if the table changed. The room's run loop calls
// this on a short interval.
func (g *Game) Tick() (bool, error) {
	now := time.Now()

	if g.pendingRestart != nil && now.After(*g.pendingRestart) {
		g.pendingRestart = nil
		g.cleanupSeats()
		g.stage = StageWaiting

		if err := g.startHand(); err != nil {
			if err == ErrNotEnoughPlayers {
				g.addLog("waiting for players")
				return true, nil
			}

			return true, err
		}

		return true, nil
	}

	if g.stage.isBetting() && !g.botDeadline.IsZero() && now.After(g.botDeadline) {
		if g.botGeneration != g.generation {
			g.botDeadline = time.Time{}
			return false, nil
		}

		g.botDeadline = time.Time{}
		return true, g.botAct()
	}

	return false, nil
}

// cleanupSeats releases seats that left mid-hand and bots that busted.
// Broke humans keep their seats; they sit out until they can rebuy.
func (g *Game) cleanupSeats() {
	kept := make([]*Seat, 0, len(g.seats))
	for _, seat := range g.seats {
		if seat.left || (seat.isBot && seat.balance == 0) {
			g.addLog("%s left the table", seat.Name)
			continue
		}

		kept = append(kept, seat)
	}

	g.seats = kept
	g.renumberSeats()
}

// scheduleBotMove arms the bot timer when the seat on the clock is a bot,
// with a little jitter so the table feels less mechanical
func (g *Game) scheduleBotMove() {
	if !g.stage.isBetting() || !g.seats[g.currentIndex].isBot {
		g.botDeadline = time.Time{}
		return
	}

	delay := g.opts.BotDelay
	if jitter := int(g.opts.BotDelayJitter / time.Millisecond); jitter > 0 {
		delay += time.Duration(g.rng.Intn(jitter)) * time.Millisecond
	}

	g.botDeadline = time.Now().Add(delay)
	g.botGeneration = g.generation
}

// botAct asks the policy for a move and applies it, tightening an illegal
// raise to the table minimum rather than letting the bot stall the hand
func (g *Game) botAct() error {
	seat := g.seats[g.currentIndex]
	callAmount := g.currentBet - seat.roundBet
	decision := bot.Decide(seat.cards, g.community, g.pot, callAmount, seat.balance, g.rng)

	switch decision.Action {
	case action.Raise:
		amount := decision.Amount
		if max := seat.roundBet + seat.balance; amount > max {
			amount = max
		}

		if amount < g.MinRaiseTo() && amount < seat.roundBet+seat.balance {
			amount = g.MinRaiseTo()
		}

		if amount > seat.roundBet+seat.balance {
			amount = seat.roundBet + seat.balance
		}

		if amount-seat.roundBet > callAmount {
			return g.Act(seat.PlayerID, action.Raise, amount)
		}

		// too short a stack to raise; flatten to a call or check
		if callAmount > 0 {
			return g.Act(seat.PlayerID, action.Call, 0)
		}

		return g.Act(seat.PlayerID, action.Check, 0)
	case action.Call:
		if callAmount == 0 {
			return g.Act(seat.PlayerID, action.Check, 0)
		}

		return g.Act(seat.PlayerID, action.Call, 0)
	case action.Check:
		if callAmount > 0 {
			return g.Act(seat.PlayerID, action.Fold, 0)
		}

		return g.Act(seat.PlayerID, action.Check, 0)
	default:
		return g.Act(seat.PlayerID, action.Fold, 0)
	}
}

func (g *Game) scheduleRestart(delay time.Duration) {
	at := time.Now().Add(delay)
	g.pendingRestart = &at
	g.botDeadline = time.Time{}
}
