package holdem

import (
	"texaspoker-server/pkg/action"
)

// Act applies an action by the named player to the current betting round.
// For a raise, amount is the total the player is raising to for this round,
// not the increment.
func (g *Game) Act(playerID string, act action.Action, amount int) error {
	if !g.stage.isBetting() {
		return ErrNoActionAllowed
	}

	seat := g.seatByID(playerID)
	if seat == nil {
		return ErrInvalidPlayer
	}

	if g.seats[g.currentIndex] != seat || !seat.canAct() {
		return ErrNotPlayersTurn
	}

	switch act {
	case action.Fold:
		seat.folded = true
		g.emitAction(seat, act, 0)
	case action.Check:
		if seat.roundBet < g.currentBet {
			return ErrCheckNotAllowed
		}

		g.emitAction(seat, act, 0)
	case action.Call:
		shortfall := g.currentBet - seat.roundBet
		if shortfall <= 0 {
			return ErrNothingToCall
		}

		// a short stack calls with what it has; report what actually
		// went in, not the table bet
		g.forceBet(seat, shortfall)
		g.emitAction(seat, act, seat.roundBet)
	case action.Raise:
		if err := g.raise(seat, amount); err != nil {
			return err
		}
	default:
		return ErrInvalidAction
	}

	g.acted[seat.PlayerID] = true
	return g.nextTurn()
}

// raise moves the seat's round bet up to amount. The raise must add at least
// a big blind on top of a full call unless the seat is shoving its whole
// stack.
func (g *Game) raise(seat *Seat, amount int) error {
	maxTo := seat.roundBet + seat.balance
	if amount > maxTo {
		amount = maxTo
	}

	// an all-in below the current bet is a call, not a raise
	if amount <= g.currentBet {
		return ErrInvalidAction
	}

	minRaise := g.currentBet + g.opts.BigBlind
	if amount < minRaise && amount < maxTo {
		return MinRaiseError(minRaise)
	}

	g.forceBet(seat, amount-seat.roundBet)
	g.currentBet = seat.roundBet
	g.lastRaiserIndex = seat.index

	// a raise reopens the action for everyone else
	g.acted = map[string]bool{seat.PlayerID: true}
	g.emitAction(seat, action.Raise, seat.roundBet)
	return nil
}

// MinRaiseTo returns the smallest legal raise-to total for the current round
func (g *Game) MinRaiseTo() int {
	return g.currentBet + g.opts.BigBlind
}

func (g *Game) emitAction(seat *Seat, act action.Action, amount int) {
	g.addLog("%s %s", seat.Name, act.LogMessage(amount))
	g.emitter.ActionTaken(&ActionEvent{
		PlayerID: seat.PlayerID,
		Name:     seat.Name,
		Action:   act,
		Amount:   amount,
		Pot:      g.pot,
	})
}

// nextTurn advances the action after a seat has acted (or folded out of
// turn order by leaving)
func (g *Game) nextTurn() error {
	if g.standingCount() <= 1 {
		return g.settleFoldWin()
	}

	if g.isRoundOver() {
		return g.advanceStage()
	}

	g.currentIndex = g.nextActiveIndex(g.currentIndex)
	g.bumpGeneration()
	return nil
}

// standingCount counts seats still contesting the pot
func (g *Game) standingCount() int {
	n := 0
	for _, seat := range g.seats {
		if !seat.folded {
			n++
		}
	}

	return n
}

// isRoundOver reports whether the current betting round is closed: either
// nobody can act, or every seat that can act has acted and matched the
// current bet. Acting is tracked explicitly so the big blind keeps its
// option pre-flop even when everyone just calls.
func (g *Game) isRoundOver() bool {
	for _, seat := range g.seats {
		if !seat.canAct() {
			continue
		}

		if !g.acted[seat.PlayerID] || seat.roundBet < g.currentBet {
			return false
		}
	}

	return true
}

// advanceStage closes the betting round, deals the next street, and puts
// the action on the first seat after the button. When everyone left in the
// hand is all-in it keeps dealing straight through to showdown.
func (g *Game) advanceStage() error {
	for {
		for _, seat := range g.seats {
			seat.newRound()
		}

		g.currentBet = 0
		g.acted = make(map[string]bool)
		g.lastRaiserIndex = -1

		switch g.stage {
		case StagePreFlop:
			if err := g.dealCommunity(3); err != nil {
				return err
			}

			g.stage = StageFlop
			g.addLog("flop: %s", g.community.String())
		case StageFlop:
			if err := g.dealCommunity(1); err != nil {
				return err
			}

			g.stage = StageTurn
			g.addLog("turn: %s", g.community.String())
		case StageTurn:
			if err := g.dealCommunity(1); err != nil {
				return err
			}

			g.stage = StageRiver
			g.addLog("river: %s", g.community.String())
		case StageRiver:
			return g.doShowdown()
		default:
			return ErrNoActionAllowed
		}

		if !g.isRoundOver() {
			break
		}
	}

	g.currentIndex = g.nextActiveIndex(g.dealerIndex)
	g.bumpGeneration()
	return nil
}

func (g *Game) dealCommunity(n int) error {
	for i := 0; i < n; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		g.community.AddCard(card)
	}

	return nil
}
