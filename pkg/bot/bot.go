// Package bot decides actions for computer-controlled seats.
package bot

import (
	"texaspoker-server/internal/rng"
	"texaspoker-server/pkg/action"
	"texaspoker-server/pkg/deck"
	"texaspoker-server/pkg/poker"
)

// bluffPercent is how often the bot plays a hand stronger than it is
const bluffPercent = 20

// Decision is the action a bot chose for its turn.
// Amount is only meaningful for a raise.
type Decision struct {
	Action action.Action
	Amount int
}

// Decide picks an action from the bot's cards and the table context.
// It has no side effects and is deterministic for a fixed random source.
func Decide(hole, community []*deck.Card, pot, callAmount, balance int, g rng.Generator) Decision {
	var strength float64
	if len(community) == 0 {
		strength = preflopStrength(hole)
	} else {
		strength = postflopStrength(hole, community)
	}

	if g.Intn(100) < bluffPercent {
		strength += 0.3
		if strength > 1 {
			strength = 1
		}
	}

	canCheck := callAmount == 0

	switch {
	case strength >= 0.75:
		amount := callAmount * 2
		if potBet := pot * 3 / 4; potBet > amount {
			amount = potBet
		}
		if amount > balance {
			amount = balance
		}

		return Decision{Action: action.Raise, Amount: amount}
	case strength >= 0.45:
		if canCheck {
			return Decision{Action: action.Check}
		}

		if float64(callAmount) <= float64(balance)*0.3 {
			return Decision{Action: action.Call}
		}

		return Decision{Action: action.Fold}
	}

	if canCheck {
		return Decision{Action: action.Check}
	}

	if float64(callAmount) <= float64(balance)*0.1 {
		return Decision{Action: action.Call}
	}

	return Decision{Action: action.Fold}
}

// preflopStrength scores the two hole cards in [0,1] from a fixed band table
// over (high rank, low rank, paired, suited, gap)
func preflopStrength(hole []*deck.Card) float64 {
	if len(hole) < 2 {
		return 0.2
	}

	high, low := hole[0].Rank, hole[1].Rank
	if low > high {
		high, low = low, high
	}

	suited := hole[0].Suit == hole[1].Suit
	paired := high == low

	if paired {
		switch {
		case high >= 10:
			return 0.95
		case high >= 7:
			return 0.75
		}

		return 0.55
	}

	if high == deck.Ace {
		switch {
		case low >= 10:
			return suitedValue(suited, 0.90, 0.85)
		case low >= 7:
			return suitedValue(suited, 0.75, 0.65)
		}

		return suitedValue(suited, 0.60, 0.50)
	}

	switch {
	case high == deck.King && low >= 10:
		return suitedValue(suited, 0.80, 0.70)
	case high >= 10 && low >= 10:
		return suitedValue(suited, 0.78, 0.68)
	case high >= 10 && suited:
		return 0.55
	case high-low <= 2 && suited:
		return 0.50
	case high-low <= 3:
		return 0.35
	}

	return 0.20
}

// postflopStrength maps the evaluator's category for hole+community onto a
// fixed strength value
func postflopStrength(hole, community []*deck.Card) float64 {
	cards := make([]*deck.Card, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)

	switch poker.Evaluate(cards).Category {
	case poker.RoyalFlush:
		return 1.0
	case poker.StraightFlush:
		return 0.95
	case poker.FourOfAKind:
		return 0.90
	case poker.FullHouse:
		return 0.80
	case poker.Flush:
		return 0.70
	case poker.Straight:
		return 0.60
	case poker.ThreeOfAKind:
		return 0.50
	case poker.TwoPair:
		return 0.40
	case poker.OnePair:
		return 0.30
	}

	return 0.15
}

func suitedValue(suited bool, yes, no float64) float64 {
	if suited {
		return yes
	}

	return no
}
