package holdem

import "encoding/json"

// Stage represents where a hand is in its lifecycle
type Stage int

// constants for Stage
const (
	StageWaiting Stage = iota
	StagePreFlop
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
)

func (s Stage) String() string {
	switch s {
	case StageWaiting:
		return "waiting"
	case StagePreFlop:
		return "preflop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	case StageShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// isBetting returns true if the stage accepts player actions
func (s Stage) isBetting() bool {
	return s >= StagePreFlop && s <= StageRiver
}
