package holdem

import "sort"

// potLayer is a slice of the pot capped by an all-in. Seats that folded
// keep their chips in the layer but are not eligible to win it.
type potLayer struct {
	amount        int
	eligible      []*Seat
	contributions map[*Seat]int
}

// buildPots partitions the pot by the distinct all-in totals committed this
// hand. With no all-ins this yields a single layer every live seat can win.
func (g *Game) buildPots() []*potLayer {
	thresholds := make([]int, 0, len(g.seats))
	seen := make(map[int]bool)
	for _, seat := range g.seats {
		if seat.handBet > 0 && !seen[seat.handBet] {
			seen[seat.handBet] = true
			thresholds = append(thresholds, seat.handBet)
		}
	}

	sort.Ints(thresholds)

	layers := make([]*potLayer, 0, len(thresholds))
	prev := 0
	for _, t := range thresholds {
		layer := &potLayer{contributions: make(map[*Seat]int)}
		for _, seat := range g.seats {
			contrib := seat.handBet
			if contrib > t {
				contrib = t
			}

			if contrib > prev {
				layer.amount += contrib - prev
				layer.contributions[seat] = contrib - prev
			}

			if !seat.folded && seat.handBet >= t {
				layer.eligible = append(layer.eligible, seat)
			}
		}

		if layer.amount > 0 {
			layers = append(layers, layer)
		}

		prev = t
	}

	return layers
}
