package poker

import "fmt"

// Category is a poker hand category, i.e., royal flush
type Category int

// Constants for category, ordered weakest to strongest
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// HandRank is the result of evaluating a set of cards: the best achievable
// five-card hand expressed as a category plus the tiebreak sequence that
// orders hands within the category.
type HandRank struct {
	Category Category `json:"category"`
	Tiebreak []int    `json:"tiebreak"`
}

// Description returns a human-readable description of the hand
func (r *HandRank) Description() string {
	return r.Category.String()
}

// Compare returns > 0 if a beats b, < 0 if b beats a, and 0 on an exact tie.
// Categories compare first; equal categories compare tiebreak sequences
// element-wise with the first mismatch deciding.
func Compare(a, b *HandRank) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}

	for i := range a.Tiebreak {
		if i >= len(b.Tiebreak) {
			break
		}

		if a.Tiebreak[i] != b.Tiebreak[i] {
			return a.Tiebreak[i] - b.Tiebreak[i]
		}
	}

	return 0
}
