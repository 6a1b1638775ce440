package poker

import (
	"sort"

	"texaspoker-server/pkg/deck"
)

// Evaluate returns the best five-card hand the supplied 2-7 cards can make.
// With more than five cards, every five-card subset is scored (C(7,5)=21)
// and the maximum kept. With fewer than five cards only the group-based
// categories (pairs, trips, quads, high card) are possible.
func Evaluate(cards []*deck.Card) *HandRank {
	if len(cards) <= 5 {
		return evaluateFive(cards)
	}

	var best *HandRank
	for _, combo := range combinations(len(cards), 5) {
		hand := make([]*deck.Card, 5)
		for i, idx := range combo {
			hand[i] = cards[idx]
		}

		if rank := evaluateFive(hand); best == nil || Compare(rank, best) > 0 {
			best = rank
		}
	}

	return best
}

// combinations returns every k-sized index subset of [0,n)
func combinations(n, k int) [][]int {
	result := make([][]int, 0)
	combo := make([]int, 0, k)

	var helper func(start int)
	helper = func(start int) {
		if len(combo) == k {
			cp := make([]int, k)
			copy(cp, combo)
			result = append(result, cp)
			return
		}

		for i := start; i < n; i++ {
			combo = append(combo, i)
			helper(i + 1)
			combo = combo[:len(combo)-1]
		}
	}

	helper(0)
	return result
}

// rankGroup is a set of equally-ranked cards
type rankGroup struct {
	rank  int
	count int
}

func evaluateFive(cards []*deck.Card) *HandRank {
	sorted := make([]*deck.Card, len(cards))
	copy(sorted, cards)
	sort.Sort(sort.Reverse(sortByRank(sorted)))

	values := make([]int, len(sorted))
	for i, card := range sorted {
		values[i] = card.Rank
	}

	isFlush := len(sorted) == 5
	for _, card := range sorted {
		if card.Suit != sorted[0].Suit {
			isFlush = false
			break
		}
	}

	straight := len(sorted) == 5 && isStraight(values)
	wheel := len(sorted) == 5 && isWheel(values)

	groups := groupByRank(values)
	maxCount := groups[0].count
	secondCount := 0
	if len(groups) > 1 {
		secondCount = groups[1].count
	}

	switch {
	case isFlush && straight && values[0] == deck.Ace && values[4] == 10:
		return &HandRank{Category: RoyalFlush, Tiebreak: values}
	case isFlush && (straight || wheel):
		if wheel {
			return &HandRank{Category: StraightFlush, Tiebreak: wheelTiebreak(sorted)}
		}
		return &HandRank{Category: StraightFlush, Tiebreak: values}
	case maxCount == 4:
		quad, kicker := groups[0].rank, groups[1].rank
		return &HandRank{Category: FourOfAKind, Tiebreak: []int{quad, quad, quad, quad, kicker}}
	case maxCount == 3 && secondCount == 2:
		trip, pair := groups[0].rank, groups[1].rank
		return &HandRank{Category: FullHouse, Tiebreak: []int{trip, trip, trip, pair, pair}}
	case isFlush:
		return &HandRank{Category: Flush, Tiebreak: values}
	case straight:
		return &HandRank{Category: Straight, Tiebreak: values}
	case wheel:
		return &HandRank{Category: Straight, Tiebreak: wheelTiebreak(sorted)}
	case maxCount == 3:
		trip := groups[0].rank
		tiebreak := []int{trip, trip, trip}
		for _, g := range groups[1:] {
			tiebreak = append(tiebreak, g.rank)
		}
		return &HandRank{Category: ThreeOfAKind, Tiebreak: tiebreak}
	case maxCount == 2 && secondCount == 2:
		high, low := groups[0].rank, groups[1].rank
		tiebreak := []int{high, high, low, low}
		if len(groups) > 2 {
			tiebreak = append(tiebreak, groups[2].rank)
		}
		return &HandRank{Category: TwoPair, Tiebreak: tiebreak}
	case maxCount == 2:
		pair := groups[0].rank
		tiebreak := []int{pair, pair}
		for _, g := range groups[1:] {
			tiebreak = append(tiebreak, g.rank)
		}
		return &HandRank{Category: OnePair, Tiebreak: tiebreak}
	}

	return &HandRank{Category: HighCard, Tiebreak: values}
}

// groupByRank groups the descending-sorted values and orders the groups by
// (count desc, rank desc). This ordering drives both category detection and
// the tiebreak sequence for each category.
func groupByRank(values []int) []rankGroup {
	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}

// isStraight expects values sorted descending
func isStraight(values []int) bool {
	for i := 0; i < len(values)-1; i++ {
		if values[i]-values[i+1] != 1 {
			return false
		}
	}

	return true
}

// isWheel detects A-2-3-4-5, which sorts descending as [14,5,4,3,2]
func isWheel(values []int) bool {
	return values[0] == deck.Ace && values[1] == 5 && values[2] == 4 &&
		values[3] == 3 && values[4] == 2
}

// the wheel ranks as a five-high straight: the ace counts low
func wheelTiebreak(cards []*deck.Card) []int {
	values := make([]int, len(cards))
	for i, card := range cards {
		values[i] = card.AceLowRank()
	}

	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return values
}
