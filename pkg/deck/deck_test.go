package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *deck.Cards[51])
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	deck := New()
	unshuffled := deck.HashCode()

	deck.Shuffle(1)
	a.Equal(int64(1), deck.GetSeed())
	a.NotEqual(unshuffled, deck.HashCode())

	// same seed yields the same permutation
	deck2 := New()
	deck2.Shuffle(1)
	a.Equal(deck.HashCode(), deck2.HashCode())

	// a shuffle is a permutation: every unique card appears exactly once
	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		a.NoError(err)
		a.False(seen[*card], "card %s dealt twice", card)
		seen[*card] = true
	}
	a.Len(seen, 52)

	// time-based seed still reshuffles the full deck
	deck.Shuffle(0)
	a.Equal(52, deck.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		assert.NoError(t, err)
		assert.NotNil(t, card)
	}

	card, err := deck.Draw()
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Nil(t, card)
}
