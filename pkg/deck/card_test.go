package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", CardFromString("14s").String())
	assert.Equal(t, "K♡", CardFromString("13h").String())
	assert.Equal(t, "10♢", CardFromString("10d").String())
	assert.Equal(t, "2♣", CardFromString("2c").String())
}

func TestCardFromString(t *testing.T) {
	card := CardFromString("11d")
	assert.Equal(t, Jack, card.Rank)
	assert.Equal(t, Diamonds, card.Suit)

	assert.PanicsWithValue(t, "could not parse card: 15s", func() {
		CardFromString("15s")
	})

	assert.Nil(t, CardFromString(""))
}

func TestCardsRoundTrip(t *testing.T) {
	const s = "2c,10d,14s"
	assert.Equal(t, s, CardsToString(CardsFromString(s)))
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14c").AceLowRank())
	assert.Equal(t, 13, CardFromString("13c").AceLowRank())
}

func TestHand(t *testing.T) {
	var h Hand
	h.AddCard(CardFromString("5c"))
	h.AddCard(CardFromString("6d"))

	assert.Equal(t, "5c,6d", h.String())

	clone := h.Clone()
	clone[0] = CardFromString("9h")
	assert.Equal(t, "5c,6d", h.String())
}
