package holdem

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Seed = 1
	opts.ShowdownDelay = time.Millisecond
	opts.FoldWinDelay = time.Millisecond
	opts.BotDelay = time.Millisecond
	opts.BotDelayJitter = 0
	return opts
}

// newTestGame seats n human players with 2000 chips each
func newTestGame(t *testing.T, n int) *Game {
	t.Helper()
	game, err := New(logrus.New(), "test", testOptions(), nil, nil)
	assert.NoError(t, err)

	names := []string{"alice", "bob", "charlie", "dave", "erin", "frank", "grace", "heidi", "ivan"}
	for i := 0; i < n; i++ {
		assert.NoError(t, game.AddPlayer(names[i], names[i], 2000))
	}

	return game
}

func totalChips(g *Game) int {
	total := g.pot
	for _, seat := range g.seats {
		total += seat.balance
	}

	return total
}

func TestNew_validatesOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.BigBlind = 0
	_, err := New(logrus.New(), "test", opts, nil, nil)
	assert.EqualError(t, err, "blinds must be greater than zero")

	opts = DefaultOptions()
	opts.SmallBlind = 50
	_, err = New(logrus.New(), "test", opts, nil, nil)
	assert.EqualError(t, err, "small blind cannot exceed the big blind")

	opts = DefaultOptions()
	opts.MaxSeats = 1
	_, err = New(logrus.New(), "test", opts, nil, nil)
	assert.EqualError(t, err, "table must seat between 2 and 9 players")
}

func TestGame_AddPlayer(t *testing.T) {
	game := newTestGame(t, 2)
	assert.Equal(t, ErrAlreadySeated, game.AddPlayer("alice", "alice", 2000))
	assert.Equal(t, ErrInvalidPlayer, game.AddPlayer("", "x", 2000))
	assert.Equal(t, ErrInvalidPlayer, game.AddPlayer("x", "", 2000))
	assert.EqualError(t, game.AddPlayer("x", "x", -1), "balance cannot be negative: -1")

	for i := 0; i < 7; i++ {
		assert.NoError(t, game.AddBot())
	}

	assert.Equal(t, ErrTableFull, game.AddPlayer("late", "late", 2000))
	assert.Equal(t, ErrTableFull, game.AddBot())
}

func TestGame_AddPlayerMidHand(t *testing.T) {
	game := newTestGame(t, 2)
	assert.NoError(t, game.Start())
	assert.Equal(t, ErrGameInProgress, game.AddPlayer("late", "late", 2000))
	assert.Equal(t, ErrGameInProgress, game.AddBot())
	assert.Equal(t, ErrGameInProgress, game.Start())
}

func TestGame_AddBot(t *testing.T) {
	game := newTestGame(t, 0)
	assert.NoError(t, game.AddBot())
	assert.NoError(t, game.AddBot())

	assert.Equal(t, "bot_1", game.seats[0].PlayerID)
	assert.Equal(t, "Bot-1", game.seats[0].Name)
	assert.Equal(t, "bot_2", game.seats[1].PlayerID)
	assert.True(t, game.seats[0].IsBot())
	assert.Equal(t, 2000, game.seats[0].Balance())
}

func TestGame_StartRequiresTwoFundedSeats(t *testing.T) {
	game := newTestGame(t, 1)
	assert.Equal(t, ErrNotEnoughPlayers, game.Start())

	assert.NoError(t, game.AddPlayer("broke", "broke", 0))
	assert.Equal(t, ErrNotEnoughPlayers, game.Start())
}

func TestGame_StartPostsBlinds(t *testing.T) {
	game := newTestGame(t, 3)
	assert.NoError(t, game.Start())

	// the button moves before the deal, so seat 1 is the first dealer
	assert.Equal(t, StagePreFlop, game.stage)
	assert.Equal(t, 1, game.dealerIndex)
	assert.Equal(t, 1990, game.seats[2].balance) // small blind
	assert.Equal(t, 1980, game.seats[0].balance) // big blind
	assert.Equal(t, 30, game.pot)
	assert.Equal(t, 20, game.currentBet)

	// first voluntary action belongs to the seat after the big blind
	assert.Equal(t, 1, game.currentIndex)

	for _, seat := range game.seats {
		assert.Equal(t, 2, len(seat.cards))
	}
}

func TestGame_StartHeadsUpDealerPostsSmallBlind(t *testing.T) {
	game := newTestGame(t, 2)
	assert.NoError(t, game.Start())

	assert.Equal(t, 1, game.dealerIndex)
	assert.Equal(t, 1990, game.seats[1].balance)
	assert.Equal(t, 1980, game.seats[0].balance)

	// heads-up the dealer acts first before the flop
	assert.Equal(t, 1, game.currentIndex)
}

func TestGame_StartBlindsPutEveryoneAllIn(t *testing.T) {
	game, err := New(logrus.New(), "test", testOptions(), nil, nil)
	assert.NoError(t, err)
	assert.NoError(t, game.AddPlayer("alice", "alice", 20))
	assert.NoError(t, game.AddPlayer("bob", "bob", 10))
	assert.NoError(t, game.Start())

	// nobody can act, so the hand must run out on its own
	assert.True(t, game.seats[0].allIn)
	assert.True(t, game.seats[1].allIn)
	assert.Equal(t, StageShowdown, game.stage)
	assert.Equal(t, 5, len(game.community))
	assert.NotNil(t, game.pendingRestart)
	assert.Equal(t, 0, game.pot)
	assert.Equal(t, 30, totalChips(game))
}

func TestGame_RemovePlayerBetweenHands(t *testing.T) {
	game := newTestGame(t, 3)

	changed, err := game.RemovePlayer("bob")
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 2, len(game.seats))
	assert.Equal(t, "alice", game.seats[0].PlayerID)
	assert.Equal(t, "charlie", game.seats[1].PlayerID)
	assert.Equal(t, 1, game.seats[1].index)

	changed, err = game.RemovePlayer("nobody")
	assert.NoError(t, err)
	assert.False(t, changed)
}

func TestGame_RemovePlayerMidHandFolds(t *testing.T) {
	game := newTestGame(t, 3)
	assert.NoError(t, game.Start())

	// bob is on the clock; leaving folds him and passes the action
	assert.Equal(t, 1, game.currentIndex)
	changed, err := game.RemovePlayer("bob")
	assert.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, 3, len(game.seats))
	assert.True(t, game.seats[1].folded)
	assert.True(t, game.seats[1].left)
	assert.Equal(t, 2, game.currentIndex)

	// the seat is released once the hand settles
	game.forceRestartNow()
	changed, err = game.Tick()
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 2, len(game.seats))
}

// forceRestartNow ends the current hand and expires the between-hand pause
func (g *Game) forceRestartNow() {
	for _, seat := range g.seats {
		seat.folded = true
	}

	g.stage = StageShowdown
	past := time.Now().Add(-time.Second)
	g.pendingRestart = &past
}
