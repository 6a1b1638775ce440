package holdem

import (
	"testing"

	"texaspoker-server/pkg/action"

	"github.com/stretchr/testify/assert"
)

func TestGame_BuildSnapshotHidesHoleCards(t *testing.T) {
	game := newTestGame(t, 3)
	assert.NoError(t, game.Start())

	snapshot := game.BuildSnapshot("alice")
	assert.Equal(t, "test", snapshot.RoomID)
	assert.Equal(t, StagePreFlop, snapshot.Stage)
	assert.Equal(t, 30, snapshot.Pot)
	assert.Equal(t, 20, snapshot.CurrentBet)
	assert.Equal(t, 40, snapshot.MinRaiseTo)
	assert.Equal(t, 1, snapshot.DealerIndex)
	assert.Equal(t, 1, snapshot.CurrentIndex)
	assert.True(t, snapshot.Seats[1].IsTurn)

	// alice sees her own two cards and nobody else's
	assert.Equal(t, 2, len(snapshot.Seats[0].Cards))
	assert.Empty(t, snapshot.Seats[1].Cards)
	assert.Empty(t, snapshot.Seats[2].Cards)

	// the spectator view has no hole cards at all
	spectator := game.BuildSnapshot("")
	for _, seat := range spectator.Seats {
		assert.Empty(t, seat.Cards)
	}
}

func TestGame_BuildSnapshotCallAmounts(t *testing.T) {
	game := newTestGame(t, 3)
	assert.NoError(t, game.Start())
	assert.NoError(t, game.Act("bob", action.Raise, 60))

	snapshot := game.BuildSnapshot("charlie")
	assert.Equal(t, 0, snapshot.Seats[1].CallAmount)
	assert.Equal(t, 50, snapshot.Seats[2].CallAmount) // posted the small blind
	assert.Equal(t, 40, snapshot.Seats[0].CallAmount) // posted the big blind
	assert.Equal(t, 2, snapshot.CurrentIndex)
}

func TestGame_BuildSnapshotShowdownReveals(t *testing.T) {
	game := newTestGame(t, 2)
	assert.NoError(t, game.Start())

	assert.NoError(t, game.Act("bob", action.Raise, 2000))
	assert.NoError(t, game.Act("alice", action.Call, 0))
	assert.Equal(t, StageShowdown, game.stage)

	snapshot := game.BuildSnapshot("")
	assert.Equal(t, -1, snapshot.CurrentIndex)
	assert.Equal(t, 5, len(snapshot.Community))
	assert.Equal(t, 2, len(snapshot.Seats[0].Cards))
	assert.Equal(t, 2, len(snapshot.Seats[1].Cards))
}

func TestGame_BuildSnapshotFoldWinHidesWinner(t *testing.T) {
	game := newTestGame(t, 2)
	assert.NoError(t, game.Start())
	assert.NoError(t, game.Act("bob", action.Fold, 0))

	snapshot := game.BuildSnapshot("")
	assert.Equal(t, StageShowdown, snapshot.Stage)
	assert.Empty(t, snapshot.Seats[0].Cards)
	assert.Empty(t, snapshot.Seats[1].Cards)

	// the winner still sees their own hand
	own := game.BuildSnapshot("alice")
	assert.Equal(t, 2, len(own.Seats[0].Cards))
}

func TestGame_LogIsBounded(t *testing.T) {
	game := newTestGame(t, 2)
	for i := 0; i < maxLogEntries+50; i++ {
		game.addLog("entry %d", i)
	}

	assert.Equal(t, maxLogEntries, len(game.actionLog))

	snapshot := game.BuildSnapshot("")
	assert.Equal(t, snapshotLogEntries, len(snapshot.Log))
	assert.Equal(t, "entry 249", snapshot.Log[len(snapshot.Log)-1].Message)
}
