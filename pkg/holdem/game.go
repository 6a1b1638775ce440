// Package holdem implements a single-table Texas Hold'em state machine.
// A Game is not safe for concurrent use; callers must serialize access, one
// actor per room (see pkg/room).
package holdem

import (
	"fmt"
	"time"

	"texaspoker-server/internal/rng"
	"texaspoker-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// Game is one room's table: the seat list, the betting ledger, and the
// hand lifecycle state machine.
type Game struct {
	log       logrus.FieldLogger
	roomID    string
	opts      Options
	rng       rng.Generator
	persister BalancePersister
	emitter   Emitter

	seats           []*Seat
	stage           Stage
	deck            *deck.Deck
	community       deck.Hand
	pot             int
	currentBet      int
	acted           map[string]bool
	dealerIndex     int
	currentIndex    int
	lastRaiserIndex int

	botCounter  int
	handCounter int64

	// generation increments on every turn or stage change so scheduled
	// work can detect staleness
	generation     uint64
	botDeadline    time.Time
	botGeneration  uint64
	pendingRestart *time.Time

	// revealed is true only after a contested showdown; a hand won by
	// everyone else folding never exposes the winner's cards
	revealed bool

	actionLog []*LogEntry
}

// New returns a new table for the room.
// The persister and emitter may be nil, in which case settlement results are
// not stored or forwarded anywhere.
func New(logger logrus.FieldLogger, roomID string, opts Options, persister BalancePersister, emitter Emitter) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if persister == nil {
		persister = nopPersister{}
	}

	if emitter == nil {
		emitter = nopEmitter{}
	}

	return &Game{
		log:             logger.WithField("room", roomID),
		roomID:          roomID,
		opts:            opts,
		rng:             rng.Crypto{},
		persister:       persister,
		emitter:         emitter,
		seats:           make([]*Seat, 0, opts.MaxSeats),
		stage:           StageWaiting,
		community:       make(deck.Hand, 0, 5),
		acted:           make(map[string]bool),
		lastRaiserIndex: -1,
	}, nil
}

// RoomID returns the room identifier the table was created for
func (g *Game) RoomID() string {
	return g.roomID
}

// Stage returns the table's lifecycle stage
func (g *Game) Stage() Stage {
	return g.stage
}

// Empty returns true once every seat has been vacated
func (g *Game) Empty() bool {
	return len(g.seats) == 0
}

// AddPlayer seats a player. Players can only join between hands.
func (g *Game) AddPlayer(playerID, name string, balance int) error {
	if playerID == "" || name == "" {
		return ErrInvalidPlayer
	}

	if balance < 0 {
		return fmt.Errorf("balance cannot be negative: %d", balance)
	}

	if g.stage != StageWaiting {
		return ErrGameInProgress
	}

	if len(g.seats) >= g.opts.MaxSeats {
		return ErrTableFull
	}

	if g.seatByID(playerID) != nil {
		return ErrAlreadySeated
	}

	g.seats = append(g.seats, &Seat{
		PlayerID: playerID,
		Name:     name,
		balance:  balance,
		cards:    make(deck.Hand, 0, 2),
		index:    len(g.seats),
	})

	g.addLog("%s joined the table", name)
	return nil
}

// AddBot seats a computer-controlled player with the configured balance
func (g *Game) AddBot() error {
	if g.stage != StageWaiting {
		return ErrGameInProgress
	}

	if len(g.seats) >= g.opts.MaxSeats {
		return ErrTableFull
	}

	g.botCounter++
	name := fmt.Sprintf("Bot-%d", g.botCounter)
	g.seats = append(g.seats, &Seat{
		PlayerID: fmt.Sprintf("bot_%d", g.botCounter),
		Name:     name,
		balance:  g.opts.BotBalance,
		cards:    make(deck.Hand, 0, 2),
		isBot:    true,
		index:    len(g.seats),
	})

	g.addLog("%s joined the table", name)
	return nil
}

// RemovePlayer vacates a seat. Mid-hand this is an implicit fold so the
// table never stalls waiting on a departed player; the seat itself is
// released when the hand settles. Returns true if the table changed.
func (g *Game) RemovePlayer(playerID string) (bool, error) {
	seat := g.seatByID(playerID)
	if seat == nil {
		return false, nil
	}

	if g.stage == StageWaiting {
		g.removeSeat(seat)
		g.addLog("%s left the table", seat.Name)
		return true, nil
	}

	seat.left = true
	alreadyOut := seat.folded
	seat.folded = true
	g.addLog("%s left the table (folded)", seat.Name)

	if g.stage.isBetting() && !alreadyOut {
		if g.standingCount() <= 1 {
			return true, g.settleFoldWin()
		}

		if g.seats[g.currentIndex] == seat {
			return true, g.nextTurn()
		}
	}

	return true, nil
}

// Start begins a new hand. It requires at least two seats with chips.
func (g *Game) Start() error {
	if g.stage != StageWaiting {
		return ErrGameInProgress
	}

	return g.startHand()
}

func (g *Game) startHand() error {
	funded := 0
	for _, seat := range g.seats {
		if seat.balance > 0 && !seat.left {
			funded++
		}
	}

	if funded < 2 {
		return ErrNotEnoughPlayers
	}

	g.handCounter++
	g.deck = deck.New()
	g.deck.Shuffle(g.deckSeed())

	g.community = g.community[:0]
	g.pot = 0
	g.currentBet = 0
	g.acted = make(map[string]bool)
	g.lastRaiserIndex = -1
	g.pendingRestart = nil
	g.revealed = false

	for _, seat := range g.seats {
		seat.newHand()
	}

	g.moveDealerButton()

	dealt := 0
	for _, seat := range g.seats {
		if !seat.folded {
			dealt++
		}
	}

	if !g.deck.CanDraw(dealt*2 + 5) {
		return deck.ErrEndOfDeck
	}

	for i := 0; i < 2; i++ {
		for _, seat := range g.seats {
			if seat.folded {
				continue
			}

			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			seat.cards.AddCard(card)
		}
	}

	g.stage = StagePreFlop
	g.addLog("--- new hand ---")
	g.postBlinds()

	g.log.WithFields(logrus.Fields{
		"hand":    g.handCounter,
		"players": funded,
		"deck":    g.deck.HashCode(),
	}).Debug("hand started")

	// the blinds alone can put the whole table all-in; deal straight
	// through to showdown rather than wait on a turn nobody can take
	if g.isRoundOver() {
		return g.advanceStage()
	}

	g.bumpGeneration()
	return nil
}

// deckSeed returns 0 (time-based) unless a test pinned the seed; successive
// hands still get distinct decks
func (g *Game) deckSeed() int64 {
	if g.opts.Seed == 0 {
		return 0
	}

	return g.opts.Seed + g.handCounter - 1
}

// moveDealerButton advances the button to the next seat with chips, wrapping
// and skipping broke seats
func (g *Game) moveDealerButton() {
	n := len(g.seats)
	next := (g.dealerIndex + 1) % n
	for tries := 0; g.seats[next].balance == 0 && tries < n; tries++ {
		next = (next + 1) % n
	}

	g.dealerIndex = next
}

// postBlinds posts the forced small and big blinds and puts the action on
// the seat after the big blind. Heads-up, the dealer posts the small blind.
func (g *Game) postBlinds() {
	active := 0
	for _, seat := range g.seats {
		if !seat.folded {
			active++
		}
	}

	var sbIndex int
	if active == 2 && !g.seats[g.dealerIndex].folded {
		sbIndex = g.dealerIndex
	} else {
		sbIndex = g.nextActiveIndex(g.dealerIndex)
	}

	bbIndex := g.nextActiveIndex(sbIndex)

	sb, bb := g.seats[sbIndex], g.seats[bbIndex]
	g.forceBet(sb, g.opts.SmallBlind)
	g.forceBet(bb, g.opts.BigBlind)
	g.currentBet = g.opts.BigBlind
	g.lastRaiserIndex = bbIndex

	g.addLog("%s posted the small blind %d", sb.Name, g.opts.SmallBlind)
	g.addLog("%s posted the big blind %d", bb.Name, g.opts.BigBlind)

	g.currentIndex = g.nextActiveIndex(bbIndex)
}

// forceBet moves up to amount from the seat's balance into the pot.
// It returns the chips actually moved; a seat emptied by the bet is all-in.
func (g *Game) forceBet(seat *Seat, amount int) int {
	actual := amount
	if actual > seat.balance {
		actual = seat.balance
	}

	seat.balance -= actual
	seat.roundBet += actual
	seat.handBet += actual
	g.pot += actual

	if seat.balance == 0 {
		seat.allIn = true
	}

	return actual
}

// nextActiveIndex returns the next seat after fromIndex that can still act,
// wrapping around the table
func (g *Game) nextActiveIndex(fromIndex int) int {
	n := len(g.seats)
	idx := (fromIndex + 1) % n
	for tries := 0; !g.seats[idx].canAct() && tries < n; tries++ {
		idx = (idx + 1) % n
	}

	return idx
}

func (g *Game) seatByID(playerID string) *Seat {
	for _, seat := range g.seats {
		if seat.PlayerID == playerID {
			return seat
		}
	}

	return nil
}

func (g *Game) removeSeat(seat *Seat) {
	seats := make([]*Seat, 0, len(g.seats)-1)
	for _, s := range g.seats {
		if s != seat {
			seats = append(seats, s)
		}
	}

	g.seats = seats
	g.renumberSeats()
}

func (g *Game) renumberSeats() {
	for i, seat := range g.seats {
		seat.index = i
	}

	if len(g.seats) == 0 {
		g.dealerIndex = 0
		g.currentIndex = 0
		return
	}

	g.dealerIndex %= len(g.seats)
	g.currentIndex %= len(g.seats)
}

func (g *Game) bumpGeneration() {
	g.generation++
	g.scheduleBotMove()
}
