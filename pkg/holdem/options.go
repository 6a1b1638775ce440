package holdem

import (
	"errors"
	"time"
)

// Options configures how a table plays
type Options struct {
	SmallBlind int
	BigBlind   int
	MaxSeats   int
	BotBalance int

	// ShowdownDelay and FoldWinDelay are how long the table lingers on a
	// finished hand before cleaning up and starting the next one
	ShowdownDelay time.Duration
	FoldWinDelay  time.Duration

	// BotDelay and BotDelayJitter emulate human pacing for bot turns
	BotDelay       time.Duration
	BotDelayJitter time.Duration

	// Seed makes the deck deterministic. It should only be set by tests;
	// leave 0 for a time-based shuffle.
	Seed int64
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		SmallBlind:     10,
		BigBlind:       20,
		MaxSeats:       9,
		BotBalance:     2000,
		ShowdownDelay:  time.Second * 5,
		FoldWinDelay:   time.Second * 3,
		BotDelay:       time.Millisecond * 800,
		BotDelayJitter: time.Millisecond * 700,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 || opts.BigBlind <= 0 {
		return errors.New("blinds must be greater than zero")
	}

	if opts.SmallBlind > opts.BigBlind {
		return errors.New("small blind cannot exceed the big blind")
	}

	if opts.MaxSeats < 2 || opts.MaxSeats > 9 {
		return errors.New("table must seat between 2 and 9 players")
	}

	return nil
}
