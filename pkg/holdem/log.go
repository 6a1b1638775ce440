package holdem

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// maxLogEntries bounds the in-memory table log
	maxLogEntries = 200

	// snapshotLogEntries is how much of the tail each snapshot carries
	snapshotLogEntries = 30
)

// LogEntry is one line of table history
type LogEntry struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

func (g *Game) addLog(format string, args ...interface{}) {
	g.actionLog = append(g.actionLog, &LogEntry{
		ID:      uuid.New().String(),
		Time:    time.Now(),
		Message: fmt.Sprintf(format, args...),
	})

	if len(g.actionLog) > maxLogEntries {
		g.actionLog = g.actionLog[len(g.actionLog)-maxLogEntries:]
	}
}

func (g *Game) trailingLog(n int) []*LogEntry {
	if len(g.actionLog) <= n {
		return append([]*LogEntry{}, g.actionLog...)
	}

	return append([]*LogEntry{}, g.actionLog[len(g.actionLog)-n:]...)
}
