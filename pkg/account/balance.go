package account

import (
	"context"

	"texaspoker-server/pkg/db"
)

// BalanceStore persists table settlements back to the players table.
// It satisfies holdem.BalancePersister.
type BalanceStore struct{}

// PersistBalance stores the player's balance
func (BalanceStore) PersistBalance(playerID string, balance int) error {
	const query = `
UPDATE players
SET balance = $1, updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2`

	_, err := db.Instance().ExecContext(context.Background(), query, balance, playerID)
	return err
}
