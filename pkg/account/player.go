package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"texaspoker-server/pkg/db"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/synacor/argon2id"
)

const playerColumns = `
players.id,
players.email,
players.display_name,
players.balance,
players.is_site_admin,
players.password_hash,
players.last_bonus,
players.created,
players.updated`

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrInvalidEmailOrPassword is an error for an invalid email or password
var ErrInvalidEmailOrPassword = errors.New("invalid email address and/or password")

// ErrDuplicateKey happens if a user tries to create a player with a taken email
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

// Player is a record in the `players` table
type Player struct {
	ID           string `json:"id"`
	Email        string `json:"-"`
	DisplayName  string `json:"displayName"`
	Balance      int    `json:"balance"`
	IsSiteAdmin  bool   `json:"isSiteAdmin"`
	passwordHash string
	LastBonus    sql.NullTime `json:"-"`
	Created      time.Time    `json:"created"`
	Updated      time.Time    `json:"updated"`
}

func getPlayerByRow(row db.Scanner) (*Player, error) {
	var player Player
	if err := row.Scan(&player.ID, &player.Email, &player.DisplayName, &player.Balance, &player.IsSiteAdmin, &player.passwordHash, &player.LastBonus, &player.Created, &player.Updated); err != nil {
		return nil, err
	}

	return &player, nil
}

// GetPlayerByID returns player based on the ID
func GetPlayerByID(ctx context.Context, id string) (*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return getPlayerByRow(row)
}

// GetPlayerByEmail will return a user by the email address
func GetPlayerByEmail(ctx context.Context, email string) (*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE lower(email) = lower($1)`

	row := db.Instance().QueryRowContext(ctx, query, email)
	return getPlayerByRow(row)
}

// GetPlayerByEmailAndPassword will return a user if the email and password are valid
func GetPlayerByEmailAndPassword(ctx context.Context, email, password string) (*Player, error) {
	player, err := GetPlayerByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			// prevent timing attacks
			_ = argon2id.Compare("", "")
			return nil, ErrInvalidEmailOrPassword
		}

		return nil, err
	}

	if err := argon2id.Compare(player.passwordHash, password); err != nil {
		return nil, ErrInvalidEmailOrPassword
	}

	return player, nil
}

// CreatePlayer creates a new player with the given starting balance
func CreatePlayer(ctx context.Context, email, displayName, password, remoteAddr string, startingBalance int) (*Player, error) {
	hashPassword, err := argon2id.DefaultHashPassword(password)
	if err != nil {
		return nil, err
	}

	const query = `
INSERT INTO players (id, email, display_name, password_hash, remote_addr, balance)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + playerColumns

	row := db.Instance().QueryRowContext(ctx, query, uuid.New().String(), email, displayName, hashPassword, remoteAddr, startingBalance)
	player, err := getPlayerByRow(row)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return nil, ErrDuplicateKey
		}

		return nil, err
	}

	return player, nil
}

// LastPlayerCreatedAt returns the last time a player was created by the remote address
// If a player hasn't been created yet, this will return a nil error and a time.Time{} object (i.e., zero)
func LastPlayerCreatedAt(ctx context.Context, remoteAddr string) (time.Time, error) {
	const query = `
SELECT MAX(created)
FROM players
WHERE remote_addr = $1`

	var created sql.NullTime
	if err := db.Instance().QueryRowContext(ctx, query, remoteAddr).Scan(&created); err != nil {
		return time.Time{}, err
	}

	return created.Time, nil
}

// Save will persist any changes made to the player to the database
func (p *Player) Save(ctx context.Context) error {
	const query = `
UPDATE players
SET email = $1,
    display_name = $2,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $3`

	_, err := db.Instance().ExecContext(ctx, query, p.Email, p.DisplayName, p.ID)
	return err
}

// SetPassword will set a new password
func (p *Player) SetPassword(password string) error {
	newHash, err := argon2id.DefaultHashPassword(password)
	if err != nil {
		return err
	}

	const query = `
UPDATE players
SET password_hash = $1, updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2`

	_, err = db.Instance().Exec(query, newHash, p.ID)
	return err
}

// SetIsSiteAdmin grants or revokes site-admin rights
func (p *Player) SetIsSiteAdmin(ctx context.Context, isSiteAdmin bool) error {
	const query = `
UPDATE players
SET is_site_admin = $1, updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2`

	if _, err := db.Instance().ExecContext(ctx, query, isSiteAdmin, p.ID); err != nil {
		return err
	}

	p.IsSiteAdmin = isSiteAdmin
	return nil
}

// ClaimDailyBonus adds the bonus to the player's balance once per UTC day.
// It returns true if the bonus was granted, updating the receiver's balance.
func (p *Player) ClaimDailyBonus(ctx context.Context, bonus int) (bool, error) {
	const query = `
UPDATE players
SET balance = balance + $1,
    last_bonus = (NOW() AT TIME ZONE 'utc'),
    updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2
  AND (last_bonus IS NULL OR last_bonus::date < (NOW() AT TIME ZONE 'utc')::date)
RETURNING balance`

	err := db.Instance().QueryRowContext(ctx, query, bonus, p.ID).Scan(&p.Balance)
	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}
