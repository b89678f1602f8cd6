package users

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// LoginOrCreate upserts in a single statement so the unique index on
// google_sub is the arbiter under concurrent first-logins. xmax = 0 holds
// only for freshly inserted rows.
func (r *PGRepo) LoginOrCreate(ctx context.Context, googleSub, email string) (User, bool, error) {
	const query = `
INSERT INTO users (id, google_sub, email, created_at, last_login_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (google_sub) DO UPDATE SET
  email = EXCLUDED.email,
  last_login_at = EXCLUDED.last_login_at
RETURNING id, google_sub, email, created_at, last_login_at, (xmax = 0) AS is_new`

	now := time.Now().UTC()
	var user User
	var isNew bool
	err := r.DB.QueryRowContext(ctx, query, uuid.NewString(), googleSub, email, now).Scan(
		&user.ID,
		&user.GoogleSub,
		&user.Email,
		&user.CreatedAt,
		&user.LastLoginAt,
		&isNew,
	)
	if err != nil {
		return User{}, false, err
	}
	return user, isNew, nil
}

// GetByID fetches a user by internal ID.
func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, google_sub, email, created_at, last_login_at
FROM users
WHERE id = $1
LIMIT 1`
	var user User
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.GoogleSub,
		&user.Email,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

var _ Repo = (*PGRepo)(nil)
