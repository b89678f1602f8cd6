package users

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

type Repo interface {
	// LoginOrCreate finds the user by googleSub, refreshing last_login_at,
	// or creates a new record. Implementations must be safe against
	// concurrent first-logins for the same subject.
	LoginOrCreate(ctx context.Context, googleSub, email string) (User, bool, error)
	GetByID(ctx context.Context, userID string) (User, error)
}
