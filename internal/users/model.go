package users

import "time"

// User is a directory record keyed internally by ID and externally by the
// identity provider's stable subject identifier.
type User struct {
	ID          string    `json:"id"`
	GoogleSub   string    `json:"-"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}
