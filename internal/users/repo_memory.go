package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is an in-memory implementation of Repo. The mutex serializes
// login-or-create the way the unique index does in Postgres.
type MemoryRepo struct {
	mu    sync.Mutex
	bySub map[string]*User
	byID  map[string]*User
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bySub: make(map[string]*User),
		byID:  make(map[string]*User),
	}
}

func (r *MemoryRepo) LoginOrCreate(ctx context.Context, googleSub, email string) (User, bool, error) {
	if err := ctx.Err(); err != nil {
		return User{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := r.bySub[googleSub]; ok {
		existing.LastLoginAt = now
		existing.Email = email
		return *existing, false, nil
	}

	user := &User{
		ID:          uuid.NewString(),
		GoogleSub:   googleSub,
		Email:       email,
		CreatedAt:   now,
		LastLoginAt: now,
	}
	r.bySub[googleSub] = user
	r.byID[user.ID] = user
	return *user, true, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return *user, nil
}

var _ Repo = (*MemoryRepo)(nil)
