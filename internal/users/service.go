package users

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// LoginOrCreate persists the identity from the credential verifier. Users are
// created on first login and only their last_login_at (and email) move on
// later logins; records are never deleted by this system.
func (s *Service) LoginOrCreate(ctx context.Context, googleSub, email string) (User, bool, error) {
	if s == nil || s.Repo == nil {
		return User{}, false, errors.New("users service not configured")
	}
	if strings.TrimSpace(googleSub) == "" || strings.TrimSpace(email) == "" {
		return User{}, false, errors.New("subject and email are required")
	}
	return s.Repo.LoginOrCreate(ctx, googleSub, email)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}
