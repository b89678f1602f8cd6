package resumes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput flags requests rejected before hitting storage.
var ErrInvalidInput = errInvalidInput{}

type errInvalidInput struct{}

func (errInvalidInput) Error() string { return "invalid input" }

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(ctx context.Context, userID, targetRole string, content map[string]any) (Resume, error) {
	if s == nil || s.Repo == nil {
		return Resume{}, errors.New("resumes service not configured")
	}
	if strings.TrimSpace(targetRole) == "" {
		return Resume{}, ErrInvalidInput
	}
	if content == nil {
		content = map[string]any{}
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:           uuid.NewString(),
		UserID:       userID,
		TargetRole:   targetRole,
		Content:      content,
		DateUploaded: now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

func (s *Service) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	return s.Repo.GetByID(ctx, userID, resumeID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Summary, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Update applies a partial update. A request touching no fields still
// refreshes updated_at, matching the storage semantics.
func (s *Service) Update(ctx context.Context, userID, resumeID string, upd Update) (Resume, error) {
	if upd.TargetRole != nil && strings.TrimSpace(*upd.TargetRole) == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.Update(ctx, userID, resumeID, upd)
}

func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	return s.Repo.SoftDelete(ctx, userID, resumeID)
}
