package resumes

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedResume(t *testing.T, repo *MemoryRepo, userID, role string) Resume {
	t.Helper()
	now := time.Now().UTC()
	r := Resume{
		ID:           uuid.NewString(),
		UserID:       userID,
		TargetRole:   role,
		Content:      map[string]any{"summary": "text"},
		DateUploaded: now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func TestMemoryRepoOwnershipScoping(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	mine := seedResume(t, repo, "user-a", "Backend")

	_, err := repo.GetByID(ctx, "user-b", mine.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := repo.GetByID(ctx, "user-a", mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.TargetRole, got.TargetRole)
}

func TestMemoryRepoSoftDeleteHidesEverywhere(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	r := seedResume(t, repo, "user-a", "Backend")

	require.NoError(t, repo.SoftDelete(ctx, "user-a", r.ID))

	_, err := repo.GetByID(ctx, "user-a", r.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := repo.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	assert.Empty(t, list)

	// Deleting again is indistinguishable from never existing.
	assert.ErrorIs(t, repo.SoftDelete(ctx, "user-a", r.ID), ErrNotFound)
	_, err = repo.Update(ctx, "user-a", r.ID, Update{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoListOrdering(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	older := seedResume(t, repo, "user-a", "First")
	time.Sleep(2 * time.Millisecond)
	newer := seedResume(t, repo, "user-a", "Second")

	list, err := repo.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestMemoryRepoPartialUpdate(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	r := seedResume(t, repo, "user-a", "Backend")

	role := "Platform"
	updated, err := repo.Update(ctx, "user-a", r.ID, Update{TargetRole: &role})
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated.TargetRole)
	assert.Equal(t, r.Content, updated.Content)
	assert.True(t, updated.UpdatedAt.After(r.UpdatedAt) || updated.UpdatedAt.Equal(r.UpdatedAt))
	assert.Equal(t, r.DateUploaded, updated.DateUploaded)

	updated2, err := repo.Update(ctx, "user-a", r.ID, Update{Content: map[string]any{"summary": "new"}})
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated2.TargetRole)
	assert.Equal(t, map[string]any{"summary": "new"}, updated2.Content)
}
