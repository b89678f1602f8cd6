package tailoredresumes

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoOwnerScoping(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	a := Artifact{
		ID:         uuid.NewString(),
		UserID:     "user-a",
		FileName:   "backend_engineer.pdf",
		MimeType:   "application/pdf",
		StorageKey: "user-a/backend_engineer.pdf",
		SizeBytes:  1024,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, a))

	_, err := repo.GetByID(ctx, "user-b", a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := repo.GetByID(ctx, "user-a", a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.StorageKey, got.StorageKey)
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	older := Artifact{ID: uuid.NewString(), UserID: "user-a", FileName: "old.pdf", CreatedAt: now.Add(-time.Hour)}
	newer := Artifact{ID: uuid.NewString(), UserID: "user-a", FileName: "new.pdf", CreatedAt: now}
	other := Artifact{ID: uuid.NewString(), UserID: "user-b", FileName: "theirs.pdf", CreatedAt: now}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}
