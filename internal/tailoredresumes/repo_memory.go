package tailoredresumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for development and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Artifact
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Artifact)}
}

func (m *MemoryRepo) Create(ctx context.Context, artifact Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[artifact.ID] = artifact
	return nil
}

func (m *MemoryRepo) GetByID(ctx context.Context, userID, artifactID string) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.items[artifactID]
	if !ok || a.UserID != userID {
		return Artifact{}, ErrNotFound
	}
	return a, nil
}

func (m *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	artifacts := make([]Artifact, 0)
	for _, a := range m.items {
		if a.UserID == userID {
			artifacts = append(artifacts, a)
		}
	}
	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].CreatedAt.After(artifacts[j].CreatedAt)
	})
	return artifacts, nil
}

var _ Repo = (*MemoryRepo)(nil)
