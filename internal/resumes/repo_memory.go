package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo for development and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]*Resume
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]*Resume)}
}

func cloneContent(content map[string]any) map[string]any {
	if content == nil {
		return nil
	}
	out := make(map[string]any, len(content))
	for k, v := range content {
		out[k] = v
	}
	return out
}

func cloneResume(r *Resume) Resume {
	out := *r
	out.Content = cloneContent(r.Content)
	return out
}

// visible reports whether the resume exists for this owner. Deleted and
// foreign-owned rows are indistinguishable from absent ones.
func (m *MemoryRepo) visible(userID, resumeID string) (*Resume, bool) {
	r, ok := m.items[resumeID]
	if !ok || r.IsDeleted || r.UserID != userID {
		return nil, false
	}
	return r, true
}

func (m *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := cloneResume(&resume)
	m.items[resume.ID] = &stored
	return nil
}

func (m *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.visible(userID, resumeID)
	if !ok {
		return Resume{}, ErrNotFound
	}
	return cloneResume(r), nil
}

func (m *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]Summary, 0)
	for _, r := range m.items {
		if r.UserID != userID || r.IsDeleted {
			continue
		}
		summaries = append(summaries, r.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}

func (m *MemoryRepo) Update(ctx context.Context, userID, resumeID string, upd Update) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.visible(userID, resumeID)
	if !ok {
		return Resume{}, ErrNotFound
	}
	if upd.TargetRole != nil {
		r.TargetRole = *upd.TargetRole
	}
	if upd.Content != nil {
		r.Content = cloneContent(upd.Content)
	}
	r.UpdatedAt = time.Now().UTC()
	return cloneResume(r), nil
}

func (m *MemoryRepo) SoftDelete(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.visible(userID, resumeID)
	if !ok {
		return ErrNotFound
	}
	r.IsDeleted = true
	r.UpdatedAt = time.Now().UTC()
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
