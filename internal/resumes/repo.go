package resumes

import "context"

// ErrNotFound covers absent, deleted, and foreign-owned resumes alike so
// callers cannot probe other users' documents.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "resume not found" }

// Update carries the fields of a partial update. Nil means "leave unchanged".
type Update struct {
	TargetRole *string
	Content    map[string]any
}

// Repo persists resumes. Every read and write is scoped to the owner and
// excludes soft-deleted rows.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Summary, error)
	Update(ctx context.Context, userID, resumeID string, upd Update) (Resume, error)
	SoftDelete(ctx context.Context, userID, resumeID string) error
}
