package tailoredresumes

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "tailored resume not found" }

// Repo persists tailored-resume artifacts. Reads are owner-scoped.
type Repo interface {
	Create(ctx context.Context, artifact Artifact) error
	GetByID(ctx context.Context, userID, artifactID string) (Artifact, error)
	ListByUser(ctx context.Context, userID string) ([]Artifact, error)
}
