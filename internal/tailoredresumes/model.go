package tailoredresumes

import "time"

// Artifact is a generated tailored-resume PDF. The bytes live in the object
// store under StorageKey; this record carries the metadata.
type Artifact struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	FileName   string    `json:"filename"`
	MimeType   string    `json:"-"`
	StorageKey string    `json:"-"`
	SizeBytes  int64     `json:"-"`
	JobLink    string    `json:"jobLink"`
	CreatedAt  time.Time `json:"createdAt"`
}
