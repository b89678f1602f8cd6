package resumes

import "time"

// Resume is an owner-scoped structured resume document. Content is free-form
// JSON supplied by the client; the server never interprets it beyond storage.
type Resume struct {
	ID           string         `json:"id"`
	UserID       string         `json:"-"`
	TargetRole   string         `json:"target_role"`
	Content      map[string]any `json:"content"`
	DateUploaded time.Time      `json:"date_uploaded"`
	UpdatedAt    time.Time      `json:"updated_at"`
	IsDeleted    bool           `json:"-"`
}

// Summary is the list-view projection of a resume.
type Summary struct {
	ID           string    `json:"id"`
	TargetRole   string    `json:"target_role"`
	DateUploaded time.Time `json:"date_uploaded"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r Resume) Summary() Summary {
	return Summary{
		ID:           r.ID,
		TargetRole:   r.TargetRole,
		DateUploaded: r.DateUploaded,
		UpdatedAt:    r.UpdatedAt,
	}
}
