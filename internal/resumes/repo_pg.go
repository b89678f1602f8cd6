package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func marshalContent(content map[string]any) ([]byte, error) {
	if content == nil {
		content = map[string]any{}
	}
	return json.Marshal(content)
}

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, target_role, content, date_uploaded, updated_at, is_deleted)
VALUES ($1, $2, $3, $4, $5, $6, FALSE)`
	payload, err := marshalContent(resume.Content)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.TargetRole,
		payload,
		resume.DateUploaded,
		resume.UpdatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, target_role, content, date_uploaded, updated_at
FROM resumes
WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE
LIMIT 1`
	var resume Resume
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, resumeID, userID).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.TargetRole,
		&payload,
		&resume.DateUploaded,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &resume.Content); err != nil {
			return Resume{}, err
		}
	}
	return resume, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Summary, error) {
	const query = `
SELECT id, target_role, date_uploaded, updated_at
FROM resumes
WHERE user_id = $1 AND is_deleted = FALSE
ORDER BY updated_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.TargetRole, &s.DateUploaded, &s.UpdatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Update applies the provided fields and refreshes updated_at. COALESCE keeps
// columns untouched when the corresponding argument is NULL.
func (r *PGRepo) Update(ctx context.Context, userID, resumeID string, upd Update) (Resume, error) {
	const query = `
UPDATE resumes
SET target_role = COALESCE($3, target_role),
    content = COALESCE($4, content),
    updated_at = $5
WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE
RETURNING id, user_id, target_role, content, date_uploaded, updated_at`

	var contentArg any
	if upd.Content != nil {
		payload, err := marshalContent(upd.Content)
		if err != nil {
			return Resume{}, err
		}
		contentArg = payload
	}
	var roleArg any
	if upd.TargetRole != nil {
		roleArg = *upd.TargetRole
	}

	var resume Resume
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, resumeID, userID, roleArg, contentArg, time.Now().UTC()).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.TargetRole,
		&payload,
		&resume.DateUploaded,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &resume.Content); err != nil {
			return Resume{}, err
		}
	}
	return resume, nil
}

func (r *PGRepo) SoftDelete(ctx context.Context, userID, resumeID string) error {
	const query = `
UPDATE resumes
SET is_deleted = TRUE, updated_at = $3
WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE`
	res, err := r.DB.ExecContext(ctx, query, resumeID, userID, time.Now().UTC())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
