package tailoredresumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, artifact Artifact) error {
	const query = `
INSERT INTO tailored_resumes (id, user_id, file_name, mime_type, storage_key, size_bytes, job_link, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		artifact.ID,
		artifact.UserID,
		artifact.FileName,
		artifact.MimeType,
		artifact.StorageKey,
		artifact.SizeBytes,
		artifact.JobLink,
		artifact.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, artifactID string) (Artifact, error) {
	const query = `
SELECT id, user_id, file_name, mime_type, storage_key, size_bytes, job_link, created_at
FROM tailored_resumes
WHERE id = $1 AND user_id = $2
LIMIT 1`
	var a Artifact
	err := r.DB.QueryRowContext(ctx, query, artifactID, userID).Scan(
		&a.ID,
		&a.UserID,
		&a.FileName,
		&a.MimeType,
		&a.StorageKey,
		&a.SizeBytes,
		&a.JobLink,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artifact{}, ErrNotFound
		}
		return Artifact{}, err
	}
	return a, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Artifact, error) {
	const query = `
SELECT id, user_id, file_name, mime_type, storage_key, size_bytes, job_link, created_at
FROM tailored_resumes
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artifacts := make([]Artifact, 0)
	for rows.Next() {
		var a Artifact
		if err := rows.Scan(&a.ID, &a.UserID, &a.FileName, &a.MimeType, &a.StorageKey, &a.SizeBytes, &a.JobLink, &a.CreatedAt); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
