package users

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGRepoLoginOrCreateNewUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "google_sub", "email", "created_at", "last_login_at", "is_new"}).
		AddRow("11111111-1111-1111-1111-111111111111", "sub-1", "a@example.com", now, now, true)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "sub-1", "a@example.com", sqlmock.AnyArg()).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	user, isNew, err := repo.LoginOrCreate(context.Background(), "sub-1", "a@example.com")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", user.ID)
	assert.Equal(t, "a@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoLoginOrCreateReturningUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Now().UTC().Add(-48 * time.Hour)
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "google_sub", "email", "created_at", "last_login_at", "is_new"}).
		AddRow("11111111-1111-1111-1111-111111111111", "sub-1", "a@example.com", created, now, false)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "sub-1", "a@example.com", sqlmock.AnyArg()).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	user, isNew, err := repo.LoginOrCreate(context.Background(), "sub-1", "a@example.com")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, google_sub, email").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "google_sub", "email", "created_at", "last_login_at"}))

	repo := &PGRepo{DB: db}
	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
