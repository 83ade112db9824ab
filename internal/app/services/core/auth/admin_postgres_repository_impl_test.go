package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"
	"valivio-service/internal/pkg/queries"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockedAdminRepository(t *testing.T) (*adminPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &adminPostgresRepository{DB: db, Log: zap.NewNop()}, mock
}

var adminColumns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

func TestAdminRepositoryFindByEmail(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockedAdminRepository(t)
		mock.ExpectQuery(queries.GetAdminByEmail).
			WithArgs("admin@valivio.pl").
			WillReturnRows(sqlmock.NewRows(adminColumns).AddRow(int64(1), "admin@valivio.pl", "hash", now, now))

		admin, err := repo.FindByEmail(context.Background(), "admin@valivio.pl")

		require.NoError(t, err)
		require.NotNil(t, admin)
		assert.Equal(t, int64(1), admin.ID)
		assert.Equal(t, "hash", admin.PasswordHash)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockedAdminRepository(t)
		mock.ExpectQuery(queries.GetAdminByEmail).WithArgs("nobody@valivio.pl").WillReturnError(sql.ErrNoRows)

		admin, err := repo.FindByEmail(context.Background(), "nobody@valivio.pl")

		require.NoError(t, err)
		assert.Nil(t, admin)
	})
}

func TestAdminRepositoryUpsert(t *testing.T) {
	repo, mock := newMockedAdminRepository(t)
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(queries.UpsertAdmin).
		WithArgs("admin@valivio.pl", "new-hash").
		WillReturnRows(sqlmock.NewRows(adminColumns).AddRow(int64(1), "admin@valivio.pl", "new-hash", now, now))

	admin, err := repo.Upsert(context.Background(), "admin@valivio.pl", "new-hash")

	require.NoError(t, err)
	assert.Equal(t, "new-hash", admin.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}
