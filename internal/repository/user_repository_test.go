package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digiraksha/internal/apperr"
	"digiraksha/internal/models"
)

var userColumns = []string{
	"id", "first_name", "middle_name", "last_name", "city", "phone_number",
	"gov_id_type", "gov_id_number", "password_hash", "photo_url", "created_at", "updated_at",
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("generates id and timestamp", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		user := &models.User{
			FirstName:    "Asha",
			LastName:     "Rao",
			City:         "Pune",
			PhoneNumber:  "9999999999",
			GovIDType:    "Aadhaar",
			GovIDNumber:  "1234-5678",
			PasswordHash: "hash",
		}

		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(sqlmock.AnyArg(), "Asha", nil, "Rao", "Pune", "9999999999",
				"Aadhaar", "1234-5678", "hash", nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(ctx, user))
		assert.NotEmpty(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate gov id is a conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`INSERT INTO users`).WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, &models.User{GovIDNumber: "1234-5678"})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindConflict))
		assert.Equal(t, duplicateGovIDMessage, apperr.PublicMessage(err))
	})

	t.Run("other failures are upstream", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("connection reset"))

		err := repo.Create(ctx, &models.User{GovIDNumber: "1"})
		assert.True(t, apperr.Is(err, apperr.KindUpstream))
	})
}

func TestUserRepository_GetByGovID(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		rows := sqlmock.NewRows(userColumns).
			AddRow("u-1", "Asha", nil, "Rao", "Pune", "999", "Aadhaar", "1234", "hash", "http://x/p.jpg", now, nil)
		mock.ExpectQuery(`SELECT \* FROM users WHERE gov_id_number = \$1`).
			WithArgs("1234").
			WillReturnRows(rows)

		user, err := repo.GetByGovID(ctx, "1234")
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "hash", user.PasswordHash)
		require.NotNil(t, user.PhotoURL)
		assert.Equal(t, "http://x/p.jpg", *user.PhotoURL)
		assert.Nil(t, user.MiddleName)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT \* FROM users WHERE gov_id_number`).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByGovID(ctx, "nope")
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func TestUserRepository_ExistsByGovID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("1234").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByGovID(context.Background(), "1234")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE users SET photo_url`).
			WithArgs("http://x/p.jpg", sqlmock.AnyArg(), "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePhoto(ctx, "u-1", "http://x/p.jpg"))
	})

	t.Run("no such user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE users SET photo_url`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePhoto(ctx, "u-404", "http://x/p.jpg")
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func TestUserRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM users ORDER BY created_at DESC OFFSET \$1 LIMIT \$2`).
		WithArgs(0, 100).
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.List(context.Background(), Page{Limit: 1000})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}
