package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digiraksha/internal/apperr"
	"digiraksha/internal/models"
)

var missingColumns = []string{
	"id", "user_id", "name", "age", "last_seen_location", "description",
	"reporter_contact", "photo_url", "status", "created_at", "updated_at",
}

func TestMissingPersonRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMissingPersonRepository(db)

	person := &models.MissingPerson{
		UserID:           "u-1",
		Name:             "Ana",
		Age:              7,
		LastSeenLocation: "Market",
		Description:      "Red shirt",
		ReporterContact:  "999",
		Status:           models.MissingPersonMissing,
	}

	mock.ExpectExec(`INSERT INTO missing_persons`).
		WithArgs(sqlmock.AnyArg(), "u-1", "Ana", 7, "Market", "Red shirt", "999", nil, "missing", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), person))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingPersonRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMissingPersonRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM missing_persons ORDER BY created_at DESC OFFSET $1 LIMIT $2`)).
			WithArgs(0, 100).
			WillReturnRows(sqlmock.NewRows(missingColumns))

		persons, err := repo.List(ctx, MissingPersonFilter{})
		require.NoError(t, err)
		assert.Empty(t, persons)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search is a case-insensitive substring", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMissingPersonRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM missing_persons WHERE name ILIKE $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`)).
			WithArgs("%Ana%", 0, 100).
			WillReturnRows(sqlmock.NewRows(missingColumns).
				AddRow("m-1", "u-1", "Anamika", 30, "Bus stand", "", "999", nil, "missing", time.Now(), nil))

		persons, err := repo.List(ctx, MissingPersonFilter{Search: "Ana"})
		require.NoError(t, err)
		require.Len(t, persons, 1)
		assert.Equal(t, "Anamika", persons[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search and status combine", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMissingPersonRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE name ILIKE $1 AND status = $2 ORDER BY created_at DESC OFFSET $3 LIMIT $4`)).
			WithArgs("%Ana%", "found", 5, 10).
			WillReturnRows(sqlmock.NewRows(missingColumns))

		_, err := repo.List(ctx, MissingPersonFilter{
			Search: "Ana",
			Status: models.MissingPersonFound,
			Page:   Page{Skip: 5, Limit: 10},
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMissingPersonRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMissingPersonRepository(db)

	mock.ExpectExec(`UPDATE missing_persons SET status`).
		WithArgs("found", sqlmock.AnyArg(), "m-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "m-404", models.MissingPersonFound)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
