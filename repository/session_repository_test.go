// file: repository/session_repository_test.go

package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

const upsertSessionQuery = `INSERT INTO sessions (user_id, refresh_token, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET refresh_token = EXCLUDED.refresh_token, updated_at = NOW()`

func TestSessionRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepository(db)

	// First write inserts, second overwrites; both go through the same upsert.
	mock.ExpectExec(regexp.QuoteMeta(upsertSessionQuery)).
		WithArgs(1, "token-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(upsertSessionQuery)).
		WithArgs(1, "token-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Upsert(1, "token-1"))
	assert.NoError(t, repo.Upsert(1, "token-2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepository(db)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "refresh_token", "updated_at"}).
			AddRow(1, "token-1", time.Now())
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, refresh_token, updated_at FROM sessions WHERE user_id = $1`)).
			WithArgs(1).
			WillReturnRows(rows)

		record, err := repo.GetByUserID(1)
		assert.NoError(t, err)
		assert.Equal(t, "token-1", record.RefreshToken)
	})

	t.Run("no session", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, refresh_token, updated_at FROM sessions WHERE user_id = $1`)).
			WithArgs(2).
			WillReturnError(sql.ErrNoRows)

		record, err := repo.GetByUserID(2)
		assert.Nil(t, record)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteByToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sessions WHERE refresh_token = $1`)).
		WithArgs("token-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteByToken("token-1"))

	// Deleting a token that matches nothing is still a success.
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sessions WHERE refresh_token = $1`)).
		WithArgs("unknown").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteByToken("unknown"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
