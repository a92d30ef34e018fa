package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"redditstage/internal/models"
)

func TestAccountRepository_ListUsernames(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewAccountRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"username"}).
		AddRow("poster_one").
		AddRow("poster_two")

	mock.ExpectQuery(`SELECT username FROM accounts ORDER BY username`).
		WillReturnRows(rows)

	usernames, err := repo.ListUsernames(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"poster_one", "poster_two"}, usernames)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByUsername(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewAccountRepository(sqlxDB)

	ctx := context.Background()

	query := `SELECT username, client_id, client_secret, password, user_agent, subreddit FROM accounts WHERE username = $1`

	t.Run("returns the full credential record", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"username", "client_id", "client_secret", "password", "user_agent", "subreddit"}).
			AddRow("poster_one", "cid", "secret", "pass", "redditstage/1.0", "pics")

		mock.ExpectQuery(query).WithArgs("poster_one").WillReturnRows(rows)

		account, err := repo.GetByUsername(ctx, "poster_one")

		assert.NoError(t, err)
		assert.Equal(t, &models.Account{
			Username:     "poster_one",
			ClientID:     "cid",
			ClientSecret: "secret",
			Password:     "pass",
			UserAgent:    "redditstage/1.0",
			Subreddit:    "pics",
		}, account)
	})

	t.Run("unknown account", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"username"}))

		account, err := repo.GetByUsername(ctx, "ghost")

		assert.Nil(t, account)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}
