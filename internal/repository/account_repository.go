package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"redditstage/internal/models"
)

type accountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) ListUsernames(ctx context.Context) ([]string, error) {
	usernames := []string{}

	query := `SELECT username FROM accounts ORDER BY username`

	err := r.db.SelectContext(ctx, &usernames, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return usernames, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account models.Account

	query := `SELECT username, client_id, client_secret, password, user_agent, subreddit FROM accounts WHERE username = $1`

	err := r.db.GetContext(ctx, &account, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, username)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}
