package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"redditstage/internal/models"
)

// ErrDuplicateUsername is returned by CreateUser when the handle is
// already registered.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrAccountNotFound is returned when no credential record exists for
// the requested account.
var ErrAccountNotFound = errors.New("account not found")

type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	UserMap(ctx context.Context) (map[string]string, error)
	CreateUser(ctx context.Context, user *models.User) error
}

type AccountRepository interface {
	ListUsernames(ctx context.Context) ([]string, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}

type Repository struct {
	User    UserRepository
	Account AccountRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Account: NewAccountRepository(db),
	}
}
