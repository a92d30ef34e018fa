package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"redditstage/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// ListUsers returns all registry records ordered case-insensitively by
// display name, the same ordering the CSV-era tool kept on disk.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}

	query := `SELECT username, name FROM users ORDER BY LOWER(name)`

	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// UserMap returns the username -> display name snapshot the catalog
// resolves owner tokens against.
func (r *userRepository) UserMap(ctx context.Context) (map[string]string, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	userMap := make(map[string]string, len(users))
	for _, user := range users {
		userMap[user.Username] = user.Name
	}

	return userMap, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	err := r.db.GetContext(ctx, &exists, query, user.Username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}

	if exists {
		return fmt.Errorf("%w: %s", ErrDuplicateUsername, user.Username)
	}

	insert := `INSERT INTO users (username, name) VALUES (:username, :name)`

	_, err = r.db.NamedExecContext(ctx, insert, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}
