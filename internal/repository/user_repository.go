package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/school-erp/school-erp-api/internal/models"
)

// UserRepository manages persistence for user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsernameAndRole fetches the account matching both username and role.
// Login keys on the pair, so one username may exist once per role.
func (r *UserRepository) FindByUsernameAndRole(ctx context.Context, username string, role models.Role) (*models.User, error) {
	const query = `SELECT id, username, password, role FROM users WHERE username = $1 AND role = $2`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username, role); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new account. The users.username unique constraint rejects
// duplicates; callers decide how to surface that.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.GetContext(ctx, &user.ID, query, user.Username, user.PasswordHash, user.Role); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
