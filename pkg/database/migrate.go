package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// EnsureUsersRoleColumn adds the users.role column when it is missing.
// Older deployments were created before roles existed; the probe keeps the
// migration idempotent. Failures are reported but intended to be non-fatal.
func EnsureUsersRoleColumn(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	const probe = `SELECT column_name FROM information_schema.columns
        WHERE table_name = 'users' AND column_name = 'role'`

	var column string
	err := db.GetContext(ctx, &column, probe)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("probe users.role column: %w", err)
	}

	logger.Info("users.role column missing, adding it")
	const alter = `ALTER TABLE users ADD COLUMN IF NOT EXISTS role VARCHAR(20) NOT NULL DEFAULT 'teacher'`
	if _, err := db.ExecContext(ctx, alter); err != nil {
		return fmt.Errorf("add users.role column: %w", err)
	}

	logger.Info("added role column to users table")
	return nil
}
