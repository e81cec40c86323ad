package postgresql

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates missing tables and indexes and seeds the built-in roles.
// Every statement is idempotent, so it is safe to run on each start.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	err := WithTransaction(ctx, db, func(tx pgx.Tx) error {
		// Serialize concurrent starts
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(727001)"); err != nil {
			return fmt.Errorf("failed to acquire schema lock: %w", err)
		}
		if _, err := tx.Exec(ctx, schemaSQL); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Database schema is up to date")
	return nil
}
