package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

const eventTableDDL = `
	CREATE TABLE IF NOT EXISTS interaction_events (
		id         BIGSERIAL PRIMARY KEY,
		user_id    TEXT NOT NULL,
		project_id TEXT NOT NULL,
		action     TEXT NOT NULL,
		weight     DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_interaction_events_user
		ON interaction_events (user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_interaction_events_project
		ON interaction_events (project_id);
`

// EnsureSchema creates the interaction event log table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, eventTableDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
