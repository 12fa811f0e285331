package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prajwalpc099d/ProjectVault/internal/interactions/domain"
)

// EventRepository handles PostgreSQL operations for the interaction event log.
type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Insert appends an interaction event.
func (r *EventRepository) Insert(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO interaction_events (user_id, project_id, action, weight)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		event.UserID,
		event.ProjectID,
		event.Action,
		event.Weight,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert interaction event: %w", err)
	}

	return nil
}

// ListByUser returns a user's most recent events.
func (r *EventRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Event, error) {
	query := `
		SELECT id, user_id, project_id, action, weight, created_at
		FROM interaction_events
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list events for %s: %w", userID, err)
	}
	defer rows.Close()

	out := make([]domain.Event, 0, limit)
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProjectID, &e.Action, &e.Weight, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ProjectEngagement sums event weights per project, highest first. Feeds the
// admin dashboard's most-engaged listing.
func (r *EventRepository) ProjectEngagement(ctx context.Context, limit int) (map[string]float64, error) {
	query := `
		SELECT project_id, SUM(weight) AS total
		FROM interaction_events
		GROUP BY project_id
		ORDER BY total DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("project engagement: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64, limit)
	for rows.Next() {
		var projectID string
		var total float64
		if err := rows.Scan(&projectID, &total); err != nil {
			return nil, err
		}
		out[projectID] = total
	}
	return out, rows.Err()
}
