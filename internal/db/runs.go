package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/admissions-parser/internal/types"
)

// CreateRun creates a new parse run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, source string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO parse_runs (source, status)
		 VALUES ($1, 'running')
		 RETURNING id`,
		source,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a parse run as completed
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE parse_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveResult stores the full parse result for a run: one row per field
// update, one row per metric, and the misc list as a JSON artifact.
func (db *DB) SaveResult(ctx context.Context, runID uuid.UUID, data *types.ParsedApplicationData) error {
	for _, field := range types.AllFields() {
		value, ok := data.Updates[field]
		if !ok {
			continue
		}
		_, err := db.pool.Exec(ctx,
			`INSERT INTO run_updates (run_id, field, value)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (run_id, field) DO UPDATE SET value = $3`,
			runID, string(field), value,
		)
		if err != nil {
			return fmt.Errorf("failed to save update %s: %w", field, err)
		}
	}

	for i, m := range data.Metrics {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO run_metrics (run_id, position, field, label, raw_value, mapped_value, reason, misc_entry)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			runID, i, string(m.Field), m.Label, m.RawValue, m.MappedValue, m.Reason, m.MiscEntry,
		)
		if err != nil {
			return fmt.Errorf("failed to save metric %d: %w", i, err)
		}
	}

	miscJSON, err := json.Marshal(data.Misc)
	if err != nil {
		return fmt.Errorf("failed to marshal misc notes: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`UPDATE parse_runs SET misc = $1 WHERE id = $2`,
		miscJSON, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to save misc notes: %w", err)
	}

	return nil
}
