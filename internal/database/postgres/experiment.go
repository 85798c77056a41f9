package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// ExperimentRepository implements experiment persistence for PostgreSQL
type ExperimentRepository struct {
	db *pgxpool.Pool
}

// NewExperimentRepository creates a new ExperimentRepository
func NewExperimentRepository(db *pgxpool.Pool) *ExperimentRepository {
	return &ExperimentRepository{db: db}
}

// Insert stores an experiment and bumps the owner's profile counters in one
// transaction, so experiment history and profile stats never drift apart.
func (r *ExperimentRepository) Insert(ctx context.Context, exp *domain.Experiment) error {
	uid, err := parseUserUUID(exp.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	consumables, err := json.Marshal(exp.Consumables)
	if err != nil {
		return fmt.Errorf("failed to marshal consumables: %w", err)
	}
	results, err := json.Marshal(exp.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO experiments (experiment_id, user_id, consumables, results, success, xp_awarded, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err = tx.QueryRow(ctx, query,
		exp.ID,
		uid,
		consumables,
		results,
		exp.Success,
		exp.XPAwarded,
		exp.Notes,
	).Scan(&exp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert experiment: %w", err)
	}

	counterQuery := `
		UPDATE profiles
		SET experiments_run = experiments_run + 1,
		    successful_experiments = successful_experiments + CASE WHEN $2 THEN 1 ELSE 0 END,
		    updated_at = NOW()
		WHERE user_id = $1
	`

	if _, err = tx.Exec(ctx, counterQuery, uid, exp.Success); err != nil {
		return fmt.Errorf("failed to update profile counters: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListByUser returns a user's experiments, newest first
func (r *ExperimentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Experiment, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	query := `
		SELECT experiment_id, user_id, consumables, results, success, xp_awarded, notes, created_at
		FROM experiments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query experiments: %w", err)
	}
	defer rows.Close()

	var experiments []domain.Experiment
	for rows.Next() {
		var exp domain.Experiment
		var consumables, results []byte
		err := rows.Scan(
			&exp.ID,
			&exp.UserID,
			&consumables,
			&results,
			&exp.Success,
			&exp.XPAwarded,
			&exp.Notes,
			&exp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experiment: %w", err)
		}

		if err := json.Unmarshal(consumables, &exp.Consumables); err != nil {
			return nil, fmt.Errorf("failed to unmarshal consumables: %w", err)
		}
		if err := json.Unmarshal(results, &exp.Results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal results: %w", err)
		}

		experiments = append(experiments, exp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return experiments, nil
}

// CountByUser returns how many experiments a user has run
func (r *ExperimentRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return 0, domain.ErrUserNotFound
	}

	query := `
		SELECT COUNT(*)
		FROM experiments
		WHERE user_id = $1
	`

	var count int
	if err := r.db.QueryRow(ctx, query, uid).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count experiments: %w", err)
	}

	return count, nil
}
