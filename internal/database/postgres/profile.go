package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// ProfileRepository implements profile persistence for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile retrieves a user's profile joined with its username
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	query := `
		SELECT p.user_id, u.username, p.total_xp, p.level,
		       p.experiments_run, p.successful_experiments, p.updated_at
		FROM profiles p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.user_id = $1
	`

	var profile domain.Profile
	err = r.db.QueryRow(ctx, query, uid).Scan(
		&profile.UserID,
		&profile.Username,
		&profile.TotalXP,
		&profile.Level,
		&profile.ExperimentsRun,
		&profile.SuccessfulExperiments,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// AddXP atomically adds XP to a profile and returns the new total.
// Returns domain.ErrUserNotFound when no profile row exists.
func (r *ProfileRepository) AddXP(ctx context.Context, userID string, amount int) (int, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return 0, domain.ErrUserNotFound
	}

	query := `
		UPDATE profiles
		SET total_xp = total_xp + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING total_xp
	`

	var totalXP int
	err = r.db.QueryRow(ctx, query, uid, amount).Scan(&totalXP)

	if err == pgx.ErrNoRows {
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add xp: %w", err)
	}

	return totalXP, nil
}

// SetLevel raises a profile's stored level. Levels never decrease, so the
// update is guarded to stay monotonic under concurrent awards.
func (r *ProfileRepository) SetLevel(ctx context.Context, userID string, level int) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	query := `
		UPDATE profiles
		SET level = $2, updated_at = NOW()
		WHERE user_id = $1 AND level < $2
	`

	if _, err := r.db.Exec(ctx, query, uid, level); err != nil {
		return fmt.Errorf("failed to set level: %w", err)
	}

	return nil
}

// Leaderboard returns the top profiles ordered by total XP. Ties rank the
// earlier-updated profile first.
func (r *ProfileRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT p.user_id, u.username, p.total_xp, p.level
		FROM profiles p
		JOIN users u ON u.user_id = p.user_id
		ORDER BY p.total_xp DESC, p.updated_at ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	rank := 0
	for rows.Next() {
		rank++
		entry := domain.LeaderboardEntry{Rank: rank}
		err := rows.Scan(
			&entry.UserID,
			&entry.Username,
			&entry.TotalXP,
			&entry.Level,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}
