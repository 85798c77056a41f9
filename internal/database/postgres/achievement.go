package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// AchievementRepository implements achievement persistence for PostgreSQL
type AchievementRepository struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// Unlock records an achievement for a user. Returns true only on the first
// unlock; repeat unlocks are no-ops thanks to ON CONFLICT DO NOTHING.
func (r *AchievementRepository) Unlock(ctx context.Context, userID, achievementKey string) (bool, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return false, domain.ErrUserNotFound
	}

	query := `
		INSERT INTO user_achievements (user_id, achievement_key)
		VALUES ($1, $2)
		ON CONFLICT (user_id, achievement_key) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query, uid, achievementKey)
	if err != nil {
		return false, fmt.Errorf("failed to unlock achievement: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// ListByUser returns a user's unlocked achievements with their definitions,
// in unlock order.
func (r *AchievementRepository) ListByUser(ctx context.Context, userID string) ([]domain.UnlockedAchievement, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	query := `
		SELECT a.achievement_key, a.title, a.description, a.rarity, a.sort_order, ua.unlocked_at
		FROM user_achievements ua
		JOIN achievements a ON a.achievement_key = ua.achievement_key
		WHERE ua.user_id = $1
		ORDER BY ua.unlocked_at ASC, a.sort_order ASC
	`

	rows, err := r.db.Query(ctx, query, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to query user achievements: %w", err)
	}
	defer rows.Close()

	var unlocked []domain.UnlockedAchievement
	for rows.Next() {
		var ua domain.UnlockedAchievement
		err := rows.Scan(
			&ua.Key,
			&ua.Title,
			&ua.Description,
			&ua.Rarity,
			&ua.SortOrder,
			&ua.UnlockedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user achievement: %w", err)
		}
		unlocked = append(unlocked, ua)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return unlocked, nil
}

// UpsertDefinition seeds or refreshes an achievement definition
func (r *AchievementRepository) UpsertDefinition(ctx context.Context, a domain.Achievement) error {
	query := `
		INSERT INTO achievements (achievement_key, title, description, rarity, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (achievement_key)
		DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			rarity = EXCLUDED.rarity,
			sort_order = EXCLUDED.sort_order
	`

	_, err := r.db.Exec(ctx, query, a.Key, a.Title, a.Description, a.Rarity, a.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to upsert achievement: %w", err)
	}

	return nil
}
