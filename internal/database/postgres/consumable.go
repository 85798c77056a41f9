package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// ConsumableRepository implements catalog persistence for PostgreSQL
type ConsumableRepository struct {
	db *pgxpool.Pool
}

// NewConsumableRepository creates a new ConsumableRepository
func NewConsumableRepository(db *pgxpool.Pool) *ConsumableRepository {
	return &ConsumableRepository{db: db}
}

const consumableColumns = `consumable_id, name, display_name, category, rarity,
		       description, nutrition, vegan, vegetarian, gluten_free, created_at`

// scanConsumable scans one catalog row, unpacking the nutrition JSONB block
func scanConsumable(row pgx.Row) (*domain.Consumable, error) {
	var c domain.Consumable
	var nutrition []byte
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.DisplayName,
		&c.Category,
		&c.Rarity,
		&c.Description,
		&nutrition,
		&c.Vegan,
		&c.Vegetarian,
		&c.GlutenFree,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(nutrition) > 0 {
		if err := json.Unmarshal(nutrition, &c.Nutrition); err != nil {
			return nil, fmt.Errorf("failed to unmarshal nutrition: %w", err)
		}
	}

	return &c, nil
}

// GetByID retrieves a consumable by its UUID
func (r *ConsumableRepository) GetByID(ctx context.Context, id string) (*domain.Consumable, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrConsumableNotFound
	}

	query := `
		SELECT ` + consumableColumns + `
		FROM consumables
		WHERE consumable_id = $1
	`

	c, err := scanConsumable(r.db.QueryRow(ctx, query, cid))
	if err == pgx.ErrNoRows {
		return nil, domain.ErrConsumableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consumable: %w", err)
	}

	return c, nil
}

// GetByName retrieves a consumable by case-insensitive name
func (r *ConsumableRepository) GetByName(ctx context.Context, name string) (*domain.Consumable, error) {
	query := `
		SELECT ` + consumableColumns + `
		FROM consumables
		WHERE LOWER(name) = LOWER($1)
	`

	c, err := scanConsumable(r.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, domain.ErrConsumableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consumable by name: %w", err)
	}

	return c, nil
}

// Search finds consumables whose name or display name contains the query,
// optionally filtered by category, ordered by name for deterministic paging.
func (r *ConsumableRepository) Search(ctx context.Context, query, category string, limit int) ([]domain.Consumable, error) {
	stmt := `
		SELECT ` + consumableColumns + `
		FROM consumables
		WHERE (name ILIKE '%' || $1 || '%' OR display_name ILIKE '%' || $1 || '%')
	`
	args := []interface{}{query}

	if category != "" {
		stmt += ` AND category = $2`
		args = append(args, category)
	}

	stmt += fmt.Sprintf(` ORDER BY name ASC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search consumables: %w", err)
	}
	defer rows.Close()

	var results []domain.Consumable
	for rows.Next() {
		c, err := scanConsumable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan consumable: %w", err)
		}
		results = append(results, *c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return results, nil
}

// Upsert inserts or refreshes a catalog entry keyed by name. Used by the
// seed command; identity (consumable_id) is preserved across re-seeds.
func (r *ConsumableRepository) Upsert(ctx context.Context, c *domain.Consumable) error {
	nutrition, err := json.Marshal(c.Nutrition)
	if err != nil {
		return fmt.Errorf("failed to marshal nutrition: %w", err)
	}

	query := `
		INSERT INTO consumables (name, display_name, category, rarity, description,
		                         nutrition, vegan, vegetarian, gluten_free)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name)
		DO UPDATE SET
			display_name = EXCLUDED.display_name,
			category = EXCLUDED.category,
			rarity = EXCLUDED.rarity,
			description = EXCLUDED.description,
			nutrition = EXCLUDED.nutrition,
			vegan = EXCLUDED.vegan,
			vegetarian = EXCLUDED.vegetarian,
			gluten_free = EXCLUDED.gluten_free
	`

	_, err = r.db.Exec(ctx, query,
		c.Name,
		c.DisplayName,
		c.Category,
		c.Rarity,
		c.Description,
		nutrition,
		c.Vegan,
		c.Vegetarian,
		c.GlutenFree,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert consumable: %w", err)
	}

	return nil
}
