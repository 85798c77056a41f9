package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/database/postgres"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	User        *postgres.UserRepository
	Profile     *postgres.ProfileRepository
	Consumable  *postgres.ConsumableRepository
	Experiment  *postgres.ExperimentRepository
	Achievement *postgres.AchievementRepository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        postgres.NewUserRepository(dbPool),
		Profile:     postgres.NewProfileRepository(dbPool),
		Consumable:  postgres.NewConsumableRepository(dbPool),
		Experiment:  postgres.NewExperimentRepository(dbPool),
		Achievement: postgres.NewAchievementRepository(dbPool),
	}
}
