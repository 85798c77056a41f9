package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/achievement"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/bootstrap"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/database"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/database/postgres"
)

const (
	migrationsDir = "migrations"

	seedPoolMaxConns = 5
	seedPoolIdleTime = 1 * time.Minute
	seedPoolLifetime = 5 * time.Minute
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	ctx := context.Background()

	// 1. Connect to default 'postgres' database to create the new database
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}
	defer conn.Close(ctx)

	// 2. Check if database exists
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", dbname)
		_, err = conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbname))
		if err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", dbname)
	}

	// Close connection to postgres db
	conn.Close(ctx)

	// 3. Run migrations against the new database
	targetConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	fmt.Println("Running migrations...")
	if err := runMigrations(targetConnString); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully.")

	// 4. Seed the consumable catalog and achievement definitions
	pool, err := database.NewPool(targetConnString, seedPoolMaxConns, seedPoolIdleTime, seedPoolLifetime)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	fmt.Println("Seeding consumable catalog...")
	if err := bootstrap.SyncCatalog(ctx, postgres.NewConsumableRepository(pool)); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	fmt.Println("Seeding achievement definitions...")
	achievementService := achievement.NewService(postgres.NewAchievementRepository(pool), nil)
	if err := bootstrap.SeedAchievements(ctx, achievementService); err != nil {
		log.Fatalf("Failed to seed achievements: %v", err)
	}

	fmt.Println("Setup completed successfully.")
}

// runMigrations applies all pending goose migrations. The stdlib driver is
// used because goose works against database/sql.
func runMigrations(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
