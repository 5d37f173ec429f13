package main

import (
	"context"
	"log"

	"govmaf/adapters/memory"
	"govmaf/adapters/postgres"
	"govmaf/internal"
	"govmaf/internal/config"
	"govmaf/ports"
	"govmaf/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase connects to PostgreSQL and ensures the run schema exists.
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		return nil, err
	}
	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	// Run storage: Postgres when configured, in-memory otherwise
	var repo ports.RunRepository
	if appConfig.Database.URL != "" {
		db, err := initDatabase(appConfig)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		repo = postgres.NewRunRepository(db)
		logger.Info("using Postgres run repository")
	} else {
		repo = memory.NewRunRepository()
		logger.Info("no DATABASE_URL configured, using in-memory run repository")
	}

	server := ui.NewServer(repo, appConfig.Scoring, logger)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
