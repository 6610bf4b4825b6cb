package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"rushd/adapters/postgres"
	"rushd/adapters/postgres/migrations"
	"rushd/adapters/recommender"
	"rushd/app"
	"rushd/internal"
	"rushd/internal/config"
	"rushd/internal/errors"
	"rushd/internal/testkit"
	"rushd/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	if os.Getenv("DATABASE_URL") == "" {
		logger.Warn("DATABASE_URL not set, starting in demo mode with in-memory fixtures")
		runDemo(logger)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	defer db.Close()

	server := ui.NewServer(
		postgres.NewUserRepository(db),
		app.NewRecommendationService(
			postgres.NewCatalogRepository(db),
			postgres.NewAssessmentRepository(db),
			postgres.NewSavedCareerRepository(db),
			nil, // external AI recommender not wired in this build
			recommender.NewFallbackAdapter(),
			logger,
		),
		app.NewAnalyticsService(postgres.NewJournalRepository(db)),
		logger,
	)

	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migrations.NewMigrator(db.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.Up(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to run migrations")
	}
	return db, nil
}

// runDemo serves the full API over seeded in-memory stores so the product
// can be explored without PostgreSQL.
func runDemo(logger *internal.Logger) {
	kit := testkit.NewTestKit(time.Now())

	journalRepo := testkit.NewInMemoryJournalRepository()
	journalRepo.Seed(testkit.DemoUserID, kit.JournalSeries(45))

	server := ui.NewServer(
		testkit.NewInMemoryUserRepository(),
		app.NewRecommendationService(
			testkit.NewInMemoryCatalogRepository(kit.SampleCatalog()),
			testkit.NewInMemoryAssessmentRepository(),
			testkit.NewInMemorySavedCareerRepository(),
			nil,
			recommender.NewFallbackAdapter(),
			logger,
		),
		app.NewAnalyticsService(journalRepo),
		logger,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := server.Run(port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
