package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"rushd/adapters/postgres/migrations"
	"rushd/internal/config"
)

// Standalone migration runner for deployments that apply schema changes
// outside the server boot path.
//
//	migrate up      apply pending migrations
//	migrate status  list applied and pending migrations
func main() {
	_ = godotenv.Load()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	migrator := migrations.NewMigrator(db.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch command {
	case "up":
		if err := migrator.Up(ctx); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Migrations applied")
	case "status":
		if err := migrator.Status(ctx); err != nil {
			log.Fatalf("Failed to read migration status: %v", err)
		}
	default:
		log.Fatalf("Unknown command %q (want up or status)", command)
	}
}
