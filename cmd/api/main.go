package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"rushd/adapters/postgres"
	"rushd/adapters/recommender"
	"rushd/app"
	"rushd/domain/journal"
	"rushd/internal"
	"rushd/internal/config"
)

// A headless JSON API over the same services as the web server, for
// integrations that only need recommendations and analytics.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	logger := internal.NewDefaultLogger()
	users := postgres.NewUserRepository(db)
	recommendations := app.NewRecommendationService(
		postgres.NewCatalogRepository(db),
		postgres.NewAssessmentRepository(db),
		postgres.NewSavedCareerRepository(db),
		nil,
		recommender.NewFallbackAdapter(),
		logger,
	)
	analytics := app.NewAnalyticsService(postgres.NewJournalRepository(db))

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Get("/recommendations", func(w http.ResponseWriter, r *http.Request) {
		user, err := users.GetOrCreateDefaultUser(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		recs, audit, err := recommendations.Recommend(r.Context(), user.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"recommendations": recs,
			"source":          audit.Source,
		})
	})

	router.Get("/analytics", func(w http.ResponseWriter, r *http.Request) {
		user, err := users.GetOrCreateDefaultUser(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		rng := journal.Range(r.URL.Query().Get("range"))
		if _, known := rng.Duration(); !known {
			rng = journal.Range30Days
		}
		result, err := analytics.Analyze(r.Context(), user.ID, rng)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"range":     rng,
			"analytics": result,
			"empty":     result == nil,
		})
	})

	addr := ":" + cfg.Server.Port
	log.Printf("Starting API server on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
