package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/config"
	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/infra/database"
	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/infra/http/handlers"
	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/infra/http/middleware"
)

func main() {
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection: %v", err)
	}
	defer db.Close()

	eventStore := database.NewEventStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := eventStore.EnsureEventTables(ctx, cfg.Accounts); err != nil {
		log.Fatalf("ensure audit tables: %v", err)
	}
	cancel()

	webhookHandler := handlers.NewWebhookHandler(eventStore, cfg.AllowedAccounts())
	healthHandler := handlers.NewHealthHandler(db, cfg.CRMBaseURL)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/webhook/{account}", webhookHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	addr := ":" + cfg.Port
	log.Printf("webhook receiver listening on %s (accounts: %v)", addr, cfg.Accounts)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
