package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fr24/spotter/internal/db"
	"fr24/spotter/internal/logging"
	"fr24/spotter/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Spotter starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Open the flight cache store (sqlite by default, Postgres via CACHE_DSN)
	if _, err := db.InitCacheORM(); err != nil {
		logging.Error("Failed to open flight cache store", "error", err.Error())
		log.Fatalf("❌ Failed to open flight cache store: %v", err)
	}
	logging.Info("Flight cache store ready")

	// Open the search history store (sqlx)
	if err := db.InitHistoryDB(); err != nil {
		logging.Error("Failed to open search history store", "error", err.Error())
		log.Fatalf("❌ Failed to open search history store: %v", err)
	}
	logging.Info("Search history store ready")

	upSince := time.Now()

	// Initialize router with Chi
	router := routes.RegisterRoutes(upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logging.Info("Server starting",
		"port", port,
		"environment", appEnv,
	)

	log.Printf("Starting server on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
