package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"star-dog-walker/internal/platform/logger"
	"star-dog-walker/internal/router"
)

// @title Star Dog Walker API
// @version 1.0
// @description Marketplace de paseos: owners reservan walks para sus perros, walkers los cumplen con journal y fotos.
func main() {
	// .env es opcional; en deploy las vars vienen del entorno.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	seed := os.Getenv("SEED_DEMO_DATA") != "false"

	r := router.NewRouter(router.Options{
		Log:      log,
		SeedDemo: seed,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
