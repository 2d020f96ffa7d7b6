package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pokedex-backend/config"
	"pokedex-backend/internal/api"
	"pokedex-backend/internal/logging"
	"pokedex-backend/internal/pokeapi"
	"pokedex-backend/internal/pokemon"
)

func main() {
	// An empty CONFIG_PATH means environment variables only.
	configPath := os.Getenv("CONFIG_PATH")

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	client := pokeapi.NewClient(cfg.Upstream, sugar.Named("pokeapi"))
	service := pokemon.NewService(client, cfg.Upstream.ImageURL)

	router := api.NewRouter(cfg.Server, service, logger)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("HTTP server starting", "port", cfg.Server.Port, "api_url", cfg.Upstream.APIURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	sugar.Info("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("HTTP server Shutdown failed", "error", err)
		return
	}

	sugar.Info("Server gracefully stopped")
}
