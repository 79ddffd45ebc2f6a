// Command api runs the job application tracker HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"devagent-backend/internal/auth"
	"devagent-backend/internal/config"
	"devagent-backend/internal/database"
	"devagent-backend/internal/server"
)

// @title devagent API
// @version 1.0
// @description Job application tracker for developers: offers, recruitment steps and their statuses.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	config.SetupLogger(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	auth.Configure(cfg.SecretKey, cfg.AccessTokenTTL)

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Database failed to initialize")
	}

	httpServer, srv, err := server.NewServer(cfg, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Server failed to initialize")
	}
	defer func() {
		if err := srv.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close connections")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Environment).Msg("API listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Listen failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
