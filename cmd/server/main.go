// Command server runs the back-office API.
//
// @title        Back Office API
// @version      1.0
// @description  Multi-tenant back office: users, organizations, roles, token authentication.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/taking/backoffice/internal/api"
	"github.com/taking/backoffice/internal/infrastructure/bootstrap"
	"github.com/taking/backoffice/internal/infrastructure/config"
	mongodb "github.com/taking/backoffice/internal/infrastructure/db/mongo"
	"github.com/taking/backoffice/internal/pkg/password"
	"github.com/taking/backoffice/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index setup failed")
	}

	hasher := password.NewHasher(cfg.BcryptCost)
	seeder := bootstrap.NewInitializer(
		mongodb.NewUserRepository(db),
		mongodb.NewRoleRepository(db),
		mongodb.NewOrgRepository(db),
		hasher,
		log,
	)
	if err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bootstrap seeding failed")
	}

	e, err := api.NewRouter(db, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
