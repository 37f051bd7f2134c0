package app

import (
	"context"
	"time"

	"digiraksha/internal/auth"
	"digiraksha/internal/config"
	"digiraksha/internal/database"
	"digiraksha/internal/logger"
	"digiraksha/internal/repository"
	"digiraksha/internal/service"
	"digiraksha/internal/storage"
)

const bucketSetupTimeout = 15 * time.Second

func App(cfg *config.Config) (*database.DB, *service.Service) {
	log := logger.Default()

	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecretKey, cfg.JWTAlgorithm, cfg.AccessTokenDuration())
	if err != nil {
		log.Fatalf("Failed to set up token issuer: %v", err)
	}

	// connection object storage
	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s storage: %v", cfg.Storage.Driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), bucketSetupTimeout)
	defer cancel()
	if err := store.EnsureBucketsExist(ctx); err != nil {
		log.Warnf("Could not verify storage buckets, uploads may fail: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, tokens, store)

	return db, services
}
