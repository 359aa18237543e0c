package main

import (
	"context"
	"net/http"

	"github.com/mitienda/tienda-api/internal/api"
	"github.com/mitienda/tienda-api/internal/infrastructure/db/mongo"
	"github.com/mitienda/tienda-api/internal/infrastructure/db/redis"
	"github.com/mitienda/tienda-api/internal/pkg/config"
	"github.com/mitienda/tienda-api/pkg/logger"
)

// @title Tienda API
// @version 1.0
// @description API de la tienda: usuarios (registro, sesión, perfil) y catálogo de productos.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("servidor iniciado")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
