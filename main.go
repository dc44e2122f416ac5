package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/catalog-explorer/server/internal/catalog/loader"
	"github.com/catalog-explorer/server/internal/catalog/model"
	"github.com/catalog-explorer/server/internal/catalog/source"
	"github.com/catalog-explorer/server/internal/console"
	"github.com/catalog-explorer/server/internal/core"
	logx "github.com/catalog-explorer/server/pkg/logger"
	pkgredis "github.com/catalog-explorer/server/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig defines all configurable parameters of the explorer, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Env      core.Environment `envconfig:"APP_ENV" default:"development"`
	LogLevel string           `envconfig:"LOG_LEVEL"`

	// Infrastructure, only used by the redis catalog source
	Redis pkgredis.Config

	Catalog model.CatalogConfig
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// restore default signal handling so a second Ctrl-C kills the process
		<-ctx.Done()
		stop()
	}()

	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: cfg.Env, Level: cfg.LogLevel})
	logx.Debug().Str("env", cfg.Env.String()).Str("source", cfg.Catalog.Source).Msg("starting catalog explorer")

	src, cleanup, err := newSource(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to set up catalog source")
	}
	defer cleanup()

	catalog, err := loader.Load(ctx, src)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load catalog")
	}

	if err := console.New(catalog, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		logx.Error().Err(err).Msg("console stopped")
		os.Exit(1)
	}
}

func newSource(ctx context.Context, cfg AppConfig) (loader.Source, func(), error) {
	switch cfg.Catalog.Source {
	case model.SourceFile:
		return source.NewFileSource(cfg.Catalog.File), func() {}, nil
	case model.SourceRedis:
		rdb, err := cfg.Redis.New(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("initialise redis client: %w", err)
		}
		logx.Info().Str("key", cfg.Catalog.RedisKey).Msg("connected to redis")
		return source.NewRedisSource(rdb, cfg.Catalog.RedisKey), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown CATALOG_SOURCE %q (want %q or %q)", cfg.Catalog.Source, model.SourceFile, model.SourceRedis)
	}
}
