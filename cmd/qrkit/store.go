package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/links"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/mongo"
	"github.com/dmitrymomot/qrkit/pkg/pg"
	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
	"github.com/dmitrymomot/qrkit/pkg/redis"
)

// stores are the backends selected by configuration.
type stores struct {
	links     links.Repository
	rateLimit ratelimiter.Store
	close     func()
}

// openStores connects the configured link repository and registers its
// readiness check. Rate limits share Redis when it is the link store and
// live in memory otherwise.
func openStores(ctx context.Context, kind string, server *httpserver.Server, log *slog.Logger) (*stores, error) {
	if kind == "redis" {
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		server.AddReadinessCheck("redis", redis.Healthcheck(client, cfg.KeyPrefix))
		return &stores{
			links:     links.NewRedisRepository(client, cfg.KeyPrefix),
			rateLimit: ratelimiter.NewRedisStore(client, cfg.KeyPrefix),
			close:     func() { _ = client.Close() },
		}, nil
	}

	memory := ratelimiter.NewMemoryStore()
	repo, closeRepo, err := openLinkStore(ctx, kind, server, log)
	if err != nil {
		memory.Close()
		return nil, err
	}
	return &stores{
		links:     repo,
		rateLimit: memory,
		close: func() {
			memory.Close()
			closeRepo()
		},
	}, nil
}

func openLinkStore(ctx context.Context, kind string, server *httpserver.Server, log *slog.Logger) (links.Repository, func(), error) {
	switch kind {
	case "", "memory":
		return links.NewMemoryRepository(), func() {}, nil

	case "postgres":
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(ctx, pool, links.Migrations, cfg, log); err != nil {
			pool.Close()
			return nil, nil, err
		}
		server.AddReadinessCheck("postgres", pg.Healthcheck(pool))
		return links.NewPostgresRepository(pool), pool.Close, nil

	case "mongo":
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, err
		}
		db, err := mongo.ConnectDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() { _ = db.Client().Disconnect(context.Background()) }

		repo := links.NewMongoRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			disconnectErr := db.Client().Disconnect(context.Background())
			log.Error("mongo index setup failed", logger.Component("links"), logger.Errors(err, disconnectErr))
			return nil, nil, err
		}
		server.AddReadinessCheck("mongo", mongo.Healthcheck(db))
		return repo, cleanup, nil
	}

	return nil, nil, fmt.Errorf("unknown link store %q", kind)
}
