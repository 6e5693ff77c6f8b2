package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/config"
	"github.com/aliskhannn/quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/quiz-bot/internal/infra/redis"
	"github.com/aliskhannn/quiz-bot/internal/infra/sqlite"
	"github.com/aliskhannn/quiz-bot/internal/service"
	"github.com/aliskhannn/quiz-bot/internal/storage"
)

// openStore opens the session store selected by cfg.Store.Driver.
// The returned func releases its resources.
func openStore(ctx context.Context, cfg *config.Config, lg *zap.Logger) (service.SessionStore, func(), error) {
	lg.Info("opening session store", zap.String("driver", cfg.Store.Driver))

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(dsn, lg); err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		return pgrepo.NewSessionRepository(pool), pool.Close, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.DSN)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewSessionStore(db), func() { _ = db.Close() }, nil

	case config.DriverMemory:
		lg.Warn("sessions are kept in memory and will be lost on restart")
		return storage.NewSessionStorage(), func() {}, nil

	default:
		client := redis.NewClient(redis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := redis.NewSessionStore(client, cfg.Store.KeyPrefix)
		if err := store.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return store, func() { _ = client.Close() }, nil
	}
}
