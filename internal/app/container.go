package app

import (
	"context"
	"errors"
	"time"

	"skill-matrix/internal/config"
	"skill-matrix/internal/database"
	dbpostgres "skill-matrix/internal/database/postgres"
	"skill-matrix/internal/infrastructure/cache"
	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/pkg/metrics"
	"skill-matrix/internal/ws"
)

const connectTimeout = 10 * time.Second

// Container holds the process-wide infrastructure shared by handlers.
type Container struct {
	Config  config.Config
	Log     logger.Logger
	DB      database.DB
	Cache   *cache.Redis
	Metrics *metrics.Manager
	Hub     *ws.Hub
}

func NewContainer(ctx context.Context, cfg config.Config, log logger.Logger) (*Container, error) {
	if log == nil {
		log = logger.NewNop()
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	m := metrics.NewManager()

	return &Container{
		Config:  cfg,
		Log:     log,
		DB:      db,
		Cache:   cache.NewRedis(ctx, cfg.Redis, log.Named("cache")),
		Metrics: m,
		Hub:     ws.NewHub(log.Named("ws"), m),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
