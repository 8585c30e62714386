package main

import (
	"context"
	"fmt"
	"os"

	"skill-matrix/internal/config"
	dbpostgres "skill-matrix/internal/database/postgres"
	"skill-matrix/internal/pkg/logger"
)

type session struct {
	cfg config.Config
	log logger.Logger
	db  *dbpostgres.Pool
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadTooling()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(os.Stderr, logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, log: log.Named("matchctl"), db: db}, nil
}

func (s *session) Close() {
	_ = s.db.Close()
}
