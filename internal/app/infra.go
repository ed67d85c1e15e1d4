package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/Santosh7017/NoteBook/internal/config"
	"github.com/Santosh7017/NoteBook/internal/db"
	"github.com/Santosh7017/NoteBook/internal/logger"
	"github.com/Santosh7017/NoteBook/internal/redis"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client // nil when no redis is configured
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	infra := &Infra{DB: &db.DB{DB: sqlDB}}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		infra.Redis = redisClient
		logger.Info("redis ready", nil)
	} else {
		logger.Warn("no REDIS_ADDR configured, sessions held in process memory", nil)
	}

	return infra, nil
}
