package app

import (
	"context"
	"log"
	"time"

	"careercraft/internal/config"
	"careercraft/internal/database"
	"careercraft/internal/database/migration"
	dbpostgres "careercraft/internal/database/postgres"
	"careercraft/internal/database/seeder"
	"careercraft/internal/infrastructure/cache"
	"careercraft/migrations"
)

// Container owns the process-wide resources: the database pool and the
// optional Redis cache.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(ctx, cfg.Redis, logger),
		Logger: logger,
	}, nil
}

// Migrate applies the embedded schema migrations.
func (c *Container) Migrate(ctx context.Context) error {
	r := migration.Runner{FS: migrations.FS, Logger: c.Logger}
	return r.Run(ctx, c.DB.SQLDB())
}

// Seed inserts the career catalog and learning resources. Existing rows are
// left untouched.
func (c *Container) Seed(ctx context.Context) error {
	r := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}
	return r.Run(ctx, c.DB)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Printf("[Cache] close: %v", err)
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
