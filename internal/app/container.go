package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/database/migration"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/database/seeder"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"
	"talent-match/internal/ws"
	"talent-match/migrations"

	"go.uber.org/zap"
)

var ErrDatabaseNotConfigured = errors.New("database not configured: DB_HOST, DB_NAME and DB_USER are required")

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	Auth    *usecase.Auth
	Catalog *usecase.Catalog
	Ranking *usecase.Ranking
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if !cfg.Database.Configured() {
		return nil, ErrDatabaseNotConfigured
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := Prepare(ctx, cfg.Database, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(ctx, cfg.Redis, logger.Named("cache")),
		Hub:    ws.NewHub(logger.Named("ws")),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
			jwt.WithIssuer(cfg.App.AppName),
		),
	}

	users := repository.NewPostgresUserRepository(db)
	c.Auth = usecase.NewAuthUsecase(users, c.JWT)
	c.Catalog = usecase.NewCatalogUsecase(repository.NewPostgresCatalogRepository(db), logger.Named("catalog"))
	c.Ranking = usecase.NewRankingUsecase(
		repository.NewPostgresOpeningRepository(db),
		repository.NewPostgresCandidateRepository(db),
		c.Cache,
		c.Hub,
		logger.Named("ranking"),
		usecase.RankingOptions{
			Workers:      cfg.Matching.Workers,
			CacheTTL:     cfg.Matching.CacheTTL,
			DefaultLimit: cfg.Matching.DefaultLimit,
			MaxLimit:     cfg.Matching.MaxLimit,
		},
	)

	return c, nil
}

// Prepare applies pending migrations and seeders when enabled.
func Prepare(ctx context.Context, cfg config.DatabaseConfig, db database.DB, logger *zap.Logger) error {
	if cfg.RunMigrations {
		runner := migration.Runner{Source: migrations.FS, Logger: logger}
		if cfg.MigrationsDir != "" {
			runner = migration.Runner{Dir: cfg.MigrationsDir, Logger: logger}
		}
		if err := runner.Run(ctx, db.SQLDB()); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}
	if cfg.RunSeeders {
		if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}).Run(ctx, db); err != nil {
			return fmt.Errorf("run seeders: %w", err)
		}
	}
	return nil
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
