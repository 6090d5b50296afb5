package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/database/postgres"
	"talent-match/internal/domain/matching"
	"talent-match/internal/logger"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	openingFlag := flag.String("opening", "", "opening id to rank candidates for")
	modelFlag := flag.String("model", string(matching.ModelAveraged), "scoring model: averaged or weighted")
	migrate := flag.Bool("migrate", false, "apply pending migrations first")
	timeout := flag.Duration("timeout", time.Minute, "overall deadline")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadCLI()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.NewStderr(cfg.LogDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log, *openingFlag, *modelFlag, *migrate, *timeout); err != nil {
		log.Error("ranking failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.CLIConfig, log *zap.Logger, openingArg, modelArg string, migrate bool, timeout time.Duration) error {
	openingID, err := uuid.Parse(strings.TrimSpace(openingArg))
	if err != nil {
		return fmt.Errorf("-opening: %w", err)
	}
	model, err := matching.ParseScoringModel(modelArg)
	if err != nil {
		return err
	}
	if !cfg.Database.Configured() {
		return app.ErrDatabaseNotConfigured
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if migrate {
		dbCfg := cfg.Database
		dbCfg.RunMigrations = true
		if err := app.Prepare(ctx, dbCfg, db, log); err != nil {
			return err
		}
	}

	opening, found, err := repository.NewPostgresOpeningRepository(db).FindSnapshot(ctx, openingID)
	if err != nil {
		return fmt.Errorf("load opening: %w", err)
	}
	results := []matching.MatchResult{}
	if found {
		pool, err := repository.NewPostgresCandidateRepository(db).ListEligible(ctx)
		if err != nil {
			return fmt.Errorf("load candidates: %w", err)
		}
		ranker := matching.NewRanker(matching.NewScorer(model), cfg.Matching.Workers)
		if results, err = ranker.Rank(ctx, opening, pool); err != nil {
			return err
		}
		log.Info("ranking computed",
			zap.String("opening", opening.Title),
			zap.String("scoring_model", string(model)),
			zap.Int("pool", len(pool)),
			zap.Int("ranked", len(results)),
		)
	} else {
		log.Warn("opening not found", zap.String("opening_id", openingID.String()))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
