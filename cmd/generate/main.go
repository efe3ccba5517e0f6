// Command generate runs the daily article generation batch across every
// category. It is meant to be invoked by an external scheduler; partial
// per-category failures still exit 0, so the scheduler only alerts on a
// failure to start at all.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/thesignal/core/internal/config"
	"github.com/thesignal/core/internal/database"
	"github.com/thesignal/core/internal/modules/generation"
	"github.com/thesignal/core/internal/modules/news"
	"github.com/thesignal/core/internal/pkg/logging"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if cfg.Generation.APIKey == "" {
		fmt.Fprintln(os.Stderr, "ANTHROPIC_API_KEY is required")
		os.Exit(1)
	}

	logger, err := logging.New(cfg.IsDev())
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	var store *news.Store
	db, err := database.Connect(cfg, true)
	switch {
	case err == nil:
		store = news.NewStore(db)
	case errors.Is(err, database.ErrNotConfigured):
		logger.Warn("no database configured, generated articles go to the file cache only")
	default:
		logger.Fatal("database connection failed", zap.Error(err))
	}

	cache := news.NewFileCache(cfg.CacheDir)
	pipeline := generation.NewPipeline(cfg, store, cache, logger)

	logger.Info("starting generation batch",
		zap.Int("articlesPerCategory", cfg.Generation.ArticlesPerCategory),
		zap.Duration("cooldown", cfg.Generation.Cooldown()),
	)
	result := pipeline.RunBatch(context.Background(), cfg.Generation.Cooldown())

	if len(result.Failed) > 0 {
		logger.Warn("batch completed with failures",
			zap.Strings("succeeded", result.Succeeded),
			zap.Strings("failed", result.Failed),
			zap.Int("articles", result.Articles),
		)
	} else {
		logger.Info("batch completed",
			zap.Strings("succeeded", result.Succeeded),
			zap.Int("articles", result.Articles),
		)
	}
}
