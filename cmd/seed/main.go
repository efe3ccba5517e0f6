// Command seed inserts the static fallback articles into the database,
// giving a fresh deployment browsable content before the first
// generation run.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/thesignal/core/internal/config"
	"github.com/thesignal/core/internal/database"
	"github.com/thesignal/core/internal/models"
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

	logger, err := logging.New(cfg.IsDev())
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	db, err := database.Connect(cfg, true)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	store := news.NewStore(db)

	total := 0
	failed := 0
	for _, cat := range news.Categories {
		articles := news.FallbackArticles[cat.Slug]
		rows := make([]models.ArticleModel, len(articles))
		copy(rows, articles)
		// seed rows get fresh UUIDs from the model hook
		for i := range rows {
			rows[i].ID = ""
		}

		if err := store.InsertBatch(rows); err != nil {
			logger.Error("seed failed for category",
				zap.String("category", cat.Slug),
				zap.Error(err),
			)
			failed++
			continue
		}
		total += len(rows)
		logger.Info("seeded category",
			zap.String("category", cat.Slug),
			zap.Int("articles", len(rows)),
		)
	}

	logger.Info("seeding finished", zap.Int("articles", total), zap.Int("failedCategories", failed))
}
