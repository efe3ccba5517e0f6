package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/thesignal/core/internal/config"
	"github.com/thesignal/core/internal/modules/generation"
	"github.com/thesignal/core/internal/modules/news"
	pkgcron "github.com/thesignal/core/internal/pkg/cron"
	"github.com/thesignal/core/internal/pkg/ratelimit"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, cfg *config.AppConfig, db *gorm.DB, limiter *ratelimit.Limiter, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	sched.Register(pkgcron.Job{
		Name:        "sweep_rate_limiter",
		Description: "purge expired rate-limit bookkeeping entries",
		Interval:    ratelimit.SweepInterval,
		Fn: func(ctx context.Context) error {
			if removed := limiter.Sweep(); removed > 0 {
				cronLogger.Info(fmt.Sprintf("swept %d expired rate-limit entries", removed))
			}
			return nil
		},
	})

	// The primary trigger for generation is the external scheduler
	// running cmd/generate once a day; this in-process job is for
	// deployments without one.
	if cfg.Generation.DailyJob && cfg.Generation.APIKey != "" {
		var store *news.Store
		if db != nil {
			store = news.NewStore(db)
		}
		cache := news.NewFileCache(cfg.CacheDir)
		pipeline := generation.NewPipeline(cfg, store, cache, logger)
		cooldown := cfg.Generation.Cooldown()

		sched.Register(pkgcron.Job{
			Name:        "generate_articles",
			Description: "generate fresh articles for every category",
			Interval:    24 * time.Hour,
			Fn: func(ctx context.Context) error {
				result := pipeline.RunBatch(ctx, cooldown)
				if len(result.Failed) > 0 {
					cronLogger.Warn("generation batch had failures",
						zap.Strings("failed", result.Failed),
						zap.Int("articles", result.Articles),
					)
				}
				return nil
			},
		})
	}
}
