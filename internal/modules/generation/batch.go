package generation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/thesignal/core/internal/modules/news"
)

// BatchResult reports the aggregate outcome of one run across all
// categories. Partial failure is still a completed run.
type BatchResult struct {
	Succeeded []string
	Failed    []string
	Articles  int
}

// RunBatch generates every category strictly in sequence with a cooldown
// between categories. The serialization and the delay keep the run under
// the model API's per-minute token ceiling, so categories must never be
// generated concurrently. A failed category is logged and skipped; the
// run continues.
func (p *Pipeline) RunBatch(ctx context.Context, cooldown time.Duration) BatchResult {
	var result BatchResult

	for i, cat := range news.Categories {
		if i > 0 && cooldown > 0 {
			p.logger.Info("cooling down before next category",
				zap.Duration("cooldown", cooldown),
				zap.String("next", cat.Slug),
			)
			select {
			case <-ctx.Done():
				p.logger.Warn("batch interrupted", zap.Error(ctx.Err()))
				result.Failed = append(result.Failed, remainingSlugs(i)...)
				return result
			case <-time.After(cooldown):
			}
		}

		rows, err := p.GenerateCategory(ctx, cat.Slug)
		if err != nil {
			p.logger.Error("category generation failed",
				zap.String("category", cat.Slug),
				zap.Error(err),
			)
			result.Failed = append(result.Failed, cat.Slug)
			continue
		}
		result.Succeeded = append(result.Succeeded, cat.Slug)
		result.Articles += len(rows)
	}

	p.logger.Info("batch finished",
		zap.Strings("succeeded", result.Succeeded),
		zap.Strings("failed", result.Failed),
		zap.Int("articles", result.Articles),
	)
	return result
}

func remainingSlugs(from int) []string {
	slugs := make([]string, 0, len(news.Categories)-from)
	for _, cat := range news.Categories[from:] {
		slugs = append(slugs, cat.Slug)
	}
	return slugs
}
