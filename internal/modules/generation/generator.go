package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/thesignal/core/internal/config"
	"github.com/thesignal/core/internal/models"
	"github.com/thesignal/core/internal/modules/news"
	"github.com/thesignal/core/internal/pkg/slug"
)

// textGenerator is the seam between the pipeline and the model API; the
// pipeline only ever needs "prompt in, concatenated text out".
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type anthropicGenerator struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	maxUses   int64
}

func newAnthropicGenerator(cfg config.GenerationConfig) *anthropicGenerator {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.RequestTimeout()),
	)
	return &anthropicGenerator{
		client:    client,
		model:     anthropic.Model(cfg.Model),
		maxTokens: int64(cfg.MaxOutputTokens),
		maxUses:   int64(cfg.MaxSearchUses),
	}
}

func (g *anthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Tools: []anthropic.ToolUnionParam{
			{
				OfWebSearchTool20250305: &anthropic.WebSearchTool20250305Param{
					MaxUses: anthropic.Int(g.maxUses),
				},
			},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	// The response interleaves tool-use blocks with text; only the text
	// blocks carry the article payload.
	var b strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}

// Pipeline turns one model call per category into persisted article rows.
type Pipeline struct {
	gen      textGenerator
	store    *news.Store
	cache    *news.FileCache
	logger   *zap.Logger
	count    int
	location *time.Location
	now      func() time.Time
}

func NewPipeline(cfg *config.AppConfig, store *news.Store, cache *news.FileCache, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		gen:      newAnthropicGenerator(cfg.Generation),
		store:    store,
		cache:    cache,
		logger:   logger.Named("Generation"),
		count:    cfg.Generation.ArticlesPerCategory,
		location: cfg.Location(),
		now:      time.Now,
	}
}

// GenerateCategory produces and persists fresh articles for one category.
// Elements the parser dropped shrink the batch; an unparseable response
// fails the category with nothing written.
func (p *Pipeline) GenerateCategory(ctx context.Context, categorySlug string) ([]models.ArticleModel, error) {
	cat, ok := news.LookupCategory(categorySlug)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", categorySlug)
	}

	now := p.now().In(p.location)
	prompt := buildPrompt(cat, p.count, now)

	p.logger.Info("requesting articles",
		zap.String("category", cat.Slug),
		zap.Int("count", p.count),
	)
	raw, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", cat.Slug, err)
	}

	parsed, err := parseArticles(raw)
	if err != nil {
		p.logger.Error("unparseable model output",
			zap.String("category", cat.Slug),
			zap.String("sample", rawSample(raw)),
		)
		return nil, fmt.Errorf("generate %s: %w", cat.Slug, err)
	}
	if len(parsed) < p.count {
		p.logger.Warn("model returned fewer usable articles than requested",
			zap.String("category", cat.Slug),
			zap.Int("requested", p.count),
			zap.Int("usable", len(parsed)),
		)
	}

	rows := make([]models.ArticleModel, 0, len(parsed))
	for _, a := range parsed {
		base := slug.Make(a.Headline)
		if base == "" {
			p.logger.Warn("skipping article with unsluggable headline",
				zap.String("category", cat.Slug),
				zap.String("headline", a.Headline),
			)
			continue
		}
		rows = append(rows, models.ArticleModel{
			Slug:        slug.WithDateSuffix(base, now, p.location),
			Headline:    a.Headline,
			Summary:     a.Summary,
			Body:        a.Body,
			Category:    cat.Slug,
			Sources:     a.Sources,
			PublishedAt: now,
			IsBreaking:  a.IsBreaking,
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("generate %s: %w", cat.Slug, ErrUnparseable)
	}

	if p.store != nil {
		if err := p.store.InsertBatch(rows); err != nil {
			return nil, fmt.Errorf("insert %s articles: %w", cat.Slug, err)
		}
	}
	if p.cache != nil {
		if err := p.cache.Set(cat.Slug, news.CachedResult{Articles: rows, FetchedAt: now}); err != nil {
			p.logger.Warn("cache write failed", zap.String("category", cat.Slug), zap.Error(err))
		}
	}

	p.logger.Info("articles persisted",
		zap.String("category", cat.Slug),
		zap.Int("count", len(rows)),
	)
	return rows, nil
}
