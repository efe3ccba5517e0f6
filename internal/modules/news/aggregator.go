package news

import (
	"github.com/thesignal/core/internal/models"
	"go.uber.org/zap"
)

// provider is one fallback tier. Fetch returns newest-first articles for
// a category; an error means "nothing from this tier", never a caller
// failure.
type provider interface {
	name() string
	fetch(category string, limit int) ([]models.ArticleModel, error)
}

type storeProvider struct{ store *Store }

func (p storeProvider) name() string { return "store" }
func (p storeProvider) fetch(category string, limit int) ([]models.ArticleModel, error) {
	return p.store.ByCategory(category, limit)
}

type cacheProvider struct{ cache *FileCache }

func (p cacheProvider) name() string { return "cache" }
func (p cacheProvider) fetch(category string, limit int) ([]models.ArticleModel, error) {
	result, ok := p.cache.Get(category)
	if !ok {
		return nil, nil
	}
	return truncate(result.Articles, limit), nil
}

type staticProvider struct{}

func (p staticProvider) name() string { return "static" }
func (p staticProvider) fetch(category string, limit int) ([]models.ArticleModel, error) {
	return truncate(FallbackArticles[category], limit), nil
}

// Aggregator serves reads through the ordered fallback chain
// store → cache → static bundle. It never propagates a storage error:
// some content always beats a hard failure.
type Aggregator struct {
	store    *Store // nil when the database is not configured
	cache    *FileCache
	logger   *zap.Logger
	tiers    []provider // full chain, for single-category reads
	live     []provider // store + cache only, for the all-categories view
	fallback staticProvider
}

// NewAggregator builds the fallback chain. store may be nil.
func NewAggregator(store *Store, cache *FileCache, logger *zap.Logger) *Aggregator {
	a := &Aggregator{
		store:  store,
		cache:  cache,
		logger: logger.Named("ReadPath"),
	}
	if store != nil {
		a.live = append(a.live, storeProvider{store})
	}
	if cache != nil {
		a.live = append(a.live, cacheProvider{cache})
	}
	a.tiers = append(append([]provider{}, a.live...), a.fallback)
	return a
}

// ByCategory returns up to limit articles for a category, newest first,
// consulting each tier in order until one yields data.
func (a *Aggregator) ByCategory(category string, limit int) []models.ArticleModel {
	return a.firstHit(a.tiers, category, limit)
}

// AllLatest returns the five most recent articles per category. The
// static bundle is used only wholesale, when every category came back
// empty: a partial real result beats any fallback mixing.
func (a *Aggregator) AllLatest() map[string][]models.ArticleModel {
	const perCategory = 5

	result := make(map[string][]models.ArticleModel, len(Categories))
	hasAny := false
	for _, cat := range Categories {
		articles := a.firstHit(a.live, cat.Slug, perCategory)
		result[cat.Slug] = articles
		if len(articles) > 0 {
			hasAny = true
		}
	}
	if hasAny {
		return result
	}

	for _, cat := range Categories {
		articles, _ := a.fallback.fetch(cat.Slug, perCategory)
		result[cat.Slug] = articles
	}
	return result
}

// ByID returns one article by id, trying the store then the static
// bundle. The cache is category-batch-shaped and is not consulted.
func (a *Aggregator) ByID(id string) *models.ArticleModel {
	if a.store != nil {
		article, err := a.store.ByID(id)
		if err != nil {
			a.logger.Warn("store lookup failed, falling back", zap.String("id", id), zap.Error(err))
		} else if article != nil {
			return article
		}
	}
	return findInBundle(func(m models.ArticleModel) bool { return m.ID == id })
}

// BySlug returns one article by slug, same tier order as ByID.
func (a *Aggregator) BySlug(slug string) *models.ArticleModel {
	if a.store != nil {
		article, err := a.store.BySlug(slug)
		if err != nil {
			a.logger.Warn("store lookup failed, falling back", zap.String("slug", slug), zap.Error(err))
		} else if article != nil {
			return article
		}
	}
	return findInBundle(func(m models.ArticleModel) bool { return m.Slug == slug })
}

// Related returns up to limit articles from the same category, excluding
// the article itself.
func (a *Aggregator) Related(article *models.ArticleModel, limit int) []models.ArticleModel {
	if a.store != nil {
		related, err := a.store.Related(article, limit)
		if err != nil {
			a.logger.Warn("related lookup failed, falling back", zap.String("id", article.ID), zap.Error(err))
		} else if len(related) > 0 {
			return related
		}
	}

	pool := FallbackArticles[article.Category]
	related := make([]models.ArticleModel, 0, limit)
	for _, candidate := range pool {
		if candidate.ID == article.ID {
			continue
		}
		related = append(related, candidate)
		if len(related) == limit {
			break
		}
	}
	return related
}

func (a *Aggregator) firstHit(tiers []provider, category string, limit int) []models.ArticleModel {
	for _, tier := range tiers {
		articles, err := tier.fetch(category, limit)
		if err != nil {
			a.logger.Warn("tier fetch failed, falling through",
				zap.String("tier", tier.name()),
				zap.String("category", category),
				zap.Error(err),
			)
			continue
		}
		if len(articles) > 0 {
			return articles
		}
	}
	return []models.ArticleModel{}
}

func findInBundle(match func(models.ArticleModel) bool) *models.ArticleModel {
	for _, cat := range Categories {
		for _, article := range FallbackArticles[cat.Slug] {
			if match(article) {
				found := article
				return &found
			}
		}
	}
	return nil
}

func truncate(articles []models.ArticleModel, limit int) []models.ArticleModel {
	if limit > 0 && len(articles) > limit {
		return articles[:limit]
	}
	return articles
}
