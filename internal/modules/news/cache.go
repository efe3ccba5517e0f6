package news

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/thesignal/core/internal/models"
)

// CacheTTL is how long a cached category batch stays valid. At or past
// the boundary a cached result is absent, not merely stale.
const CacheTTL = time.Hour

// CachedResult is one category's generated batch plus the instant it was
// produced.
type CachedResult struct {
	Articles  []models.ArticleModel `json:"articles"`
	FetchedAt time.Time             `json:"fetchedAt"`
}

// FileCache is a TTL cache with one JSON file per category. Stale files
// stay on disk until overwritten; the TTL check happens at read time.
type FileCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewFileCache creates a cache rooted at dir. The directory is created
// lazily on first write.
func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir, ttl: CacheTTL, now: time.Now}
}

// Get returns the cached batch for a category, or (zero, false) when the
// file is missing, unreadable, unparseable, or expired.
func (c *FileCache) Get(category string) (CachedResult, bool) {
	raw, err := os.ReadFile(c.path(category))
	if err != nil {
		return CachedResult{}, false
	}

	var result CachedResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return CachedResult{}, false
	}
	if c.now().Sub(result.FetchedAt) >= c.ttl {
		return CachedResult{}, false
	}
	return result, true
}

// Set overwrites the cached batch for a category unconditionally.
func (c *FileCache) Set(category string, result CachedResult) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(category), raw, 0o644)
}

func (c *FileCache) path(category string) string {
	return filepath.Join(c.dir, category+".json")
}
