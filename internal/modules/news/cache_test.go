package news

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thesignal/core/internal/models"
)

func sampleBatch(category string) CachedResult {
	return CachedResult{
		Articles: []models.ArticleModel{
			{
				Slug:     "sample-article-2026-01-15",
				Headline: "Sample Article",
				Category: category,
				Sources:  models.StringArray{"Reuters"},
			},
		},
		FetchedAt: time.Now(),
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	cache := NewFileCache(t.TempDir())

	if _, ok := cache.Get("technology"); ok {
		t.Fatal("empty cache should miss")
	}

	if err := cache.Set("technology", sampleBatch("technology")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := cache.Get("technology")
	if !ok {
		t.Fatal("fresh entry should hit")
	}
	if len(got.Articles) != 1 || got.Articles[0].Slug != "sample-article-2026-01-15" {
		t.Errorf("unexpected cached articles: %+v", got.Articles)
	}

	if _, ok := cache.Get("business"); ok {
		t.Error("other categories must not share cache files")
	}
}

func TestFileCacheTTLBoundary(t *testing.T) {
	cache := NewFileCache(t.TempDir())

	batch := sampleBatch("business")
	if err := cache.Set("business", batch); err != nil {
		t.Fatalf("Set: %v", err)
	}

	base := batch.FetchedAt
	cases := []struct {
		age  time.Duration
		want bool
	}{
		{3599 * time.Second, true},
		{3600 * time.Second, false},
		{3601 * time.Second, false},
	}
	for _, tc := range cases {
		cache.now = func() time.Time { return base.Add(tc.age) }
		if _, ok := cache.Get("business"); ok != tc.want {
			t.Errorf("age %v: hit = %v, want %v", tc.age, ok, tc.want)
		}
	}
}

func TestFileCacheCorruptFile(t *testing.T) {
	dir := t.TempDir()
	cache := NewFileCache(dir)

	if err := os.WriteFile(filepath.Join(dir, "sports.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	if _, ok := cache.Get("sports"); ok {
		t.Error("corrupt cache file should read as absent")
	}

	// overwrite repairs it
	if err := cache.Set("sports", sampleBatch("sports")); err != nil {
		t.Fatalf("Set over corrupt file: %v", err)
	}
	if _, ok := cache.Get("sports"); !ok {
		t.Error("overwritten entry should hit")
	}
}

func TestFileCacheCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	cache := NewFileCache(dir)

	if err := cache.Set("global", sampleBatch("global")); err != nil {
		t.Fatalf("Set should create the cache dir: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir not created: %v", err)
	}
}
