package news

import (
	"errors"

	"github.com/thesignal/core/internal/models"
	"gorm.io/gorm"
)

// Store wraps article reads and writes against the relational store.
type Store struct{ db *gorm.DB }

// NewStore returns a Store over db. Callers hold a *Store only when the
// database is actually reachable; absence is modeled by not constructing one.
func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// ByCategory returns up to limit articles for a category, newest first.
func (s *Store) ByCategory(category string, limit int) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := s.db.Where("category = ?", category).
		Order("published_at DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// ByID returns one article by id, or (nil, nil) when absent.
func (s *Store) ByID(id string) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// BySlug returns one article by slug, or (nil, nil) when absent.
func (s *Store) BySlug(slug string) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.First(&a, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Related returns up to limit articles in the same category, excluding the
// article itself, newest first.
func (s *Store) Related(article *models.ArticleModel, limit int) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := s.db.Where("category = ? AND id <> ?", article.Category, article.ID).
		Order("published_at DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// InsertBatch writes a generation batch in a single transaction. A
// failure inserts nothing.
func (s *Store) InsertBatch(articles []models.ArticleModel) error {
	if len(articles) == 0 {
		return nil
	}
	return s.db.Create(&articles).Error
}
