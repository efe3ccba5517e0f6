package models

import "time"

// ArticleModel is one generated (or seeded) news article. Articles are
// created by the generation pipeline and read-only afterwards; retention
// is an external concern.
type ArticleModel struct {
	Base
	Slug        string      `json:"slug"        gorm:"uniqueIndex;not null"`
	Headline    string      `json:"headline"    gorm:"not null"`
	Summary     string      `json:"summary"     gorm:"type:text"`
	Body        string      `json:"body"        gorm:"type:longtext"` // paragraphs separated by blank lines
	Category    string      `json:"category"    gorm:"index;not null"`
	Sources     StringArray `json:"sources"     gorm:"type:json"`
	PublishedAt time.Time   `json:"timestamp"   gorm:"index;not null"`
	IsBreaking  bool        `json:"isBreaking"  gorm:"default:false"`
}

func (ArticleModel) TableName() string { return "articles" }
