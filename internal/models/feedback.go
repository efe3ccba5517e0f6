package models

// FeedbackModel is one reader feedback submission for an article.
// Ratings are tri-state: nil means the reader left the dimension unset.
type FeedbackModel struct {
	Base
	ArticleID string      `json:"article_id" gorm:"type:char(36);index;not null"`
	Accurate  *bool       `json:"accurate"`
	Balanced  *bool       `json:"balanced"`
	Important *bool       `json:"important"`
	Tags      StringArray `json:"tags"       gorm:"type:json"`
	Comment   string      `json:"comment"    gorm:"type:text"`
	IP        string      `json:"-"`
}

func (FeedbackModel) TableName() string { return "feedback_entries" }
