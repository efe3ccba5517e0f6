// Package feedback stores reader ratings on articles and computes
// rolling per-article summaries.
package feedback

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/thesignal/core/internal/models"
)

// TagVocabulary is the closed set of tags a submission may carry.
// Anything else is dropped silently.
var TagVocabulary = []string{
	"Missing perspective",
	"Outdated information",
	"Misleading headline",
	"Factual error",
	"Lacks context",
	"One-sided framing",
}

const (
	maxTags        = 6
	maxCommentLen  = 1000 // runes
	topTagCount    = 5
	recentComments = 5
)

// ErrNotConfigured is returned when no database backs the service.
var ErrNotConfigured = errors.New("feedback: database not configured")

type RatingTally struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type CommentEntry struct {
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary is the aggregate view of all feedback for one article. It is
// recomputed from a full scan on every request; per-article volume is
// small enough that incremental counters are not worth their bugs.
type Summary struct {
	TotalResponses int            `json:"totalResponses"`
	Accurate       RatingTally    `json:"accurate"`
	Balanced       RatingTally    `json:"balanced"`
	Important      RatingTally    `json:"important"`
	TopTags        []TagCount     `json:"topTags"`
	RecentComments []CommentEntry `json:"recentComments"`
}

func zeroSummary() Summary {
	return Summary{
		TopTags:        []TagCount{},
		RecentComments: []CommentEntry{},
	}
}

// Entry is one validated submission ready to persist.
type Entry struct {
	ArticleID string
	Accurate  *bool
	Balanced  *bool
	Important *bool
	Tags      []string
	Comment   string
	IP        string
}

type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger.Named("Feedback")}
}

// Submit persists one entry and returns the article's recomputed
// summary. An entry with no ratings, tags or comment is still stored.
func (s *Service) Submit(entry Entry) (Summary, error) {
	if s.db == nil {
		return zeroSummary(), ErrNotConfigured
	}

	row := models.FeedbackModel{
		ArticleID: entry.ArticleID,
		Accurate:  entry.Accurate,
		Balanced:  entry.Balanced,
		Important: entry.Important,
		Tags:      filterTags(entry.Tags),
		Comment:   truncateComment(entry.Comment),
		IP:        entry.IP,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return zeroSummary(), err
	}
	return s.ArticleSummary(entry.ArticleID)
}

// ArticleSummary recomputes the summary from every stored row for the
// article, newest first. No rows yields the zero summary.
func (s *Service) ArticleSummary(articleID string) (Summary, error) {
	if s.db == nil {
		return zeroSummary(), nil
	}

	var rows []models.FeedbackModel
	err := s.db.
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return zeroSummary(), err
	}
	return summarize(rows), nil
}

// summarize folds newest-first rows into a Summary. Top tags are ranked
// by count; on ties the tag seen first in the scan wins, so fresher
// feedback breaks ties.
func summarize(rows []models.FeedbackModel) Summary {
	summary := zeroSummary()
	if len(rows) == 0 {
		return summary
	}
	summary.TotalResponses = len(rows)

	tagCounts := map[string]int{}
	var tagOrder []string

	for _, row := range rows {
		tally(&summary.Accurate, row.Accurate)
		tally(&summary.Balanced, row.Balanced)
		tally(&summary.Important, row.Important)

		for _, tag := range row.Tags {
			if _, seen := tagCounts[tag]; !seen {
				tagOrder = append(tagOrder, tag)
			}
			tagCounts[tag]++
		}

		if len(summary.RecentComments) < recentComments && row.Comment != "" {
			summary.RecentComments = append(summary.RecentComments, CommentEntry{
				Comment:   row.Comment,
				CreatedAt: row.CreatedAt,
			})
		}
	}

	ranked := make([]TagCount, 0, len(tagOrder))
	for _, tag := range tagOrder {
		ranked = append(ranked, TagCount{Tag: tag, Count: tagCounts[tag]})
	}
	sortTagsByCount(ranked)
	if len(ranked) > topTagCount {
		ranked = ranked[:topTagCount]
	}
	summary.TopTags = ranked

	return summary
}

func sortTagsByCount(tags []TagCount) {
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Count > tags[j].Count })
}

func tally(t *RatingTally, rating *bool) {
	if rating == nil {
		return
	}
	if *rating {
		t.Yes++
	} else {
		t.No++
	}
}

// filterTags keeps only vocabulary tags, preserving submission order,
// capped at maxTags.
func filterTags(tags []string) []string {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !vocabularyTag(tag) {
			continue
		}
		kept = append(kept, tag)
		if len(kept) == maxTags {
			break
		}
	}
	return kept
}

func vocabularyTag(tag string) bool {
	for _, allowed := range TagVocabulary {
		if tag == allowed {
			return true
		}
	}
	return false
}

func truncateComment(comment string) string {
	runes := []rune(comment)
	if len(runes) > maxCommentLen {
		return string(runes[:maxCommentLen])
	}
	return comment
}

// coerceRating maps any JSON value to a tri-state rating. Only literal
// true/false count; everything else, including absence, is unknown.
func coerceRating(raw json.RawMessage) *bool {
	if len(raw) == 0 {
		return nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}
