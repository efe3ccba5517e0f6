package feedback

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/thesignal/core/internal/models"
)

func boolPtr(v bool) *bool { return &v }

func entryAt(t time.Time, fn func(*models.FeedbackModel)) models.FeedbackModel {
	row := models.FeedbackModel{ArticleID: "a"}
	row.CreatedAt = t
	if fn != nil {
		fn(&row)
	}
	return row
}

func TestSummarizeTallies(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	rows := []models.FeedbackModel{
		entryAt(now, func(r *models.FeedbackModel) {
			r.Accurate = boolPtr(true)
			r.Balanced = boolPtr(true)
		}),
		entryAt(now.Add(-time.Minute), func(r *models.FeedbackModel) {
			r.Accurate = boolPtr(false)
		}),
		entryAt(now.Add(-2*time.Minute), nil), // all unknown
	}

	s := summarize(rows)
	if s.TotalResponses != 3 {
		t.Errorf("totalResponses = %d, want 3", s.TotalResponses)
	}
	if s.Accurate.Yes != 1 || s.Accurate.No != 1 {
		t.Errorf("accurate = %+v, want yes:1 no:1", s.Accurate)
	}
	if s.Balanced.Yes != 1 || s.Balanced.No != 0 {
		t.Errorf("balanced = %+v", s.Balanced)
	}
	if s.Important.Yes != 0 || s.Important.No != 0 {
		t.Errorf("important = %+v, unknowns must not count", s.Important)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := summarize(nil)
	if s.TotalResponses != 0 {
		t.Errorf("totalResponses = %d", s.TotalResponses)
	}
	if s.TopTags == nil || s.RecentComments == nil {
		t.Error("zero summary must carry empty slices, not nil")
	}
}

func TestSummarizeTopTags(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	rows := []models.FeedbackModel{
		entryAt(now, func(r *models.FeedbackModel) {
			r.Tags = models.StringArray{"Factual error", "Lacks context"}
		}),
		entryAt(now.Add(-time.Minute), func(r *models.FeedbackModel) {
			r.Tags = models.StringArray{"Factual error", "Misleading headline"}
		}),
	}

	s := summarize(rows)
	if len(s.TopTags) != 3 {
		t.Fatalf("topTags = %+v", s.TopTags)
	}
	if s.TopTags[0].Tag != "Factual error" || s.TopTags[0].Count != 2 {
		t.Errorf("topTags[0] = %+v", s.TopTags[0])
	}
	// count tie between the two single tags: first seen in the
	// newest-first scan ranks higher
	if s.TopTags[1].Tag != "Lacks context" {
		t.Errorf("tie broken wrong: %+v", s.TopTags)
	}
}

func TestSummarizeRecentComments(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	var rows []models.FeedbackModel
	for i := 0; i < 8; i++ {
		i := i
		rows = append(rows, entryAt(now.Add(-time.Duration(i)*time.Minute), func(r *models.FeedbackModel) {
			if i == 1 {
				return // no comment
			}
			r.Comment = "comment"
		}))
	}

	s := summarize(rows)
	if len(s.RecentComments) != 5 {
		t.Errorf("recentComments = %d, want 5", len(s.RecentComments))
	}
	// newest kept first, the empty comment skipped
	if !s.RecentComments[0].CreatedAt.Equal(now) {
		t.Errorf("first comment at %v, want %v", s.RecentComments[0].CreatedAt, now)
	}
	if s.RecentComments[1].CreatedAt.Equal(now.Add(-time.Minute)) {
		t.Error("empty comment must be skipped")
	}
}

func TestFilterTags(t *testing.T) {
	got := filterTags([]string{"Factual error", "not-a-real-tag"})
	if len(got) != 1 || got[0] != "Factual error" {
		t.Errorf("filterTags = %v, want [Factual error]", got)
	}
}

func TestFilterTagsCap(t *testing.T) {
	var all []string
	all = append(all, TagVocabulary...)
	all = append(all, TagVocabulary...)
	if got := filterTags(all); len(got) != maxTags {
		t.Errorf("len = %d, want %d", len(got), maxTags)
	}
}

func TestTruncateComment(t *testing.T) {
	long := strings.Repeat("é", 1500)
	got := truncateComment(long)
	if n := len([]rune(got)); n != maxCommentLen {
		t.Errorf("rune length = %d, want %d", n, maxCommentLen)
	}
	if got := truncateComment("short"); got != "short" {
		t.Errorf("got %q", got)
	}
}

func TestCoerceRating(t *testing.T) {
	cases := []struct {
		raw  string
		want *bool
	}{
		{"true", boolPtr(true)},
		{"false", boolPtr(false)},
		{`"yes"`, nil},
		{"1", nil},
		{"null", nil},
		{"", nil},
		{`{"nested": true}`, nil},
	}
	for _, tc := range cases {
		got := coerceRating(json.RawMessage(tc.raw))
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("coerceRating(%q) = %v, want unknown", tc.raw, *got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Errorf("coerceRating(%q) = %v, want %v", tc.raw, got, *tc.want)
		}
	}
}
