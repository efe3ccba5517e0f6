package generation

import (
	"fmt"
	"strings"
	"time"

	"github.com/thesignal/core/internal/modules/news"
)

// buildPrompt assembles the editorial instruction for one category. The
// output-format section pins the JSON shape the parser expects; the
// guidelines keep the model from editorializing or over-flagging
// breaking news.
func buildPrompt(cat news.Category, count int, now time.Time) string {
	today := now.Format("Monday, January 2, 2006")

	storyWord := "stories"
	articleWord := "articles"
	if count == 1 {
		storyWord = "story"
		articleWord = "article"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are a senior news editor for "The Signal", an impartial news aggregator. Today is %s.

Search for the most important %s news stories happening today or in the last 24 hours. Focus on: %s.

Find %d significant, distinct news %s. For each story, search for multiple sources to ensure balanced coverage.

After researching, respond with ONLY a JSON array (no markdown fencing, no explanation) of exactly %d %s in this format:
[
  {
    "headline": "Clear, factual headline (no sensationalism)",
    "summary": "2-3 sentence neutral summary of the story",
    "body": "4-6 paragraph comprehensive article written in neutral, factual journalistic tone. Present multiple perspectives where applicable. Include relevant context, data, and quotes from sources. Each paragraph should be separated by \n\n",
    "sources": ["source name 1", "source name 2"],
    "isBreaking": false
  }
]

Guidelines:
- Write in the style of Reuters or AP News: neutral, factual, no opinion
- Present multiple sides of controversial topics
- Mark at most 1 story as "isBreaking": true (only if truly breaking news)
- Headlines should be informative, not clickbait
- Each article body should be substantive (4-6 paragraphs)`,
		today, strings.ToLower(cat.Label), cat.Description, count, storyWord, count, articleWord)

	return b.String()
}
