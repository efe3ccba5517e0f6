package generation

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrUnparseable marks model output that could not be reduced to a JSON
// article array. Callers log a truncated sample of the raw text and fail
// the whole category rather than writing partial data.
var ErrUnparseable = errors.New("unparseable generation result")

var (
	fenceOpenRe  = regexp.MustCompile("^```(?:json)?\n?")
	fenceCloseRe = regexp.MustCompile("\n?```$")
	citationRe   = regexp.MustCompile(`</?cite[^>]*>`)
)

type generatedArticle struct {
	Headline   string   `json:"headline"`
	Summary    string   `json:"summary"`
	Body       string   `json:"body"`
	Sources    []string `json:"sources"`
	IsBreaking bool     `json:"isBreaking"`
}

// parseArticles extracts an article array from free-form model output.
// The text is unstructured: it may be fenced, wrapped in commentary, or
// carry citation tags injected by the search tool. Elements that fail to
// decode or lack a required text field are skipped; the parse only fails
// when no element survives.
func parseArticles(raw string) ([]generatedArticle, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = fenceOpenRe.ReplaceAllString(text, "")
		text = fenceCloseRe.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
	}
	if !strings.HasPrefix(text, "[") {
		start := strings.Index(text, "[")
		end := strings.LastIndex(text, "]")
		if start == -1 || end <= start {
			return nil, ErrUnparseable
		}
		text = text[start : end+1]
	}
	text = citationRe.ReplaceAllString(text, "")

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elements); err != nil {
		return nil, ErrUnparseable
	}

	articles := make([]generatedArticle, 0, len(elements))
	for _, element := range elements {
		var a generatedArticle
		if err := json.Unmarshal(element, &a); err != nil {
			continue
		}
		if a.Headline == "" || a.Summary == "" || a.Body == "" {
			continue
		}
		if a.Sources == nil {
			a.Sources = []string{}
		}
		articles = append(articles, a)
	}
	if len(articles) == 0 {
		return nil, ErrUnparseable
	}
	return articles, nil
}

// rawSample returns the head of the offending text for diagnostics.
func rawSample(raw string) string {
	const max = 500
	if len(raw) > max {
		return raw[:max]
	}
	return raw
}
