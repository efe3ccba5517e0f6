// Package slug derives URL-safe identifiers from article headlines.
package slug

import (
	"strings"
	"time"
	"unicode"
)

// MaxLen is the maximum length of a slug, date suffix included.
const MaxLen = 80

const dateLayout = "2006-01-02"

// Make converts a headline into a lowercase, hyphen-separated slug.
// It never fails; an empty or fully-stripped headline yields "".
// Callers must treat an empty slug as unusable before persisting.
func Make(headline string) string {
	s := strings.ToLower(headline)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\'', '‘', '’':
			return -1
		}
		return r
	}, s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte('-')
		}
	}

	return trim(collapse(b.String()))
}

// WithDateSuffix appends the publication date to a slug, shortening the
// base so the result stays within MaxLen. Same-day regenerations of a
// similar headline collide; distinct days never do.
func WithDateSuffix(base string, t time.Time, loc *time.Location) string {
	if base == "" {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	date := t.In(loc).Format(dateLayout)

	budget := MaxLen - len(date) - 1
	if len(base) > budget {
		base = trim(base[:budget])
	}
	return base + "-" + date
}

// collapse reduces hyphen runs to a single hyphen.
func collapse(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

func trim(s string) string {
	s = strings.Trim(s, "-")
	if len(s) > MaxLen {
		s = strings.Trim(s[:MaxLen], "-")
	}
	return s
}
