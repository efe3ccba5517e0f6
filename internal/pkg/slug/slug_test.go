package slug

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"EU and African Union Reach Landmark Migration and Trade Agreement", "eu-and-african-union-reach-landmark-migration-and-trade-agreement"},
		{"Apple's New Chip: What It Means", "apples-new-chip-what-it-means"},
		{"  Leading   and trailing   spaces  ", "leading-and-trailing-spaces"},
		{"---already---hyphenated---", "already-hyphenated"},
		{"Vol. 2 — Markets & Money!", "vol-2-markets-money"},
		{"日本語のみ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		got := Make(tc.in)
		if got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeShape(t *testing.T) {
	inputs := []string{
		"Breaking: Fed Holds Rates Steady Amid 'Uncertainty'",
		strings.Repeat("very long headline ", 20),
		"!!!???",
		"a",
	}
	for _, in := range inputs {
		got := Make(in)
		if got == "" {
			continue
		}
		if !slugPattern.MatchString(got) {
			t.Errorf("Make(%q) = %q does not match slug pattern", in, got)
		}
		if len(got) > MaxLen {
			t.Errorf("Make(%q) length = %d, want <= %d", in, len(got), MaxLen)
		}
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"eu-and-african-union-reach-landmark-migration-and-trade-agreement",
		"tech-sector-rallies-on-earnings",
	}
	for _, in := range inputs {
		if got := Make(in); got != in {
			t.Errorf("Make(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestWithDateSuffix(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	at := time.Date(2026, 3, 14, 10, 0, 0, 0, loc)

	got := WithDateSuffix("fed-holds-rates", at, loc)
	if got != "fed-holds-rates-2026-03-14" {
		t.Errorf("WithDateSuffix = %q", got)
	}

	long := Make(strings.Repeat("markets ", 30))
	suffixed := WithDateSuffix(long, at, loc)
	if len(suffixed) > MaxLen {
		t.Errorf("suffixed slug length = %d, want <= %d", len(suffixed), MaxLen)
	}
	if !strings.HasSuffix(suffixed, "-2026-03-14") {
		t.Errorf("suffixed slug %q missing date suffix", suffixed)
	}
	if !slugPattern.MatchString(suffixed) {
		t.Errorf("suffixed slug %q does not match slug pattern", suffixed)
	}

	if got := WithDateSuffix("", at, loc); got != "" {
		t.Errorf("WithDateSuffix on empty base = %q, want empty", got)
	}
}
