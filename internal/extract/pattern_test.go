package extract

import (
	"context"
	"strings"
	"testing"
)

func patternTexts(t *testing.T, article string) []string {
	t.Helper()
	outcome := NewPatternStrategy().Extract(context.Background(), article)
	if outcome.Status != StatusFound {
		t.Fatalf("pattern stage returned status %v", outcome.Status)
	}
	var texts []string
	for _, c := range outcome.Candidates {
		texts = append(texts, c.Text)
	}
	return texts
}

func TestPattern_SimpleName(t *testing.T) {
	got := patternTexts(t, "John Smith, a local businessman, was arrested yesterday for fraud.")
	if len(got) != 1 || got[0] != "John Smith" {
		t.Errorf("expected [John Smith], got %v", got)
	}
}

func TestPattern_Initials(t *testing.T) {
	got := patternTexts(t, "M.E. Anderson was promoted to senior vice president.")
	if len(got) != 1 || got[0] != "M.E. Anderson" {
		t.Errorf("expected [M.E. Anderson], got %v", got)
	}
}

func TestPattern_Hyphenated(t *testing.T) {
	got := patternTexts(t, "Sarah Johnson-Smith was quoted in the article.")
	if len(got) != 1 || got[0] != "Sarah Johnson-Smith" {
		t.Errorf("expected [Sarah Johnson-Smith], got %v", got)
	}
}

func TestPattern_LeadingStopwordTrimmed(t *testing.T) {
	outcome := NewPatternStrategy().Extract(context.Background(), "Yesterday John Smith appeared in court.")
	if len(outcome.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(outcome.Candidates))
	}
	c := outcome.Candidates[0]
	if c.Text != "John Smith" {
		t.Errorf("expected trimmed candidate John Smith, got %q", c.Text)
	}
	if c.Position != strings.Index("Yesterday John Smith appeared in court.", "John") {
		t.Errorf("position not adjusted after trim: %d", c.Position)
	}
}

func TestPattern_SingleTokenRejected(t *testing.T) {
	// "However Smith" trims to one token, which is not a name
	got := patternTexts(t, "However Smith declined to comment.")
	if len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestPattern_NoNames(t *testing.T) {
	got := patternTexts(t, "the quick brown fox jumps over the lazy dog")
	if len(got) != 0 {
		t.Errorf("expected no candidates in lowercase text, got %v", got)
	}
}

func TestPattern_MultipleNames(t *testing.T) {
	got := patternTexts(t, "Bill Johnson met with Michelle Brown on the case.")
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %v", got)
	}
	if got[0] != "Bill Johnson" || got[1] != "Michelle Brown" {
		t.Errorf("unexpected candidates: %v", got)
	}
}
