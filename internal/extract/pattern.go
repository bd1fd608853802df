package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/ppiankov/namescreen/internal/model"
)

// namePattern matches capitalized multi-token runs: "John Smith",
// "Sarah Johnson-Smith", "M.E. Anderson". Two to four tokens, where a token
// is a capitalized word (possibly hyphenated or with an apostrophe) or a run
// of initials.
var namePattern = regexp.MustCompile(
	`(?:[A-Z][a-z]+(?:['-][A-Z][a-z]+)*|(?:[A-Z]\.)+)(?:[ \t](?:[A-Z][a-z]+(?:['-][A-Z][a-z]+)*|(?:[A-Z]\.)+)){1,3}`)

// leadingStopwords are sentence-position words that start a capitalized run
// without being part of a name.
var leadingStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "in": true, "on": true, "at": true,
	"as": true, "by": true, "for": true, "and": true, "but": true, "or": true,
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"according": true, "meanwhile": true, "however": true, "yesterday": true,
	"today": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true, "sunday": true,
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
}

// PatternStrategy scans for name-like capitalized sequences. It backstops the
// recognizer: cheap, deterministic, and it never reports unavailable.
type PatternStrategy struct{}

// NewPatternStrategy creates the pattern stage
func NewPatternStrategy() *PatternStrategy {
	return &PatternStrategy{}
}

// Name returns the strategy name
func (s *PatternStrategy) Name() string {
	return "pattern"
}

// Extract finds capitalized multi-token spans that look like person names
func (s *PatternStrategy) Extract(ctx context.Context, articleText string) Outcome {
	matches := namePattern.FindAllStringIndex(articleText, -1)

	var candidates []model.Candidate
	for _, m := range matches {
		span := articleText[m[0]:m[1]]
		trimmed, offset := trimStopwords(span)
		if trimmed == "" {
			continue
		}
		// A person name needs at least two tokens after trimming
		if len(strings.Fields(trimmed)) < 2 {
			continue
		}
		candidates = append(candidates, model.Candidate{
			Text:     trimmed,
			Method:   model.MethodPattern,
			Position: m[0] + offset,
		})
	}

	return found(candidates)
}

// trimStopwords drops leading non-name tokens and reports the byte offset of
// the first kept token within the span.
func trimStopwords(span string) (string, int) {
	offset := 0
	for {
		fields := strings.SplitN(span, " ", 2)
		word := strings.ToLower(strings.Trim(fields[0], "."))
		if !leadingStopwords[word] {
			return span, offset
		}
		if len(fields) < 2 {
			return "", offset
		}
		offset += len(fields[0]) + 1
		span = fields[1]
	}
}
