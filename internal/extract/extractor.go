package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/ppiankov/namescreen/internal/llm"
	"github.com/ppiankov/namescreen/internal/model"
	"github.com/ppiankov/namescreen/internal/score"
)

// Result is the merged extraction output plus degradation flags for the
// analyst-facing report.
type Result struct {
	Candidates     []model.Candidate
	NERUnavailable bool // Structured stage could not run
	UsedFallback   bool // Generative stage was invoked
}

// Extractor runs the cascade. The candidate set may legitimately be empty;
// malformed or empty text yields an empty set, never an error.
type Extractor struct {
	ner      Strategy
	pattern  Strategy
	fallback Strategy
	verbose  bool
}

// NewExtractor wires the default cascade. nerClient and svc may be nil.
func NewExtractor(nerClient *NERClient, svc *llm.Service, verbose bool) *Extractor {
	return &Extractor{
		ner:      NewNERStrategy(nerClient),
		pattern:  NewPatternStrategy(),
		fallback: NewGenerativeStrategy(svc),
		verbose:  verbose,
	}
}

// Extract returns every person-name candidate found in the article text
func (e *Extractor) Extract(ctx context.Context, articleText string) Result {
	var result Result

	if strings.TrimSpace(articleText) == "" {
		return result
	}

	m := newMerger()

	nerOutcome := e.ner.Extract(ctx, articleText)
	if nerOutcome.Status == StatusUnavailable {
		result.NERUnavailable = true
		e.warnf("entity recognizer unavailable, continuing degraded: %v", nerOutcome.Err)
	}
	m.addAll(nerOutcome.Candidates)

	m.addAll(e.pattern.Extract(ctx, articleText).Candidates)

	// The generative stage is a last resort: nothing found so far, or the
	// recognizer is down and pattern evidence stands alone.
	if m.empty() || result.NERUnavailable {
		fallbackOutcome := e.fallback.Extract(ctx, articleText)
		switch fallbackOutcome.Status {
		case StatusUnavailable:
			if m.empty() {
				e.warnf("generative extraction unavailable: %v", fallbackOutcome.Err)
			}
		default:
			result.UsedFallback = true
			m.addAll(fallbackOutcome.Candidates)
		}
	}

	result.Candidates = m.candidates
	return result
}

func (e *Extractor) warnf(format string, args ...interface{}) {
	if e.verbose {
		fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
	}
}

// merger dedupes case-insensitively while preserving the first-seen casing
// and extraction method.
type merger struct {
	candidates []model.Candidate
	seen       map[string]bool
}

func newMerger() *merger {
	return &merger{seen: make(map[string]bool)}
}

func (m *merger) addAll(candidates []model.Candidate) {
	for _, c := range candidates {
		m.add(c)
	}
}

func (m *merger) add(c model.Candidate) {
	c.Text = strings.Join(strings.Fields(c.Text), " ")
	if !plausibleName(c.Text) {
		return
	}

	key := score.Normalize(c.Text)
	if key == "" || m.seen[key] {
		return
	}
	m.seen[key] = true
	m.candidates = append(m.candidates, c)
}

func (m *merger) empty() bool {
	return len(m.candidates) == 0
}

// plausibleName drops spans too short or too symbol-heavy to be names
func plausibleName(s string) bool {
	if len([]rune(s)) < 2 {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
