// Package match scores name variants against article candidates and renders
// the final screening decision. The engine always reaches a decision: every
// failure path degrades to a DECIDED result with a manual-review
// recommendation, never to an error.
package match

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ppiankov/namescreen/internal/llm"
	"github.com/ppiankov/namescreen/internal/model"
	"github.com/ppiankov/namescreen/internal/score"
)

// Delegate resolves medium-confidence pairs. *llm.Service satisfies it; tests
// inject fakes.
type Delegate interface {
	Enabled() bool
	Disambiguate(ctx context.Context, dc llm.DisambiguationContext) (*llm.DisambiguationResult, error)
}

// Request carries everything the engine needs for one decision
type Request struct {
	TargetName  string
	Variants    []model.NameVariant
	Candidates  []model.Candidate
	ArticleText string
	// Notes are degradation messages appended to the explanation so an
	// analyst can see which evidence was actually available.
	Notes []string
}

// Engine is the match decision core
type Engine struct {
	classifier    *Classifier
	delegate      Delegate
	excerptRadius int
}

// NewEngine creates an engine; delegate may be nil (disambiguation disabled)
func NewEngine(classifier *Classifier, delegate Delegate, excerptRadius int) *Engine {
	if excerptRadius <= 0 {
		excerptRadius = 120
	}
	return &Engine{
		classifier:    classifier,
		delegate:      delegate,
		excerptRadius: excerptRadius,
	}
}

// Match scores every (variant, candidate) pair, classifies the winner and
// renders the decision. A MatchResult is always returned.
func (e *Engine) Match(ctx context.Context, req Request) *model.MatchResult {
	result := &model.MatchResult{
		TargetName: req.TargetName,
		Timestamp:  time.Now().UTC(),
	}

	if len(req.Candidates) == 0 {
		result.Tier = model.TierLow
		result.Method = model.DecisionNoCandidates
		result.Recommendation = "Manual review required: automatic screening found nothing to compare."
		result.Explanation = e.explain("No candidates found in article: no person-name mentions were extracted, so no comparison was possible.", req.Notes)
		return result
	}

	best := e.selectBest(req.Variants, req.Candidates)
	result.Score = best.Score
	result.MatchedVariant = &best.Variant
	result.MatchedCandidate = &best.Candidate

	tier, _ := e.classifier.Classify(best.Score)
	result.Tier = tier

	switch tier {
	case model.TierHigh:
		e.decideHigh(result, best, req)
	case model.TierMedium:
		e.decideMedium(ctx, result, best, req)
	default:
		e.decideLow(result, best, req)
	}

	return result
}

// selectBest picks the maximum-scoring pair with a deterministic tie-break:
// stronger variant kind first, then the candidate with more tokens, then the
// pair encountered first in enumeration order.
func (e *Engine) selectBest(variants []model.NameVariant, candidates []model.Candidate) model.ScoredPair {
	var best model.ScoredPair
	bestSet := false

	for _, v := range variants {
		for _, c := range candidates {
			pair := model.ScoredPair{
				Variant:   v,
				Candidate: c,
				Score:     score.Similarity(v.Text, c.Text),
			}
			if !bestSet || betterPair(pair, best) {
				best = pair
				bestSet = true
			}
		}
	}

	return best
}

// kindPriority orders variant kinds for tie-breaking; lower wins
func kindPriority(kind model.VariantKind) int {
	switch kind {
	case model.VariantExact:
		return 0
	case model.VariantNickname, model.VariantInitials:
		return 1
	default:
		return 2
	}
}

func betterPair(a, b model.ScoredPair) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if pa, pb := kindPriority(a.Variant.Kind), kindPriority(b.Variant.Kind); pa != pb {
		return pa < pb
	}
	return len(strings.Fields(a.Candidate.Text)) > len(strings.Fields(b.Candidate.Text))
}

func (e *Engine) decideHigh(result *model.MatchResult, best model.ScoredPair, req Request) {
	result.Match = best.Score >= e.classifier.HighThreshold()
	result.Method = model.DecisionFuzzyHighConfidence
	result.Recommendation = "Adverse media hit: escalate for compliance review."
	result.Explanation = e.explain(fmt.Sprintf(
		"The article mention %q matched name variant %q with score %d/100 (high-confidence threshold %d); decision made algorithmically.",
		best.Candidate.Text, best.Variant.Text, best.Score, e.classifier.HighThreshold()), req.Notes)
}

func (e *Engine) decideMedium(ctx context.Context, result *model.MatchResult, best model.ScoredPair, req Request) {
	if e.delegate == nil || !e.delegate.Enabled() {
		e.decideMediumUnavailable(result, best, req, "no disambiguation delegate configured")
		return
	}

	verdict, err := e.delegate.Disambiguate(ctx, llm.DisambiguationContext{
		TargetName: req.TargetName,
		Variant:    best.Variant.Text,
		Candidate:  best.Candidate.Text,
		Excerpt:    excerpt(req.ArticleText, best.Candidate, e.excerptRadius),
		Score:      best.Score,
	})
	if err != nil {
		e.decideMediumUnavailable(result, best, req, err.Error())
		return
	}

	result.Match = verdict.Match
	result.Method = model.DecisionLLMDisambiguation
	if verdict.Match {
		result.Recommendation = "Disambiguation confirmed the match; manual review recommended."
	} else {
		result.Recommendation = "Disambiguation rejected the match; manual review recommended for the ambiguous score."
	}
	result.Explanation = e.explain(fmt.Sprintf(
		"Ambiguous score %d/100 for article mention %q vs variant %q; disambiguation delegate decided match=%t: %s",
		best.Score, best.Candidate.Text, best.Variant.Text, verdict.Match, verdict.Rationale), req.Notes)
}

// decideMediumUnavailable is the conservative fallback: no confirmed match,
// tier stays MEDIUM, and the case goes to an analyst.
func (e *Engine) decideMediumUnavailable(result *model.MatchResult, best model.ScoredPair, req Request, reason string) {
	result.Match = false
	result.Method = model.DecisionDisambiguationUnavailable
	result.Recommendation = "Manual review required."
	result.Explanation = e.explain(fmt.Sprintf(
		"Ambiguous score %d/100 for article mention %q vs variant %q; disambiguation unavailable (%s) - defaulting to manual review.",
		best.Score, best.Candidate.Text, best.Variant.Text, reason), req.Notes)
}

func (e *Engine) decideLow(result *model.MatchResult, best model.ScoredPair, req Request) {
	result.Match = false
	result.Method = model.DecisionBelowThreshold
	result.Recommendation = "Manual review required."
	result.Explanation = e.explain(fmt.Sprintf(
		"Best match score below threshold: article mention %q vs variant %q scored %d/100. No confirmed match; flagged for manual review.",
		best.Candidate.Text, best.Variant.Text, best.Score), req.Notes)
}

func (e *Engine) explain(text string, notes []string) string {
	if len(notes) == 0 {
		return text
	}
	return text + " [degraded: " + strings.Join(notes, "; ") + "]"
}

// excerpt returns the article text around the candidate mention
func excerpt(text string, c model.Candidate, radius int) string {
	pos := c.Position
	if pos < 0 || pos >= len(text) {
		pos = strings.Index(strings.ToLower(text), strings.ToLower(c.Text))
	}
	if pos < 0 {
		if len(text) <= 2*radius {
			return text
		}
		return text[:2*radius]
	}

	start := pos - radius
	if start < 0 {
		start = 0
	}
	end := pos + len(c.Text) + radius
	if end > len(text) {
		end = len(text)
	}
	return strings.ToValidUTF8(text[start:end], "")
}
