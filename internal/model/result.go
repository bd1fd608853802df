package model

import "time"

// Tier is the confidence classification of the winning score
type Tier string

const (
	TierHigh   Tier = "HIGH"
	TierMedium Tier = "MEDIUM"
	TierLow    Tier = "LOW"
)

// Action is the recommended downstream handling for a tier
type Action string

const (
	ActionAutoDecide   Action = "auto_decide"   // Accept the algorithmic decision
	ActionDisambiguate Action = "disambiguate"  // Consult the disambiguation delegate
	ActionManualReview Action = "manual_review" // An analyst must review regardless of decision
)

// Decision method tags reported in MatchResult.Method
const (
	DecisionFuzzyHighConfidence       = "fuzzy_high_confidence"
	DecisionLLMDisambiguation         = "llm_disambiguation"
	DecisionDisambiguationUnavailable = "disambiguation_unavailable"
	DecisionBelowThreshold            = "below_threshold"
	DecisionNoCandidates              = "no_candidates"
)

// MatchResult is the engine's final decision. One is always produced:
// the engine degrades evidence, it never fails to decide.
type MatchResult struct {
	TargetName       string       `json:"target_name"`
	Match            bool         `json:"match_found"`
	Tier             Tier         `json:"confidence_tier"`
	Score            int          `json:"score"`
	Method           string       `json:"method"`
	MatchedCandidate *Candidate   `json:"matched_article_name"`
	MatchedVariant   *NameVariant `json:"matched_variant"`
	Explanation      string       `json:"explanation"` // Always populated, even for no-match
	Recommendation   string       `json:"recommendation"`
	Timestamp        time.Time    `json:"timestamp"`
}
