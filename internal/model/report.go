package model

import "time"

// Report is the full JSON artifact produced for one screening run.
// The match_result block is the stable machine contract; analysis_details and
// risk_assessment carry analyst context.
type Report struct {
	AnalysisTimestamp time.Time       `json:"analysis_timestamp"`
	TargetName        string          `json:"target_name"`
	Source            ArticleSource   `json:"source"`
	MatchResult       ResultJSON      `json:"match_result"`
	AnalysisDetails   AnalysisDetails `json:"analysis_details"`
	RiskAssessment    RiskAssessment  `json:"risk_assessment"`
}

// ResultJSON is the wire form of a MatchResult
type ResultJSON struct {
	TargetName         string  `json:"target_name"`
	MatchFound         bool    `json:"match_found"`
	ConfidenceTier     Tier    `json:"confidence_tier"`
	Score              int     `json:"score"`
	Method             string  `json:"method"`
	MatchedArticleName *string `json:"matched_article_name"`
	MatchedVariant     *string `json:"matched_variant"`
	Explanation        string  `json:"explanation"`
	Recommendation     string  `json:"recommendation"`
	Timestamp          string  `json:"timestamp"` // ISO-8601 / RFC 3339
}

// ArticleSource records where the article text came from
type ArticleSource struct {
	Path      string `json:"path,omitempty"` // Local file path
	URL       string `json:"url,omitempty"`  // Fetched URL
	Length    int    `json:"length"`         // Characters of article text
	FromCache bool   `json:"from_cache,omitempty"`
}

// AnalysisDetails exposes the evidence behind the decision
type AnalysisDetails struct {
	NameVariantsGenerated []NameVariant `json:"name_variants_generated"`
	NamesFoundInArticle   []Candidate   `json:"names_found_in_article"`
	TotalVariants         int           `json:"total_variants"`
	TotalArticleNames     int           `json:"total_article_names"`
	VariantsPartial       bool          `json:"variants_partial"`       // Augmentation failed, deterministic set only
	ExtractionDegraded    bool          `json:"extraction_degraded"`    // NER stage was unavailable
	DisambiguationUsed    bool          `json:"disambiguation_used"`
}

// RiskAssessment summarizes the regulatory handling recommendation
type RiskAssessment struct {
	RequiresManualReview bool   `json:"requires_manual_review"`
	RiskLevel            string `json:"risk_level"` // high, medium, low
}

// WireResult converts a MatchResult to its JSON wire form
func WireResult(r *MatchResult) ResultJSON {
	out := ResultJSON{
		TargetName:     r.TargetName,
		MatchFound:     r.Match,
		ConfidenceTier: r.Tier,
		Score:          r.Score,
		Method:         r.Method,
		Explanation:    r.Explanation,
		Recommendation: r.Recommendation,
		Timestamp:      r.Timestamp.UTC().Format(time.RFC3339),
	}
	if r.MatchedCandidate != nil {
		name := r.MatchedCandidate.Text
		out.MatchedArticleName = &name
	}
	if r.MatchedVariant != nil {
		variant := r.MatchedVariant.Text
		out.MatchedVariant = &variant
	}
	return out
}

// AssessRisk derives the risk assessment from a decision.
// False negatives are costlier than false positives in this domain, so anything
// short of a clean high-confidence outcome keeps the manual-review flag set.
func AssessRisk(r *MatchResult) RiskAssessment {
	requiresReview := r.Match || r.Tier != TierHigh

	level := "low"
	if r.Match && r.Tier == TierHigh {
		level = "high"
	} else if requiresReview {
		level = "medium"
	}

	return RiskAssessment{
		RequiresManualReview: requiresReview,
		RiskLevel:            level,
	}
}
