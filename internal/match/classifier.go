package match

import (
	"fmt"

	"github.com/ppiankov/namescreen/internal/model"
)

// Classifier maps a similarity score to a confidence tier and the
// recommended downstream action. Pure: no state beyond the thresholds.
type Classifier struct {
	high   int
	medium int
}

// NewClassifier validates that the thresholds strictly partition [0,100]:
// HIGH is score >= high, MEDIUM is medium <= score < high, LOW is the rest.
func NewClassifier(cfg model.MatchConfig) (*Classifier, error) {
	if cfg.MediumThreshold <= 0 || cfg.HighThreshold > 100 || cfg.MediumThreshold >= cfg.HighThreshold {
		return nil, fmt.Errorf("invalid tier thresholds: need 0 < medium (%d) < high (%d) <= 100",
			cfg.MediumThreshold, cfg.HighThreshold)
	}

	return &Classifier{
		high:   cfg.HighThreshold,
		medium: cfg.MediumThreshold,
	}, nil
}

// Classify returns the tier and action for a score
func (c *Classifier) Classify(score int) (model.Tier, model.Action) {
	switch {
	case score >= c.high:
		return model.TierHigh, model.ActionAutoDecide
	case score >= c.medium:
		return model.TierMedium, model.ActionDisambiguate
	default:
		return model.TierLow, model.ActionManualReview
	}
}

// HighThreshold exposes the HIGH boundary for explanations
func (c *Classifier) HighThreshold() int {
	return c.high
}
