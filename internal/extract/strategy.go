// Package extract pulls candidate person-name mentions out of article text
// using a cascade of independent strategies: an external person-entity
// recognizer, a capitalized-pattern scan, and a generative fallback. Stage
// results merge; a missing recognizer degrades the run instead of failing it.
package extract

import (
	"context"

	"github.com/ppiankov/namescreen/internal/model"
)

// Status is the typed outcome of one extraction strategy
type Status int

const (
	// StatusFound means the strategy produced candidates
	StatusFound Status = iota
	// StatusEmpty means the strategy ran but found nothing
	StatusEmpty
	// StatusUnavailable means the strategy's dependency could not be used
	StatusUnavailable
)

// Outcome carries a strategy's candidates and its status
type Outcome struct {
	Status     Status
	Candidates []model.Candidate
	Err        error // Set when Status is StatusUnavailable
}

// Strategy is one stage of the extraction cascade
type Strategy interface {
	Name() string
	Extract(ctx context.Context, articleText string) Outcome
}

func found(candidates []model.Candidate) Outcome {
	if len(candidates) == 0 {
		return Outcome{Status: StatusEmpty}
	}
	return Outcome{Status: StatusFound, Candidates: candidates}
}

func unavailable(err error) Outcome {
	return Outcome{Status: StatusUnavailable, Err: err}
}
