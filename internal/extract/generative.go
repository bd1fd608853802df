package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/namescreen/internal/llm"
	"github.com/ppiankov/namescreen/internal/model"
)

// GenerativeStrategy asks the generative service to list person names.
// It is the expensive last resort, invoked only when the earlier stages come
// up empty or the recognizer is down.
type GenerativeStrategy struct {
	svc *llm.Service
}

// NewGenerativeStrategy wraps the generative service; svc may be nil or
// disabled, in which case the stage reports unavailable.
func NewGenerativeStrategy(svc *llm.Service) *GenerativeStrategy {
	return &GenerativeStrategy{svc: svc}
}

// Name returns the strategy name
func (s *GenerativeStrategy) Name() string {
	return "fallback-generative"
}

// Extract asks the model for person names and locates them in the text
func (s *GenerativeStrategy) Extract(ctx context.Context, articleText string) Outcome {
	if !s.svc.Enabled() {
		return unavailable(fmt.Errorf("no generative provider configured"))
	}

	names, err := s.svc.ExtractNames(ctx, articleText)
	if err != nil {
		return unavailable(err)
	}

	lowerText := strings.ToLower(articleText)
	var candidates []model.Candidate
	for _, name := range names {
		candidates = append(candidates, model.Candidate{
			Text:     name,
			Method:   model.MethodGenerative,
			Position: strings.Index(lowerText, strings.ToLower(name)),
		})
	}

	return found(candidates)
}
