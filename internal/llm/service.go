package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/namescreen/internal/worker"
)

// Service is the pipeline's entry point to the generative provider. It owns
// the rate limiter and the prompt/parse logic for the three screening
// operations. A Service with no provider reports Enabled() == false and the
// pipeline degrades accordingly.
type Service struct {
	provider Provider
	limiter  *worker.Limiter
	config   Config
}

// DisambiguationContext is the evidence handed to the delegate for a
// medium-confidence pair.
type DisambiguationContext struct {
	TargetName string
	Variant    string
	Candidate  string
	Excerpt    string // Article text around the candidate mention
	Score      int    // Heuristic score that triggered disambiguation
}

// DisambiguationResult is the delegate's verdict
type DisambiguationResult struct {
	Match     bool
	Rationale string
}

// NewService creates a service; provider may be nil (disabled)
func NewService(config Config) (*Service, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}

	return &Service{
		provider: provider,
		limiter:  worker.NewLimiter(rps, 1),
		config:   config,
	}, nil
}

// Enabled reports whether a generative provider is configured
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// ProviderName returns the configured provider name, or "" when disabled
func (s *Service) ProviderName() string {
	if !s.Enabled() {
		return ""
	}
	return s.provider.Name()
}

// GenerateVariants requests culturally-informed variants of the target name
func (s *Service) GenerateVariants(ctx context.Context, fullName string) ([]string, error) {
	resp, err := s.complete(ctx, BuildVariantPrompt(fullName))
	if err != nil {
		return nil, err
	}
	return ParseNameList(resp.Text), nil
}

// ExtractNames requests person names mentioned in the article text
func (s *Service) ExtractNames(ctx context.Context, articleText string) ([]string, error) {
	resp, err := s.complete(ctx, BuildExtractPrompt(articleText))
	if err != nil {
		return nil, err
	}
	return ParseNameList(resp.Text), nil
}

// Disambiguate asks the delegate whether an ambiguous mention refers to the
// target. Callers treat any error as "delegate unavailable" and fall back to
// the conservative default.
func (s *Service) Disambiguate(ctx context.Context, dc DisambiguationContext) (*DisambiguationResult, error) {
	prompt := BuildDisambiguationPrompt(dc.TargetName, dc.Variant, dc.Candidate, dc.Excerpt, dc.Score)
	resp, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	match, rationale, err := ParseDisambiguation(resp.Text)
	if err != nil {
		return nil, err
	}

	return &DisambiguationResult{Match: match, Rationale: rationale}, nil
}

func (s *Service) complete(ctx context.Context, prompt string) (*CompletionResponse, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("no generative provider configured")
	}

	if err := s.limiter.Wait(ctx, s.provider.Name()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	return s.provider.Complete(ctx, CompletionRequest{
		System:      screeningSystem,
		Prompt:      prompt,
		MaxTokens:   s.config.MaxTokens,
		Temperature: 0.2,
	})
}
