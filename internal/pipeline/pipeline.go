// Package pipeline orchestrates a complete screening run: article acquisition,
// variant generation, candidate extraction and the match decision, assembled
// into a report.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ppiankov/namescreen/internal/cache"
	"github.com/ppiankov/namescreen/internal/extract"
	"github.com/ppiankov/namescreen/internal/llm"
	"github.com/ppiankov/namescreen/internal/match"
	"github.com/ppiankov/namescreen/internal/model"
	"github.com/ppiankov/namescreen/internal/variants"
)

// Pipeline wires the screening stages together
type Pipeline struct {
	generator *variants.Generator
	extractor *extract.Extractor
	engine    *match.Engine
	fetcher   *Fetcher
	renderer  *Renderer
	config    *model.Config
}

// New creates a pipeline from the configuration. An unreachable generative
// provider does not fail construction; the affected stages degrade at runtime.
func New(cfg *model.Config) (*Pipeline, error) {
	classifier, err := match.NewClassifier(cfg.Match)
	if err != nil {
		return nil, err
	}

	svc, err := llm.NewService(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		fmt.Printf("Warning: failed to initialize generative provider: %v\n", err)
		svc = nil
	}

	store := buildCache(cfg.Cache)
	nerClient := extract.NewNERClient(cfg.Extract.NEREndpoint, cfg.Extract.NERTimeout)

	var delegate match.Delegate
	if svc.Enabled() {
		delegate = svc
	}

	return &Pipeline{
		generator: variants.NewGenerator(cfg.Variants, svc, store, cfg.Cache.DiskTTL),
		extractor: extract.NewExtractor(nerClient, svc, cfg.Output.Verbose),
		engine:    match.NewEngine(classifier, delegate, cfg.Match.ExcerptRadius),
		fetcher:   NewFetcher(cfg.HTTP, store, cfg.Cache.DiskTTL),
		renderer:  NewRenderer(cfg.Output.Verbose),
		config:    cfg,
	}, nil
}

func buildCache(cfg model.CacheConfig) cache.Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Dir != "" {
		return cache.NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
	}
	return cache.NewMemoryCache(cfg.MemoryTTL, 10*time.Minute)
}

// Request identifies the screening subject and the article source. Exactly one
// of FilePath, URL or Text must be set.
type Request struct {
	TargetName string
	FilePath   string
	URL        string
	Text       string
}

// Screen runs the full analysis and always returns a report when the inputs
// were valid. Degraded stages are reflected inside the report, not as errors.
func (p *Pipeline) Screen(ctx context.Context, req Request) (*model.Report, error) {
	name := strings.TrimSpace(req.TargetName)
	if name == "" {
		return nil, fmt.Errorf("target name cannot be empty")
	}

	text, source, err := p.resolveArticle(ctx, req)
	if err != nil {
		return nil, err
	}

	// Variant generation and extraction are independent; run them in parallel.
	var (
		wg         sync.WaitGroup
		variantSet *model.VariantSet
		variantErr error
		extracted  extract.Result
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		variantSet, variantErr = p.generator.Generate(ctx, name)
	}()
	go func() {
		defer wg.Done()
		extracted = p.extractor.Extract(ctx, text)
	}()
	wg.Wait()

	if variantErr != nil {
		return nil, fmt.Errorf("generate variants: %w", variantErr)
	}

	var notes []string
	if variantSet.Partial {
		notes = append(notes, "variant augmentation unavailable, deterministic variants only")
	}
	if extracted.NERUnavailable {
		notes = append(notes, "entity recognizer unavailable")
	}

	result := p.engine.Match(ctx, match.Request{
		TargetName:  name,
		Variants:    variantSet.Variants,
		Candidates:  extracted.Candidates,
		ArticleText: text,
		Notes:       notes,
	})

	source.Length = len(text)
	return &model.Report{
		AnalysisTimestamp: time.Now().UTC(),
		TargetName:        name,
		Source:            source,
		MatchResult:       model.WireResult(result),
		AnalysisDetails: model.AnalysisDetails{
			NameVariantsGenerated: variantSet.Variants,
			NamesFoundInArticle:   extracted.Candidates,
			TotalVariants:         len(variantSet.Variants),
			TotalArticleNames:     len(extracted.Candidates),
			VariantsPartial:       variantSet.Partial,
			ExtractionDegraded:    extracted.NERUnavailable,
			DisambiguationUsed:    result.Method == model.DecisionLLMDisambiguation,
		},
		RiskAssessment: model.AssessRisk(result),
	}, nil
}

// Renderer exposes the pipeline's configured renderer
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

func (p *Pipeline) resolveArticle(ctx context.Context, req Request) (string, model.ArticleSource, error) {
	switch {
	case req.Text != "":
		return req.Text, model.ArticleSource{}, nil

	case req.URL != "":
		fetched, err := p.fetcher.Fetch(ctx, req.URL)
		if err != nil {
			return "", model.ArticleSource{}, err
		}
		return fetched.Text, model.ArticleSource{URL: fetched.FinalURL, FromCache: fetched.FromCache}, nil

	case req.FilePath != "":
		text, err := LoadArticle(req.FilePath)
		if err != nil {
			return "", model.ArticleSource{}, err
		}
		return text, model.ArticleSource{Path: req.FilePath}, nil

	default:
		return "", model.ArticleSource{}, fmt.Errorf("no article source: provide a file path or URL")
	}
}

// LoadArticle reads article text from a local file. A missing or empty file is
// an input error, distinct from an article that merely contains no names.
func LoadArticle(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("article file not found: %s", path)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("article file is empty: %s", path)
	}

	return text, nil
}
