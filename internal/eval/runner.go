package eval

import (
	"context"
	"sort"

	"github.com/ppiankov/namescreen/internal/model"
	"github.com/ppiankov/namescreen/internal/pipeline"
	"github.com/ppiankov/namescreen/internal/worker"
)

// Screener is the pipeline surface the runner needs. *pipeline.Pipeline
// satisfies it.
type Screener interface {
	Screen(ctx context.Context, req pipeline.Request) (*model.Report, error)
}

// CaseResult is the outcome of one evaluated case
type CaseResult struct {
	Case      Case
	Report    *model.Report
	Predicted bool
	Correct   bool
	Err       error
}

// GetError satisfies worker.Result
func (r *CaseResult) GetError() error {
	return r.Err
}

type caseJob struct {
	screener Screener
	c        Case
}

// Execute satisfies worker.Job
func (j *caseJob) Execute(ctx context.Context) worker.Result {
	result := &CaseResult{Case: j.c}

	report, err := j.screener.Screen(ctx, pipeline.Request{
		TargetName: j.c.Name,
		Text:       j.c.Article,
	})
	if err != nil {
		result.Err = err
		return result
	}

	result.Report = report
	result.Predicted = report.MatchResult.MatchFound
	result.Correct = result.Predicted == j.c.ExpectedMatch
	return result
}

// Run screens every case with the given parallelism and aggregates metrics.
// Results come back in completion order; the summary sorts them by case name
// so output is stable.
func Run(ctx context.Context, screener Screener, cases []Case, workers int) *Summary {
	pool := worker.NewPool(workers)
	pool.Start()

	for _, c := range cases {
		select {
		case <-ctx.Done():
		default:
			pool.Submit(&caseJob{screener: screener, c: c})
		}
	}

	raw := pool.Wait()

	results := make([]*CaseResult, 0, len(raw))
	for _, r := range raw {
		if cr, ok := r.(*CaseResult); ok {
			results = append(results, cr)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Case.Name < results[j].Case.Name
	})

	return summarize(results)
}
