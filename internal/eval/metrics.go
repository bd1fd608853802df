package eval

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TypeStats is per-case-type accuracy
type TypeStats struct {
	Correct int
	Total   int
}

func (s TypeStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Summary aggregates one evaluation run. False negatives matter most here:
// a missed adverse-media hit is the failure mode the system is tuned against.
type Summary struct {
	Results []*CaseResult

	TotalCases     int
	CorrectCases   int
	Errors         int
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	TrueNegatives  int

	PerType map[string]TypeStats
}

func summarize(results []*CaseResult) *Summary {
	s := &Summary{
		Results:    results,
		TotalCases: len(results),
		PerType:    make(map[string]TypeStats),
	}

	for _, r := range results {
		if r.Err != nil {
			s.Errors++
			continue
		}

		ts := s.PerType[r.Case.Type]
		ts.Total++
		if r.Correct {
			s.CorrectCases++
			ts.Correct++
		}
		s.PerType[r.Case.Type] = ts

		switch {
		case r.Predicted && r.Case.ExpectedMatch:
			s.TruePositives++
		case r.Predicted && !r.Case.ExpectedMatch:
			s.FalsePositives++
		case !r.Predicted && r.Case.ExpectedMatch:
			s.FalseNegatives++
		default:
			s.TrueNegatives++
		}
	}

	return s
}

func (s *Summary) Accuracy() float64 {
	if s.TotalCases == 0 {
		return 0
	}
	return float64(s.CorrectCases) / float64(s.TotalCases)
}

func (s *Summary) Precision() float64 {
	denom := s.TruePositives + s.FalsePositives
	if denom == 0 {
		return 0
	}
	return float64(s.TruePositives) / float64(denom)
}

func (s *Summary) Recall() float64 {
	denom := s.TruePositives + s.FalseNegatives
	if denom == 0 {
		return 0
	}
	return float64(s.TruePositives) / float64(denom)
}

func (s *Summary) F1() float64 {
	p, r := s.Precision(), s.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// RenderJSON formats the summary for automation
func (s *Summary) RenderJSON() (string, error) {
	type caseJSON struct {
		Name          string `json:"name"`
		Type          string `json:"type,omitempty"`
		ExpectedMatch bool   `json:"expected_match"`
		Predicted     bool   `json:"predicted"`
		Correct       bool   `json:"correct"`
		Method        string `json:"method,omitempty"`
		Error         string `json:"error,omitempty"`
	}
	type typeJSON struct {
		Correct int `json:"correct"`
		Total   int `json:"total"`
	}

	out := struct {
		TotalCases     int                 `json:"total_cases"`
		CorrectCases   int                 `json:"correct_cases"`
		Errors         int                 `json:"errors"`
		Accuracy       float64             `json:"accuracy"`
		Precision      float64             `json:"precision"`
		Recall         float64             `json:"recall"`
		F1             float64             `json:"f1"`
		TruePositives  int                 `json:"true_positives"`
		FalsePositives int                 `json:"false_positives"`
		FalseNegatives int                 `json:"false_negatives"`
		TrueNegatives  int                 `json:"true_negatives"`
		PerType        map[string]typeJSON `json:"per_type"`
		Cases          []caseJSON          `json:"cases"`
	}{
		TotalCases:     s.TotalCases,
		CorrectCases:   s.CorrectCases,
		Errors:         s.Errors,
		Accuracy:       s.Accuracy(),
		Precision:      s.Precision(),
		Recall:         s.Recall(),
		F1:             s.F1(),
		TruePositives:  s.TruePositives,
		FalsePositives: s.FalsePositives,
		FalseNegatives: s.FalseNegatives,
		TrueNegatives:  s.TrueNegatives,
		PerType:        make(map[string]typeJSON, len(s.PerType)),
	}
	for t, ts := range s.PerType {
		out.PerType[t] = typeJSON{Correct: ts.Correct, Total: ts.Total}
	}
	for _, r := range s.Results {
		c := caseJSON{
			Name:          r.Case.Name,
			Type:          r.Case.Type,
			ExpectedMatch: r.Case.ExpectedMatch,
			Predicted:     r.Predicted,
			Correct:       r.Correct,
		}
		if r.Report != nil {
			c.Method = r.Report.MatchResult.Method
		}
		if r.Err != nil {
			c.Error = r.Err.Error()
		}
		out.Cases = append(out.Cases, c)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode summary: %w", err)
	}
	return string(data), nil
}

// Render formats the summary for the terminal
func (s *Summary) Render() string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	rule := strings.Repeat("=", 60)
	line(rule)
	line("NAME SCREENING EVALUATION RESULTS")
	line(rule)
	line("Overall Accuracy: %.2f%%", s.Accuracy()*100)
	line("Precision: %.2f%%", s.Precision()*100)
	line("Recall: %.2f%%", s.Recall()*100)
	line("F1 Score: %.2f%%", s.F1()*100)
	line("")
	line("Confusion Matrix:")
	line("  True Positives:  %d", s.TruePositives)
	line("  False Positives: %d", s.FalsePositives)
	line("  False Negatives: %d", s.FalseNegatives)
	line("  True Negatives:  %d", s.TrueNegatives)
	if s.Errors > 0 {
		line("  Errors:          %d", s.Errors)
	}

	line("")
	line("Results by Case Type:")
	types := make([]string, 0, len(s.PerType))
	for t := range s.PerType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		ts := s.PerType[t]
		line("  %s: %d/%d (%.2f%%)", t, ts.Correct, ts.Total, ts.Accuracy()*100)
	}

	line("")
	line("Detailed Results:")
	for i, r := range s.Results {
		if r.Err != nil {
			line("! Case %d (%s): %q -> error: %v", i+1, r.Case.Type, r.Case.Name, r.Err)
			continue
		}

		status := "PASS"
		if !r.Correct {
			status = "FAIL"
		}
		line("%s Case %d (%s): %q -> expected %t, predicted %t (method: %s)",
			status, i+1, r.Case.Type, r.Case.Name, r.Case.ExpectedMatch, r.Predicted, r.Report.MatchResult.Method)
		if !r.Correct {
			line("     Explanation: %s", r.Report.MatchResult.Explanation)
		}
	}

	return b.String()
}
