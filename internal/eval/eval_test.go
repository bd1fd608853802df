package eval

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/namescreen/internal/model"
	"github.com/ppiankov/namescreen/internal/pipeline"
)

// scriptedScreener predicts a match when the target's surname appears in the
// article text, which is enough to exercise the metrics paths.
type scriptedScreener struct{}

func (s *scriptedScreener) Screen(ctx context.Context, req pipeline.Request) (*model.Report, error) {
	fields := strings.Fields(strings.ToLower(req.TargetName))
	surname := fields[len(fields)-1]
	matched := strings.Contains(strings.ToLower(req.Text), surname)

	result := &model.MatchResult{
		TargetName: req.TargetName,
		Match:      matched,
		Tier:       model.TierHigh,
		Method:     model.DecisionFuzzyHighConfidence,
		Timestamp:  time.Now().UTC(),
	}
	return &model.Report{
		TargetName:  req.TargetName,
		MatchResult: model.WireResult(result),
	}, nil
}

func TestRun_Metrics(t *testing.T) {
	cases := []Case{
		{Name: "John Smith", Article: "John Smith was arrested.", ExpectedMatch: true, Type: "exact_match"},
		{Name: "Jane Doe", Article: "An unnamed suspect fled.", ExpectedMatch: false, Type: "no_overlap"},
		// The surname heuristic wrongly matches here: a false positive
		{Name: "Michael Brown", Article: "Michelle Brown won the award.", ExpectedMatch: false, Type: "false_positive"},
		// And wrongly misses here: a false negative
		{Name: "William Johnson", Article: "Bill J. announced his retirement.", ExpectedMatch: true, Type: "nickname"},
	}

	summary := Run(context.Background(), &scriptedScreener{}, cases, 2)

	if summary.TotalCases != 4 {
		t.Fatalf("expected 4 results, got %d", summary.TotalCases)
	}
	if summary.TruePositives != 1 || summary.TrueNegatives != 1 || summary.FalsePositives != 1 || summary.FalseNegatives != 1 {
		t.Errorf("unexpected confusion matrix: TP=%d FP=%d FN=%d TN=%d",
			summary.TruePositives, summary.FalsePositives, summary.FalseNegatives, summary.TrueNegatives)
	}
	if got := summary.Accuracy(); got != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", got)
	}
	if got := summary.Precision(); got != 0.5 {
		t.Errorf("precision = %v, want 0.5", got)
	}
	if got := summary.Recall(); got != 0.5 {
		t.Errorf("recall = %v, want 0.5", got)
	}
	if got := summary.F1(); got != 0.5 {
		t.Errorf("f1 = %v, want 0.5", got)
	}
	if ts := summary.PerType["exact_match"]; ts.Correct != 1 || ts.Total != 1 {
		t.Errorf("per-type stats wrong: %+v", ts)
	}
}

func TestRun_RealPipeline(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p, err := pipeline.New(cfg)
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}

	summary := Run(context.Background(), p, SyntheticCases(), 4)

	if summary.Errors != 0 {
		t.Fatalf("expected no run errors, got %d", summary.Errors)
	}
	if summary.TotalCases != len(SyntheticCases()) {
		t.Fatalf("expected %d results, got %d", len(SyntheticCases()), summary.TotalCases)
	}
	// The deterministic pipeline handles every positive scenario; the known
	// false positive (michael/michelle brown) is the one expected miss.
	if summary.FalseNegatives != 0 {
		t.Errorf("expected no false negatives, got %d", summary.FalseNegatives)
	}
	if summary.CorrectCases < summary.TotalCases-1 {
		t.Errorf("expected at most one incorrect case, got %d/%d correct", summary.CorrectCases, summary.TotalCases)
	}
}

func TestSummary_Render(t *testing.T) {
	summary := Run(context.Background(), &scriptedScreener{}, []Case{
		{Name: "John Smith", Article: "John Smith was arrested.", ExpectedMatch: true, Type: "exact_match"},
	}, 1)

	out := summary.Render()
	for _, want := range []string{"EVALUATION RESULTS", "Overall Accuracy", "Confusion Matrix", "exact_match"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered summary missing %q", want)
		}
	}
}

func TestSummary_RenderJSON(t *testing.T) {
	summary := Run(context.Background(), &scriptedScreener{}, []Case{
		{Name: "John Smith", Article: "John Smith was arrested.", ExpectedMatch: true, Type: "exact_match"},
	}, 1)

	out, err := summary.RenderJSON()
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"total_cases", "accuracy", "per_type", "cases"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON summary missing key %q", key)
		}
	}
	if got := decoded["total_cases"].(float64); got != 1 {
		t.Errorf("total_cases = %v, want 1", got)
	}
}

func TestLoadCases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")
	content := `- name: "William Johnson"
  article: "Bill Johnson announced his retirement today."
  expected_match: true
  type: nickname
- name: "Jane Doe"
  article: "Nobody was named in the report."
  expected_match: false
  type: no_overlap
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write cases: %v", err)
	}

	cases, err := LoadCases(path)
	if err != nil {
		t.Fatalf("LoadCases: %v", err)
	}
	if len(cases) != 2 || cases[0].Name != "William Johnson" || !cases[0].ExpectedMatch {
		t.Errorf("unexpected cases: %+v", cases)
	}
}

func TestLoadCases_Invalid(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("[]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCases(empty); err == nil {
		t.Error("expected error for empty case list")
	}

	missingField := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(missingField, []byte("- name: \"X Y\"\n  expected_match: true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCases(missingField); err == nil {
		t.Error("expected error for case without article text")
	}

	if _, err := LoadCases(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
