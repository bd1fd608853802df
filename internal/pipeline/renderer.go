package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/namescreen/internal/model"
)

// Renderer formats screening reports for analysts (text) and for downstream
// automation (JSON).
type Renderer struct {
	verbose bool
}

func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// Render formats the report in the requested format ("text" or "json")
func (r *Renderer) Render(report *model.Report, format string) (string, error) {
	if format == "json" {
		return r.RenderJSON(report)
	}
	return r.RenderText(report), nil
}

// RenderJSON produces the machine-readable report
func (r *Renderer) RenderJSON(report *model.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	return string(data), nil
}

// RenderText produces the analyst-facing report
func (r *Renderer) RenderText(report *model.Report) string {
	res := report.MatchResult
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	rule := strings.Repeat("=", 70)
	line(rule)
	line("ADVERSE MEDIA NAME SCREENING RESULT")
	line(rule)
	line("Target Name: %s", report.TargetName)
	line("Analysis Date: %s", report.AnalysisTimestamp.Format("2006-01-02 15:04:05"))
	if report.Source.URL != "" {
		line("Source URL: %s", report.Source.URL)
	} else if report.Source.Path != "" {
		line("Source File: %s", report.Source.Path)
	}
	line("")

	status := "NO MATCH"
	if res.MatchFound {
		status = "MATCH FOUND"
	}
	line("Result: %s", status)
	line("Confidence: %s", res.ConfidenceTier)
	line("Method: %s", titleize(res.Method))
	line("Match Score: %d/100", res.Score)
	line("")

	if res.MatchedArticleName != nil {
		line("Match Details:")
		line("  - Matched Name in Article: %q", *res.MatchedArticleName)
		if res.MatchedVariant != nil {
			line("  - Matched Name Variant: %q", *res.MatchedVariant)
		}
		line("")
	}

	line("Explanation:")
	line("  %s", res.Explanation)
	line("")

	if r.verbose {
		d := report.AnalysisDetails
		line("Detailed Analysis:")
		line(strings.Repeat("-", 30))
		line("Name Variants Generated (%d):", d.TotalVariants)
		for _, v := range d.NameVariantsGenerated {
			line("  - %s (%s)", v.Text, v.Kind)
		}
		line("")
		line("Names Found in Article (%d):", d.TotalArticleNames)
		if len(d.NamesFoundInArticle) == 0 {
			line("  - No names detected")
		}
		for _, c := range d.NamesFoundInArticle {
			line("  - %s (%s)", c.Text, c.Method)
		}
		if d.VariantsPartial || d.ExtractionDegraded {
			line("")
			line("Degraded Stages:")
			if d.VariantsPartial {
				line("  - variant augmentation unavailable")
			}
			if d.ExtractionDegraded {
				line("  - entity recognizer unavailable")
			}
		}
		line("")
	}

	line("Risk Assessment:")
	line("  %s RISK - %s", strings.ToUpper(report.RiskAssessment.RiskLevel), riskNarrative(report))
	line("")

	line("Recommendation:")
	line("  %s", res.Recommendation)

	return b.String()
}

func riskNarrative(report *model.Report) string {
	res := report.MatchResult
	switch {
	case res.MatchFound && res.ConfidenceTier == model.TierHigh:
		return "strong indication this article refers to the target individual"
	case report.RiskAssessment.RequiresManualReview:
		return "uncertain outcome, manual review required"
	default:
		return "article likely does not refer to the target individual"
	}
}

// SaveReport writes the rendered report to path, appending the conventional
// extension for the format when missing.
func (r *Renderer) SaveReport(content, path, format string) error {
	ext := ".txt"
	if format == "json" {
		ext = ".json"
	}
	if !strings.HasSuffix(path, ext) {
		path += ext
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	fmt.Printf("Report saved to: %s\n", path)
	return nil
}

// titleize turns a method tag like fuzzy_high_confidence into display form
func titleize(tag string) string {
	words := strings.Split(tag, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		if w == "llm" {
			words[i] = "LLM"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
