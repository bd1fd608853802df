package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/namescreen/internal/eval"
	"github.com/ppiankov/namescreen/internal/model"
	"github.com/ppiankov/namescreen/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	casesPath   string
	evalWorkers int
	evalTimeout time.Duration
	evalAugment bool
	evalNER     string
	evalOutput  string
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate matching accuracy against labeled cases",
	Long: `Eval screens a suite of labeled cases in parallel and reports accuracy,
precision, recall, F1 and a per-case-type breakdown.

Cases come from a YAML file (--cases) or, when omitted, from the built-in
synthetic suite covering exact matches, nicknames, initials, middle-name
usage, hyphenated surnames, cultural variations and a known false positive.

Case file format:
  - name: "William Johnson"
    article: "Bill Johnson announced his retirement today."
    expected_match: true
    type: nickname

Example:
  namescreen eval
  namescreen eval --cases cases.yaml --concurrency 8`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&casesPath, "cases", "", "YAML file of labeled cases (default: built-in suite)")
	evalCmd.Flags().IntVar(&evalWorkers, "concurrency", 4, "number of concurrent screening workers")
	evalCmd.Flags().DurationVar(&evalTimeout, "timeout", 10*time.Minute, "total timeout for the evaluation run")
	evalCmd.Flags().StringVar(&evalOutput, "output", "text", "output format: text or json")
	evalCmd.Flags().StringVar(&evalNER, "ner-endpoint", "", "person-entity recognizer HTTP endpoint (optional)")
	evalCmd.Flags().BoolVar(&evalAugment, "augment", false, "request LLM-generated cultural name variants")
	evalCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable the generative provider")
	evalCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	evalCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()

	cases := eval.SyntheticCases()
	if casesPath != "" {
		loaded, err := eval.LoadCases(casesPath)
		if err != nil {
			return err
		}
		cases = loaded
	}

	cfg := model.DefaultConfig()
	cfg.Concurrency.EvalWorkers = evalWorkers
	cfg.Extract.NEREndpoint = evalNER
	cfg.Variants.Augment = evalAugment
	cfg.Output.Verbose = verbose
	// Each case carries its own article text; the shared cache would only
	// mask per-case behavior here.
	cfg.Cache.Enabled = false

	if llmEnabled || evalAugment {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Evaluating %d cases with %d workers...\n\n", len(cases), evalWorkers)

	summary := eval.Run(ctx, p, cases, evalWorkers)
	if evalOutput == "json" {
		rendered, err := summary.RenderJSON()
		if err != nil {
			return err
		}
		fmt.Println(rendered)
	} else {
		fmt.Println(summary.Render())
	}

	if summary.Errors > 0 {
		return fmt.Errorf("%d of %d cases failed to run", summary.Errors, summary.TotalCases)
	}
	return nil
}
