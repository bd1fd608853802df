package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/namescreen/internal/model"
	"github.com/ppiankov/namescreen/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	targetName   string
	articlePath  string
	articleURL   string
	outputFormat string
	saveReport   string
	threshold    int
	timeout      time.Duration
	userAgent    string
	maxBytes     int64
	noCache      bool
	cacheDir     string
	noRobots     bool
	nerEndpoint  string
	augment      bool
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a news article against a target name",
	Long: `Screen decides whether an article refers to the target individual:
- Generate plausible variants of the target name
- Extract person-name mentions from the article
- Fuzzy-match variants against mentions and classify the best score
- Produce an explained decision with a manual-review recommendation

The article comes from a local text file (--filepath) or a URL (--url).
The exit code is 0 whenever the analysis completes; the decision itself
is in the output, not the exit code.

Example:
  namescreen screen --name "John Smith" --filepath article.txt
  namescreen screen -n "Mary Johnson" -f article.txt --verbose
  namescreen screen -n "Alex Brown" --url https://example.com/news/fraud-case --output json
  namescreen screen -n "Jane Doe" -f article.txt --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.NoArgs,
	RunE: runScreen,
}

func init() {
	rootCmd.AddCommand(screenCmd)

	// Input flags
	screenCmd.Flags().StringVarP(&targetName, "name", "n", "", "full name of the individual to search for")
	screenCmd.Flags().StringVarP(&articlePath, "filepath", "f", "", "path to the text file containing the news article")
	screenCmd.Flags().StringVar(&articleURL, "url", "", "URL of the news article to fetch")
	_ = screenCmd.MarkFlagRequired("name")
	screenCmd.MarkFlagsMutuallyExclusive("filepath", "url")
	screenCmd.MarkFlagsOneRequired("filepath", "url")

	// Output flags
	screenCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format: text or json")
	screenCmd.Flags().StringVar(&saveReport, "save-report", "", "save the rendered report to the given path")

	// Matching flags
	screenCmd.Flags().IntVar(&threshold, "threshold", 85, "high-confidence score threshold (0-100)")

	// HTTP flags (URL mode)
	screenCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall screening timeout")
	screenCmd.Flags().StringVar(&userAgent, "ua", "Namescreen/0.1 (+https://github.com/ppiankov/namescreen)", "HTTP User-Agent")
	screenCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	screenCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks when fetching")

	// Cache flags
	screenCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the variant and fetch cache")
	screenCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (default: memory only)")

	// Extraction flags
	screenCmd.Flags().StringVar(&nerEndpoint, "ner-endpoint", "", "person-entity recognizer HTTP endpoint (optional)")

	// LLM flags
	screenCmd.Flags().BoolVar(&augment, "augment", false, "request LLM-generated cultural name variants")
	screenCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable the generative provider (disambiguation, fallback extraction)")
	screenCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	screenCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runScreen(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Screening: %s\n", targetName)
		if articleURL != "" {
			fmt.Fprintf(os.Stderr, "Source: %s\n", articleURL)
		} else {
			fmt.Fprintf(os.Stderr, "Source: %s\n", articlePath)
		}
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	report, err := p.Screen(ctx, pipeline.Request{
		TargetName: targetName,
		FilePath:   articlePath,
		URL:        articleURL,
	})
	if err != nil {
		return fmt.Errorf("screening failed: %w", err)
	}

	output, err := p.Renderer().Render(report, cfg.Output.Format)
	if err != nil {
		return err
	}
	fmt.Println(output)

	if saveReport != "" {
		if err := p.Renderer().SaveReport(output, saveReport, cfg.Output.Format); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	// A completed analysis exits 0 regardless of the decision; automation
	// reads the JSON output, not the exit code.
	return nil
}

// buildConfig merges defaults with the screen command's flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if threshold <= cfg.Match.MediumThreshold || threshold > 100 {
		return nil, fmt.Errorf("threshold must be in (%d, 100]", cfg.Match.MediumThreshold)
	}
	cfg.Match.HighThreshold = threshold

	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.RespectRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Extract.NEREndpoint = nerEndpoint
	cfg.Variants.Augment = augment
	cfg.Output.Verbose = verbose

	switch strings.ToLower(outputFormat) {
	case "text", "json":
		cfg.Output.Format = strings.ToLower(outputFormat)
	default:
		return nil, fmt.Errorf("invalid output format %q: use text or json", outputFormat)
	}

	if llmEnabled || augment {
		if err := configureLLM(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// configureLLM fills provider settings from flags and environment
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s", llmProvider)
	}

	return nil
}
