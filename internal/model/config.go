package model

import "time"

// Config is the complete namescreen configuration
type Config struct {
	Match       MatchConfig       `yaml:"match"`
	Variants    VariantsConfig    `yaml:"variants"`
	Extract     ExtractConfig     `yaml:"extract"`
	LLM         LLMConfig         `yaml:"llm"`
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// MatchConfig holds scoring and classification settings
type MatchConfig struct {
	// HighThreshold and MediumThreshold partition [0,100]:
	// HIGH >= HighThreshold > MEDIUM >= MediumThreshold > LOW
	HighThreshold   int `yaml:"high_threshold"`
	MediumThreshold int `yaml:"medium_threshold"`
	// ExcerptRadius is how many characters around a candidate are handed to
	// the disambiguation delegate
	ExcerptRadius int `yaml:"excerpt_radius"`
}

// VariantsConfig controls name variant generation
type VariantsConfig struct {
	Augment bool `yaml:"augment"` // Request LLM-generated cultural variants
}

// ExtractConfig controls candidate extraction
type ExtractConfig struct {
	NEREndpoint string        `yaml:"ner_endpoint"` // Person-entity recognizer HTTP endpoint ("" = stage skipped)
	NERTimeout  time.Duration `yaml:"ner_timeout"`
}

// LLMConfig holds generative service configuration
type LLMConfig struct {
	Provider          string  `yaml:"provider"` // openai, anthropic, ollama, "" = disabled
	Model             string  `yaml:"model"`
	APIKey            string  `yaml:"-"` // From environment only, never persisted
	BaseURL           string  `yaml:"base_url"`
	Timeout           int     `yaml:"timeout"` // Seconds per call
	MaxTokens         int     `yaml:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// HTTPConfig controls article fetching in URL mode
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots"`
	HTTPProxy     string        `yaml:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy"`
}

// CacheConfig controls the variant/fetch cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"` // Disk layer location ("" = memory only)
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch evaluation parallelism
type ConcurrencyConfig struct {
	EvalWorkers int `yaml:"eval_workers"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format  string `yaml:"format"` // text or json
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Match: MatchConfig{
			HighThreshold:   85,
			MediumThreshold: 70,
			ExcerptRadius:   120,
		},
		Variants: VariantsConfig{
			Augment: false,
		},
		Extract: ExtractConfig{
			NEREndpoint: "",
			NERTimeout:  10 * time.Second,
		},
		LLM: LLMConfig{
			Provider:          "",
			Timeout:           30,
			MaxTokens:         500,
			RequestsPerSecond: 2,
		},
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Namescreen/0.1 (+https://github.com/ppiankov/namescreen)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			EvalWorkers: 4,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}
