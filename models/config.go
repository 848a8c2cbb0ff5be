package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelConfig describes one LLM model to benchmark.
type ModelConfig struct {
	Name        string  `yaml:"name"`
	DisplayName string  `yaml:"display_name"`
	TimeoutSec  float64 `yaml:"timeout"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// ModelPricing is a per-token pricing snapshot for one model.
type ModelPricing struct {
	PromptPrice     float64 `yaml:"prompt_price" json:"prompt_price"`
	CompletionPrice float64 `yaml:"completion_price" json:"completion_price"`
	Currency        string  `yaml:"currency" json:"currency"`
}

// AvgPricePerToken averages prompt and completion pricing. Used only for
// report sorting.
func (p ModelPricing) AvgPricePerToken() float64 {
	return (p.PromptPrice + p.CompletionPrice) / 2
}

// BenchSettings controls benchmark execution.
type BenchSettings struct {
	// ParallelRequests is the batch width: how many test cases run
	// concurrently. The next batch starts only after the previous one
	// finished, which caps concurrent outbound LLM requests.
	ParallelRequests int `yaml:"parallel_requests"`
	// RunsPerTest repeats each test case and resolves correctness by
	// majority vote. Runs within one case execute sequentially because they
	// share the runner's HTML cache.
	RunsPerTest   int  `yaml:"runs_per_test"`
	SaveHTMLCache bool `yaml:"save_html_cache"`
}

// BenchConfig is the full benchmark configuration file.
type BenchConfig struct {
	Models   []ModelConfig           `yaml:"models"`
	Settings BenchSettings           `yaml:"settings"`
	Pricing  map[string]ModelPricing `yaml:"pricing"`
}

// DefaultBenchSettings mirrors the documented defaults.
func DefaultBenchSettings() BenchSettings {
	return BenchSettings{
		ParallelRequests: 5,
		RunsPerTest:      1,
		SaveHTMLCache:    true,
	}
}

// LoadBenchConfig reads a YAML benchmark configuration. Missing settings
// fall back to defaults.
func LoadBenchConfig(path string) (*BenchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &BenchConfig{Settings: DefaultBenchSettings()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Settings.ParallelRequests <= 0 {
		cfg.Settings.ParallelRequests = 5
	}
	if cfg.Settings.RunsPerTest <= 0 {
		cfg.Settings.RunsPerTest = 1
	}

	return cfg, nil
}
