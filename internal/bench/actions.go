package bench

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/deyna256/codeforces-contest-scraper/models"
	"github.com/deyna256/codeforces-contest-scraper/pkg/benchstore"
	"github.com/deyna256/codeforces-contest-scraper/pkg/llm"
)

// RunAction executes the benchmark suite for every configured model and
// writes the comparison report.
func RunAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return cli.Exit("OPENROUTER_API_KEY is not set", 2)
	}

	modelList := DefaultModels()
	settings := models.DefaultBenchSettings()
	var pricing llm.PricingSource = llm.StaticPricing(nil)
	if c.IsSet("config") {
		cfg, err := models.LoadBenchConfig(c.String("config"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to load config: %v", err), 2)
		}
		if len(cfg.Models) > 0 {
			modelList = cfg.Models
		}
		settings = cfg.Settings
		pricing = llm.StaticPricing(cfg.Pricing)
	}

	if filter := c.String("model"); filter != "" {
		modelList = filterModels(modelList, filter)
		if len(modelList) == 0 {
			return cli.Exit(fmt.Sprintf("no configured model matches %q", filter), 2)
		}
	}

	suite := c.String("suite")
	if suite != "discovery" && suite != "segmentation" {
		return cli.Exit(fmt.Sprintf("unknown suite %q (want discovery or segmentation)", suite), 2)
	}

	var store *benchstore.Store
	if c.IsSet("store") {
		var err error
		store, err = benchstore.Open(c.String("store"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to open benchmark store: %v", err), 2)
		}
		defer store.Close()
	}

	runner := NewRunner(apiKey, c.String("base-url"), settings, logger)
	discoveryCases := DiscoveryCases()
	segmentationCases := SegmentationCases()

	var allMetrics []ModelMetrics
	for _, mc := range modelList {
		logger.Info("benchmarking model", "model", mc.Name, "suite", suite)

		var results []TestResult
		switch suite {
		case "discovery":
			results = runner.RunDiscovery(c.Context, mc, discoveryCases)
		case "segmentation":
			results = runner.RunSegmentation(c.Context, mc, segmentationCases)
		}

		metrics := CalculateMetrics(mc.Name, mc.DisplayName, results, lookupPricing(pricing, mc.Name))
		allMetrics = append(allMetrics, metrics)

		logger.Info("model benchmark finished",
			"model", mc.Name,
			"accuracy", metrics.Accuracy,
			"failed_tests", metrics.FailedTests,
			"avg_latency_ms", metrics.AvgLatencyMS)

		if store != nil {
			if err := persistMetrics(store, suite, settings.RunsPerTest, metrics); err != nil {
				logger.Error("failed to persist benchmark session", "model", mc.Name, "error", err)
			}
		}
	}

	report := BuildReport(allMetrics)
	path, err := WriteReport(report, c.String("output-dir"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to write report: %v", err), 2)
	}
	logger.Info("benchmark report written", "path", path)

	PrintComparisonTable(os.Stdout, allMetrics)
	return nil
}

func filterModels(modelList []models.ModelConfig, filter string) []models.ModelConfig {
	var out []models.ModelConfig
	for _, mc := range modelList {
		if strings.Contains(mc.Name, filter) || strings.Contains(mc.DisplayName, filter) {
			out = append(out, mc)
		}
	}
	return out
}

func lookupPricing(pricing llm.PricingSource, model string) *models.ModelPricing {
	if pricing == nil {
		return nil
	}
	if p, ok := pricing.GetPricing(model); ok {
		return &p
	}
	return nil
}

func persistMetrics(store *benchstore.Store, suite string, runsPerTest int, metrics ModelMetrics) error {
	sessionID, err := store.CreateSession(metrics.ModelName, metrics.DisplayName,
		suite, runsPerTest, metrics.TotalTests)
	if err != nil {
		return err
	}
	for _, r := range metrics.TestResults {
		run := benchstore.Run{
			SessionID:        sessionID,
			ContestID:        r.ContestID,
			Expected:         r.Expected,
			Found:            r.Found,
			Correct:          r.Correct,
			LatencyMS:        r.LatencyMS,
			Error:            r.Error,
			PromptTokens:     r.PromptTokens,
			CompletionTokens: r.CompletionTokens,
		}
		if err := store.InsertRun(run); err != nil {
			return err
		}
	}
	return nil
}
