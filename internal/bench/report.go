package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

// Report is the JSON comparison report written after benchmarking a set of
// models against the same test cases.
type Report struct {
	BenchmarkInfo   ReportInfo               `json:"benchmark_info"`
	Summary         []ModelSummary           `json:"summary"`
	DetailedResults map[string]DetailedModel `json:"detailed_results"`
}

type ReportInfo struct {
	Timestamp   string `json:"timestamp"`
	TotalModels int    `json:"total_models"`
	TestCases   int    `json:"test_cases"`
}

type ModelSummary struct {
	ModelName       string         `json:"model_name"`
	DisplayName     string         `json:"display_name"`
	Accuracy        float64        `json:"accuracy"`
	SuccessfulTests int            `json:"successful_tests"`
	FailedTests     int            `json:"failed_tests"`
	AvgLatencyMS    float64        `json:"avg_latency_ms"`
	Precision       float64        `json:"precision"`
	Recall          float64        `json:"recall"`
	F1Score         float64        `json:"f1_score"`
	Pricing         *ReportPricing `json:"pricing"`
}

type ReportPricing struct {
	PromptPrice      float64 `json:"prompt_price"`
	CompletionPrice  float64 `json:"completion_price"`
	AvgPricePerToken float64 `json:"avg_price_per_token"`
	Currency         string  `json:"currency"`
}

type DetailedModel struct {
	TestResults []ReportTestResult `json:"test_results"`
}

// ReportTestResult serializes one averaged test result. Expected and Error
// are pointers so that "no editorial expected" and "no error" render as
// JSON null rather than empty strings.
type ReportTestResult struct {
	ContestID        string   `json:"contest_id"`
	Expected         *string  `json:"expected"`
	Found            []string `json:"found"`
	Correct          bool     `json:"correct"`
	LatencyMS        float64  `json:"latency_ms"`
	Error            *string  `json:"error"`
	PromptTokens     int      `json:"prompt_tokens"`
	CompletionTokens int      `json:"completion_tokens"`
}

// BuildReport assembles the comparison report. The summary is sorted by
// accuracy descending, ties broken by average token price ascending; models
// without pricing sort last among equals.
func BuildReport(allMetrics []ModelMetrics) Report {
	report := Report{
		BenchmarkInfo: ReportInfo{
			Timestamp:   time.Now().Format("20060102_150405"),
			TotalModels: len(allMetrics),
		},
		DetailedResults: make(map[string]DetailedModel),
	}
	if len(allMetrics) > 0 {
		report.BenchmarkInfo.TestCases = allMetrics[0].TotalTests
	}

	for i := range allMetrics {
		m := &allMetrics[i]
		report.Summary = append(report.Summary, ModelSummary{
			ModelName:       m.ModelName,
			DisplayName:     m.DisplayName,
			Accuracy:        round2(m.Accuracy),
			SuccessfulTests: m.SuccessfulTests,
			FailedTests:     m.FailedTests,
			AvgLatencyMS:    round2(m.AvgLatencyMS),
			Precision:       round2(m.Precision()),
			Recall:          round2(m.Recall()),
			F1Score:         round2(m.F1()),
			Pricing:         reportPricing(m.Pricing),
		})
		report.DetailedResults[m.ModelName] = DetailedModel{
			TestResults: reportResults(m.TestResults),
		}
	}

	sort.SliceStable(report.Summary, func(i, j int) bool {
		a, b := report.Summary[i], report.Summary[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy > b.Accuracy
		}
		return summaryPrice(a) < summaryPrice(b)
	})
	return report
}

// WriteReport saves the report as benchmark_comparison_<timestamp>.json in
// outputDir, creating the directory if needed. Returns the report path.
func WriteReport(report Report, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := filepath.Join(outputDir, "benchmark_comparison_"+report.BenchmarkInfo.Timestamp+".json")
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// PrintComparisonTable writes a ranked comparison table, sorted the same
// way as the report summary.
func PrintComparisonTable(w io.Writer, allMetrics []ModelMetrics) {
	if len(allMetrics) == 0 {
		return
	}

	sorted := append([]ModelMetrics(nil), allMetrics...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Accuracy != sorted[j].Accuracy {
			return sorted[i].Accuracy > sorted[j].Accuracy
		}
		return sorted[i].AvgPricePerToken() < sorted[j].AvgPricePerToken()
	})

	line := func(s string) { fmt.Fprintln(w, s) }
	sep := func(c string) string {
		out := make([]byte, 120)
		for i := range out {
			out[i] = c[0]
		}
		return string(out)
	}

	line("")
	line(sep("="))
	line("BENCHMARK COMPARISON (Sorted: Accuracy, then Price)")
	line(sep("="))
	fmt.Fprintf(w, "%-6s %-35s %10s %15s %12s %18s\n",
		"Rank", "Model", "Accuracy", "Avg Latency", "F1 Score", "Avg Price/Token")
	line(sep("-"))

	for rank, m := range sorted {
		pricingInfo := "N/A"
		if m.Pricing != nil {
			pricingInfo = fmt.Sprintf("%.0e", m.Pricing.AvgPricePerToken())
		}
		fmt.Fprintf(w, "%-6d %-35s %9.1f%% %13.0fms %11.1f%% %18s\n",
			rank+1, m.DisplayName, m.Accuracy, m.AvgLatencyMS, m.F1(), pricingInfo)
	}

	line(sep("="))
	line("")
}

func reportPricing(p *models.ModelPricing) *ReportPricing {
	if p == nil {
		return nil
	}
	return &ReportPricing{
		PromptPrice:      p.PromptPrice,
		CompletionPrice:  p.CompletionPrice,
		AvgPricePerToken: roundTo(p.AvgPricePerToken(), 10),
		Currency:         p.Currency,
	}
}

func reportResults(results []TestResult) []ReportTestResult {
	out := make([]ReportTestResult, 0, len(results))
	for _, r := range results {
		out = append(out, ReportTestResult{
			ContestID:        r.ContestID,
			Expected:         optString(r.Expected),
			Found:            r.Found,
			Correct:          r.Correct,
			LatencyMS:        round2(r.LatencyMS),
			Error:            optString(r.Error),
			PromptTokens:     r.PromptTokens,
			CompletionTokens: r.CompletionTokens,
		})
	}
	return out
}

func summaryPrice(s ModelSummary) float64 {
	if s.Pricing == nil {
		return costPerCorrectSentinel
	}
	return s.Pricing.AvgPricePerToken
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
