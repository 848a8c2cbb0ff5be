// Package bench scores candidate LLM models on the editorial discovery and
// segmentation tasks against ground-truth test cases.
package bench

import (
	"sort"
	"strings"
	"time"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

// costPerCorrectSentinel sorts models with zero correct predictions last.
const costPerCorrectSentinel = 1e9

// TestResult is one (possibly averaged) test-case outcome. Expected is empty
// when no editorial exists for the contest.
type TestResult struct {
	ContestID        string
	Expected         string
	Found            []string
	Correct          bool
	LatencyMS        float64
	Error            string
	PromptTokens     int
	CompletionTokens int
}

// ModelMetrics aggregates all test results for one model.
type ModelMetrics struct {
	ModelName   string
	DisplayName string
	Timestamp   string

	TotalTests      int
	SuccessfulTests int
	FailedTests     int
	Accuracy        float64

	AvgLatencyMS    float64
	MedianLatencyMS float64
	MinLatencyMS    float64
	MaxLatencyMS    float64

	TruePositives  int
	FalsePositives int
	FalseNegatives int
	TrueNegatives  int

	TotalPromptTokens     int
	TotalCompletionTokens int
	AvgTokensPerTest      float64

	Pricing        *models.ModelPricing
	EstimatedCost  float64
	CostPerCorrect float64

	TestResults []TestResult
}

func (m *ModelMetrics) TotalTokens() int {
	return m.TotalPromptTokens + m.TotalCompletionTokens
}

// Precision = TP / (TP + FP), as a percentage. Zero denominator yields 0.
func (m *ModelMetrics) Precision() float64 {
	denom := m.TruePositives + m.FalsePositives
	if denom == 0 {
		return 0
	}
	return float64(m.TruePositives) / float64(denom) * 100
}

// Recall = TP / (TP + FN), as a percentage. Zero denominator yields 0.
func (m *ModelMetrics) Recall() float64 {
	denom := m.TruePositives + m.FalseNegatives
	if denom == 0 {
		return 0
	}
	return float64(m.TruePositives) / float64(denom) * 100
}

// F1 = 2PR / (P + R). Zero denominator yields 0.
func (m *ModelMetrics) F1() float64 {
	p, r := m.Precision(), m.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// AvgPricePerToken is used for report sorting; models without pricing sort
// last.
func (m *ModelMetrics) AvgPricePerToken() float64 {
	if m.Pricing == nil {
		return costPerCorrectSentinel
	}
	return m.Pricing.AvgPricePerToken()
}

// DiscoveryCorrect implements the discovery correctness rule. URLs compare
// equal after stripping trailing slashes and lower-casing.
func DiscoveryCorrect(expected string, found []string) bool {
	if expected == "" {
		return len(found) == 0
	}
	if len(found) == 0 {
		return false
	}
	want := normalizeURL(expected)
	for _, url := range found {
		if normalizeURL(url) == want {
			return true
		}
	}
	return false
}

func normalizeURL(url string) string {
	return strings.ToLower(strings.TrimRight(url, "/"))
}

// CalculateMetrics aggregates test results for one model. Errored tests are
// excluded from the accuracy denominator and latency distribution but
// counted in FailedTests.
func CalculateMetrics(modelName, displayName string, results []TestResult, pricing *models.ModelPricing) ModelMetrics {
	m := ModelMetrics{
		ModelName:   modelName,
		DisplayName: displayName,
		Timestamp:   time.Now().Format("20060102_150405"),
		TotalTests:  len(results),
		Pricing:     pricing,
		TestResults: results,
	}

	var latencies []float64
	correct := 0
	for _, r := range results {
		if r.Error != "" {
			m.FailedTests++
		} else {
			m.SuccessfulTests++
			latencies = append(latencies, r.LatencyMS)
			if r.Correct {
				correct++
			}
		}

		expectedPresent := r.Expected != ""
		foundPresent := len(r.Found) > 0
		switch {
		case expectedPresent && foundPresent && r.Correct:
			m.TruePositives++
		case !expectedPresent && foundPresent && !r.Correct:
			m.FalsePositives++
		case expectedPresent && !foundPresent:
			m.FalseNegatives++
		case !expectedPresent && !foundPresent && r.Correct:
			m.TrueNegatives++
		}

		m.TotalPromptTokens += r.PromptTokens
		m.TotalCompletionTokens += r.CompletionTokens
	}

	if m.SuccessfulTests > 0 {
		m.Accuracy = float64(correct) / float64(m.SuccessfulTests) * 100
	}
	if m.TotalTests > 0 {
		m.AvgTokensPerTest = float64(m.TotalTokens()) / float64(m.TotalTests)
	}

	if len(latencies) > 0 {
		sorted := append([]float64(nil), latencies...)
		sort.Float64s(sorted)

		var sum float64
		for _, l := range sorted {
			sum += l
		}
		m.AvgLatencyMS = sum / float64(len(sorted))
		m.MedianLatencyMS = sorted[len(sorted)/2]
		m.MinLatencyMS = sorted[0]
		m.MaxLatencyMS = sorted[len(sorted)-1]
	}

	if pricing != nil {
		m.EstimatedCost = float64(m.TotalPromptTokens)*pricing.PromptPrice +
			float64(m.TotalCompletionTokens)*pricing.CompletionPrice
		if correct > 0 {
			m.CostPerCorrect = m.EstimatedCost / float64(correct)
		} else {
			m.CostPerCorrect = costPerCorrectSentinel
		}
	}

	return m
}
