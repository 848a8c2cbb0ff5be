package bench

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

func TestBuildReport_SortsByAccuracyThenPrice(t *testing.T) {
	cheap := &models.ModelPricing{PromptPrice: 1e-7, CompletionPrice: 1e-7}
	expensive := &models.ModelPricing{PromptPrice: 1e-5, CompletionPrice: 1e-5}

	allMetrics := []ModelMetrics{
		{ModelName: "m/low", DisplayName: "Low", Accuracy: 50, TotalTests: 4},
		{ModelName: "m/expensive", DisplayName: "Expensive", Accuracy: 75, TotalTests: 4, Pricing: expensive},
		{ModelName: "m/cheap", DisplayName: "Cheap", Accuracy: 75, TotalTests: 4, Pricing: cheap},
		{ModelName: "m/unpriced", DisplayName: "Unpriced", Accuracy: 75, TotalTests: 4},
	}

	report := BuildReport(allMetrics)

	var order []string
	for _, s := range report.Summary {
		order = append(order, s.ModelName)
	}
	assert.Equal(t, []string{"m/cheap", "m/expensive", "m/unpriced", "m/low"}, order)
	assert.Equal(t, 4, report.BenchmarkInfo.TestCases)
	assert.Equal(t, 4, report.BenchmarkInfo.TotalModels)
}

func TestReportSerialization_NullsAndRounding(t *testing.T) {
	metrics := ModelMetrics{
		ModelName:   "m/x",
		DisplayName: "X",
		TotalTests:  2,
		TestResults: []TestResult{
			{ContestID: "2185", Expected: "https://codeforces.com/blog/entry/1",
				Found: []string{"https://codeforces.com/blog/entry/1"}, Correct: true, LatencyMS: 123.456},
			{ContestID: "2177", Expected: "", Found: nil, Correct: true, LatencyMS: 50},
		},
	}

	report := BuildReport([]ModelMetrics{metrics})
	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	detailed := decoded["detailed_results"].(map[string]any)["m/x"].(map[string]any)
	results := detailed["test_results"].([]any)
	require.Len(t, results, 2)

	first := results[0].(map[string]any)
	assert.Equal(t, 123.46, first["latency_ms"])
	assert.Nil(t, first["error"], "no error must serialize as null")

	second := results[1].(map[string]any)
	assert.Nil(t, second["expected"], "no expected editorial must serialize as null")
}

func TestPrintComparisonTable(t *testing.T) {
	var buf bytes.Buffer
	PrintComparisonTable(&buf, []ModelMetrics{
		{ModelName: "m/a", DisplayName: "Model A", Accuracy: 75, AvgLatencyMS: 1234},
		{ModelName: "m/b", DisplayName: "Model B", Accuracy: 100, AvgLatencyMS: 900},
	})

	out := buf.String()
	assert.Contains(t, out, "Model A")
	assert.Contains(t, out, "Model B")
	// Higher accuracy ranks first.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Model B")), bytes.Index(buf.Bytes(), []byte("Model A")))
}

func TestPrintComparisonTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintComparisonTable(&buf, nil)
	assert.Zero(t, buf.Len())
}
