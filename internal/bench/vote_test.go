package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRuns_MajorityVote(t *testing.T) {
	runs := []TestResult{
		{ContestID: "2185", Expected: "u", Correct: true, LatencyMS: 100, Found: []string{"u"}},
		{ContestID: "2185", Expected: "u", Correct: true, LatencyMS: 200, Found: []string{"u"}},
		{ContestID: "2185", Expected: "u", Correct: false, LatencyMS: 300, Found: []string{"x"}},
	}

	avg := AverageRuns(runs)

	assert.True(t, avg.Correct, "2 of 3 correct runs must vote correct")
	assert.InDelta(t, 200.0, avg.LatencyMS, 0.001)
	assert.Equal(t, []string{"u"}, avg.Found)
}

func TestAverageRuns_TieIsNotMajority(t *testing.T) {
	runs := []TestResult{
		{Correct: true},
		{Correct: false},
	}
	assert.False(t, AverageRuns(runs).Correct, "1 of 2 is not a majority")
}

func TestAverageRuns_MostFrequentFoundFirstSeenWinsTies(t *testing.T) {
	runs := []TestResult{
		{Found: []string{"a"}},
		{Found: []string{"b"}},
	}
	assert.Equal(t, []string{"a"}, AverageRuns(runs).Found)

	runs = []TestResult{
		{Found: []string{"a"}},
		{Found: []string{"b"}},
		{Found: []string{"b"}},
	}
	assert.Equal(t, []string{"b"}, AverageRuns(runs).Found)
}

func TestAverageRuns_KeepsFirstError(t *testing.T) {
	runs := []TestResult{
		{Correct: true},
		{Error: "timeout"},
		{Error: "rate limited"},
	}

	avg := AverageRuns(runs)
	assert.Equal(t, "timeout", avg.Error)
}

func TestAverageRuns_SumsTokens(t *testing.T) {
	runs := []TestResult{
		{PromptTokens: 100, CompletionTokens: 10},
		{PromptTokens: 200, CompletionTokens: 20},
	}

	avg := AverageRuns(runs)
	assert.Equal(t, 300, avg.PromptTokens)
	assert.Equal(t, 30, avg.CompletionTokens)
}

func TestAverageRuns_Empty(t *testing.T) {
	assert.Equal(t, TestResult{}, AverageRuns(nil))
}
