package bench

import "strings"

// AverageRuns folds repeated runs of one test case into a single result.
// Latency is the arithmetic mean across all runs; correctness is a majority
// vote; the found list is the most frequent exact list (first-seen wins
// ties); the error is the first non-empty one observed, kept even when the
// majority vote succeeded. Token counts are summed: they reflect total
// spend for the case.
func AverageRuns(runs []TestResult) TestResult {
	if len(runs) == 0 {
		return TestResult{}
	}

	avg := runs[0]
	avg.Found = mostFrequentFound(runs)
	avg.Error = ""

	var latencySum float64
	correctCount := 0
	promptTokens, completionTokens := 0, 0
	for _, r := range runs {
		latencySum += r.LatencyMS
		if r.Correct {
			correctCount++
		}
		if avg.Error == "" && r.Error != "" {
			avg.Error = r.Error
		}
		promptTokens += r.PromptTokens
		completionTokens += r.CompletionTokens
	}

	avg.LatencyMS = latencySum / float64(len(runs))
	avg.Correct = correctCount > len(runs)/2
	avg.PromptTokens = promptTokens
	avg.CompletionTokens = completionTokens
	return avg
}

// mostFrequentFound picks the found-URL list that appeared most often across
// runs, breaking ties by first occurrence.
func mostFrequentFound(runs []TestResult) []string {
	counts := make(map[string]int)
	for _, r := range runs {
		counts[foundKey(r.Found)]++
	}

	best := runs[0].Found
	bestCount := counts[foundKey(best)]
	seen := map[string]bool{foundKey(best): true}
	for _, r := range runs[1:] {
		key := foundKey(r.Found)
		if seen[key] {
			continue
		}
		seen[key] = true
		if counts[key] > bestCount {
			best = r.Found
			bestCount = counts[key]
		}
	}
	return best
}

func foundKey(found []string) string {
	return strings.Join(found, "\x1f")
}
