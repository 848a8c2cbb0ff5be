package bench

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/deyna256/codeforces-contest-scraper/models"
	"github.com/deyna256/codeforces-contest-scraper/pkg/cache"
	"github.com/deyna256/codeforces-contest-scraper/pkg/contest"
	"github.com/deyna256/codeforces-contest-scraper/pkg/editorial"
	"github.com/deyna256/codeforces-contest-scraper/pkg/fetcher"
	"github.com/deyna256/codeforces-contest-scraper/pkg/links"
	"github.com/deyna256/codeforces-contest-scraper/pkg/llm"
)

const defaultRunTimeout = 30 * time.Second

// Runner executes benchmark suites against OpenRouter-hosted models. One
// runner holds one HTML cache, so every model in a comparison sees the same
// fetched pages.
type Runner struct {
	http      *fetcher.Fetcher
	apiKey    string
	baseURL   string
	settings  models.BenchSettings
	htmlCache *cache.Memory
	logger    *slog.Logger
}

func NewRunner(apiKey, baseURL string, settings models.BenchSettings, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		http:      fetcher.New(defaultRunTimeout),
		apiKey:    apiKey,
		baseURL:   baseURL,
		settings:  settings,
		htmlCache: cache.NewMemory(),
		logger:    logger,
	}
}

// RunDiscovery benchmarks one model on the editorial URL discovery suite.
// Cases run in batches of ParallelRequests; repeated runs of one case run
// sequentially and are folded by AverageRuns.
func (r *Runner) RunDiscovery(ctx context.Context, mc models.ModelConfig, cases []DiscoveryCase) []TestResult {
	client := llm.NewOpenRouterClient(r.apiKey, mc.Name, r.baseURL)
	results := make([]TestResult, len(cases))

	r.runBatched(ctx, mc, len(cases), func(ctx context.Context, i int) {
		results[i] = r.discoveryCase(ctx, client, mc, cases[i])
	})
	return results
}

// RunSegmentation benchmarks one model on the editorial segmentation suite.
func (r *Runner) RunSegmentation(ctx context.Context, mc models.ModelConfig, cases []SegmentationCase) []TestResult {
	client := llm.NewOpenRouterClient(r.apiKey, mc.Name, r.baseURL)
	results := make([]TestResult, len(cases))

	r.runBatched(ctx, mc, len(cases), func(ctx context.Context, i int) {
		results[i] = r.segmentationCase(ctx, client, mc, cases[i])
	})
	return results
}

// runBatched runs fn for indexes 0..n-1 in batches of ParallelRequests. A
// batch must drain before the next starts, which caps concurrent LLM calls.
func (r *Runner) runBatched(ctx context.Context, mc models.ModelConfig, n int, fn func(ctx context.Context, i int)) {
	batch := r.settings.ParallelRequests
	if batch <= 0 {
		batch = 1
	}

	for start := 0; start < n; start += batch {
		end := min(start+batch, n)

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				fn(gctx, i)
				return nil
			})
		}
		_ = g.Wait()

		r.logger.Info("benchmark batch finished",
			"model", mc.Name, "completed", end, "total", n)
	}
}

func (r *Runner) discoveryCase(ctx context.Context, client llm.Client, mc models.ModelConfig, tc DiscoveryCase) TestResult {
	runs := make([]TestResult, 0, r.settings.RunsPerTest)
	for i := 0; i < max(r.settings.RunsPerTest, 1); i++ {
		runs = append(runs, r.discoveryRun(ctx, client, mc, tc))
	}
	return AverageRuns(runs)
}

func (r *Runner) discoveryRun(ctx context.Context, client llm.Client, mc models.ModelConfig, tc DiscoveryCase) TestResult {
	result := TestResult{ContestID: tc.ContestID, Expected: tc.Expected}

	runCtx, cancel := context.WithTimeout(ctx, r.modelTimeout(mc))
	defer cancel()

	start := time.Now()
	found, err := r.discoverEditorial(runCtx, client, tc.ContestID)
	result.LatencyMS = float64(time.Since(start)) / float64(time.Millisecond)

	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Found = found
	result.Correct = DiscoveryCorrect(tc.Expected, found)
	return result
}

// discoverEditorial runs the LLM selection step in isolation: no keyword
// fallback, so the score reflects the model alone.
func (r *Runner) discoverEditorial(ctx context.Context, client llm.Client, contestID string) ([]string, error) {
	pageURL := contest.BuildContestURL(models.ContestIdentifier{ContestID: contestID})
	body, err := r.cachedText(ctx, "contest:"+contestID, pageURL)
	if err != nil {
		return nil, fmt.Errorf("contest page fetch failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("contest page parse failed: %w", err)
	}

	selector := editorial.NewLinkSelector(client, r.logger)
	return selector.SelectStrict(ctx, links.Extract(doc), contestID)
}

func (r *Runner) segmentationCase(ctx context.Context, client llm.Client, mc models.ModelConfig, tc SegmentationCase) TestResult {
	runs := make([]TestResult, 0, r.settings.RunsPerTest)
	for i := 0; i < max(r.settings.RunsPerTest, 1); i++ {
		runs = append(runs, r.segmentationRun(ctx, client, mc, tc))
	}
	return AverageRuns(runs)
}

func (r *Runner) segmentationRun(ctx context.Context, client llm.Client, mc models.ModelConfig, tc SegmentationCase) TestResult {
	result := TestResult{
		ContestID: tc.ContestID,
		Expected:  formatProblemList(tc.Expected),
	}

	runCtx, cancel := context.WithTimeout(ctx, r.modelTimeout(mc))
	defer cancel()

	start := time.Now()
	segmented, usage, err := r.segmentEditorial(runCtx, client, tc)
	result.LatencyMS = float64(time.Since(start)) / float64(time.Millisecond)

	if usage != nil {
		result.PromptTokens = usage.PromptTokens
		result.CompletionTokens = usage.CompletionTokens
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Found = formatSegmentKeys(segmented)
	result.Correct = segmentationCorrect(tc.Expected, segmented)
	return result
}

func (r *Runner) segmentEditorial(ctx context.Context, client llm.Client, tc SegmentationCase) (map[models.SegmentKey]string, *llm.Usage, error) {
	// No-editorial ground truth: the correct outcome is an empty
	// segmentation, not an error.
	if len(tc.EditorialURLs) == 0 {
		return map[models.SegmentKey]string{}, nil, nil
	}

	combined, err := r.combinedContent(ctx, tc)
	if err != nil {
		return nil, nil, err
	}

	segmenter := editorial.NewSegmenter(client, r.logger)
	return segmenter.Segment(ctx, combined, tc.ContestID, tc.Expected)
}

// combinedContent fetches and combines the case's editorial pages, cached
// per contest so repeated runs and later models reuse the same text.
func (r *Runner) combinedContent(ctx context.Context, tc SegmentationCase) (string, error) {
	key := "tutorial:" + tc.ContestID
	if text, ok, _ := r.htmlCache.Get(ctx, key); ok {
		return text, nil
	}

	content := editorial.NewContentFetcher(r.http, r.logger)
	docs, err := content.FetchAll(ctx, tc.EditorialURLs)
	if err != nil {
		return "", err
	}

	combined := editorial.Combine(docs)
	if r.settings.SaveHTMLCache {
		_ = r.htmlCache.Set(ctx, key, combined)
	}
	return combined, nil
}

func (r *Runner) cachedText(ctx context.Context, key, url string) (string, error) {
	if body, ok, _ := r.htmlCache.Get(ctx, key); ok {
		return body, nil
	}
	body, err := r.http.GetText(ctx, url)
	if err != nil {
		return "", err
	}
	if r.settings.SaveHTMLCache {
		_ = r.htmlCache.Set(ctx, key, body)
	}
	return body, nil
}

func (r *Runner) modelTimeout(mc models.ModelConfig) time.Duration {
	if mc.TimeoutSec > 0 {
		return time.Duration(mc.TimeoutSec * float64(time.Second))
	}
	return defaultRunTimeout
}

// segmentationCorrect requires every expected (contest, letter) pair to be
// present. With no expectations, any segmented output is a false positive.
func segmentationCorrect(expected []models.ProblemIdentifier, segmented map[models.SegmentKey]string) bool {
	if len(expected) == 0 {
		return len(segmented) == 0
	}
	for _, id := range expected {
		if _, ok := segmented[models.SegmentKey{ContestID: id.ContestID, Letter: id.ProblemID}]; !ok {
			return false
		}
	}
	return true
}

func formatProblemList(ids []models.ProblemIdentifier) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.ContestID+"/"+id.ProblemID)
	}
	return strings.Join(parts, ", ")
}

func formatSegmentKeys(segmented map[models.SegmentKey]string) []string {
	if len(segmented) == 0 {
		return nil
	}
	keys := make([]string, 0, len(segmented))
	for key := range segmented {
		keys = append(keys, key.ContestID+"/"+key.Letter)
	}
	sort.Strings(keys)
	return keys
}
