package editorial

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/deyna256/codeforces-contest-scraper/internal/common"
	"github.com/deyna256/codeforces-contest-scraper/pkg/cache"
	"github.com/deyna256/codeforces-contest-scraper/pkg/contest"
	"github.com/deyna256/codeforces-contest-scraper/pkg/editorial"
	"github.com/deyna256/codeforces-contest-scraper/pkg/fetcher"
	"github.com/deyna256/codeforces-contest-scraper/pkg/llm"
)

const defaultCacheTTL = 24 * time.Hour

// ExtractAction runs the editorial pipeline for one contest and prints the
// per-problem result as indented JSON on stdout.
func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	contestID := c.String("contest")
	if contestID == "" {
		if contestURL := c.String("url"); contestURL != "" {
			id, err := contest.ParseContestURL(contestURL)
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid contest URL: %v", err), 2)
			}
			contestID = id.ContestID
		}
	}
	if contestID == "" {
		return cli.Exit("either --contest or --url is required", 2)
	}

	urls, invalid := common.SanitizeAndValidateURLs(c.StringSlice("editorial-url"))
	for _, u := range invalid {
		logger.Warn("ignoring invalid editorial URL", "url", u)
	}

	client, err := buildClient(c, logger)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	var resultCache cache.Cache
	if addr := c.String("redis-addr"); addr != "" {
		redisCache := cache.NewRedis(addr, c.String("redis-password"), c.Int("redis-db"), defaultCacheTTL)
		defer redisCache.Close()
		resultCache = redisCache
	}

	httpTimeout := c.Duration("timeout")
	if httpTimeout <= 0 {
		httpTimeout = 30 * time.Second
	}
	httpFetcher := fetcher.New(httpTimeout)

	service := NewService(
		contest.NewPageParser(httpFetcher, editorial.NewLinkSelector(client, logger), logger),
		editorial.NewContentFetcher(httpFetcher, logger),
		editorial.NewSegmenter(client, logger),
		resultCache,
		logger,
	)

	result, err := service.GetEditorialContent(c.Context, contestID, urls)
	if err != nil {
		logger.Error("editorial extraction failed", "contest_id", contestID, "error", err)
		return cli.Exit(err.Error(), 1)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to encode result: %v", err), 1)
	}
	fmt.Println(string(encoded))
	return nil
}

// FlushCacheAction clears the Redis result cache.
func FlushCacheAction(c *cli.Context) error {
	addr := c.String("redis-addr")
	if addr == "" {
		return cli.Exit("--redis-addr is required", 2)
	}

	redisCache := cache.NewRedis(addr, c.String("redis-password"), c.Int("redis-db"), defaultCacheTTL)
	defer redisCache.Close()

	if err := redisCache.Flush(c.Context); err != nil {
		return cli.Exit(fmt.Sprintf("failed to flush cache: %v", err), 1)
	}
	fmt.Println("Cache flushed")
	return nil
}

// buildClient resolves the LLM client from provider flags and environment.
// A missing API key is not fatal: discovery still works through the keyword
// heuristic, only segmentation requires the LLM.
func buildClient(c *cli.Context, logger *slog.Logger) (llm.Client, error) {
	provider := c.String("provider")
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if provider == "anthropic" || provider == "claude" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		logger.Warn("no API key configured, running without LLM",
			"provider", provider)
		return nil, nil
	}
	return llm.NewClient(provider, apiKey, c.String("model"), c.String("base-url"))
}
