package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/deyna256/codeforces-contest-scraper/internal/bench"
	"github.com/deyna256/codeforces-contest-scraper/internal/editorial"
)

func main() {
	// Missing .env is fine; keys can come from the environment directly.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "cfscrape",
		Usage: "Extract per-problem editorial analyses from Codeforces contests",
		Commands: []*cli.Command{
			{
				Name:   "editorial",
				Usage:  "Discover, fetch and segment the editorial for a contest",
				Action: editorial.ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "contest",
						Usage: "Contest ID, e.g. 2185",
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "Contest or gym URL instead of --contest",
					},
					&cli.StringSliceFlag{
						Name:  "editorial-url",
						Usage: "Known editorial URL, skips discovery (repeatable)",
					},
					&cli.StringFlag{
						Name:  "provider",
						Value: "openrouter",
						Usage: "LLM provider: openrouter, openai, anthropic",
					},
					&cli.StringFlag{
						Name:  "model",
						Value: "google/gemini-2.0-flash-001",
						Usage: "Model name for selection and segmentation",
					},
					&cli.StringFlag{
						Name:  "base-url",
						Usage: "Override the provider API base URL",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Value: 30 * time.Second,
						Usage: "HTTP timeout for page fetches",
					},
					&cli.StringFlag{
						Name:  "redis-addr",
						Usage: "Redis address for result caching, e.g. localhost:6379",
					},
					&cli.StringFlag{
						Name:  "redis-password",
						Usage: "Redis password",
					},
					&cli.IntFlag{
						Name:  "redis-db",
						Usage: "Redis database number",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:  "cache",
				Usage: "Manage the editorial result cache",
				Subcommands: []*cli.Command{
					{
						Name:   "flush",
						Usage:  "Clear all cached editorial results",
						Action: editorial.FlushCacheAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "redis-addr",
								Usage: "Redis address, e.g. localhost:6379",
							},
							&cli.StringFlag{
								Name:  "redis-password",
								Usage: "Redis password",
							},
							&cli.IntFlag{
								Name:  "redis-db",
								Usage: "Redis database number",
							},
						},
					},
				},
			},
			{
				Name:   "bench",
				Usage:  "Benchmark LLM models on discovery or segmentation",
				Action: bench.RunAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "suite",
						Value: "discovery",
						Usage: "Benchmark suite: discovery or segmentation",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML benchmark config with models, settings and pricing",
					},
					&cli.StringFlag{
						Name:  "model",
						Usage: "Only benchmark models whose name matches this substring",
					},
					&cli.StringFlag{
						Name:  "base-url",
						Usage: "Override the OpenRouter API base URL",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Value: "benchmark_results",
						Usage: "Directory for JSON comparison reports",
					},
					&cli.StringFlag{
						Name:  "store",
						Usage: "SQLite database path for persisting benchmark sessions",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
