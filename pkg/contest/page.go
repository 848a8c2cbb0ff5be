package contest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/deyna256/codeforces-contest-scraper/models"
	"github.com/deyna256/codeforces-contest-scraper/pkg/editorial"
	"github.com/deyna256/codeforces-contest-scraper/pkg/links"
)

// DocumentFetcher is the HTTP capability the page parser consumes.
type DocumentFetcher interface {
	GetDocument(ctx context.Context, url string) (*goquery.Document, error)
}

// PageParser extracts contest title and editorial URLs from a contest page.
// The LLM selector is optional; when absent or inconclusive, discovery falls
// back to the keyword heuristic.
type PageParser struct {
	fetcher  DocumentFetcher
	selector *editorial.LinkSelector
	logger   *slog.Logger
}

func NewPageParser(fetcher DocumentFetcher, selector *editorial.LinkSelector, logger *slog.Logger) *PageParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageParser{fetcher: fetcher, selector: selector, logger: logger}
}

// ParseContestPage fetches a contest page and extracts its title plus any
// discoverable editorial URLs. Discovery failure degrades to an empty URL
// list; only the page fetch itself can fail.
func (p *PageParser) ParseContestPage(ctx context.Context, contestID string) (models.ContestPageData, error) {
	pageURL := BuildContestURL(models.ContestIdentifier{ContestID: contestID})

	doc, err := p.fetcher.GetDocument(ctx, pageURL)
	if err != nil {
		return models.ContestPageData{}, fmt.Errorf("failed to parse contest page %s: %w", pageURL, err)
	}

	return models.ContestPageData{
		ContestID:     contestID,
		Title:         extractTitle(doc),
		EditorialURLs: p.DiscoverEditorialURLs(ctx, doc, contestID),
	}, nil
}

// DiscoverEditorialURLs runs the discovery chain on an already-parsed
// contest page: candidate extraction, LLM selection, keyword fallback.
// Never fails; an empty result means no editorial was found.
func (p *PageParser) DiscoverEditorialURLs(ctx context.Context, doc *goquery.Document, contestID string) []string {
	candidates := links.Extract(doc)
	if len(candidates) == 0 {
		p.logger.Debug("no candidate links found on contest page", "contest_id", contestID)
		return nil
	}

	if p.selector != nil {
		if urls := p.selector.Select(ctx, candidates, contestID); len(urls) > 0 {
			return urls
		}
		p.logger.Debug("LLM found no editorial, using keyword fallback", "contest_id", contestID)
	}

	urls := links.ClassifyHeuristic(candidates)
	if len(urls) > 0 {
		p.logger.Info("found editorial URLs via keyword fallback",
			"contest_id", contestID, "count", len(urls))
	}
	return urls
}

func extractTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	title = strings.TrimSuffix(title, " - Codeforces")
	return strings.TrimSpace(title)
}
