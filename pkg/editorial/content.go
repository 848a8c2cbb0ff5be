package editorial

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/deyna256/codeforces-contest-scraper/models"
	"github.com/deyna256/codeforces-contest-scraper/pkg/links"
)

// minContentLength is the minimum viable-content threshold: shorter extracts
// are treated as parse failures for that URL.
const minContentLength = 200

// contentSelectors are tried in priority order; the first whose cleaned text
// exceeds minContentLength wins.
var contentSelectors = []string{
	".ttypography",
	".entry-content",
	".blog-entry-content",
	"#blog-entry-text",
	".problem-statement",
}

// TextFetcher is the HTTP capability the content fetcher consumes.
type TextFetcher interface {
	GetText(ctx context.Context, url string) (string, error)
}

// ContentFetcher fetches tutorial pages and extracts their main textual
// content.
type ContentFetcher struct {
	http   TextFetcher
	logger *slog.Logger
}

func NewContentFetcher(http TextFetcher, logger *slog.Logger) *ContentFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentFetcher{http: http, logger: logger}
}

// FetchTutorial fetches one editorial URL and extracts its main content
// block. Returns ContentFetchError on transport failure and ContentParseError
// when no viable content is found.
func (f *ContentFetcher) FetchTutorial(ctx context.Context, pageURL string) (models.TutorialDocument, error) {
	body, err := f.http.GetText(ctx, pageURL)
	if err != nil {
		return models.TutorialDocument{}, &ContentFetchError{URL: pageURL, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return models.TutorialDocument{}, &ContentParseError{URL: pageURL}
	}

	text := extractMainContent(doc)
	if len(strings.TrimSpace(text)) < minContentLength {
		// Known containers failed; let readability distill the whole page.
		text = f.readabilityFallback(pageURL, body)
	}
	if len(strings.TrimSpace(text)) < minContentLength {
		return models.TutorialDocument{}, &ContentParseError{URL: pageURL}
	}

	return models.TutorialDocument{
		SourceURL: pageURL,
		RawText:   text,
		Language:  links.DetectLanguage(text),
	}, nil
}

// FetchAll fetches several editorial URLs concurrently. Per-URL failures are
// tolerated and logged; only when every URL fails does it return
// AllSourcesFailedError. Document order follows input order.
func (f *ContentFetcher) FetchAll(ctx context.Context, urls []string) ([]models.TutorialDocument, error) {
	docs := make([]*models.TutorialDocument, len(urls))
	errs := make([]error, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			doc, err := f.FetchTutorial(gctx, u)
			if err != nil {
				f.logger.Warn("failed to fetch editorial content", "url", u, "error", err)
				errs[i] = err
				return nil
			}
			docs[i] = &doc
			return nil
		})
	}
	// Workers never return errors; Wait only observes context cancellation.
	_ = g.Wait()

	var fetched []models.TutorialDocument
	var failed []string
	for i := range urls {
		if docs[i] != nil {
			fetched = append(fetched, *docs[i])
		} else {
			failed = append(failed, urls[i])
		}
	}

	if len(fetched) == 0 {
		return nil, &AllSourcesFailedError{URLs: failed}
	}
	return fetched, nil
}

func (f *ContentFetcher) readabilityFallback(pageURL, body string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(body), parsed)
	if err != nil {
		f.logger.Debug("readability fallback failed", "url", pageURL, "error", err)
		return ""
	}
	return CleanText(article.TextContent)
}

// extractMainContent tries the known content containers, then falls back to
// the document body.
func extractMainContent(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := CleanText(nodeText(sel))
		if len(strings.TrimSpace(text)) > minContentLength {
			return text
		}
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return ""
	}
	return CleanText(nodeText(body))
}

// blockTags force a line break in the extracted text, approximating the
// visual line structure of the rendered page.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"br": true, "tr": true, "table": true, "pre": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// nodeText extracts text with newlines at block-element boundaries.
func nodeText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		writeNodeText(&b, node)
	}
	return b.String()
}

func writeNodeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
		if blockTags[n.Data] {
			b.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(b, c)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		b.WriteString("\n")
	}
}

// Boilerplate phrase blocks stripped through end-of-line, case-insensitive.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Material\s+You\s+Should\s+Know[^\n]*`),
	regexp.MustCompile(`(?i)Problem\s+tags\s*:[^\n]*`),
	regexp.MustCompile(`(?i)Download\s+as\s+[^\n]*`),
	regexp.MustCompile(`(?i)Submit\s+a\s+ticket[^\n]*`),
	regexp.MustCompile(`(?i)Related\s+topics[^\n]*`),
}

var (
	excessBlankLines = regexp.MustCompile(`\n\s*\n\s*\n+`)
	horizontalRuns   = regexp.MustCompile(`[ \t]+`)
)

// CleanText normalizes extracted tutorial text: collapses excess blank
// lines, strips known boilerplate blocks, collapses horizontal whitespace
// runs and removes the leading space after newlines. Idempotent.
func CleanText(text string) string {
	text = excessBlankLines.ReplaceAllString(text, "\n\n")
	for _, pattern := range boilerplatePatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	text = horizontalRuns.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "\n ", "\n")
	return strings.TrimSpace(text)
}
