// Package links extracts and classifies candidate editorial links from
// contest pages.
package links

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

// Origin resolves relative hrefs found on contest pages.
const Origin = "https://codeforces.com"

// MaxCandidates bounds the candidate list so downstream LLM prompts stay
// small.
const MaxCandidates = 20

// skipPatterns mark hrefs that are site navigation, never editorials.
var skipPatterns = []string{
	"/profile/",
	"/problemset/",
	"/contest/",
	"/gym/",
	"/standings/",
	"/submission/",
	"/register",
	"/settings",
	"javascript:",
	"#",
}

// scopeSelectors are searched in priority order; the whole document is the
// last resort.
var scopeSelectors = []string{"#sidebar", ".roundbox", ".datatable"}

// Extract scans a contest page for candidate editorial links. It returns
// de-duplicated (url, anchor text) pairs in scan order, capped at
// MaxCandidates. Pure transformation, no I/O.
func Extract(doc *goquery.Document) []models.CandidateLink {
	var candidates []models.CandidateLink
	seen := make(map[string]bool)

	scopes := make([]*goquery.Selection, 0, len(scopeSelectors)+1)
	for _, sel := range scopeSelectors {
		scopes = append(scopes, doc.Find(sel))
	}
	scopes = append(scopes, doc.Selection)

	for _, scope := range scopes {
		scope.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if len(candidates) >= MaxCandidates {
				return false
			}

			href, _ := s.Attr("href")
			if href == "" || !PotentiallyEditorial(href) {
				return true
			}
			if seen[href] {
				return true
			}
			seen[href] = true

			text := strings.TrimSpace(s.Text())
			if text == "" {
				return true
			}

			candidates = append(candidates, models.CandidateLink{
				URL:  Resolve(href),
				Text: text,
			})
			return true
		})
		if len(candidates) >= MaxCandidates {
			break
		}
	}

	return candidates
}

// PotentiallyEditorial reports whether a href could plausibly point at an
// editorial. Blog entry links always qualify, even when a skip pattern also
// matches.
func PotentiallyEditorial(href string) bool {
	if strings.Contains(href, "/blog/entry/") {
		return true
	}
	for _, pattern := range skipPatterns {
		if strings.Contains(href, pattern) {
			return false
		}
	}
	return true
}

// Resolve makes a site-relative href absolute against the known origin.
func Resolve(href string) string {
	if strings.HasPrefix(href, "/") {
		return Origin + href
	}
	return href
}
