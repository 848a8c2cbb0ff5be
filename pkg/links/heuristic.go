package links

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

// Tutorial keyword sets. Contest pages mix English and Russian anchors,
// so both sets are always checked.
var (
	tutorialKeywordsEN = []string{"tutorial", "editorial", "analysis", "solution"}
	tutorialKeywordsRU = []string{"разбор", "решения"}

	excludeKeywords = []string{
		"announcement", "registration", "rules", "statements",
		"анонс", "регистрация", "правила",
	}
)

var detectorOnce = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Russian).
		Build()
})

// DetectLanguage classifies short anchor or document text as "en" or "ru".
// Returns "" when the detector is inconclusive.
func DetectLanguage(text string) string {
	lang, ok := detectorOnce().DetectLanguageOf(text)
	if !ok {
		return ""
	}
	switch lang {
	case lingua.Russian:
		return "ru"
	case lingua.English:
		return "en"
	}
	return ""
}

// ClassifyHeuristic is the regex/keyword fallback used when the LLM selector
// is absent or inconclusive. A candidate passes when its anchor text contains
// a tutorial keyword and no announcement-style keyword. Order is preserved
// and duplicates dropped.
func ClassifyHeuristic(candidates []models.CandidateLink) []string {
	var urls []string
	seen := make(map[string]bool)

	for _, c := range candidates {
		text := strings.ToLower(c.Text)
		if !matchesTutorialKeywords(text) || matchesExcludeKeywords(text) {
			continue
		}
		if seen[c.URL] {
			continue
		}
		seen[c.URL] = true
		urls = append(urls, c.URL)
	}

	return urls
}

func matchesTutorialKeywords(text string) bool {
	// Language detection on short anchors is too unreliable to narrow the
	// set, and anchors like "Editorial (разбор)" mix languages anyway.
	return containsAny(text, tutorialKeywordsEN) || containsAny(text, tutorialKeywordsRU)
}

func matchesExcludeKeywords(text string) bool {
	return containsAny(text, excludeKeywords)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
