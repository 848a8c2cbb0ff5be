package editorial

import (
	"fmt"
	"strings"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

// Combine merges several tutorial documents into one text. A single document
// passes through unchanged; multiple documents get an LLM-visible source
// header before each so the segmentation prompt can disambiguate provenance.
func Combine(docs []models.TutorialDocument) string {
	if len(docs) == 0 {
		return ""
	}
	if len(docs) == 1 {
		return docs[0].RawText
	}

	parts := make([]string, 0, len(docs))
	for i, doc := range docs {
		parts = append(parts, fmt.Sprintf("=== EDITORIAL SOURCE %d ===\n\n%s", i+1, doc.RawText))
	}
	return strings.Join(parts, "\n\n")
}
