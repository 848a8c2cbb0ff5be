package editorial

import (
	"testing"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

func TestCombine_SingleDocumentPassthrough(t *testing.T) {
	docs := []models.TutorialDocument{{SourceURL: "u1", RawText: "only source"}}

	if got := Combine(docs); got != "only source" {
		t.Errorf("Combine() = %q, want passthrough", got)
	}
}

func TestCombine_MultipleDocumentsGetHeaders(t *testing.T) {
	docs := []models.TutorialDocument{
		{SourceURL: "u1", RawText: "first"},
		{SourceURL: "u2", RawText: "second"},
	}

	got := Combine(docs)
	want := "=== EDITORIAL SOURCE 1 ===\n\nfirst\n\n=== EDITORIAL SOURCE 2 ===\n\nsecond"
	if got != want {
		t.Errorf("Combine() = %q, want %q", got, want)
	}
}

func TestCombine_Empty(t *testing.T) {
	if got := Combine(nil); got != "" {
		t.Errorf("Combine(nil) = %q, want empty", got)
	}
}
