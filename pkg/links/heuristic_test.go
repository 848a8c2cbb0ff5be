package links

import (
	"testing"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

func TestClassifyHeuristic(t *testing.T) {
	candidates := []models.CandidateLink{
		{URL: "https://codeforces.com/blog/entry/1", Text: "Contest Announcement"},
		{URL: "https://codeforces.com/blog/entry/2", Text: "Tutorial"},
		{URL: "https://codeforces.com/blog/entry/3", Text: "Разбор задач"},
		{URL: "https://codeforces.com/blog/entry/4", Text: "Registration open"},
		{URL: "https://codeforces.com/blog/entry/2", Text: "Tutorial (mirror)"},
	}

	got := ClassifyHeuristic(candidates)

	want := []string{
		"https://codeforces.com/blog/entry/2",
		"https://codeforces.com/blog/entry/3",
	}
	if len(got) != len(want) {
		t.Fatalf("ClassifyHeuristic() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("url %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClassifyHeuristic_ExcludeWinsOverTutorial(t *testing.T) {
	candidates := []models.CandidateLink{
		{URL: "https://codeforces.com/blog/entry/5", Text: "Editorial announcement rules"},
	}
	if got := ClassifyHeuristic(candidates); len(got) != 0 {
		t.Errorf("ClassifyHeuristic() = %v, want empty when exclude keyword present", got)
	}
}

func TestClassifyHeuristic_MixedLanguageAnchors(t *testing.T) {
	// A single anchor often mixes languages; the keyword match must not
	// depend on which language the anchor reads as overall.
	candidates := []models.CandidateLink{
		{URL: "https://codeforces.com/blog/entry/7", Text: "Video Editorial (разбор)"},
		{URL: "https://codeforces.com/blog/entry/8", Text: "Разбор problems A-D"},
	}

	got := ClassifyHeuristic(candidates)
	if len(got) != 2 {
		t.Fatalf("ClassifyHeuristic() = %v, want both mixed-language anchors", got)
	}
}

func TestClassifyHeuristic_NoMatches(t *testing.T) {
	candidates := []models.CandidateLink{
		{URL: "https://codeforces.com/blog/entry/6", Text: "Random blog post"},
	}
	if got := ClassifyHeuristic(candidates); len(got) != 0 {
		t.Errorf("ClassifyHeuristic() = %v, want empty", got)
	}
}

func TestDetectLanguage(t *testing.T) {
	if got := DetectLanguage("This is the full tutorial for the problems of the round"); got != "en" {
		t.Errorf("DetectLanguage(english) = %q, want en", got)
	}
	if got := DetectLanguage("Полный разбор всех задач этого раунда"); got != "ru" {
		t.Errorf("DetectLanguage(russian) = %q, want ru", got)
	}
}
