package editorial

import (
	"sort"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

// Reconcile matches segmented entries against the requesting contest.
//
//   - Entries keyed to the requesting contest are emitted directly.
//   - Legacy entries (empty contest id) are attributed to the requesting
//     contest, but only when no explicit entry exists for the same letter:
//     explicit attribution always wins.
//   - Entries keyed to a different contest belong to a sibling round sharing
//     the editorial post and are dropped entirely.
//
// Problems with no matching entry simply receive no analysis; that is not an
// error. Output is letter-sorted for deterministic serialization.
func Reconcile(segmented map[models.SegmentKey]string, contestID string) []models.EditorialAnalysis {
	explicit := make(map[string]string)
	legacy := make(map[string]string)

	for key, text := range segmented {
		switch key.ContestID {
		case contestID:
			explicit[key.Letter] = text
		case "":
			legacy[key.Letter] = text
		}
	}

	analyses := make([]models.EditorialAnalysis, 0, len(explicit)+len(legacy))
	for letter, text := range explicit {
		analyses = append(analyses, models.EditorialAnalysis{
			ContestID:    contestID,
			ProblemID:    letter,
			AnalysisText: text,
		})
	}
	for letter, text := range legacy {
		if _, exists := explicit[letter]; exists {
			continue
		}
		analyses = append(analyses, models.EditorialAnalysis{
			ContestID:    contestID,
			ProblemID:    letter,
			AnalysisText: text,
		})
	}

	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].ProblemID < analyses[j].ProblemID
	})
	return analyses
}
