package bench

import "github.com/deyna256/codeforces-contest-scraper/models"

// DiscoveryCase is a ground-truth case for editorial URL discovery. An
// empty Expected means the contest has no editorial and the model must
// report none.
type DiscoveryCase struct {
	ContestID   string
	Expected    string
	Description string
	Difficulty  string
}

// SegmentationCase is a ground-truth case for editorial segmentation.
// Expected lists every (contest id, problem letter) pair that a correct
// segmentation of the editorial must contain.
type SegmentationCase struct {
	ContestID     string
	EditorialURLs []string
	Expected      []models.ProblemIdentifier
	Description   string
	Difficulty    string
}

// DiscoveryCases returns manually verified contest/editorial pairs.
func DiscoveryCases() []DiscoveryCase {
	return []DiscoveryCase{
		{
			ContestID:   "2185",
			Expected:    "https://codeforces.com/blog/entry/150288",
			Description: "Codeforces Round 1074 (Div. 4)",
			Difficulty:  "easy",
		},
		{
			ContestID:   "2190",
			Expected:    "https://codeforces.com/blog/entry/150256",
			Description: "Codeforces Round 1073 (Div. 1)",
			Difficulty:  "easy",
		},
		{
			ContestID:   "2191",
			Expected:    "https://codeforces.com/blog/entry/150256",
			Description: "Codeforces Round 1073 (Div. 2)",
			Difficulty:  "medium",
		},
		{
			ContestID:   "2184",
			Expected:    "https://codeforces.com/blog/entry/150033",
			Description: "Codeforces Round 1072 (Div. 3)",
			Difficulty:  "easy",
		},
	}
}

// SegmentationCases returns manually verified segmentation ground truth.
func SegmentationCases() []SegmentationCase {
	return []SegmentationCase{
		{
			ContestID:     "2185",
			EditorialURLs: []string{"https://codeforces.com/blog/entry/150288"},
			Expected:      problemRange("2185", "ABCDEF"),
			Description:   "Codeforces Round 1074 (Div. 4)",
			Difficulty:    "easy",
		},
		{
			// Shared Div 1 + Div 2 editorial: the blog covers two contests
			// and segmentation must attribute problems to the right one.
			ContestID:     "2191",
			EditorialURLs: []string{"https://codeforces.com/blog/entry/150256"},
			Expected: append(
				problemRange("2190", "ABCDE"),
				problemRange("2191", "ABCDEF")...,
			),
			Description: "Codeforces Round 1073 (Div. 1 + Div. 2)",
			Difficulty:  "hard",
		},
		{
			ContestID: "36",
			EditorialURLs: []string{
				"https://codeforces.com/blog/entry/773",
				"https://codeforces.com/blog/entry/774",
				"https://codeforces.com/blog/entry/768",
			},
			Expected:    problemRange("36", "ABCDE"),
			Description: "Beta Round 36 - multiple editorial URLs",
			Difficulty:  "medium",
		},
		{
			ContestID:     "2177",
			EditorialURLs: nil,
			Expected:      nil,
			Description:   "ICPC 2025 - no editorial",
			Difficulty:    "easy",
		},
		{
			ContestID:     "2184",
			EditorialURLs: []string{"https://codeforces.com/blog/entry/150033"},
			Expected:      problemRange("2184", "ABCDEFG"),
			Description:   "Codeforces Round 1072 (Div. 3)",
			Difficulty:    "easy",
		},
		{
			ContestID:     "2183",
			EditorialURLs: []string{"https://codeforces.com/blog/entry/149944"},
			Expected:      problemRange("2183", "ABCDEF"),
			Description:   "Hello 2026",
			Difficulty:    "medium",
		},
		{
			ContestID:     "2182",
			EditorialURLs: []string{"https://codeforces.com/blog/entry/149733"},
			Expected:      problemRange("2182", "ABCDEF"),
			Description:   "Educational Codeforces Round 186 (Rated for Div. 2)",
			Difficulty:    "easy",
		},
	}
}

func problemRange(contestID, letters string) []models.ProblemIdentifier {
	ids := make([]models.ProblemIdentifier, 0, len(letters))
	for _, letter := range letters {
		ids = append(ids, models.ProblemIdentifier{
			ContestID: contestID,
			ProblemID: string(letter),
		})
	}
	return ids
}
