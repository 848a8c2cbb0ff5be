package models

// CandidateLink is one (url, anchor text) pair extracted from a contest page.
// Produced and consumed within a single discovery call.
type CandidateLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// TutorialDocument is one fetched, cleaned editorial document.
// RawText is guaranteed to be at least the minimum viable-content length;
// shorter documents are rejected as fetch failures.
type TutorialDocument struct {
	SourceURL string `json:"source_url"`
	RawText   string `json:"raw_text"`
	Language  string `json:"language,omitempty"`
}

// SegmentKey identifies one segmented editorial entry. An empty ContestID
// marks a legacy-schema entry with no contest attribution: it is matched by
// letter against the requesting contest only.
type SegmentKey struct {
	ContestID string
	Letter    string
}

// EditorialAnalysis is the final per-problem unit: verbatim analysis text
// reconciled to a concrete contest and problem letter.
type EditorialAnalysis struct {
	ContestID    string `json:"contest_id"`
	ProblemID    string `json:"problem_id"`
	AnalysisText string `json:"analysis_text"`
}

// ContestEditorialResult is the caller-facing result of editorial extraction.
// Problems that received no matching segment are simply absent.
type ContestEditorialResult struct {
	ContestID string              `json:"contest_id"`
	Analyses  []EditorialAnalysis `json:"analyses"`
}

// ContestPageData holds data extracted from a contest page.
type ContestPageData struct {
	ContestID     string   `json:"contest_id"`
	Title         string   `json:"title,omitempty"`
	EditorialURLs []string `json:"editorial_urls"`
}
