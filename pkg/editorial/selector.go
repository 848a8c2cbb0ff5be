package editorial

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/deyna256/codeforces-contest-scraper/models"
	"github.com/deyna256/codeforces-contest-scraper/pkg/llm"
)

const selectorMaxTokens = 100

// LinkSelector asks the LLM to pick the editorial URL from extracted
// candidates. Selection failure is never fatal: every error path degrades to
// "no selection found" so the caller can fall back to the keyword heuristic.
type LinkSelector struct {
	llm    llm.Client
	logger *slog.Logger
}

func NewLinkSelector(client llm.Client, logger *slog.Logger) *LinkSelector {
	if logger == nil {
		logger = slog.Default()
	}
	return &LinkSelector{llm: client, logger: logger}
}

// Select returns the editorial URLs the LLM identified, or nil when the LLM
// is absent, errors, or finds nothing.
func (s *LinkSelector) Select(ctx context.Context, candidates []models.CandidateLink, contestID string) []string {
	urls, err := s.SelectStrict(ctx, candidates, contestID)
	if err != nil {
		s.logger.Debug("LLM editorial selection failed", "contest_id", contestID, "error", err)
		return nil
	}
	return urls
}

// SelectStrict is Select with transport errors surfaced instead of
// swallowed. Benchmark runs need them attributed to the model under test.
// An unparseable or negative LLM response is still a nil result, not an
// error.
func (s *LinkSelector) SelectStrict(ctx context.Context, candidates []models.CandidateLink, contestID string) ([]string, error) {
	if s.llm == nil || len(candidates) == 0 {
		return nil, nil
	}

	response, err := s.llm.Complete(ctx, llm.Request{
		System:      selectorSystemPrompt,
		Prompt:      buildSelectorPrompt(candidates, contestID),
		Temperature: 0,
		MaxTokens:   selectorMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	url := parseSelectorResponse(response)
	if url == "" {
		s.logger.Debug("LLM did not find editorial URL", "contest_id", contestID)
		return nil, nil
	}

	s.logger.Debug("LLM identified editorial URL", "contest_id", contestID, "url", url)
	return []string{url}, nil
}

// parseSelectorResponse extracts the URL from a {"url": ...} response. LLM
// output may have leading prose, so parsing starts at the first brace.
// Any decode failure means "no selection".
func parseSelectorResponse(response string) string {
	start := strings.Index(response, "{")
	if start == -1 {
		return ""
	}

	var payload struct {
		URL *string `json:"url"`
	}
	if err := json.Unmarshal([]byte(response[start:]), &payload); err != nil {
		return ""
	}
	if payload.URL == nil {
		return ""
	}
	return strings.TrimSpace(*payload.URL)
}
