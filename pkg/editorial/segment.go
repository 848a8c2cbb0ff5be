package editorial

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/deyna256/codeforces-contest-scraper/models"
	"github.com/deyna256/codeforces-contest-scraper/pkg/llm"
)

const (
	// maxContentChars is a conservative prompt-size limit, counted in
	// characters so Russian text keeps as much content as English.
	maxContentChars  = 40000
	truncationMarker = "\n\n[CONTENT TRUNCATED DUE TO LENGTH]"

	// minSegmentableChars: shorter input cannot contain a real editorial.
	minSegmentableChars = 50

	// segmentationMaxTokens must be large enough that verbatim solutions
	// are not cut off mid-text.
	segmentationMaxTokens = 16000
)

// Segmenter prompts the LLM to split combined editorial text into
// per-problem verbatim entries.
type Segmenter struct {
	llm    llm.Client
	logger *slog.Logger
}

func NewSegmenter(client llm.Client, logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Segmenter{llm: client, logger: logger}
}

// Segment asks the LLM to segment combined tutorial text, returning entries
// keyed by (contest id, letter). Legacy-schema entries carry an empty
// contest id. The returned usage is nil when the provider does not report
// token counts.
func (s *Segmenter) Segment(
	ctx context.Context,
	combined string,
	contestID string,
	expected []models.ProblemIdentifier,
) (map[models.SegmentKey]string, *llm.Usage, error) {
	if s.llm == nil {
		return nil, nil, fmt.Errorf("contest %s: %w", contestID, ErrSegmentationUnavailable)
	}
	if len(strings.TrimSpace(combined)) < minSegmentableChars {
		return nil, nil, fmt.Errorf("contest %s: %w", contestID, ErrContentTooShort)
	}

	text := TruncateContent(combined)
	if len(text) != len(combined) {
		s.logger.Warn("truncated editorial text", "contest_id", contestID, "max_chars", maxContentChars)
	}

	resp, err := s.llm.CompleteWithUsage(ctx, llm.Request{
		System:      segmentationSystemPrompt,
		Prompt:      buildSegmentationPrompt(text, contestID, expected),
		Temperature: 0,
		MaxTokens:   segmentationMaxTokens,
	})
	if err != nil {
		return nil, nil, &SegmentationParseError{ContestID: contestID, Err: err}
	}

	segmented, err := ParseSegmentationResponse(resp.Content, contestID)
	if err != nil {
		return nil, resp.Usage, err
	}
	return segmented, resp.Usage, nil
}

// TruncateContent enforces the prompt-size limit: text over maxContentChars
// is cut to exactly that many characters plus a literal marker. The limit
// counts runes, not bytes; Russian editorials use multi-byte runes and a
// byte cut would halve their content or split a rune.
func TruncateContent(text string) string {
	if len(text) <= maxContentChars {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxContentChars {
		return text
	}
	return string(runes[:maxContentChars]) + truncationMarker
}

// ParseSegmentationResponse decodes an LLM segmentation response. Two
// schemas exist: the contest-id-aware schema carries a "problems" array;
// the legacy schema is a flat letter->text object with no contest
// attribution. Which one applies is decided by a discriminant check on the
// already-parsed JSON value.
func ParseSegmentationResponse(response, contestID string) (map[models.SegmentKey]string, error) {
	start := strings.Index(response, "{")
	if start == -1 {
		return nil, &SegmentationParseError{
			ContestID:   contestID,
			RawResponse: response,
			Err:         fmt.Errorf("no JSON object found in response"),
		}
	}

	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(response[start:])))
	dec.UseNumber()

	var generic map[string]any
	if err := dec.Decode(&generic); err != nil {
		return nil, &SegmentationParseError{ContestID: contestID, RawResponse: response, Err: err}
	}

	if problems, ok := generic["problems"].([]any); ok {
		return parseNewSchema(problems), nil
	}
	return parseLegacySchema(generic), nil
}

// parseNewSchema handles {"problems":[{"contest_id","problem_id","analysis"}]}.
// Rows missing a non-empty contest id, a normalizable problem id or a
// non-empty analysis are dropped.
func parseNewSchema(problems []any) map[models.SegmentKey]string {
	result := make(map[models.SegmentKey]string)
	for _, item := range problems {
		row, ok := item.(map[string]any)
		if !ok {
			continue
		}

		contestID := strings.TrimSpace(coerceString(row["contest_id"]))
		letter, okID := NormalizeProblemID(coerceString(row["problem_id"]))
		analysis := strings.TrimSpace(coerceString(row["analysis"]))

		if contestID == "" || !okID || analysis == "" {
			continue
		}
		result[models.SegmentKey{ContestID: contestID, Letter: letter}] = analysis
	}
	return result
}

// parseLegacySchema handles {"A": "...", "B": "..."}. Entries get an empty
// contest id: no disambiguation is available, so they match by letter only
// against the requesting contest.
func parseLegacySchema(obj map[string]any) map[models.SegmentKey]string {
	result := make(map[models.SegmentKey]string)
	for key, value := range obj {
		text, ok := value.(string)
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		letter, okID := NormalizeProblemID(key)
		if !okID {
			continue
		}
		result[models.SegmentKey{Letter: letter}] = strings.TrimSpace(text)
	}
	return result
}

// coerceString renders a generic JSON scalar as a string. Models sometimes
// emit contest ids as bare numbers.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
