package editorial

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for segmentation preconditions.
var (
	// ErrSegmentationUnavailable: no LLM client configured. Fatal to the
	// call, not retried.
	ErrSegmentationUnavailable = errors.New("no LLM client configured for segmentation")
	// ErrContentTooShort: combined tutorial text is genuinely insufficient.
	ErrContentTooShort = errors.New("editorial content too short for segmentation")
)

// ContentFetchError is a per-URL tutorial fetch failure.
type ContentFetchError struct {
	URL string
	Err error
}

func (e *ContentFetchError) Error() string {
	return fmt.Sprintf("failed to fetch editorial content from %s: %v", e.URL, e.Err)
}

func (e *ContentFetchError) Unwrap() error { return e.Err }

// ContentParseError means a fetched page yielded no viable content block.
type ContentParseError struct {
	URL string
}

func (e *ContentParseError) Error() string {
	return fmt.Sprintf("failed to extract viable editorial content from %s", e.URL)
}

// AllSourcesFailedError is raised only when every configured editorial URL
// failed; individual failures are tolerated.
type AllSourcesFailedError struct {
	URLs []string
}

func (e *AllSourcesFailedError) Error() string {
	return fmt.Sprintf("all editorial URLs failed to load: %s", strings.Join(e.URLs, ", "))
}

// SegmentationParseError wraps an unparseable LLM response. RawResponse is
// preserved for diagnostics.
type SegmentationParseError struct {
	ContestID   string
	RawResponse string
	Err         error
}

func (e *SegmentationParseError) Error() string {
	return fmt.Sprintf("failed to parse segmentation response for contest %s: %v", e.ContestID, e.Err)
}

func (e *SegmentationParseError) Unwrap() error { return e.Err }

// EditorialNotFoundError means no editorial URLs are known or discoverable
// for a contest.
type EditorialNotFoundError struct {
	ContestID string
}

func (e *EditorialNotFoundError) Error() string {
	return fmt.Sprintf("no editorial found for contest %s", e.ContestID)
}
