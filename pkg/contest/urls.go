// Package contest parses contest pages and Codeforces URL formats.
package contest

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

// ErrUnrecognizedURL marks URLs that are well-formed but not a known
// Codeforces format.
var ErrUnrecognizedURL = errors.New("unrecognized Codeforces URL format")

var (
	problemPattern = regexp.MustCompile(`codeforces\.(?:com|ru)/problemset/problem/(\d+)/([A-Z]\d*)`)
	contestPattern = regexp.MustCompile(`codeforces\.(?:com|ru)/(contest|gym)/(\d+)`)
)

// ParseProblemURL extracts a problem identifier from a problemset URL.
func ParseProblemURL(rawURL string) (models.ProblemIdentifier, error) {
	if err := validateURL(rawURL); err != nil {
		return models.ProblemIdentifier{}, err
	}

	match := problemPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return models.ProblemIdentifier{}, fmt.Errorf("%w: %s", ErrUnrecognizedURL, rawURL)
	}
	return models.ProblemIdentifier{ContestID: match[1], ProblemID: match[2]}, nil
}

// ParseContestURL extracts a contest identifier from a contest or gym URL.
func ParseContestURL(rawURL string) (models.ContestIdentifier, error) {
	if err := validateURL(rawURL); err != nil {
		return models.ContestIdentifier{}, err
	}

	match := contestPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return models.ContestIdentifier{}, fmt.Errorf("%w: %s", ErrUnrecognizedURL, rawURL)
	}
	return models.ContestIdentifier{
		ContestID: match[2],
		IsGym:     strings.EqualFold(match[1], "gym"),
	}, nil
}

// BuildContestURL builds the canonical contest page URL.
func BuildContestURL(id models.ContestIdentifier) string {
	pathType := "contest"
	if id.IsGym {
		pathType = "gym"
	}
	return fmt.Sprintf("https://codeforces.com/%s/%s", pathType, id.ContestID)
}

// BuildProblemURL builds the canonical problemset URL for a problem.
func BuildProblemURL(id models.ProblemIdentifier) string {
	return fmt.Sprintf("https://codeforces.com/problemset/problem/%s/%s", id.ContestID, id.ProblemID)
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %s: %w", rawURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: missing scheme or host in %s", ErrUnrecognizedURL, rawURL)
	}
	return nil
}
