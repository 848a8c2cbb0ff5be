package contest

import (
	"errors"
	"testing"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

func TestParseProblemURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    models.ProblemIdentifier
		wantErr bool
	}{
		{
			name: "standard problemset url",
			url:  "https://codeforces.com/problemset/problem/2185/A",
			want: models.ProblemIdentifier{ContestID: "2185", ProblemID: "A"},
		},
		{
			name: "ru domain",
			url:  "https://codeforces.ru/problemset/problem/100/B",
			want: models.ProblemIdentifier{ContestID: "100", ProblemID: "B"},
		},
		{
			name: "subdivided problem",
			url:  "https://codeforces.com/problemset/problem/2185/C1",
			want: models.ProblemIdentifier{ContestID: "2185", ProblemID: "C1"},
		},
		{
			name:    "contest url is not a problem url",
			url:     "https://codeforces.com/contest/2185",
			wantErr: true,
		},
		{
			name:    "missing scheme",
			url:     "codeforces.com/problemset/problem/2185/A",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProblemURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProblemURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseProblemURL(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
		})
	}
}

func TestParseContestURL(t *testing.T) {
	got, err := ParseContestURL("https://codeforces.com/contest/2191")
	if err != nil {
		t.Fatalf("ParseContestURL() error = %v", err)
	}
	if got.ContestID != "2191" || got.IsGym {
		t.Errorf("ParseContestURL() = %+v, want contest 2191", got)
	}

	gym, err := ParseContestURL("https://codeforces.com/gym/104053")
	if err != nil {
		t.Fatalf("ParseContestURL(gym) error = %v", err)
	}
	if gym.ContestID != "104053" || !gym.IsGym {
		t.Errorf("ParseContestURL(gym) = %+v, want gym 104053", gym)
	}

	_, err = ParseContestURL("https://codeforces.com/blog/entry/150288")
	if !errors.Is(err, ErrUnrecognizedURL) {
		t.Errorf("ParseContestURL(blog) error = %v, want ErrUnrecognizedURL", err)
	}
}

func TestBuildURLs(t *testing.T) {
	contestURL := BuildContestURL(models.ContestIdentifier{ContestID: "2185"})
	if contestURL != "https://codeforces.com/contest/2185" {
		t.Errorf("BuildContestURL() = %q", contestURL)
	}

	gymURL := BuildContestURL(models.ContestIdentifier{ContestID: "104053", IsGym: true})
	if gymURL != "https://codeforces.com/gym/104053" {
		t.Errorf("BuildContestURL(gym) = %q", gymURL)
	}

	problemURL := BuildProblemURL(models.ProblemIdentifier{ContestID: "2185", ProblemID: "A"})
	if problemURL != "https://codeforces.com/problemset/problem/2185/A" {
		t.Errorf("BuildProblemURL() = %q", problemURL)
	}
}

func TestRoundTrip(t *testing.T) {
	id := models.ProblemIdentifier{ContestID: "2190", ProblemID: "E"}
	parsed, err := ParseProblemURL(BuildProblemURL(id))
	if err != nil {
		t.Fatalf("round trip error = %v", err)
	}
	if parsed != id {
		t.Errorf("round trip = %+v, want %+v", parsed, id)
	}
}
