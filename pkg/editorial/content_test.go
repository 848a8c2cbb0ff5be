package editorial

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHTTP serves canned bodies per URL.
type fakeHTTP struct {
	pages map[string]string
}

func (f *fakeHTTP) GetText(_ context.Context, url string) (string, error) {
	body, ok := f.pages[url]
	if !ok {
		return "", errors.New("connection refused")
	}
	return body, nil
}

func tutorialHTML(text string) string {
	return fmt.Sprintf(`<html><body>
		<div id="sidebar"><a href="/blog/entry/1">Tutorial</a></div>
		<div class="ttypography"><p>%s</p></div>
	</body></html>`, text)
}

func longText() string {
	return strings.Repeat("The intended solution sorts the array and counts inversions. ", 10)
}

func TestFetchTutorial(t *testing.T) {
	http := &fakeHTTP{pages: map[string]string{
		"https://codeforces.com/blog/entry/1": tutorialHTML(longText()),
	}}
	f := NewContentFetcher(http, nil)

	doc, err := f.FetchTutorial(context.Background(), "https://codeforces.com/blog/entry/1")
	require.NoError(t, err)

	assert.Equal(t, "https://codeforces.com/blog/entry/1", doc.SourceURL)
	assert.Contains(t, doc.RawText, "intended solution")
	assert.NotContains(t, doc.RawText, "Tutorial", "sidebar content must not leak into the extract")
	assert.Equal(t, "en", doc.Language)
}

func TestFetchTutorial_TransportFailure(t *testing.T) {
	f := NewContentFetcher(&fakeHTTP{}, nil)

	_, err := f.FetchTutorial(context.Background(), "https://codeforces.com/blog/entry/404")

	var fetchErr *ContentFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "https://codeforces.com/blog/entry/404", fetchErr.URL)
}

func TestFetchTutorial_TooShort(t *testing.T) {
	http := &fakeHTTP{pages: map[string]string{
		"https://codeforces.com/blog/entry/2": `<html><body><p>tiny</p></body></html>`,
	}}
	f := NewContentFetcher(http, nil)

	_, err := f.FetchTutorial(context.Background(), "https://codeforces.com/blog/entry/2")

	var parseErr *ContentParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFetchTutorial_ReadabilityFallback(t *testing.T) {
	// No known container and a short body: the readability pass runs and
	// still cannot produce viable content.
	http := &fakeHTTP{pages: map[string]string{
		"https://codeforces.com/blog/entry/3": `<html><body>
			<article><p>short note</p></article>
		</body></html>`,
	}}
	f := NewContentFetcher(http, nil)

	_, err := f.FetchTutorial(context.Background(), "https://codeforces.com/blog/entry/3")

	var parseErr *ContentParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "https://codeforces.com/blog/entry/3", parseErr.URL)
}

func TestFetchAll_ToleratesPartialFailure(t *testing.T) {
	http := &fakeHTTP{pages: map[string]string{
		"https://codeforces.com/blog/entry/1": tutorialHTML(longText()),
	}}
	f := NewContentFetcher(http, nil)

	docs, err := f.FetchAll(context.Background(), []string{
		"https://codeforces.com/blog/entry/1",
		"https://codeforces.com/blog/entry/missing",
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "https://codeforces.com/blog/entry/1", docs[0].SourceURL)
}

func TestFetchAll_PreservesInputOrder(t *testing.T) {
	http := &fakeHTTP{pages: map[string]string{
		"https://codeforces.com/blog/entry/773": tutorialHTML(longText() + "first"),
		"https://codeforces.com/blog/entry/774": tutorialHTML(longText() + "second"),
	}}
	f := NewContentFetcher(http, nil)

	docs, err := f.FetchAll(context.Background(), []string{
		"https://codeforces.com/blog/entry/773",
		"https://codeforces.com/blog/entry/774",
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "https://codeforces.com/blog/entry/773", docs[0].SourceURL)
	assert.Equal(t, "https://codeforces.com/blog/entry/774", docs[1].SourceURL)
}

func TestFetchAll_AllSourcesFailed(t *testing.T) {
	f := NewContentFetcher(&fakeHTTP{}, nil)

	_, err := f.FetchAll(context.Background(), []string{
		"https://codeforces.com/blog/entry/1",
		"https://codeforces.com/blog/entry/2",
	})

	var allErr *AllSourcesFailedError
	require.ErrorAs(t, err, &allErr)
	assert.Len(t, allErr.URLs, 2)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses excess blank lines",
			in:   "first\n\n\n\nsecond",
			want: "first\n\nsecond",
		},
		{
			name: "strips boilerplate through end of line",
			in:   "solution text\nProblem tags: dp, greedy\nmore text",
			want: "solution text\n\nmore text",
		},
		{
			name: "collapses horizontal runs",
			in:   "a    b\t\tc",
			want: "a b c",
		},
		{
			name: "removes leading space after newline",
			in:   "line one\n   line two",
			want: "line one\nline two",
		},
		{
			name: "trims edges",
			in:   "  \n body \n ",
			want: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	in := "first\n\n\n\n   second   third\nProblem tags: math\nend"
	once := CleanText(in)
	if twice := CleanText(once); twice != once {
		t.Errorf("CleanText not idempotent: %q vs %q", once, twice)
	}
}
