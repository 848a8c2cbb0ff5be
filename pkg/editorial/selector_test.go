package editorial

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

func selectorCandidates() []models.CandidateLink {
	return []models.CandidateLink{
		{URL: "https://codeforces.com/blog/entry/150287", Text: "Announcement"},
		{URL: "https://codeforces.com/blog/entry/150288", Text: "Tutorial"},
	}
}

func TestSelect(t *testing.T) {
	client := &fakeLLM{response: `{"url": "https://codeforces.com/blog/entry/150288"}`}
	s := NewLinkSelector(client, nil)

	got := s.Select(context.Background(), selectorCandidates(), "2185")
	assert.Equal(t, []string{"https://codeforces.com/blog/entry/150288"}, got)

	assert.Contains(t, client.lastReq.Prompt, "1. [Announcement]")
	assert.Contains(t, client.lastReq.Prompt, "2. [Tutorial]")
	assert.Contains(t, client.lastReq.Prompt, "Contest ID: 2185")
}

func TestSelect_NullURL(t *testing.T) {
	s := NewLinkSelector(&fakeLLM{response: `{"url": null}`}, nil)
	assert.Nil(t, s.Select(context.Background(), selectorCandidates(), "2185"))
}

func TestSelect_TransportErrorSwallowed(t *testing.T) {
	s := NewLinkSelector(&fakeLLM{err: errors.New("timeout")}, nil)
	assert.Nil(t, s.Select(context.Background(), selectorCandidates(), "2185"))
}

func TestSelect_NoClient(t *testing.T) {
	s := NewLinkSelector(nil, nil)
	assert.Nil(t, s.Select(context.Background(), selectorCandidates(), "2185"))
}

func TestSelectStrict_SurfacesTransportError(t *testing.T) {
	wantErr := errors.New("rate limited")
	s := NewLinkSelector(&fakeLLM{err: wantErr}, nil)

	_, err := s.SelectStrict(context.Background(), selectorCandidates(), "2185")
	require.ErrorIs(t, err, wantErr)
}

func TestSelectStrict_UnparseableIsNotAnError(t *testing.T) {
	s := NewLinkSelector(&fakeLLM{response: "no json here"}, nil)

	got, err := s.SelectStrict(context.Background(), selectorCandidates(), "2185")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseSelectorResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{"plain object", `{"url": "https://codeforces.com/blog/entry/1"}`, "https://codeforces.com/blog/entry/1"},
		{"leading prose", `Sure! {"url": "https://codeforces.com/blog/entry/2"}`, "https://codeforces.com/blog/entry/2"},
		{"null url", `{"url": null}`, ""},
		{"missing key", `{"link": "x"}`, ""},
		{"no json", `there is no editorial`, ""},
		{"malformed", `{"url": `, ""},
		{"padded url", `{"url": "  https://codeforces.com/blog/entry/3  "}`, "https://codeforces.com/blog/entry/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseSelectorResponse(tt.response); got != tt.want {
				t.Errorf("parseSelectorResponse(%q) = %q, want %q", tt.response, got, tt.want)
			}
		})
	}
}
