package common

import "testing"

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean url unchanged", "https://codeforces.com/blog/entry/1", "https://codeforces.com/blog/entry/1"},
		{"edge whitespace", "  https://codeforces.com/blog/entry/1  ", "https://codeforces.com/blog/entry/1"},
		{"trailing comma", "https://codeforces.com/blog/entry/1,", "https://codeforces.com/blog/entry/1"},
		{"markdown link", "[tutorial](https://codeforces.com/blog/entry/1)", "https://codeforces.com/blog/entry/1"},
		{"angle brackets", "<https://codeforces.com/blog/entry/1>", "https://codeforces.com/blog/entry/1"},
		{"wrapping parens", "(https://codeforces.com/blog/entry/1)", "https://codeforces.com/blog/entry/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeAndValidateURLs(t *testing.T) {
	urls := []string{
		"https://codeforces.com/blog/entry/150288",
		"  https://codeforces.com/blog/entry/150256, ",
		"not a url",
		"ftp://codeforces.com/file",
		"",
	}

	valid, invalid := SanitizeAndValidateURLs(urls)

	wantValid := []string{
		"https://codeforces.com/blog/entry/150288",
		"https://codeforces.com/blog/entry/150256",
	}
	if len(valid) != len(wantValid) {
		t.Fatalf("valid = %v, want %v", valid, wantValid)
	}
	for i := range wantValid {
		if valid[i] != wantValid[i] {
			t.Errorf("valid[%d] = %q, want %q", i, valid[i], wantValid[i])
		}
	}
	if len(invalid) != 3 {
		t.Errorf("invalid = %v, want 3 rejects", invalid)
	}
}
