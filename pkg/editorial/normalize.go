package editorial

import (
	"strings"
	"unicode"
)

// NormalizeProblemID reduces a raw problem identifier to a single uppercase
// letter. Rules apply in priority order, first match wins:
//
//	"A"          -> "A"   (already a single letter)
//	"Problem B"  -> "B"   (English or Russian prefix, trailing letter token)
//	"1900A"      -> "A"   (last character alphabetic)
//	"A."         -> "A"   (first character alphabetic)
//
// Anything else is invalid and the entry is discarded by the caller.
func NormalizeProblemID(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}

	runes := []rune(s)

	if len(runes) == 1 && unicode.IsLetter(runes[0]) {
		return s, true
	}

	if strings.HasPrefix(s, "PROBLEM ") || strings.HasPrefix(s, "ЗАДАЧА ") {
		fields := strings.Fields(s)
		if len(fields) >= 2 {
			last := []rune(fields[len(fields)-1])
			if len(last) == 1 && unicode.IsLetter(last[0]) {
				return string(last), true
			}
		}
	}

	if unicode.IsLetter(runes[len(runes)-1]) {
		return string(runes[len(runes)-1]), true
	}

	if unicode.IsLetter(runes[0]) {
		return string(runes[0]), true
	}

	return "", false
}
