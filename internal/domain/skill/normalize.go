package skill

import (
	"strings"
	"unicode"
)

// Normalize turns free-text skill input into the canonical key used for
// storage and comparison: surrounding whitespace trimmed, inner whitespace
// runs collapsed to one space, and every word title-cased.
//
// Blank input yields "", which callers must reject.
func Normalize(raw string) string {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return ""
	}
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// NormalizeAll normalizes every entry, dropping blanks and duplicates while
// keeping first-seen order.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		s := Normalize(r)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func titleWord(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	first := true
	for _, r := range w {
		if first {
			b.WriteRune(unicode.ToUpper(r))
			first = false
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
