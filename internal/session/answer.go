package session

import "strings"

// SynonymSeparator separates acceptable answers inside a single target.
const SynonymSeparator = ", "

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Candidates splits a target into its normalized acceptable answers.
func Candidates(target string) []string {
	parts := strings.Split(target, SynonymSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, Normalize(p))
	}
	return out
}

// CheckAnswer reports whether answer matches any synonym of target.
//
// Normalization rules:
// - Whitespace is trimmed on both sides
// - Comparison is case-insensitive
// - The target is split on ", " and each part is compared exactly
func CheckAnswer(answer, target string) bool {
	answer = Normalize(answer)
	for _, c := range Candidates(target) {
		if answer == c {
			return true
		}
	}
	return false
}
