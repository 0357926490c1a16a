package matching

import "strings"

// Strategy reports whether a candidate skill satisfies a required skill.
// Both arguments arrive lowercased and trimmed.
type Strategy func(candidateSkill, requiredSkill string) bool

// SubstringStrategy matches when either skill is a substring of the other.
// Intentionally loose: "java" matches "javascript", "c" matches "c++".
// This is the default and existing observable behavior.
func SubstringStrategy(candidateSkill, requiredSkill string) bool {
	return strings.Contains(candidateSkill, requiredSkill) ||
		strings.Contains(requiredSkill, candidateSkill)
}

// ExactStrategy matches only identical normalized skills.
func ExactStrategy(candidateSkill, requiredSkill string) bool {
	return candidateSkill == requiredSkill
}

// TokenSetStrategy matches when the two skills share at least one whole
// token, so "java" does not match "javascript" but does match "java ee".
func TokenSetStrategy(candidateSkill, requiredSkill string) bool {
	for _, ct := range tokenize(candidateSkill) {
		for _, rt := range tokenize(requiredSkill) {
			if ct == rt {
				return true
			}
		}
	}
	return false
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '/', ',', '-', '.', '(', ')':
			return true
		}
		return false
	})
}
