package matching

import (
	"math"
	"strings"
)

// Result describes the skill overlap between one candidate and one posting.
// It is recomputed on every request and never persisted.
type Result struct {
	MatchingSkills      []string
	MissingSkills       []string
	MatchPercentage     int
	SkillCoverage       int
	TotalRequiredSkills int
	TotalMatchingSkills int
}

// Match computes the overlap with the default substring strategy.
func Match(candidateSkills, requiredSkills []string) Result {
	return MatchWith(SubstringStrategy, candidateSkills, requiredSkills)
}

// MatchWith computes the overlap under the given strategy. Matching skills
// are drawn from the normalized candidate list, missing skills from the
// normalized required list; both come back lowercase.
func MatchWith(strategy Strategy, candidateSkills, requiredSkills []string) Result {
	if strategy == nil {
		strategy = SubstringStrategy
	}

	cand := normalizeSkills(candidateSkills)
	req := normalizeSkills(requiredSkills)

	matched := make([]string, 0, len(cand))
	for _, cs := range cand {
		for _, rs := range req {
			if strategy(cs, rs) {
				matched = append(matched, cs)
				break
			}
		}
	}

	missing := make([]string, 0, len(req))
	for _, rs := range req {
		found := false
		for _, cs := range cand {
			if strategy(cs, rs) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, rs)
		}
	}

	// The percentage counts satisfied requirements, not matching candidate
	// skills: several candidate skills can satisfy one requirement and must
	// not push the ratio past 100.
	satisfied := len(req) - len(missing)
	pct := 0
	if len(req) > 0 {
		pct = int(math.Round(100 * float64(satisfied) / float64(len(req))))
	}
	cov := 0
	if len(cand) > 0 {
		cov = int(math.Round(100 * float64(len(matched)) / float64(len(cand))))
	}

	return Result{
		MatchingSkills:      matched,
		MissingSkills:       missing,
		MatchPercentage:     pct,
		SkillCoverage:       cov,
		TotalRequiredSkills: len(req),
		TotalMatchingSkills: len(matched),
	}
}

// normalizeSkills lowercases, trims and dedupes, keeping first-occurrence
// order and dropping empty entries.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := strings.ToLower(strings.TrimSpace(s))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
