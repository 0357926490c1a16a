package matching

import (
	"math"
	"sort"
	"unicode"
)

// TrendingSkill is one demand-ranked skill over a posting window.
type TrendingSkill struct {
	Skill      string
	Demand     int
	Percentage int
}

// TrendingSkills counts, per normalized skill, how many postings mention it
// (a skill counts once per posting) and returns the top entries by demand.
// Ties break by name so the order is stable across runs. Percentage is the
// share of postings in the window that list the skill.
func TrendingSkills(postings []Posting, limit int) []TrendingSkill {
	if limit <= 0 {
		limit = 10
	}

	counts := make(map[string]int)
	for _, p := range postings {
		for _, s := range normalizeSkills(p.RequiredSkills) {
			counts[s]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > limit {
		names = names[:limit]
	}

	total := len(postings)
	out := make([]TrendingSkill, 0, len(names))
	for _, name := range names {
		pct := 0
		if total > 0 {
			pct = int(math.Round(100 * float64(counts[name]) / float64(total)))
		}
		out = append(out, TrendingSkill{
			Skill:      capitalizeFirst(name),
			Demand:     counts[name],
			Percentage: pct,
		})
	}
	return out
}

func capitalizeFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
