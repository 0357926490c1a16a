package matching

import (
	"math"
	"time"
)

type JobType string

const (
	JobTypeInternship JobType = "internship"
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
)

// Score folds match quality, eligibility and posting metadata into one
// composite: 40% match percentage, 20% skill coverage, +20 when eligible,
// a recency bonus and +5 for full-time roles. The nominal maximum is 95;
// the value is rounded, never clamped.
func Score(res Result, eligible bool, postedAt time.Time, jobType JobType, now time.Time) int {
	total := 0.40*float64(res.MatchPercentage) + 0.20*float64(res.SkillCoverage)
	if eligible {
		total += 20
	}
	total += recencyBonus(postedAt, now)
	if jobType == JobTypeFullTime {
		total += 5
	}
	return int(math.Round(total))
}

func recencyBonus(postedAt, now time.Time) float64 {
	days := now.Sub(postedAt).Hours() / 24
	switch {
	case days <= 7:
		return 10
	case days <= 30:
		return 5
	default:
		return 0
	}
}
