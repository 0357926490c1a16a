package matching

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	SortByRecommendationScore = "recommendation_score"
	SortByMatchPercentage     = "match_percentage"
)

// Tier thresholds are fixed and independent of any caller-supplied minimum.
const (
	perfectMatchThreshold = 80
	goodMatchThreshold    = 60
	partialMatchThreshold = 30
)

const rankConcurrency = 8

// Posting is an open, non-expired job as the engine sees it.
type Posting struct {
	ID             uuid.UUID
	Title          string
	Company        string
	RequiredSkills []string
	Eligibility    *EligibilityRules
	JobType        JobType
	CreatedAt      time.Time
	Deadline       time.Time
}

// Entry is one scored recommendation. Transient: it lives for the duration
// of a single request.
type Entry struct {
	Posting             Posting
	Match               Result
	IsEligible          bool
	RecommendationScore int
}

type RankOptions struct {
	Limit              int
	MinMatchPercentage int
	SortBy             string
	Strategy           Strategy
}

// Rank matches, filters and scores every posting against the candidate,
// drops entries under MinMatchPercentage, stable-sorts by the requested key
// descending and truncates to the limit. Postings are evaluated
// concurrently; each goroutine writes only its own slot, so the output is
// deterministic for identical inputs.
func Rank(candidate Candidate, postings []Posting, opts RankOptions, now time.Time) []Entry {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	minMatch := opts.MinMatchPercentage
	if minMatch < 0 {
		minMatch = 0
	}

	slots := make([]*Entry, len(postings))

	g := new(errgroup.Group)
	g.SetLimit(rankConcurrency)
	for i, p := range postings {
		g.Go(func() error {
			res := MatchWith(opts.Strategy, candidate.Skills, p.RequiredSkills)
			if res.MatchPercentage < minMatch {
				return nil
			}
			eligible := IsEligible(candidate, p.Eligibility)
			slots[i] = &Entry{
				Posting:             p,
				Match:               res,
				IsEligible:          eligible,
				RecommendationScore: Score(res, eligible, p.CreatedAt, p.JobType, now),
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Entry, 0, len(postings))
	for _, e := range slots {
		if e != nil {
			out = append(out, *e)
		}
	}

	if opts.SortBy == SortByRecommendationScore {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RecommendationScore > out[j].RecommendationScore
		})
	} else {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Match.MatchPercentage > out[j].Match.MatchPercentage
		})
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Categories partitions entries into display tiers. Entries under the
// partial threshold appear in no tier but still count toward the total.
type Categories struct {
	PerfectMatch []Entry
	GoodMatch    []Entry
	PartialMatch []Entry
}

// Categorize buckets the already-truncated entry list by match percentage.
func Categorize(entries []Entry) Categories {
	var c Categories
	for _, e := range entries {
		switch {
		case e.Match.MatchPercentage >= perfectMatchThreshold:
			c.PerfectMatch = append(c.PerfectMatch, e)
		case e.Match.MatchPercentage >= goodMatchThreshold:
			c.GoodMatch = append(c.GoodMatch, e)
		case e.Match.MatchPercentage >= partialMatchThreshold:
			c.PartialMatch = append(c.PartialMatch, e)
		}
	}
	return c
}
