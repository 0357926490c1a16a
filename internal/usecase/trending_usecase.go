package usecase

import (
	"context"
	"fmt"
	"time"

	"placement-portal/internal/domain/matching"
	"placement-portal/internal/repository"
)

const (
	defaultTrendingLimit = 10
	trendingWindowDays   = 30
)

type TrendingUsecase interface {
	GetTrendingSkills(ctx context.Context, limit int) ([]matching.TrendingSkill, error)
}

type Trending struct {
	postings repository.PostingRepository
	cache    Cache
	now      func() time.Time
}

func NewTrendingUsecase(postings repository.PostingRepository, cache Cache) *Trending {
	return &Trending{postings: postings, cache: cache, now: time.Now}
}

// GetTrendingSkills aggregates skill demand over the trailing posting
// window. Only this rendered analytic is cached; match results never are.
func (u *Trending) GetTrendingSkills(ctx context.Context, limit int) ([]matching.TrendingSkill, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	key := fmt.Sprintf("skills:trending:%d", limit)
	if u.cache != nil {
		var cached []matching.TrendingSkill
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	now := u.now()
	windowStart := now.AddDate(0, 0, -trendingWindowDays)
	postings, err := u.postings.ListOpen(ctx, repository.PostingFilter{
		DeadlineAfter: now,
		CreatedAfter:  &windowStart,
	})
	if err != nil {
		return nil, err
	}

	out := matching.TrendingSkills(postings, limit)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, 0)
	}
	return out, nil
}
