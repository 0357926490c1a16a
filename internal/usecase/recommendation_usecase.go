package usecase

import (
	"context"
	"errors"
	"time"

	"placement-portal/internal/domain/matching"
	"placement-portal/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCandidateNotFound = errors.New("candidate profile not found")
	ErrInvalidInput      = errors.New("invalid input")
)

const (
	defaultLimit = 20
	maxLimit     = 50

	verificationStatusApproved = "approved"
)

type RecommendationParams struct {
	Limit              int
	MinMatchPercentage int
	SortBy             string
}

type RecommendationStats struct {
	Total        int
	PerfectMatch int
	GoodMatch    int
	PartialMatch int
}

// RecommendationResult is the full assembler output. RequiresVerification
// is a normal terminal response, not an error: the caller renders it as a
// gate message with no recommendations.
type RecommendationResult struct {
	RequiresVerification bool
	Recommendations      []matching.Entry
	Categories           matching.Categories
	Stats                RecommendationStats
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) (RecommendationResult, error)
}

type Recommendation struct {
	profiles repository.CandidateProfileRepository
	postings repository.PostingRepository
	now      func() time.Time
}

func NewRecommendationUsecase(profiles repository.CandidateProfileRepository, postings repository.PostingRepository) *Recommendation {
	return &Recommendation{profiles: profiles, postings: postings, now: time.Now}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) (RecommendationResult, error) {
	if candidateID == uuid.Nil {
		return RecommendationResult{}, ErrInvalidInput
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	minMatch := params.MinMatchPercentage
	if minMatch < 0 {
		minMatch = 0
	}

	profile, err := u.profiles.FindByUserID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return RecommendationResult{}, ErrCandidateNotFound
		}
		return RecommendationResult{}, err
	}

	if !profile.IsVerified || profile.VerificationStatus != verificationStatusApproved {
		return RecommendationResult{
			RequiresVerification: true,
			Recommendations:      []matching.Entry{},
		}, nil
	}

	if len(profile.Skills) == 0 {
		return RecommendationResult{Recommendations: []matching.Entry{}}, nil
	}

	now := u.now()
	postings, err := u.postings.ListOpen(ctx, repository.PostingFilter{DeadlineAfter: now})
	if err != nil {
		return RecommendationResult{}, err
	}

	candidate := matching.Candidate{
		Skills:         profile.Skills,
		CGPA:           profile.CGPA,
		GraduationYear: profile.GraduationYear,
		Department:     profile.Department,
	}

	entries := matching.Rank(candidate, postings, matching.RankOptions{
		Limit:              limit,
		MinMatchPercentage: minMatch,
		SortBy:             params.SortBy,
	}, now)

	cats := matching.Categorize(entries)

	return RecommendationResult{
		Recommendations: entries,
		Categories:      cats,
		Stats: RecommendationStats{
			Total:        len(entries),
			PerfectMatch: len(cats.PerfectMatch),
			GoodMatch:    len(cats.GoodMatch),
			PartialMatch: len(cats.PartialMatch),
		},
	}, nil
}
