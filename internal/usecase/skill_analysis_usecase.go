package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"placement-portal/internal/domain/matching"
	"placement-portal/internal/repository"

	"github.com/google/uuid"
)

const maxSkillGaps = 10

// SkillGap is one skill the candidate lacks, with how many open postings
// require it.
type SkillGap struct {
	Skill  string
	Demand int
}

// SkillAnalysis is the faculty-facing view over the matching primitives:
// raw overlap across the catalog, no eligibility or recency weighting.
type SkillAnalysis struct {
	PostingsAnalyzed       int
	AverageMatchPercentage int
	MissingSkills          []SkillGap
}

type SkillAnalysisUsecase interface {
	AnalyzeSkills(ctx context.Context, candidateID uuid.UUID) (SkillAnalysis, error)
}

type SkillAnalyzer struct {
	profiles repository.CandidateProfileRepository
	postings repository.PostingRepository
	now      func() time.Time
}

func NewSkillAnalysisUsecase(profiles repository.CandidateProfileRepository, postings repository.PostingRepository) *SkillAnalyzer {
	return &SkillAnalyzer{profiles: profiles, postings: postings, now: time.Now}
}

func (u *SkillAnalyzer) AnalyzeSkills(ctx context.Context, candidateID uuid.UUID) (SkillAnalysis, error) {
	if candidateID == uuid.Nil {
		return SkillAnalysis{}, ErrInvalidInput
	}

	profile, err := u.profiles.FindByUserID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return SkillAnalysis{}, ErrCandidateNotFound
		}
		return SkillAnalysis{}, err
	}
	if len(profile.Skills) == 0 {
		return SkillAnalysis{MissingSkills: []SkillGap{}}, nil
	}

	postings, err := u.postings.ListOpen(ctx, repository.PostingFilter{DeadlineAfter: u.now()})
	if err != nil {
		return SkillAnalysis{}, err
	}
	if len(postings) == 0 {
		return SkillAnalysis{MissingSkills: []SkillGap{}}, nil
	}

	pctSum := 0
	gapCounts := make(map[string]int)
	for _, p := range postings {
		res := matching.Match(profile.Skills, p.RequiredSkills)
		pctSum += res.MatchPercentage
		for _, s := range res.MissingSkills {
			gapCounts[s]++
		}
	}

	gaps := make([]SkillGap, 0, len(gapCounts))
	for skill, demand := range gapCounts {
		gaps = append(gaps, SkillGap{Skill: skill, Demand: demand})
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Demand != gaps[j].Demand {
			return gaps[i].Demand > gaps[j].Demand
		}
		return gaps[i].Skill < gaps[j].Skill
	})
	if len(gaps) > maxSkillGaps {
		gaps = gaps[:maxSkillGaps]
	}

	return SkillAnalysis{
		PostingsAnalyzed:       len(postings),
		AverageMatchPercentage: int(math.Round(float64(pctSum) / float64(len(postings)))),
		MissingSkills:          gaps,
	}, nil
}
