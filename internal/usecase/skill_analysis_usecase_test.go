package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"placement-portal/internal/domain/matching"
	"placement-portal/internal/repository"

	"github.com/google/uuid"
)

func TestSkillAnalysis_AggregatesGaps(t *testing.T) {
	now := time.Now()
	repo := &mockPostingRepo{postings: []matching.Posting{
		openPosting("A", []string{"Go", "Docker"}, now),
		openPosting("B", []string{"Go", "Docker", "Kubernetes"}, now),
	}}
	uc := NewSkillAnalysisUsecase(mockProfileRepo{profile: approvedProfile("Go")}, repo)

	res, err := uc.AnalyzeSkills(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if res.PostingsAnalyzed != 2 {
		t.Fatalf("expected 2 postings analyzed, got %d", res.PostingsAnalyzed)
	}
	// A: 1/2 = 50, B: 1/3 = 33 -> round(41.5) = 42
	if res.AverageMatchPercentage != 42 {
		t.Fatalf("expected average 42, got %d", res.AverageMatchPercentage)
	}
	if len(res.MissingSkills) != 2 {
		t.Fatalf("expected 2 gap skills, got %d", len(res.MissingSkills))
	}
	if res.MissingSkills[0].Skill != "docker" || res.MissingSkills[0].Demand != 2 {
		t.Fatalf("expected docker demanded twice, got %+v", res.MissingSkills[0])
	}
}

func TestSkillAnalysis_NoSkills(t *testing.T) {
	uc := NewSkillAnalysisUsecase(mockProfileRepo{profile: approvedProfile()}, &mockPostingRepo{})

	res, err := uc.AnalyzeSkills(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.PostingsAnalyzed != 0 || len(res.MissingSkills) != 0 {
		t.Fatalf("expected empty analysis, got %+v", res)
	}
}

func TestSkillAnalysis_ProfileNotFound(t *testing.T) {
	uc := NewSkillAnalysisUsecase(mockProfileRepo{err: repository.ErrProfileNotFound}, &mockPostingRepo{})

	_, err := uc.AnalyzeSkills(context.Background(), uuid.New())
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}
