package matching

import (
	"testing"
	"time"
)

func trendingPosting(skills ...string) Posting {
	return testPosting("Posting", skills, time.Now())
}

func TestTrendingSkills_DemandAndPercentage(t *testing.T) {
	postings := make([]Posting, 0, 10)
	for i := 0; i < 6; i++ {
		postings = append(postings, trendingPosting("python", "sql"))
	}
	for i := 0; i < 4; i++ {
		postings = append(postings, trendingPosting("go"))
	}

	out := TrendingSkills(postings, 10)
	if len(out) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(out))
	}

	top := out[0]
	if top.Skill != "Python" {
		t.Fatalf("expected Python first, got %s", top.Skill)
	}
	if top.Demand != 6 {
		t.Fatalf("expected demand 6, got %d", top.Demand)
	}
	if top.Percentage != 60 {
		t.Fatalf("expected percentage 60, got %d", top.Percentage)
	}
}

func TestTrendingSkills_CountsOncePerPosting(t *testing.T) {
	postings := []Posting{trendingPosting("Go", "go", " GO ")}

	out := TrendingSkills(postings, 10)
	if len(out) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(out))
	}
	if out[0].Demand != 1 {
		t.Fatalf("expected demand 1, got %d", out[0].Demand)
	}
	if out[0].Percentage != 100 {
		t.Fatalf("expected percentage 100, got %d", out[0].Percentage)
	}
}

func TestTrendingSkills_LimitAndTieBreak(t *testing.T) {
	postings := []Posting{
		trendingPosting("go", "rust"),
		trendingPosting("go", "rust"),
		trendingPosting("elixir"),
	}

	out := TrendingSkills(postings, 2)
	if len(out) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(out))
	}
	if out[0].Skill != "Go" || out[1].Skill != "Rust" {
		t.Fatalf("expected [Go Rust] by demand then name, got [%s %s]", out[0].Skill, out[1].Skill)
	}
}

func TestTrendingSkills_Empty(t *testing.T) {
	out := TrendingSkills(nil, 5)
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}
