package matching

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testPosting(title string, skills []string, createdAt time.Time) Posting {
	return Posting{
		ID:             uuid.New(),
		Title:          title,
		Company:        "Acme",
		RequiredSkills: skills,
		JobType:        JobTypeInternship,
		CreatedAt:      createdAt,
		Deadline:       createdAt.AddDate(0, 3, 0),
	}
}

func TestRank_FiltersBelowMinMatch(t *testing.T) {
	now := time.Now()
	candidate := Candidate{Skills: []string{"Go", "PostgreSQL"}}
	postings := []Posting{
		testPosting("Backend Intern", []string{"Go", "PostgreSQL"}, now),
		testPosting("Data Intern", []string{"Python", "Pandas", "Spark", "Airflow"}, now),
	}

	out := Rank(candidate, postings, RankOptions{MinMatchPercentage: 50}, now)
	if len(out) != 1 {
		t.Fatalf("expected 1 entry above threshold, got %d", len(out))
	}
	if out[0].Posting.Title != "Backend Intern" {
		t.Fatalf("unexpected entry: %s", out[0].Posting.Title)
	}
}

func TestRank_SortsByMatchPercentageByDefault(t *testing.T) {
	now := time.Now()
	candidate := Candidate{Skills: []string{"Go"}}
	postings := []Posting{
		testPosting("Weak", []string{"Go", "Rust", "C", "Zig"}, now),
		testPosting("Strong", []string{"Go"}, now),
	}

	out := Rank(candidate, postings, RankOptions{}, now)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].Posting.Title != "Strong" {
		t.Fatalf("expected Strong first, got %s", out[0].Posting.Title)
	}
	if out[0].Match.MatchPercentage < out[1].Match.MatchPercentage {
		t.Fatalf("expected descending match percentage")
	}
}

func TestRank_SortsByRecommendationScore(t *testing.T) {
	now := time.Now()
	candidate := Candidate{Skills: []string{"Go"}}

	// Same match percentage; the fresher full-time posting must outrank the
	// stale internship on the composite score.
	fresh := testPosting("Fresh", []string{"Go"}, now.AddDate(0, 0, -1))
	fresh.JobType = JobTypeFullTime
	stale := testPosting("Stale", []string{"Go"}, now.AddDate(0, 0, -60))

	out := Rank(candidate, []Posting{stale, fresh}, RankOptions{SortBy: SortByRecommendationScore}, now)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].Posting.Title != "Fresh" {
		t.Fatalf("expected Fresh first, got %s", out[0].Posting.Title)
	}
	if out[0].RecommendationScore < out[1].RecommendationScore {
		t.Fatalf("expected descending recommendation score")
	}
}

func TestRank_TruncatesToLimit(t *testing.T) {
	now := time.Now()
	candidate := Candidate{Skills: []string{"Go"}}
	postings := make([]Posting, 0, 10)
	for i := 0; i < 10; i++ {
		postings = append(postings, testPosting(fmt.Sprintf("Job %d", i), []string{"Go"}, now))
	}

	out := Rank(candidate, postings, RankOptions{Limit: 3}, now)
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
}

func TestRank_Deterministic(t *testing.T) {
	now := time.Now()
	candidate := Candidate{Skills: []string{"Go", "SQL", "Docker"}}
	postings := []Posting{
		testPosting("A", []string{"Go", "SQL"}, now.AddDate(0, 0, -2)),
		testPosting("B", []string{"Go", "Docker"}, now.AddDate(0, 0, -2)),
		testPosting("C", []string{"SQL", "Docker"}, now.AddDate(0, 0, -2)),
	}

	first := Rank(candidate, postings, RankOptions{SortBy: SortByRecommendationScore}, now)
	for i := 0; i < 20; i++ {
		again := Rank(candidate, postings, RankOptions{SortBy: SortByRecommendationScore}, now)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("iteration %d: rank output not deterministic", i)
		}
	}
}

func TestRank_EligibilityFlagCarried(t *testing.T) {
	now := time.Now()
	candidate := Candidate{Skills: []string{"Go"}, CGPA: ptrFloat(6.0)}

	gated := testPosting("Gated", []string{"Go"}, now)
	gated.Eligibility = &EligibilityRules{MinCGPA: ptrFloat(8.0)}

	out := Rank(candidate, []Posting{gated}, RankOptions{}, now)
	if len(out) != 1 {
		t.Fatalf("expected ineligible posting to remain in results, got %d entries", len(out))
	}
	if out[0].IsEligible {
		t.Fatalf("expected IsEligible=false")
	}
}

func TestCategorize_FixedTiers(t *testing.T) {
	entry := func(pct int) Entry {
		return Entry{Match: Result{MatchPercentage: pct}}
	}
	c := Categorize([]Entry{entry(95), entry(80), entry(79), entry(60), entry(59), entry(30), entry(29)})

	if len(c.PerfectMatch) != 2 {
		t.Fatalf("expected 2 perfect matches, got %d", len(c.PerfectMatch))
	}
	if len(c.GoodMatch) != 2 {
		t.Fatalf("expected 2 good matches, got %d", len(c.GoodMatch))
	}
	if len(c.PartialMatch) != 2 {
		t.Fatalf("expected 2 partial matches, got %d", len(c.PartialMatch))
	}
}
