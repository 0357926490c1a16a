package matching

import (
	"reflect"
	"testing"
	"time"
)

func TestMatch_SubstringOverlap(t *testing.T) {
	res := Match([]string{"Python", "React", "SQL"}, []string{"Python", "Django", "SQL", "AWS"})

	if !reflect.DeepEqual(res.MatchingSkills, []string{"python", "sql"}) {
		t.Fatalf("expected matching [python sql], got %v", res.MatchingSkills)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"django", "aws"}) {
		t.Fatalf("expected missing [django aws], got %v", res.MissingSkills)
	}
	if res.MatchPercentage != 50 {
		t.Fatalf("expected match percentage 50, got %d", res.MatchPercentage)
	}
	if res.SkillCoverage != 67 {
		t.Fatalf("expected skill coverage 67, got %d", res.SkillCoverage)
	}
	if res.TotalRequiredSkills != 4 || res.TotalMatchingSkills != 2 {
		t.Fatalf("unexpected totals: required=%d matching=%d", res.TotalRequiredSkills, res.TotalMatchingSkills)
	}
}

func TestMatch_LooseSubstringSemantics(t *testing.T) {
	res := Match([]string{"Java"}, []string{"JavaScript"})
	if res.MatchPercentage != 100 {
		t.Fatalf("expected Java to match JavaScript at 100, got %d", res.MatchPercentage)
	}
	if res.SkillCoverage != 100 {
		t.Fatalf("expected coverage 100, got %d", res.SkillCoverage)
	}
	if len(res.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", res.MissingSkills)
	}
}

func TestMatch_IdenticalSets(t *testing.T) {
	res := Match([]string{"Go", "Docker"}, []string{"go", "docker"})
	if res.MatchPercentage != 100 || res.SkillCoverage != 100 {
		t.Fatalf("expected 100/100, got %d/%d", res.MatchPercentage, res.SkillCoverage)
	}
}

func TestMatch_EmptyInputs(t *testing.T) {
	res := Match(nil, []string{"Go"})
	if res.MatchPercentage != 0 || res.SkillCoverage != 0 {
		t.Fatalf("empty candidate: expected 0/0, got %d/%d", res.MatchPercentage, res.SkillCoverage)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"go"}) {
		t.Fatalf("empty candidate: expected missing [go], got %v", res.MissingSkills)
	}

	res = Match([]string{"Go"}, nil)
	if res.MatchPercentage != 0 {
		t.Fatalf("empty required: expected match percentage 0, got %d", res.MatchPercentage)
	}
	if res.SkillCoverage != 0 {
		t.Fatalf("empty required: expected coverage 0, got %d", res.SkillCoverage)
	}
}

func TestMatch_NormalizationDedupesAndTrims(t *testing.T) {
	res := Match([]string{" Go ", "go", "", "GO"}, []string{"Go"})
	if res.TotalMatchingSkills != 1 {
		t.Fatalf("expected dedupe to a single matching skill, got %d", res.TotalMatchingSkills)
	}
	if res.MatchPercentage != 100 || res.SkillCoverage != 100 {
		t.Fatalf("expected 100/100, got %d/%d", res.MatchPercentage, res.SkillCoverage)
	}
}

func TestMatch_PercentageBounds(t *testing.T) {
	cases := [][2][]string{
		{{"Python"}, {"Go", "Rust", "Elixir"}},
		{{"Python", "Go"}, {"Go"}},
		{{}, {}},
		{{"C"}, {"C++", "C#", "Objective-C"}},
		{{"Java", "JavaScript"}, {"Java"}},
		{{"C", "C++", "C#"}, {"C"}},
	}
	for i, c := range cases {
		res := Match(c[0], c[1])
		if res.MatchPercentage < 0 || res.MatchPercentage > 100 {
			t.Fatalf("case %d: match percentage out of range: %d", i, res.MatchPercentage)
		}
		if res.SkillCoverage < 0 || res.SkillCoverage > 100 {
			t.Fatalf("case %d: skill coverage out of range: %d", i, res.SkillCoverage)
		}
	}
}

func TestMatch_ManyCandidateSkillsOneRequirement(t *testing.T) {
	res := Match([]string{"Java", "JavaScript"}, []string{"Java"})

	if res.MatchPercentage != 100 {
		t.Fatalf("expected a single requirement to cap at 100, got %d", res.MatchPercentage)
	}
	if !reflect.DeepEqual(res.MatchingSkills, []string{"java", "javascript"}) {
		t.Fatalf("expected both candidate skills to match, got %v", res.MatchingSkills)
	}
	if len(res.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", res.MissingSkills)
	}

	now := time.Now()
	if got := Score(res, true, now, JobTypeFullTime, now); got > 95 {
		t.Fatalf("expected score within ceiling, got %d", got)
	}
}

func TestMatchWith_ExactStrategy(t *testing.T) {
	res := MatchWith(ExactStrategy, []string{"Java"}, []string{"JavaScript"})
	if res.MatchPercentage != 0 {
		t.Fatalf("exact: expected 0, got %d", res.MatchPercentage)
	}

	res = MatchWith(ExactStrategy, []string{"Java"}, []string{"java"})
	if res.MatchPercentage != 100 {
		t.Fatalf("exact: expected 100, got %d", res.MatchPercentage)
	}
}

func TestMatchWith_TokenSetStrategy(t *testing.T) {
	res := MatchWith(TokenSetStrategy, []string{"Java"}, []string{"JavaScript"})
	if res.MatchPercentage != 0 {
		t.Fatalf("token: expected java not to match javascript, got %d", res.MatchPercentage)
	}

	res = MatchWith(TokenSetStrategy, []string{"Java"}, []string{"Java EE"})
	if res.MatchPercentage != 100 {
		t.Fatalf("token: expected java to match java ee, got %d", res.MatchPercentage)
	}
}
