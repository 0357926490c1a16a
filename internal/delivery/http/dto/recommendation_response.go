package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationEntryResponse struct {
	JobID               uuid.UUID `json:"job_id"`
	Title               string    `json:"title"`
	CompanyName         string    `json:"company_name"`
	JobType             string    `json:"job_type"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	MatchingSkills      []string  `json:"matching_skills"`
	MissingSkills       []string  `json:"missing_skills"`
	MatchPercentage     int       `json:"match_percentage"`
	SkillCoverage       int       `json:"skill_coverage"`
	IsEligible          bool      `json:"is_eligible"`
	RecommendationScore int       `json:"recommendation_score"`
}

type RecommendationCategoriesResponse struct {
	PerfectMatch []RecommendationEntryResponse `json:"perfect_match"`
	GoodMatch    []RecommendationEntryResponse `json:"good_match"`
	PartialMatch []RecommendationEntryResponse `json:"partial_match"`
}

type RecommendationStatsResponse struct {
	Total        int `json:"total"`
	PerfectMatch int `json:"perfect_match"`
	GoodMatch    int `json:"good_match"`
	PartialMatch int `json:"partial_match"`
}

type RecommendationResponse struct {
	RequiresVerification bool                             `json:"requires_verification"`
	Recommendations      []RecommendationEntryResponse    `json:"recommendations"`
	Categories           RecommendationCategoriesResponse `json:"categories"`
	Stats                RecommendationStatsResponse      `json:"stats"`
}
