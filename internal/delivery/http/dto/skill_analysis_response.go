package dto

type SkillGapResponse struct {
	Skill  string `json:"skill"`
	Demand int    `json:"demand"`
}

type SkillAnalysisResponse struct {
	PostingsAnalyzed       int                `json:"postings_analyzed"`
	AverageMatchPercentage int                `json:"average_match_percentage"`
	MissingSkills          []SkillGapResponse `json:"missing_skills"`
}
