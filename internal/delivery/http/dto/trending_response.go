package dto

type TrendingSkillResponse struct {
	Skill      string `json:"skill"`
	Demand     int    `json:"demand"`
	Percentage int    `json:"percentage"`
}
