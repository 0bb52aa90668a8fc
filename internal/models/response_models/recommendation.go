package response_models

import "time"

type RecommendationResult struct {
	RequestID       string                `json:"request_id"`
	Profile         PreferenceProfile     `json:"profile"`
	Recommendations []TrailRecommendation `json:"recommendations"`
	CreatedAt       time.Time             `json:"created_at"`
}

type PreferenceProfile struct {
	FitnessLevel     float64  `json:"fitness_level"`
	WeatherTolerance float64  `json:"weather_tolerance"`
	Experience       float64  `json:"experience"`
	HikingLikelihood float64  `json:"hiking_likelihood"`
	PreferredTags    []string `json:"preferred_tags"`
}

type TrailRecommendation struct {
	Rank      int            `json:"rank"`
	Trail     Trail          `json:"trail"`
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Reason    string         `json:"reason"` // Why this trail matched the survey answers
}

type ScoreBreakdown struct {
	DifficultyBase   float64 `json:"difficulty_base"`
	TagBonus         float64 `json:"tag_bonus"`
	MatchedTags      int     `json:"matched_tags"`
	LengthFactor     float64 `json:"length_factor"`
	WeatherFactor    float64 `json:"weather_factor"`
	LikelihoodFactor float64 `json:"likelihood_factor"`
}
