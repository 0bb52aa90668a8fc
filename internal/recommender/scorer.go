package recommender

import (
	"sort"

	"hikematch/internal/trail"
)

// DefaultLimit is the number of trails returned when the caller does not
// choose one.
const DefaultLimit = 3

// Weather tags are compared literally; catalog tags produced by the survey
// vocabulary are capitalized, so these only match lowercase catalog tags.
const (
	tagAllWeather  = "all_weather"
	tagFairWeather = "fair_weather"

	tagShort  = "Short"
	tagMedium = "Medium"
	tagLong   = "Long"
)

const (
	tagBonusWeight = 3.0

	shortMaxKm  = 5.0
	mediumMaxKm = 10.0
)

// ScoreBreakdown records each factor applied to a trail's score.
type ScoreBreakdown struct {
	DifficultyBase   float64 `json:"difficulty_base"`
	TagBonus         float64 `json:"tag_bonus"`
	MatchedTags      int     `json:"matched_tags"`
	LengthFactor     float64 `json:"length_factor"`
	WeatherFactor    float64 `json:"weather_factor"`
	LikelihoodFactor float64 `json:"likelihood_factor"`
	Total            float64 `json:"total"`
}

// ScoredTrail pairs a catalog trail with its match score.
type ScoredTrail struct {
	Trail     *trail.Trail
	Score     float64
	Breakdown ScoreBreakdown
}

// Score computes the match score of one trail. Factors are applied in a
// fixed order; steps 3-5 multiply the running score.
func Score(t *trail.Trail, fv FeatureVector, preferred trail.TagSet) ScoreBreakdown {
	var b ScoreBreakdown

	d := (fv.FitnessLevel + fv.Experience) / 2
	switch t.Difficulty {
	case trail.DifficultyHard:
		if d > 0.6 {
			b.DifficultyBase = d * 2
		} else {
			b.DifficultyBase = d * 0.5
		}
	case trail.DifficultyModerate:
		b.DifficultyBase = d * 1.5
	default:
		b.DifficultyBase = (1 - d) * 1.5
	}
	score := b.DifficultyBase

	for _, tag := range t.Tags {
		if preferred.Has(tag) {
			b.MatchedTags++
		}
	}
	denom := preferred.Len()
	if denom < 1 {
		denom = 1
	}
	b.TagBonus = float64(b.MatchedTags) / float64(denom) * tagBonusWeight
	score += b.TagBonus

	switch {
	case t.LengthKm <= shortMaxKm:
		b.LengthFactor = lengthFactor(preferred.Has(tagShort), 0.9)
	case t.LengthKm <= mediumMaxKm:
		b.LengthFactor = lengthFactor(preferred.Has(tagMedium), 0.9)
	default:
		b.LengthFactor = lengthFactor(preferred.Has(tagLong), 0.8)
	}
	score *= b.LengthFactor

	b.WeatherFactor = 1
	if t.HasTag(tagAllWeather) {
		b.WeatherFactor = 1 + fv.WeatherTolerance
	} else if t.HasTag(tagFairWeather) && fv.WeatherTolerance < 0.5 {
		b.WeatherFactor = 1.1
	}
	score *= b.WeatherFactor

	b.LikelihoodFactor = 0.5 + fv.HikingLikelihood
	score *= b.LikelihoodFactor

	b.Total = score
	return b
}

func lengthFactor(preferred bool, otherwise float64) float64 {
	if preferred {
		return 1.2
	}
	return otherwise
}

// Rank scores every trail and returns the n best, highest first. Equal
// scores keep catalog order. n <= 0 or an empty catalog gives an empty
// result.
func Rank(c *trail.Catalog, fv FeatureVector, preferred trail.TagSet, n int) []ScoredTrail {
	if n <= 0 || c.Len() == 0 {
		return []ScoredTrail{}
	}

	trails := c.Trails()
	scored := make([]ScoredTrail, 0, len(trails))
	for _, t := range trails {
		b := Score(t, fv, preferred)
		scored = append(scored, ScoredTrail{Trail: t, Score: b.Total, Breakdown: b})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if n > len(scored) {
		n = len(scored)
	}
	return scored[:n]
}

// Recommender ranks a fixed catalog against survey responses. It holds no
// per-request state and is safe for concurrent use.
type Recommender struct {
	catalog *trail.Catalog
}

func New(c *trail.Catalog) *Recommender {
	return &Recommender{catalog: c}
}

func (r *Recommender) Catalog() *trail.Catalog {
	return r.catalog
}

// Recommend resolves the response and returns the top n trails.
func (r *Recommender) Recommend(resp UserResponse, n int) []ScoredTrail {
	fv, tags := Resolve(resp)
	return Rank(r.catalog, fv, tags, n)
}
