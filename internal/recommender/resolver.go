package recommender

import (
	"math"
	"strconv"
	"strings"

	"hikematch/internal/trail"
)

// UserResponse maps survey question keys to answers. Answers are strings,
// string slices for multi-select questions, or a number for
// hiking_likelihood.
type UserResponse map[string]any

// FeatureVector holds the normalized numeric preference signals, each in
// [0,1].
type FeatureVector struct {
	FitnessLevel     float64 `json:"fitness_level"`
	WeatherTolerance float64 `json:"weather_tolerance"`
	Experience       float64 `json:"experience"`
	HikingLikelihood float64 `json:"hiking_likelihood"`
}

// Resolve converts a survey response into features and preferred tags.
// Unknown or missing answers fall back to defaults and never fail.
func Resolve(resp UserResponse) (FeatureVector, trail.TagSet) {
	fv := FeatureVector{
		FitnessLevel:     lookupScalar(fitnessLevels, resp[KeyFitnessLevel], defaultFitness),
		WeatherTolerance: lookupScalar(weatherTolerances, resp[KeyWeatherPreference], defaultWeather),
		Experience:       lookupScalar(experienceLevels, resp[KeyHikingExperience], defaultExperience),
		HikingLikelihood: float64(likelihood(resp[KeyHikingLikelihood])) / maxLikelihood,
	}

	tags := trail.NewTagSet()
	for _, key := range tagQuestionOrder {
		table := tagTables[key]
		for _, choice := range choices(resp[key]) {
			for _, tag := range table[choice] {
				tags.Add(tag)
			}
		}
	}
	return fv, tags
}

func lookupScalar(table map[string]float64, answer any, def float64) float64 {
	s, ok := answer.(string)
	if !ok {
		return def
	}
	if v, ok := table[s]; ok {
		return v
	}
	return def
}

// choices flattens a single or multi-select answer into its string choices.
func choices(answer any) []string {
	switch v := answer.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func likelihood(answer any) int {
	var n int
	switch v := answer.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return defaultLikelihood
		}
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return defaultLikelihood
		}
		n = parsed
	default:
		return defaultLikelihood
	}

	if n < minLikelihood {
		return minLikelihood
	}
	if n > maxLikelihood {
		return maxLikelihood
	}
	return n
}

// Choices returns the string choices given for key; a single answer yields
// one element.
func (r UserResponse) Choices(key string) []string {
	return choices(r[key])
}

// Likelihood returns the hiking likelihood answer clamped to 1-5, or 3 when
// absent or unreadable.
func (r UserResponse) Likelihood() int {
	return likelihood(r[KeyHikingLikelihood])
}
