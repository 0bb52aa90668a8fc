package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hikematch/internal/models/db_models"
	"hikematch/internal/models/request_models"
	"hikematch/internal/models/response_models"
	"hikematch/internal/recommender"
	"hikematch/internal/repositories"
	"hikematch/internal/trail"
	"hikematch/pkg/logger"
	mem "hikematch/pkg/memcache"
	"hikematch/pkg/utils"
)

const resultKeyPrefix = "recommendation:"

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, req request_models.RecommendRequest) (response_models.RecommendationResult, error)
	GetResult(ctx context.Context, id string) (response_models.RecommendationResult, error)
	RenderText(result response_models.RecommendationResult) string
}

type RecommendationOptions struct {
	DefaultLimit  int
	MaxLimit      int
	ResultTTL     time.Duration
	RecordSurveys bool
}

type RecommendationService struct {
	recommender *recommender.Recommender
	results     mem.ResultStore
	surveyRepo  repositories.SurveyRepository
	opts        RecommendationOptions
	log         *logger.Logger
	now         func() time.Time
}

func (s *RecommendationService) Recommend(ctx context.Context, req request_models.RecommendRequest) (response_models.RecommendationResult, error) {
	if req.Answers == nil {
		return response_models.RecommendationResult{}, utils.ErrInvalidInput
	}

	n := s.opts.DefaultLimit
	if req.N != nil {
		n = *req.N
	}
	if n > s.opts.MaxLimit {
		return response_models.RecommendationResult{}, utils.ErrInvalidLimit
	}

	resp := recommender.UserResponse(req.Answers)
	fv, preferred := recommender.Resolve(resp)
	ranked := recommender.Rank(s.recommender.Catalog(), fv, preferred, n)

	result := response_models.RecommendationResult{
		RequestID: uuid.New().String(),
		Profile: response_models.PreferenceProfile{
			FitnessLevel:     fv.FitnessLevel,
			WeatherTolerance: fv.WeatherTolerance,
			Experience:       fv.Experience,
			HikingLikelihood: fv.HikingLikelihood,
			PreferredTags:    preferred.Sorted(),
		},
		Recommendations: make([]response_models.TrailRecommendation, 0, len(ranked)),
		CreatedAt:       s.now().UTC(),
	}
	for i, st := range ranked {
		result.Recommendations = append(result.Recommendations, response_models.TrailRecommendation{
			Rank:  i + 1,
			Trail: toTrailResponse(st.Trail),
			Score: st.Score,
			Breakdown: response_models.ScoreBreakdown{
				DifficultyBase:   st.Breakdown.DifficultyBase,
				TagBonus:         st.Breakdown.TagBonus,
				MatchedTags:      st.Breakdown.MatchedTags,
				LengthFactor:     st.Breakdown.LengthFactor,
				WeatherFactor:    st.Breakdown.WeatherFactor,
				LikelihoodFactor: st.Breakdown.LikelihoodFactor,
			},
			Reason: explain(st, preferred),
		})
	}

	s.storeResult(ctx, result)
	if s.opts.RecordSurveys && s.surveyRepo != nil {
		s.recordSurvey(ctx, req, resp)
	}

	s.log.Info("recommendations served",
		"request_id", result.RequestID,
		"requested", n,
		"returned", len(result.Recommendations),
		"preferred_tags", len(result.Profile.PreferredTags),
	)
	return result, nil
}

func (s *RecommendationService) GetResult(ctx context.Context, id string) (response_models.RecommendationResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return response_models.RecommendationResult{}, utils.ErrResultNotFound
	}

	raw, ok, err := s.results.Get(ctx, resultKeyPrefix+id)
	if err != nil {
		s.log.Error("failed to read recommendation result", "request_id", id, "error", err)
		return response_models.RecommendationResult{}, fmt.Errorf("%w: %v", utils.ErrCacheError, err)
	}
	if !ok {
		return response_models.RecommendationResult{}, utils.ErrResultNotFound
	}

	var result response_models.RecommendationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		s.log.Error("stored recommendation result is corrupt", "request_id", id, "error", err)
		return response_models.RecommendationResult{}, fmt.Errorf("%w: %v", utils.ErrCacheError, err)
	}
	return result, nil
}

// RenderText formats a result the same way the command-line tool prints
// recommendations.
func (s *RecommendationService) RenderText(result response_models.RecommendationResult) string {
	scored := make([]recommender.ScoredTrail, 0, len(result.Recommendations))
	for _, r := range result.Recommendations {
		scored = append(scored, recommender.ScoredTrail{
			Trail: &trail.Trail{
				Name:       r.Trail.Name,
				Location:   r.Trail.Location,
				Difficulty: r.Trail.Difficulty,
				LengthKm:   r.Trail.LengthKm,
				Rating:     r.Trail.Rating,
				Tags:       r.Trail.Tags,
			},
			Score: r.Score,
		})
	}
	return recommender.FormatText(scored)
}

// storeResult caches the result for lookup by id. Store failures are logged,
// not returned.
func (s *RecommendationService) storeResult(ctx context.Context, result response_models.RecommendationResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		s.log.Error("failed to encode recommendation result", "request_id", result.RequestID, "error", err)
		return
	}
	if err := s.results.Set(ctx, resultKeyPrefix+result.RequestID, raw, s.opts.ResultTTL); err != nil {
		s.log.Warn("failed to store recommendation result", "request_id", result.RequestID, "error", err)
	}
}

func (s *RecommendationService) recordSurvey(ctx context.Context, req request_models.RecommendRequest, resp recommender.UserResponse) {
	join := func(key string) string {
		return strings.Join(resp.Choices(key), trail.TagSeparator)
	}
	row := &db_models.SurveyResponse{
		Name:                     req.Name,
		Hometown:                 req.Hometown,
		HomePlace:                join(recommender.KeyHomeEnvironment),
		WeekendPreference:        join(recommender.KeyWeekendPreference),
		FitnessLevel:             join(recommender.KeyFitnessLevel),
		HikingExperience:         join(recommender.KeyHikingExperience),
		PreferredTrailTypes:      join(recommender.KeyTrailLengthPreference),
		HikingGroup:              join(recommender.KeyHikingCompanion),
		TrailIdealFeatures:       join(recommender.KeyPerfectTrailFeatures),
		DreamDestination:         join(recommender.KeyDreamDestination),
		MusicPreference:          join(recommender.KeyMusicPreference),
		BadWeatherHiking:         join(recommender.KeyWeatherPreference),
		VacationHikingLikelihood: resp.Likelihood(),
	}
	if err := s.surveyRepo.SaveSurveyResponse(ctx, row); err != nil {
		s.log.Warn("failed to record survey response", "error", err)
	}
}

// explain summarizes which parts of the score favoured the trail.
func explain(st recommender.ScoredTrail, preferred trail.TagSet) string {
	var parts []string

	var matched []string
	for _, tag := range st.Trail.Tags {
		if preferred.Has(tag) {
			matched = append(matched, tag)
		}
	}
	if len(matched) > 0 {
		parts = append(parts, "matches your interest in "+strings.Join(matched, ", "))
	}
	if st.Breakdown.LengthFactor > 1 {
		parts = append(parts, "has the length you prefer")
	}
	if st.Breakdown.WeatherFactor > 1 {
		if st.Trail.HasTag("all_weather") {
			parts = append(parts, "is hikeable in any weather")
		} else {
			parts = append(parts, "suits fair-weather hiking")
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s difficulty is the closest fit for your fitness and experience", st.Trail.Difficulty)
	}

	reason := strings.Join(parts, "; ")
	return strings.ToUpper(reason[:1]) + reason[1:]
}

func NewRecommendationService(
	rec *recommender.Recommender,
	results mem.ResultStore,
	surveyRepo repositories.SurveyRepository,
	opts RecommendationOptions,
	log *logger.Logger,
) RecommendationServiceInterface {
	return &RecommendationService{
		recommender: rec,
		results:     results,
		surveyRepo:  surveyRepo,
		opts:        opts,
		log:         log,
		now:         time.Now,
	}
}
