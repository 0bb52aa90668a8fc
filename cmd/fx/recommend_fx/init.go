package recommend_fx

import (
	"go.uber.org/fx"

	"hikematch/internal/config"
	"hikematch/internal/recommender"
	"hikematch/internal/repositories"
	"hikematch/internal/services"
	"hikematch/pkg/logger"
	mem "hikematch/pkg/memcache"
)

var Module = fx.Provide(
	provideRecommendationService)

func provideRecommendationService(
	cfg *config.Config,
	rec *recommender.Recommender,
	results mem.ResultStore,
	surveyRepo repositories.SurveyRepository,
	log *logger.Logger,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(rec, results, surveyRepo, services.RecommendationOptions{
		DefaultLimit:  cfg.DefaultRecommendations,
		MaxLimit:      cfg.MaxRecommendations,
		ResultTTL:     cfg.ResultTTL,
		RecordSurveys: cfg.RecordSurveys,
	}, log.With("component", "recommendations"))
}
