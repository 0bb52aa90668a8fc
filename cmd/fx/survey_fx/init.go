package survey_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hikematch/internal/repositories"
	"hikematch/internal/services"
)

var Module = fx.Provide(
	provideSurveyRepo, provideSurveyService)

// provideSurveyRepo returns nil when there is no database; the
// recommendation service then skips recording.
func provideSurveyRepo(db *gorm.DB) repositories.SurveyRepository {
	if db == nil {
		return nil
	}
	return repositories.NewSurveyRepository(db)
}

func provideSurveyService() services.SurveyServiceInterface {
	return services.NewSurveyService()
}
