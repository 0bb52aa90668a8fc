package controllers_fx

import (
	"go.uber.org/fx"

	"hikematch/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewSurveyController),
	fx.Provide(controllers.NewTrailController),
	fx.Provide(controllers.NewRecommendationController))
