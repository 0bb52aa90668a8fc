package api

import (
	"github.com/gin-gonic/gin"

	"hikematch/internal/api/controllers"
	"hikematch/pkg/logger"
	"hikematch/pkg/middleware"
)

func NewRouter(
	log *logger.Logger,
	corsOrigins []string,
	healthController *controllers.HealthController,
	surveyController *controllers.SurveyController,
	trailController *controllers.TrailController,
	recommendationController *controllers.RecommendationController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(corsOrigins))

	RegisterRoutes(r, healthController, surveyController, trailController, recommendationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	healthController *controllers.HealthController,
	surveyController *controllers.SurveyController,
	trailController *controllers.TrailController,
	recommendationController *controllers.RecommendationController) {

	r.GET("/healthz", healthController.HealthHandler)

	surveyGroup := r.Group("/survey")
	surveyGroup.GET("/questions", surveyController.GetQuestionsHandler)

	trailsGroup := r.Group("/trails")
	trailsGroup.GET("", trailController.ListTrailsHandler)
	trailsGroup.GET("/:name", trailController.GetTrailHandler)

	recommendationsGroup := r.Group("/recommendations")
	recommendationsGroup.POST("", recommendationController.RecommendHandler)
	recommendationsGroup.GET("/:id", recommendationController.GetResultHandler)
}
