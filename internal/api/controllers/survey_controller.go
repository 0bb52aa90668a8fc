package controllers

import (
	"github.com/gin-gonic/gin"

	"hikematch/internal/services"
	"hikematch/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
}

func NewSurveyController(surveyService services.SurveyServiceInterface) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
	}
}

func (sc *SurveyController) GetQuestionsHandler(c *gin.Context) {
	utils.RespondSuccess(c, sc.surveyService.GetQuestions(), "Fetched survey questions successfully")
}
