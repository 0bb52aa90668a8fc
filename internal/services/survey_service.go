package services

import (
	"hikematch/internal/models/response_models"
	"hikematch/internal/recommender"
)

const submitEndpoint = "/recommendations"

type SurveyServiceInterface interface {
	GetQuestions() response_models.SurveyForm
}

type SurveyService struct{}

func (s *SurveyService) GetQuestions() response_models.SurveyForm {
	questions := recommender.Questions()
	return response_models.SurveyForm{
		Questions:      questions,
		TotalQuestions: len(questions),
		SubmitEndpoint: submitEndpoint,
	}
}

func NewSurveyService() SurveyServiceInterface {
	return &SurveyService{}
}
