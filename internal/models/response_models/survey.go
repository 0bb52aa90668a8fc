package response_models

import "hikematch/internal/recommender"

type SurveyForm struct {
	Questions      []recommender.Question `json:"questions"`
	TotalQuestions int                    `json:"total_questions"`
	SubmitEndpoint string                 `json:"submit_endpoint"`
}
