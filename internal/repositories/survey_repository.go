package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hikematch/internal/models/db_models"
	"hikematch/pkg/utils"
)

type SurveyRepository interface {
	SaveSurveyResponse(ctx context.Context, resp *db_models.SurveyResponse) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) SaveSurveyResponse(ctx context.Context, resp *db_models.SurveyResponse) error {
	if err := r.db.WithContext(ctx).Create(resp).Error; err != nil {
		return fmt.Errorf("%w: save survey response: %w", utils.ErrDatabaseError, err)
	}
	return nil
}
