package repositories

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"hikematch/internal/models/db_models"
	"hikematch/internal/trail"
	"hikematch/pkg/utils"
)

type TrailRepository interface {
	TrailSource
	CountTrails(ctx context.Context) (int64, error)
}

type trailRepository struct {
	db *gorm.DB
}

func NewTrailRepository(db *gorm.DB) TrailRepository {
	return &trailRepository{db: db}
}

func (r *trailRepository) LoadRawTrails(ctx context.Context) ([]trail.RawTrailRow, error) {
	var models []db_models.Trail
	err := r.db.WithContext(ctx).
		Order("catalog_order ASC").
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("%w: load trails: %w", utils.ErrDatabaseError, err)
	}

	rows := make([]trail.RawTrailRow, 0, len(models))
	for _, m := range models {
		rows = append(rows, RawRowFromModel(m))
	}
	return rows, nil
}

func (r *trailRepository) CountTrails(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&db_models.Trail{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count trails: %w", utils.ErrDatabaseError, err)
	}
	return n, nil
}

// RawRowFromModel converts a stored trail back into the raw row shape the
// catalog preprocessor expects.
func RawRowFromModel(m db_models.Trail) trail.RawTrailRow {
	return trail.RawTrailRow{
		Name:        m.TrailName,
		Link:        m.LinkAllTrails,
		Image:       m.Image,
		Difficulty:  m.Difficulty,
		Rating:      strconv.FormatFloat(m.AverageRating, 'f', -1, 64),
		ReviewCount: strconv.Itoa(m.NumberOfReviews),
		Location:    m.Location,
		Length:      m.Length,
		Description: m.Description,
		Tags:        m.Tags,
	}
}
