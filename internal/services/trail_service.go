package services

import (
	"context"

	"hikematch/internal/models/response_models"
	"hikematch/internal/trail"
	"hikematch/pkg/utils"
)

const maxPageSize = 100

type TrailServiceInterface interface {
	ListTrails(ctx context.Context, page int, pageSize int) (response_models.TrailPage, error)
	GetTrail(ctx context.Context, name string) (response_models.Trail, error)
}

type TrailService struct {
	catalog *trail.Catalog
}

func (s *TrailService) ListTrails(ctx context.Context, page int, pageSize int) (response_models.TrailPage, error) {
	if page < 1 {
		return response_models.TrailPage{}, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return response_models.TrailPage{}, utils.ErrInvalidPageSize
	}

	trails := s.catalog.Page(page, pageSize)
	out := make([]response_models.Trail, 0, len(trails))
	for _, t := range trails {
		out = append(out, toTrailResponse(t))
	}

	return response_models.TrailPage{
		Page:     page,
		PageSize: pageSize,
		Total:    s.catalog.Len(),
		Trails:   out,
	}, nil
}

func (s *TrailService) GetTrail(ctx context.Context, name string) (response_models.Trail, error) {
	t := s.catalog.ByName(name)
	if t == nil {
		return response_models.Trail{}, utils.ErrTrailNotFound
	}
	return toTrailResponse(t), nil
}

func toTrailResponse(t *trail.Trail) response_models.Trail {
	tags := make([]string, len(t.Tags))
	copy(tags, t.Tags)
	return response_models.Trail{
		Name:        t.Name,
		Location:    t.Location,
		Difficulty:  t.Difficulty,
		LengthKm:    t.LengthKm,
		Rating:      t.Rating,
		ReviewCount: t.ReviewCount,
		Tags:        tags,
		Description: t.Description,
		Link:        t.Link,
		Image:       t.Image,
	}
}

func NewTrailService(catalog *trail.Catalog) TrailServiceInterface {
	return &TrailService{
		catalog: catalog,
	}
}
