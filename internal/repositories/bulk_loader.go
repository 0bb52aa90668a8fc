package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"hikematch/internal/models/db_models"
)

var trailCopyColumns = []string{
	"id", "created_at", "updated_at",
	"catalog_order", "trail_name", "link_alltrails", "image", "difficulty",
	"average_rating", "number_of_reviews", "location", "length", "description", "tags",
	"scaled_reviews", "scaled_rating", "combined_score", "difficulty_encoded",
}

var surveyCopyColumns = []string{
	"id", "created_at", "updated_at",
	"name", "hometown", "home_place", "weekend_preference", "fitness_level",
	"hiking_experience", "preferred_trail_types", "hiking_group", "trail_ideal_features",
	"dream_destination", "music_preference", "bad_weather_hiking", "vacation_hiking_likelihood",
}

// CopyTrails bulk-loads trails with COPY inside tx and returns the number
// of rows sent.
func CopyTrails(ctx context.Context, tx *sql.Tx, trails []db_models.Trail, now time.Time) (int, error) {
	ts := now.Unix()
	rows := make([][]any, 0, len(trails))
	for _, t := range trails {
		rows = append(rows, []any{
			uuid.New().String(), ts, ts,
			t.CatalogOrder, t.TrailName, t.LinkAllTrails, t.Image, t.Difficulty,
			t.AverageRating, t.NumberOfReviews, t.Location, t.Length, t.Description, t.Tags,
			nullableFloat(t.ScaledReviews), nullableFloat(t.ScaledRating), nullableFloat(t.CombinedScore), nullableInt(t.DifficultyEncoded),
		})
	}
	return copyRows(ctx, tx, db_models.Trail{}.TableName(), trailCopyColumns, rows)
}

// CopySurveyResponses bulk-loads survey rows with COPY inside tx.
func CopySurveyResponses(ctx context.Context, tx *sql.Tx, responses []db_models.SurveyResponse, now time.Time) (int, error) {
	ts := now.Unix()
	rows := make([][]any, 0, len(responses))
	for _, r := range responses {
		rows = append(rows, []any{
			uuid.New().String(), ts, ts,
			r.Name, r.Hometown, r.HomePlace, r.WeekendPreference, r.FitnessLevel,
			r.HikingExperience, r.PreferredTrailTypes, r.HikingGroup, r.TrailIdealFeatures,
			r.DreamDestination, r.MusicPreference, r.BadWeatherHiking, r.VacationHikingLikelihood,
		})
	}
	return copyRows(ctx, tx, db_models.SurveyResponse{}.TableName(), surveyCopyColumns, rows)
}

func copyRows(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]any) (int, error) {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return 0, fmt.Errorf("prepare copy into %s: %w", table, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return 0, fmt.Errorf("copy %s row %d: %w", table, i, err)
		}
	}
	// an empty Exec flushes the buffered rows
	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, fmt.Errorf("flush copy into %s: %w", table, err)
	}
	return len(rows), nil
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullableInt(i *int) any {
	if i == nil {
		return nil
	}
	return int64(*i)
}
