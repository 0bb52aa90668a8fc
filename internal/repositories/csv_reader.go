package repositories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hikematch/internal/models/db_models"
	"hikematch/internal/trail"
)

// Trail CSV columns, matched case-insensitively.
const (
	colTrailName         = "trail_name"
	colLink              = "link_alltrails"
	colImage             = "image"
	colDifficulty        = "difficulty"
	colAverageRating     = "average_rating"
	colNumberOfReviews   = "number_of_reviews"
	colLocation          = "location"
	colLength            = "length"
	colDescription       = "description"
	colTags              = "tags"
	colScaledReviews     = "scaled_reviews"
	colScaledRating      = "scaled_rating"
	colCombinedScore     = "combined_score"
	colDifficultyEncoded = "difficulty_encoded"
)

// Survey export columns, keyed by the form's question text.
var surveyColumns = map[string]string{
	"your name": "name",
	"hometown": "hometown",
	"which best describes your home place?": "home_place",
	"how do you prefer to spend your weekends?": "weekend_preference",
	"how would you describe your fitness level?": "fitness_level",
	"have you ever been on a hike ?": "hiking_experience",
	"what kind of hiking trail would you try (or have tried)? (choose up to 3)": "preferred_trail_types",
	"who would you go hiking with?": "hiking_group",
	"what would make a hiking trail perfect for you?": "trail_ideal_features",
	"what’s your dream hiking destination?": "dream_destination",
	"what’s your hiking playlist vibe?": "music_preference",
	"if the weather’s not great, would you still go hiking?": "bad_weather_hiking",
	"on a scale of 1-5, how likely are you to go hiking in the next vacation?": "vacation_hiking_likelihood",
}

var ErrMissingColumn = errors.New("missing required column")

type csvRecord map[string]string

// readCSV reads a header row and returns every data row keyed by the
// lower-cased, trimmed header.
func readCSV(r io.Reader) ([]csvRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	keys := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		keys[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var out []csvRecord
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}
		rec := make(csvRecord, len(keys))
		for i, k := range keys {
			if i < len(fields) {
				rec[k] = fields[i]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func requireColumns(records []csvRecord, cols ...string) error {
	if len(records) == 0 {
		return nil
	}
	for _, c := range cols {
		if _, ok := records[0][c]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	return nil
}

// ReadTrailsCSV parses a trails export into raw catalog rows, in file order.
func ReadTrailsCSV(r io.Reader) ([]trail.RawTrailRow, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(records, colTrailName, colLength); err != nil {
		return nil, err
	}

	rows := make([]trail.RawTrailRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rawRowFromRecord(rec))
	}
	return rows, nil
}

func rawRowFromRecord(rec csvRecord) trail.RawTrailRow {
	return trail.RawTrailRow{
		Name:        strings.TrimSpace(rec[colTrailName]),
		Link:        rec[colLink],
		Image:       rec[colImage],
		Difficulty:  rec[colDifficulty],
		Rating:      rec[colAverageRating],
		ReviewCount: rec[colNumberOfReviews],
		Location:    rec[colLocation],
		Length:      rec[colLength],
		Description: rec[colDescription],
		Tags:        rec[colTags],
	}
}

// TrailModelsFromCSV parses a trails export into table rows for loading.
// Every row must preprocess cleanly, so a loaded table builds the same
// catalog as the CSV; the scaled columns are optional.
func TrailModelsFromCSV(r io.Reader) ([]db_models.Trail, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(records, colTrailName, colLength); err != nil {
		return nil, err
	}

	out := make([]db_models.Trail, 0, len(records))
	for i, rec := range records {
		raw := rawRowFromRecord(rec)
		rating, err := parseOptionalFloat(raw.Rating)
		if err != nil {
			return nil, fmt.Errorf("row %d (%q): average_rating: %w", i, raw.Name, err)
		}
		reviews, err := parseOptionalFloat(raw.ReviewCount)
		if err != nil {
			return nil, fmt.Errorf("row %d (%q): number_of_reviews: %w", i, raw.Name, err)
		}
		if err := trail.ValidateRow(i, raw); err != nil {
			return nil, err
		}

		m := db_models.Trail{
			CatalogOrder:    i,
			TrailName:       raw.Name,
			LinkAllTrails:   raw.Link,
			Image:           raw.Image,
			Difficulty:      raw.Difficulty,
			AverageRating:   derefFloat(rating),
			NumberOfReviews: int(derefFloat(reviews)),
			Location:        raw.Location,
			Length:          raw.Length,
			Description:     raw.Description,
			Tags:            raw.Tags,
		}
		if m.ScaledReviews, err = parseOptionalFloat(rec[colScaledReviews]); err != nil {
			return nil, fmt.Errorf("row %d (%q): scaled_reviews: %w", i, raw.Name, err)
		}
		if m.ScaledRating, err = parseOptionalFloat(rec[colScaledRating]); err != nil {
			return nil, fmt.Errorf("row %d (%q): scaled_rating: %w", i, raw.Name, err)
		}
		if m.CombinedScore, err = parseOptionalFloat(rec[colCombinedScore]); err != nil {
			return nil, fmt.Errorf("row %d (%q): combined_score: %w", i, raw.Name, err)
		}
		enc, err := parseOptionalFloat(rec[colDifficultyEncoded])
		if err != nil {
			return nil, fmt.Errorf("row %d (%q): difficulty_encoded: %w", i, raw.Name, err)
		}
		if enc != nil {
			v := int(*enc)
			m.DifficultyEncoded = &v
		}
		out = append(out, m)
	}
	return out, nil
}

// SurveyModelsFromCSV parses a survey export whose headers are the form's
// question texts.
func SurveyModelsFromCSV(r io.Reader) ([]db_models.SurveyResponse, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	out := make([]db_models.SurveyResponse, 0, len(records))
	for i, rec := range records {
		fields := make(map[string]string, len(surveyColumns))
		for header, value := range rec {
			if field, ok := surveyColumns[normalizeQuote(header)]; ok {
				fields[field] = strings.TrimSpace(value)
			}
		}

		likelihood := 0
		if v := fields["vacation_hiking_likelihood"]; v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: hiking likelihood %q: %w", i, v, err)
			}
			likelihood = int(f)
		}

		out = append(out, db_models.SurveyResponse{
			Name:                     fields["name"],
			Hometown:                 fields["hometown"],
			HomePlace:                fields["home_place"],
			WeekendPreference:        fields["weekend_preference"],
			FitnessLevel:             fields["fitness_level"],
			HikingExperience:         fields["hiking_experience"],
			PreferredTrailTypes:      fields["preferred_trail_types"],
			HikingGroup:              fields["hiking_group"],
			TrailIdealFeatures:       fields["trail_ideal_features"],
			DreamDestination:         fields["dream_destination"],
			MusicPreference:          fields["music_preference"],
			BadWeatherHiking:         fields["bad_weather_hiking"],
			VacationHikingLikelihood: likelihood,
		})
	}
	return out, nil
}

// normalizeQuote maps the straight apostrophe to the typographic one used
// by the form export headers.
func normalizeQuote(s string) string {
	return strings.ReplaceAll(s, "'", "’")
}

func parseOptionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
