package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hikematch/internal/models/db_models"
	"hikematch/internal/trail"
)

const trailsCSV = "\ufeffTrail_name,link_AllTrails,image,Difficulty,Average_rating,number_of_reviews,Location,Length,description,Tags,scaled_reviews,scaled_rating,combined_score,Difficulty_encoded\n" +
	`Ridge Loop,https://example.com/ridge,ridge.jpg,Hard,4.7,1200,"Alps, Switzerland",15.2 km,"Steep, exposed ridge",` + `"Hard, Long, Views",0.9,0.94,0.92,2` + "\n" +
	`Lake Walk,,,Easy,4.1,87,Lakeside,2 km,Flat loop,"Easy, Short",,,,0` + "\n" +
	"\n" +
	`Forest Path,,,Moderate,3.9,,Black Forest,7.5km,,,,,,1` + "\n"

func TestReadTrailsCSV(t *testing.T) {
	rows, err := ReadTrailsCSV(strings.NewReader(trailsCSV))
	if err != nil {
		t.Fatalf("ReadTrailsCSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	want := trail.RawTrailRow{
		Name:        "Ridge Loop",
		Link:        "https://example.com/ridge",
		Image:       "ridge.jpg",
		Difficulty:  "Hard",
		Rating:      "4.7",
		ReviewCount: "1200",
		Location:    "Alps, Switzerland",
		Length:      "15.2 km",
		Description: "Steep, exposed ridge",
		Tags:        "Hard, Long, Views",
	}
	if rows[0] != want {
		t.Fatalf("row 0 = %+v\nwant   %+v", rows[0], want)
	}
	if rows[2].Name != "Forest Path" || rows[2].Tags != "" || rows[2].ReviewCount != "" {
		t.Fatalf("unexpected row 2: %+v", rows[2])
	}

	c, err := trail.Preprocess(rows)
	if err != nil {
		t.Fatalf("rows should preprocess cleanly: %v", err)
	}
	if c.At(0).LengthKm != 15.2 || len(c.At(2).Tags) != 0 {
		t.Fatalf("unexpected catalog: %+v / %+v", c.At(0), c.At(2))
	}
}

func TestReadTrailsCSVMissingColumn(t *testing.T) {
	_, err := ReadTrailsCSV(strings.NewReader("Trail_name,Difficulty\nRidge,Hard\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	_, err = ReadTrailsCSV(strings.NewReader(""))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("empty input: expected ErrMissingColumn, got %v", err)
	}
}

func TestTrailModelsFromCSV(t *testing.T) {
	models, err := TrailModelsFromCSV(strings.NewReader(trailsCSV))
	if err != nil {
		t.Fatalf("TrailModelsFromCSV: %v", err)
	}
	if len(models) != 3 {
		t.Fatalf("expected 3 models, got %d", len(models))
	}

	ridge := models[0]
	if ridge.CatalogOrder != 0 || ridge.AverageRating != 4.7 || ridge.NumberOfReviews != 1200 {
		t.Fatalf("unexpected ridge model: %+v", ridge)
	}
	if ridge.ScaledRating == nil || *ridge.ScaledRating != 0.94 || ridge.DifficultyEncoded == nil || *ridge.DifficultyEncoded != 2 {
		t.Fatalf("optional columns not parsed: %+v", ridge)
	}
	if models[1].ScaledReviews != nil {
		t.Fatal("empty optional column should stay nil")
	}
	if models[2].CatalogOrder != 2 || models[2].NumberOfReviews != 0 {
		t.Fatalf("unexpected forest model: %+v", models[2])
	}

	// the stored form converts back to the same raw row
	back := RawRowFromModel(models[1])
	if back.Rating != "4.1" || back.ReviewCount != "87" || back.Length != "2 km" || back.Tags != "Easy, Short" {
		t.Fatalf("round trip through model lost data: %+v", back)
	}
}

func TestTrailModelsFromCSVBadRating(t *testing.T) {
	in := "Trail_name,Average_rating,Length\nRidge,great,5 km\n"
	if _, err := TrailModelsFromCSV(strings.NewReader(in)); err == nil || !strings.Contains(err.Error(), "average_rating") {
		t.Fatalf("expected average_rating error, got %v", err)
	}
}

func TestTrailModelsFromCSVRejectsUnloadableRows(t *testing.T) {
	cases := map[string]string{
		"blank rating":    "Ridge,,12,5 km\n",
		"rating above 5":  "Ridge,7,12,5 km\n",
		"negative count":  "Ridge,4.5,-3,5 km\n",
		"length no digit": "Ridge,4.5,12,far\n",
	}
	for name, row := range cases {
		in := "Trail_name,Average_rating,number_of_reviews,Length\n" + row
		_, err := TrailModelsFromCSV(strings.NewReader(in))
		var malformed *trail.MalformedTrailError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: expected MalformedTrailError, got %v", name, err)
			continue
		}
		// the same row must fail the CSV catalog path as well
		rows, err := ReadTrailsCSV(strings.NewReader(in))
		if err != nil {
			t.Fatalf("%s: ReadTrailsCSV: %v", name, err)
		}
		if _, err := trail.Preprocess(rows); err == nil {
			t.Errorf("%s: Preprocess accepted a row the loader rejects", name)
		}
	}
}

func TestSurveyModelsFromCSV(t *testing.T) {
	in := "Your name,Hometown,Which best describes your home place?,How would you describe your fitness level?," +
		"Have you ever been on a hike ?,What's your dream hiking destination?," +
		"\"On a scale of 1-5, how likely are you to go hiking in the next vacation?\"\n" +
		"Ana,Porto,A big city,Pretty active,\"Yes, a few times\",A snowy mountain,4\n" +
		"Ben,Lyon,,,,,\n"

	got, err := SurveyModelsFromCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("SurveyModelsFromCSV: %v", err)
	}
	want := db_models.SurveyResponse{
		Name:                     "Ana",
		Hometown:                 "Porto",
		HomePlace:                "A big city",
		FitnessLevel:             "Pretty active",
		HikingExperience:         "Yes, a few times",
		DreamDestination:         "A snowy mountain",
		VacationHikingLikelihood: 4,
	}
	if len(got) != 2 || got[0] != want {
		t.Fatalf("got %+v\nwant %+v", got, want)
	}
	if got[1].VacationHikingLikelihood != 0 {
		t.Fatalf("blank likelihood should be 0, got %d", got[1].VacationHikingLikelihood)
	}
}

func TestCSVTrailSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trails.csv")
	if err := os.WriteFile(path, []byte(trailsCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	rows, err := NewCSVTrailSource(path).LoadRawTrails(context.Background())
	if err != nil || len(rows) != 3 {
		t.Fatalf("LoadRawTrails: %d rows, err %v", len(rows), err)
	}

	if _, err := NewCSVTrailSource(filepath.Join(t.TempDir(), "missing.csv")).LoadRawTrails(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestNullableColumns(t *testing.T) {
	if nullableFloat(nil) != nil || nullableInt(nil) != nil {
		t.Fatal("nil pointers should copy as NULL")
	}
	f, i := 0.5, 2
	if nullableFloat(&f) != 0.5 || nullableInt(&i) != int64(2) {
		t.Fatal("values should be dereferenced")
	}
	if len(trailCopyColumns) != 18 || len(surveyCopyColumns) != 16 {
		t.Fatalf("unexpected copy column counts %d/%d", len(trailCopyColumns), len(surveyCopyColumns))
	}
}
