package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"hikematch/internal/models/db_models"
	"hikematch/internal/models/request_models"
	"hikematch/internal/recommender"
	"hikematch/internal/repositories"
	"hikematch/internal/trail"
	"hikematch/pkg/logger"
	mem "hikematch/pkg/memcache"
	"hikematch/pkg/utils"
)

func testCatalog(t *testing.T) *trail.Catalog {
	t.Helper()
	c, err := trail.Preprocess([]trail.RawTrailRow{
		{Name: "Ridge Loop", Difficulty: "Hard", Rating: "4.7", ReviewCount: "1200", Location: "Alps", Length: "15 km", Tags: "Long, Hard, Views"},
		{Name: "Lake Walk", Difficulty: "Easy", Rating: "4.1", ReviewCount: "87", Location: "Lakeside", Length: "2 km", Tags: "Easy, Short, Lake"},
		{Name: "Forest Path", Difficulty: "Moderate", Rating: "3.9", Location: "Black Forest", Length: "7.5 km", Tags: "Forest, Medium, all_weather"},
	})
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	return c
}

type fakeSurveyRepo struct {
	saved []db_models.SurveyResponse
	err   error
}

func (f *fakeSurveyRepo) SaveSurveyResponse(_ context.Context, resp *db_models.SurveyResponse) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, *resp)
	return nil
}

type failingStore struct{}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("store down")
}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("store down")
}

func defaultOptions() RecommendationOptions {
	return RecommendationOptions{DefaultLimit: 3, MaxLimit: 100, ResultTTL: time.Minute}
}

func newTestRecommendationService(t *testing.T, store mem.ResultStore, repo *fakeSurveyRepo, opts RecommendationOptions) RecommendationServiceInterface {
	t.Helper()
	var surveyRepo repositories.SurveyRepository
	if repo != nil {
		surveyRepo = repo
	}
	return NewRecommendationService(recommender.New(testCatalog(t)), store, surveyRepo, opts, logger.NewNop())
}

func intPtr(n int) *int { return &n }

func TestRecommendDefaultLimit(t *testing.T) {
	svc := newTestRecommendationService(t, mem.NewInMemoryResults(), nil, defaultOptions())

	res, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Answers: map[string]any{
			recommender.KeyFitnessLevel:          "Athlete level 🏃‍♀️",
			recommender.KeyTrailLengthPreference: []any{"Long and tough (over 10 km)"},
		},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if res.RequestID == "" {
		t.Fatal("expected a request id")
	}
	if len(res.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(res.Recommendations))
	}
	for i, r := range res.Recommendations {
		if r.Rank != i+1 {
			t.Errorf("rank %d at position %d", r.Rank, i)
		}
		if i > 0 && r.Score > res.Recommendations[i-1].Score {
			t.Errorf("scores not descending at %d", i)
		}
		if r.Reason == "" {
			t.Errorf("missing reason for %s", r.Trail.Name)
		}
	}
}

func TestRecommendLimits(t *testing.T) {
	svc := newTestRecommendationService(t, mem.NewInMemoryResults(), nil, defaultOptions())
	ctx := context.Background()

	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{-2, 0},
		{1, 1},
		{10, 3},
	}
	for _, tc := range cases {
		res, err := svc.Recommend(ctx, request_models.RecommendRequest{Answers: map[string]any{}, N: intPtr(tc.n)})
		if err != nil {
			t.Fatalf("n=%d: %v", tc.n, err)
		}
		if res.Recommendations == nil || len(res.Recommendations) != tc.want {
			t.Errorf("n=%d: got %v recommendations, want %d", tc.n, res.Recommendations, tc.want)
		}
	}

	if _, err := svc.Recommend(ctx, request_models.RecommendRequest{Answers: map[string]any{}, N: intPtr(101)}); !errors.Is(err, utils.ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
	if _, err := svc.Recommend(ctx, request_models.RecommendRequest{}); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetResult(t *testing.T) {
	svc := newTestRecommendationService(t, mem.NewInMemoryResults(), nil, defaultOptions())
	ctx := context.Background()

	res, err := svc.Recommend(ctx, request_models.RecommendRequest{Answers: map[string]any{}, N: intPtr(2)})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	got, err := svc.GetResult(ctx, res.RequestID)
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if got.RequestID != res.RequestID || len(got.Recommendations) != 2 {
		t.Fatalf("unexpected stored result: %+v", got)
	}
	if got.Recommendations[0].Trail.Name != res.Recommendations[0].Trail.Name {
		t.Fatalf("stored order differs")
	}

	for _, id := range []string{"not-a-uuid", "8f9a4a52-3f0a-4a8e-9d1c-4f8a0c6b7e21"} {
		if _, err := svc.GetResult(ctx, id); !errors.Is(err, utils.ErrResultNotFound) {
			t.Errorf("GetResult(%q): expected ErrResultNotFound, got %v", id, err)
		}
	}
}

func TestRecommendSurvivesStoreFailure(t *testing.T) {
	svc := newTestRecommendationService(t, failingStore{}, nil, defaultOptions())
	ctx := context.Background()

	res, err := svc.Recommend(ctx, request_models.RecommendRequest{Answers: map[string]any{}})
	if err != nil {
		t.Fatalf("Recommend should not fail on store errors: %v", err)
	}
	if _, err := svc.GetResult(ctx, res.RequestID); !errors.Is(err, utils.ErrCacheError) {
		t.Fatalf("expected ErrCacheError, got %v", err)
	}
}

func TestRecommendRecordsSurvey(t *testing.T) {
	repo := &fakeSurveyRepo{}
	opts := defaultOptions()
	opts.RecordSurveys = true
	svc := newTestRecommendationService(t, mem.NewInMemoryResults(), repo, opts)

	_, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Name:     "Ana",
		Hometown: "Porto",
		Answers: map[string]any{
			recommender.KeyTrailLengthPreference: []any{"Short and sweet (under 5 km)", "Long and tough (over 10 km)"},
			recommender.KeyFitnessLevel:          "Pretty active 💪",
			recommender.KeyHikingLikelihood:      float64(5),
		},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected one saved survey, got %d", len(repo.saved))
	}
	got := repo.saved[0]
	if got.Name != "Ana" || got.Hometown != "Porto" || got.FitnessLevel != "Pretty active 💪" {
		t.Fatalf("unexpected survey row: %+v", got)
	}
	if got.PreferredTrailTypes != "Short and sweet (under 5 km), Long and tough (over 10 km)" || got.VacationHikingLikelihood != 5 {
		t.Fatalf("unexpected survey row: %+v", got)
	}

	repo.err = errors.New("insert failed")
	if _, err := svc.Recommend(context.Background(), request_models.RecommendRequest{Answers: map[string]any{}}); err != nil {
		t.Fatalf("survey failures must not fail the request: %v", err)
	}
}

func TestRenderText(t *testing.T) {
	svc := newTestRecommendationService(t, mem.NewInMemoryResults(), nil, defaultOptions())
	res, err := svc.Recommend(context.Background(), request_models.RecommendRequest{Answers: map[string]any{}, N: intPtr(2)})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	text := svc.RenderText(res)
	if strings.Count(text, "🎯 Match Score:") != 2 {
		t.Fatalf("expected two cards:\n%s", text)
	}
	if !strings.HasPrefix(text, "🏃‍♂️ "+res.Recommendations[0].Trail.Name+"\n") {
		t.Fatalf("first card should be the top trail:\n%s", text)
	}
}

func TestListTrails(t *testing.T) {
	svc := NewTrailService(testCatalog(t))
	ctx := context.Background()

	page, err := svc.ListTrails(ctx, 1, 2)
	if err != nil {
		t.Fatalf("ListTrails: %v", err)
	}
	if page.Total != 3 || len(page.Trails) != 2 || page.Trails[0].Name != "Ridge Loop" {
		t.Fatalf("unexpected page: %+v", page)
	}

	page, err = svc.ListTrails(ctx, 3, 2)
	if err != nil || len(page.Trails) != 0 || page.Trails == nil {
		t.Fatalf("past the end should be an empty page, got %+v, %v", page, err)
	}

	if _, err := svc.ListTrails(ctx, 0, 10); !errors.Is(err, utils.ErrInvalidPage) {
		t.Errorf("expected ErrInvalidPage, got %v", err)
	}
	for _, size := range []int{0, 101} {
		if _, err := svc.ListTrails(ctx, 1, size); !errors.Is(err, utils.ErrInvalidPageSize) {
			t.Errorf("size %d: expected ErrInvalidPageSize, got %v", size, err)
		}
	}
}

func TestGetTrail(t *testing.T) {
	svc := NewTrailService(testCatalog(t))

	got, err := svc.GetTrail(context.Background(), "Forest Path")
	if err != nil {
		t.Fatalf("GetTrail: %v", err)
	}
	if got.LengthKm != 7.5 || got.ReviewCount != 0 || len(got.Tags) != 3 {
		t.Fatalf("unexpected trail: %+v", got)
	}
	if _, err := svc.GetTrail(context.Background(), "forest path"); !errors.Is(err, utils.ErrTrailNotFound) {
		t.Fatalf("lookup is exact, expected ErrTrailNotFound, got %v", err)
	}
}

type rowsSource []trail.RawTrailRow

func (s rowsSource) LoadRawTrails(context.Context) ([]trail.RawTrailRow, error) {
	return s, nil
}

func TestLoadCatalog(t *testing.T) {
	src := rowsSource{
		{Name: "Good", Difficulty: "Easy", Rating: "4", Length: "3 km"},
		{Name: "Bad", Difficulty: "Easy", Rating: "4", Length: "unknown"},
	}
	ctx := context.Background()

	var malformed *trail.MalformedTrailError
	if _, err := LoadCatalog(ctx, src, false, logger.NewNop()); !errors.As(err, &malformed) {
		t.Fatalf("strict load: expected MalformedTrailError, got %v", err)
	}

	c, err := LoadCatalog(ctx, src, true, logger.NewNop())
	if err != nil {
		t.Fatalf("lenient load: %v", err)
	}
	if c.Len() != 1 || c.At(0).Name != "Good" {
		t.Fatalf("expected only the good row, got %d trails", c.Len())
	}
}

type countingSource struct {
	rowsSource
	count int64
	err   error
}

func (s countingSource) CountTrails(context.Context) (int64, error) {
	return s.count, s.err
}

func TestLoadCatalogCountsTable(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	src := countingSource{
		rowsSource: rowsSource{{Name: "Good", Difficulty: "Easy", Rating: "4", Length: "3 km"}},
		count:      1,
	}

	c, err := LoadCatalog(context.Background(), src, false, log)
	if err != nil || c.Len() != 1 {
		t.Fatalf("LoadCatalog: %d trails, err %v", c.Len(), err)
	}
	counted := logs.FilterMessage("trails table counted").All()
	if len(counted) != 1 || counted[0].ContextMap()["rows"] != int64(1) {
		t.Fatalf("expected one count log with rows=1, got %+v", counted)
	}

	src.err = fmt.Errorf("%w: connection refused", utils.ErrDatabaseError)
	if _, err := LoadCatalog(context.Background(), src, false, logger.NewNop()); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("expected ErrDatabaseError, got %v", err)
	}
}

func TestSurveyQuestions(t *testing.T) {
	form := NewSurveyService().GetQuestions()
	if len(form.Questions) == 0 || form.TotalQuestions != len(form.Questions) {
		t.Fatalf("unexpected form: %d questions, total %d", len(form.Questions), form.TotalQuestions)
	}
	if form.SubmitEndpoint != "/recommendations" {
		t.Fatalf("submit endpoint = %q", form.SubmitEndpoint)
	}
}
