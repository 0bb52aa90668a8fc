package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hikematch/internal/models/db_models"
	"hikematch/pkg/utils"
)

// unreachableDB returns a gorm handle whose every query fails to connect.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=hike dbname=hike sslmode=disable connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestRepositoriesWrapDatabaseErrors(t *testing.T) {
	db := unreachableDB(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	trails := NewTrailRepository(db)
	if _, err := trails.LoadRawTrails(ctx); !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("LoadRawTrails: expected ErrDatabaseError, got %v", err)
	}
	if _, err := trails.CountTrails(ctx); !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("CountTrails: expected ErrDatabaseError, got %v", err)
	}
	if err := NewSurveyRepository(db).SaveSurveyResponse(ctx, &db_models.SurveyResponse{Name: "Ana"}); !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("SaveSurveyResponse: expected ErrDatabaseError, got %v", err)
	}
}
