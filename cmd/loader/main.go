package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lib/pq"

	"hikematch/internal/config"
	"hikematch/internal/infra"
	"hikematch/internal/models/db_models"
	"hikematch/internal/repositories"
	"hikematch/pkg/logger"
)

func main() {
	var trailsPath, surveysPath string
	var migrate, truncate bool
	flag.StringVar(&trailsPath, "trails", "", "trails CSV export to load")
	flag.StringVar(&surveysPath, "surveys", "", "survey responses CSV export to load")
	flag.BoolVar(&migrate, "migrate", false, "create or update tables before loading")
	flag.BoolVar(&truncate, "truncate", false, "delete existing rows of each loaded table first")
	flag.Parse()

	if trailsPath == "" && surveysPath == "" && !migrate {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// parse everything before touching the database
	var trails []db_models.Trail
	if trailsPath != "" {
		if trails, err = readFile(trailsPath, repositories.TrailModelsFromCSV); err != nil {
			log.Fatal("reading trails failed", "path", trailsPath, "error", err)
		}
	}
	var responses []db_models.SurveyResponse
	if surveysPath != "" {
		if responses, err = readFile(surveysPath, repositories.SurveyModelsFromCSV); err != nil {
			log.Fatal("reading survey responses failed", "path", surveysPath, "error", err)
		}
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL, log)
	if err != nil {
		log.Fatal("database unavailable", "error", err)
	}
	defer infra.ClosePostgresql(db, log)

	if migrate {
		if err := infra.Migrate(db); err != nil {
			log.Fatal("migration failed", "error", err)
		}
		log.Info("tables migrated")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("database unavailable", "error", err)
	}
	ctx := context.Background()
	now := time.Now()

	if trailsPath != "" {
		n, err := loadTable(ctx, sqlDB, db_models.Trail{}.TableName(), truncate, func(tx *sql.Tx) (int, error) {
			return repositories.CopyTrails(ctx, tx, trails, now)
		})
		if err != nil {
			log.Fatal("loading trails failed", "path", trailsPath, "error", err)
		}
		log.Info("trails loaded", "rows", n)
	}

	if surveysPath != "" {
		n, err := loadTable(ctx, sqlDB, db_models.SurveyResponse{}.TableName(), truncate, func(tx *sql.Tx) (int, error) {
			return repositories.CopySurveyResponses(ctx, tx, responses, now)
		})
		if err != nil {
			log.Fatal("loading survey responses failed", "path", surveysPath, "error", err)
		}
		log.Info("survey responses loaded", "rows", n)
	}
}

func readFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f)
}

// loadTable runs fill in one transaction, optionally clearing table first.
func loadTable(ctx context.Context, db *sql.DB, table string, truncate bool, fill func(*sql.Tx) (int, error)) (n int, err error) {
	tx, err := infra.StartTransaction(db)
	if err != nil {
		return 0, err
	}
	defer func() {
		err = infra.ReleaseTransaction(tx, err)
	}()

	if truncate {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+pq.QuoteIdentifier(table)); err != nil {
			return 0, fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return fill(tx)
}
