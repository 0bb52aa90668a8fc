package repositories

import (
	"context"
	"fmt"
	"os"

	"hikematch/internal/trail"
)

// TrailSource supplies the raw catalog rows once at startup.
type TrailSource interface {
	LoadRawTrails(ctx context.Context) ([]trail.RawTrailRow, error)
}

type csvTrailSource struct {
	path string
}

func NewCSVTrailSource(path string) TrailSource {
	return &csvTrailSource{path: path}
}

func (s *csvTrailSource) LoadRawTrails(ctx context.Context) ([]trail.RawTrailRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open trails csv: %w", err)
	}
	defer f.Close()

	rows, err := ReadTrailsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return rows, nil
}
