package services

import (
	"context"
	"fmt"

	"hikematch/internal/repositories"
	"hikematch/internal/trail"
	"hikematch/pkg/logger"
)

// LoadCatalog reads the raw rows from src and preprocesses them once. With
// skipMalformed set, rows that cannot be coerced are logged and dropped
// instead of failing the load. A table-backed source also reports its row
// count so a partial read shows up in the log.
func LoadCatalog(ctx context.Context, src repositories.TrailSource, skipMalformed bool, log *logger.Logger) (*trail.Catalog, error) {
	if repo, ok := src.(repositories.TrailRepository); ok {
		n, err := repo.CountTrails(ctx)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			log.Warn("trails table is empty")
		}
		log.Info("trails table counted", "rows", n)
	}

	rows, err := src.LoadRawTrails(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trails: %w", err)
	}

	if !skipMalformed {
		c, err := trail.Preprocess(rows)
		if err != nil {
			return nil, fmt.Errorf("preprocess trails: %w", err)
		}
		log.Info("trail catalog loaded", "trails", c.Len())
		return c, nil
	}

	c, skipped := trail.PreprocessLenient(rows)
	for _, e := range skipped {
		log.Warn("skipping malformed trail", "error", e)
	}
	log.Info("trail catalog loaded", "trails", c.Len(), "skipped", len(skipped))
	return c, nil
}
