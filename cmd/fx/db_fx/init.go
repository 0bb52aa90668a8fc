package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"hikematch/internal/config"
	"hikematch/internal/infra"
	"hikematch/pkg/logger"
)

var Module = fx.Provide(
	provideDB)

// provideDB returns a nil *gorm.DB when neither the catalog nor survey
// recording needs Postgres.
func provideDB(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	if !cfg.UsesDatabase() {
		return nil, nil
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}
