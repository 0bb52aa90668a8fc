package catalog_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"hikematch/internal/config"
	"hikematch/internal/recommender"
	"hikematch/internal/repositories"
	"hikematch/internal/services"
	"hikematch/internal/trail"
	"hikematch/pkg/logger"
)

var Module = fx.Provide(
	provideTrailSource, provideCatalog, provideRecommender)

func provideTrailSource(cfg *config.Config, db *gorm.DB) repositories.TrailSource {
	if cfg.CatalogSource == config.SourcePostgres {
		return repositories.NewTrailRepository(db)
	}
	return repositories.NewCSVTrailSource(cfg.TrailsCSV)
}

// provideCatalog loads the catalog once at startup; the server does not
// start without one.
func provideCatalog(cfg *config.Config, src repositories.TrailSource, log *logger.Logger) (*trail.Catalog, error) {
	return services.LoadCatalog(context.Background(), src, cfg.CatalogSkipMalformed, log.With("source", cfg.CatalogSource))
}

func provideRecommender(c *trail.Catalog) *recommender.Recommender {
	return recommender.New(c)
}
