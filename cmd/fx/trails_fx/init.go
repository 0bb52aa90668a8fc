package trails_fx

import (
	"go.uber.org/fx"

	"hikematch/internal/services"
	"hikematch/internal/trail"
)

var Module = fx.Provide(
	provideTrailService)

func provideTrailService(c *trail.Catalog) services.TrailServiceInterface {
	return services.NewTrailService(c)
}
