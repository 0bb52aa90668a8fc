package memcache_fx

import (
	"context"

	"go.uber.org/fx"

	"hikematch/internal/config"
	"hikematch/pkg/logger"
	mem "hikematch/pkg/memcache"
)

var Module = fx.Provide(provideResultStore)

func provideResultStore(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (mem.ResultStore, error) {
	if cfg.RedisAddr == "" {
		log.Info("using in-memory result store")
		return mem.NewInMemoryResults(), nil
	}

	store, err := mem.NewRedisResults(context.Background(), cfg.RedisAddr, "hikematch:")
	if err != nil {
		return nil, err
	}
	log.Info("using redis result store", "addr", cfg.RedisAddr)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}
