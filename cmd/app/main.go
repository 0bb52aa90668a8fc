package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"hikematch/cmd/fx/catalog_fx"
	"hikematch/cmd/fx/config_fx"
	"hikematch/cmd/fx/controllers_fx"
	"hikematch/cmd/fx/db_fx"
	"hikematch/cmd/fx/memcache_fx"
	"hikematch/cmd/fx/recommend_fx"
	"hikematch/cmd/fx/survey_fx"
	"hikematch/cmd/fx/trails_fx"
	"hikematch/internal/api"
	"hikematch/internal/api/controllers"
	"hikematch/internal/config"
	"hikematch/pkg/logger"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Zap()}
		}),
		db_fx.Module,
		catalog_fx.Module,
		memcache_fx.Module,
		trails_fx.Module,
		survey_fx.Module,
		recommend_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", "addr", srv.Addr)
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *logger.Logger,
	healthController *controllers.HealthController,
	surveyController *controllers.SurveyController,
	trailController *controllers.TrailController,
	recommendationController *controllers.RecommendationController) *gin.Engine {

	gin.SetMode(cfg.GinMode)
	return api.NewRouter(log, cfg.CORSOrigins,
		healthController, surveyController, trailController, recommendationController)
}
