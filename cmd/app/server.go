package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"beveragebuddy/cmd/fx/category_fx"
	"beveragebuddy/cmd/fx/controllers_fx"
	"beveragebuddy/cmd/fx/db_fx"
	"beveragebuddy/cmd/fx/review_fx"
	"beveragebuddy/cmd/fx/toast_fx"
	"beveragebuddy/internal/api"
	"beveragebuddy/internal/config"
	"beveragebuddy/pkg/logutils"
)

func newServer(cfg *config.Config) *fx.App {
	return fx.New(serverOptions(cfg))
}

func serverOptions(cfg *config.Config) fx.Option {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	return fx.Options(
		fx.Supply(cfg),
		fx.WithLogger(func() fxevent.Logger {
			return &logutils.FxLogger{Logger: log.With().Str("component", "fx").Logger()}
		}),

		db_fx.Module,
		category_fx.Module,
		review_fx.Module,
		toast_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("HTTP server stopped")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
