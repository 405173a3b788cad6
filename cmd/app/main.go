package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/cmd/fx/account_fx"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/cmd/fx/booking_fx"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/cmd/fx/catalog_fx"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/cmd/fx/config_fx"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/cmd/fx/controllers_fx"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/cmd/fx/dashboard"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/cmd/fx/db_fx"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/cmd/fx/mail_fx"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/cmd/fx/media_fx"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/cmd/fx/memcache_fx"
	_ "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/docs"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/api/routes"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
)

// @title Musafir Admin API
// @version 1.0
// @description Admin API for the Musafir travel portal.
// @BasePath /api/admin
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name musafir_admin_session
func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		media_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		booking_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Provide(routes.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
