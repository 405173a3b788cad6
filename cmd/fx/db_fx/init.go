package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/infra"
)

var Module = fx.Provide(
	provideDB,
	infra.NewQueryBuilder,
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.Database.AutoMigrate {
				return nil
			}
			log.Info("running auto migration")
			return infra.AutoMigrate(ctx, db)
		},
		OnStop: func(context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}
