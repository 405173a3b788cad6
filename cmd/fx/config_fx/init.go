package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/logger"
)

const serviceName = "musafir-admin"

var Module = fx.Provide(config.Load, provideLogger)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.App.Env, serviceName)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}
