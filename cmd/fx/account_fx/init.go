package account_fx

import (
	"go.uber.org/fx"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

var Module = fx.Provide(
	repositories.NewUserRepository,
	provideJWTManager,
	services.NewAccountService,
	services.NewUserService,
)

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}
