package mail_fx

import (
	"go.uber.org/fx"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
)

var Module = fx.Provide(services.NewMailService)
