package booking_fx

import (
	"go.uber.org/fx"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
)

var Module = fx.Provide(
	repositories.NewBookingRepository,
	repositories.NewReviewRepository,

	services.NewBookingService,
	services.NewReviewService,
)
