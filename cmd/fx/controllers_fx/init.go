package controllers_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/api/controllers"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/infra"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewHotelController),
	fx.Provide(controllers.NewLocationController),
	fx.Provide(controllers.NewFoodOptionController),
	fx.Provide(controllers.NewPackageController),
	fx.Provide(controllers.NewGalleryController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(provideHealthController),
)

func provideHealthController(db *gorm.DB) *controllers.HealthController {
	return controllers.NewHealthController(func(ctx context.Context) error {
		return infra.Ping(ctx, db)
	})
}
