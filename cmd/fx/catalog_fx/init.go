package catalog_fx

import (
	"go.uber.org/fx"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
)

var Module = fx.Provide(
	repositories.NewHotelRepository,
	repositories.NewLocationRepository,
	repositories.NewFoodOptionRepository,
	repositories.NewGalleryRepository,
	repositories.NewPackageRepository,

	services.NewHotelService,
	services.NewLocationService,
	services.NewFoodOptionService,
	services.NewGalleryService,
	services.NewPackageService,
)
