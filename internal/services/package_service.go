package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/media"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

const slugSuffixLen = 6

type PackageServiceInterface interface {
	List(ctx context.Context, filter request_models.PackageFilter) (*resp.Paged[db_models.Package], error)
	Picker(ctx context.Context, query string) ([]resp.PickerItem, error)
	Get(ctx context.Context, id string) (*db_models.Package, error)
	Create(ctx context.Context, request request_models.PackageRequest, img *media.Image) (*db_models.Package, error)
	Update(ctx context.Context, id string, request request_models.PackageRequest, img *media.Image) (*db_models.Package, error)
	Delete(ctx context.Context, id string) error
}

type PackageService struct {
	repo         repositories.PackageRepository
	hotelRepo    repositories.HotelRepository
	foodRepo     repositories.FoodOptionRepository
	locationRepo repositories.LocationRepository
	bookingRepo  repositories.BookingRepository
	images       imageStore
	currency     string
	log          *zap.Logger
}

func NewPackageService(
	repo repositories.PackageRepository,
	hotelRepo repositories.HotelRepository,
	foodRepo repositories.FoodOptionRepository,
	locationRepo repositories.LocationRepository,
	bookingRepo repositories.BookingRepository,
	uploader media.Uploader,
	cfg *config.Config,
	log *zap.Logger,
) PackageServiceInterface {
	log = log.Named("packages")
	return &PackageService{
		repo:         repo,
		hotelRepo:    hotelRepo,
		foodRepo:     foodRepo,
		locationRepo: locationRepo,
		bookingRepo:  bookingRepo,
		images:       imageStore{uploader: uploader, log: log, folder: "packages"},
		currency:     cfg.App.Currency,
		log:          log,
	}
}

func (s *PackageService) List(ctx context.Context, filter request_models.PackageFilter) (*resp.Paged[db_models.Package], error) {
	packages, total, err := s.repo.List(ctx, repositories.ListQuery{
		Page:   filter.Page,
		Limit:  filter.Limit,
		Search: filter.Query,
		Scopes: []func(*gorm.DB) *gorm.DB{
			repositories.DestinationScope(strings.TrimSpace(filter.Destination)),
			repositories.ActiveScope(filter.Active),
			repositories.PriceRangeScope(filter.MinPrice, filter.MaxPrice),
		},
	})
	if err != nil {
		return nil, dbError(s.log, "list packages", err)
	}
	return resp.NewPaged(packages, filter.Page, filter.Limit, total), nil
}

func (s *PackageService) Picker(ctx context.Context, query string) ([]resp.PickerItem, error) {
	packages, _, err := s.repo.List(ctx, repositories.ListQuery{Page: 1, Limit: pickerLimit, Search: query})
	if err != nil {
		return nil, dbError(s.log, "package picker", err)
	}
	items := make([]resp.PickerItem, len(packages))
	for i, p := range packages {
		items[i] = resp.PickerItem{
			ID:     p.ID.String(),
			Label:  p.Title,
			Detail: fmt.Sprintf("%s · %dD/%dN", p.Destination, p.DurationDays, p.DurationNights),
		}
	}
	return items, nil
}

func (s *PackageService) Get(ctx context.Context, id string) (*db_models.Package, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	pkg, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return nil, dbError(s.log, "find package", err)
	}
	if pkg == nil {
		return nil, utils.ErrPackageNotFound
	}
	return pkg, nil
}

func (s *PackageService) Create(ctx context.Context, request request_models.PackageRequest, img *media.Image) (*db_models.Package, error) {
	pkg := &db_models.Package{}
	if err := s.apply(ctx, pkg, request); err != nil {
		return nil, err
	}
	slug, err := s.uniqueSlug(ctx, pkg.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}
	pkg.Slug = slug

	uploaded, _, err := s.images.attach(ctx, &pkg.ImageAsset, img)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, pkg); err != nil {
		s.images.rollback(ctx, uploaded)
		return nil, dbError(s.log, "create package", err)
	}
	s.log.Info("package created", zap.String("package_id", pkg.ID.String()), zap.String("slug", pkg.Slug))
	return pkg, nil
}

func (s *PackageService) Update(ctx context.Context, id string, request request_models.PackageRequest, img *media.Image) (*db_models.Package, error) {
	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldTitle := pkg.Title
	if err := s.apply(ctx, pkg, request); err != nil {
		return nil, err
	}
	if pkg.Title != oldTitle {
		if pkg.Slug, err = s.uniqueSlug(ctx, pkg.Title, pkg.ID); err != nil {
			return nil, err
		}
	}

	uploaded, previous, err := s.images.attach(ctx, &pkg.ImageAsset, img)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, pkg); err != nil {
		s.images.rollback(ctx, uploaded)
		return nil, dbError(s.log, "update package", err)
	}
	if uploaded != nil {
		s.images.destroy(ctx, previous)
	}
	return pkg, nil
}

func (s *PackageService) Delete(ctx context.Context, id string) error {
	pkg, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.bookingRepo.CountByPackage(ctx, pkg.ID)
	if err != nil {
		return dbError(s.log, "count package bookings", err)
	}
	if n > 0 {
		return fmt.Errorf("%w: %d booking(s)", utils.ErrPackageHasBookings, n)
	}
	if err := s.repo.Delete(ctx, pkg.ID); err != nil {
		return dbError(s.log, "delete package", err)
	}
	s.images.destroy(ctx, pkg.ImagePublicID)
	return nil
}

// apply copies the request onto pkg and resolves every referenced row.
func (s *PackageService) apply(ctx context.Context, pkg *db_models.Package, r request_models.PackageRequest) error {
	if err := validateItinerary(r.Itinerary, r.DurationDays); err != nil {
		return err
	}

	hotels, err := s.resolveHotels(ctx, r.HotelIDs)
	if err != nil {
		return err
	}
	foods, err := s.resolveFoodOptions(ctx, r.FoodOptionIDs)
	if err != nil {
		return err
	}
	itinerary, err := s.resolveItinerary(ctx, r.Itinerary)
	if err != nil {
		return err
	}

	pkg.Title = strings.TrimSpace(r.Title)
	pkg.Description = r.Description
	pkg.Destination = strings.TrimSpace(r.Destination)
	pkg.DurationDays = r.DurationDays
	pkg.DurationNights = r.DurationNights
	pkg.Price = r.Price
	pkg.Currency = strings.ToUpper(orDefault(r.Currency, s.currency))
	pkg.DiscountPercent = r.DiscountPercent
	pkg.MaxGroupSize = r.MaxGroupSize
	pkg.Inclusions = r.Inclusions
	pkg.Exclusions = r.Exclusions
	pkg.Active = boolOr(r.Active, true)
	pkg.Hotels = hotels
	pkg.FoodOptions = foods
	pkg.Itinerary = itinerary
	return nil
}

func validateItinerary(days []request_models.ItineraryDayRequest, duration int) error {
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if d.Day < 1 || d.Day > duration {
			return fmt.Errorf("%w: day %d is outside 1..%d", utils.ErrInvalidItinerary, d.Day, duration)
		}
		if seen[d.Day] {
			return fmt.Errorf("%w: day %d appears twice", utils.ErrInvalidItinerary, d.Day)
		}
		seen[d.Day] = true
	}
	return nil
}

func (s *PackageService) resolveHotels(ctx context.Context, raw []string) ([]db_models.Hotel, error) {
	ids, err := parseIDs(raw)
	if err != nil {
		return nil, err
	}
	hotels, err := s.hotelRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, dbError(s.log, "find hotels", err)
	}
	if len(hotels) != len(ids) {
		return nil, fmt.Errorf("%w: unknown hotel in hotel_ids", utils.ErrInvalidReference)
	}
	return hotels, nil
}

func (s *PackageService) resolveFoodOptions(ctx context.Context, raw []string) ([]db_models.FoodOption, error) {
	ids, err := parseIDs(raw)
	if err != nil {
		return nil, err
	}
	foods, err := s.foodRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, dbError(s.log, "find food options", err)
	}
	if len(foods) != len(ids) {
		return nil, fmt.Errorf("%w: unknown food option in food_option_ids", utils.ErrInvalidReference)
	}
	return foods, nil
}

func (s *PackageService) resolveItinerary(ctx context.Context, days []request_models.ItineraryDayRequest) ([]db_models.ItineraryDay, error) {
	raw := make([]string, len(days))
	for i, d := range days {
		raw[i] = d.LocationID
	}
	ids, err := parseIDs(raw)
	if err != nil {
		return nil, err
	}
	locations, err := s.locationRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, dbError(s.log, "find locations", err)
	}
	if len(locations) != len(ids) {
		return nil, fmt.Errorf("%w: unknown location in itinerary", utils.ErrInvalidReference)
	}
	byID := make(map[uuid.UUID]*db_models.Location, len(locations))
	for i := range locations {
		byID[locations[i].ID] = &locations[i]
	}

	out := make([]db_models.ItineraryDay, len(days))
	for i, d := range days {
		loc := byID[uuid.MustParse(d.LocationID)]
		out[i] = db_models.ItineraryDay{
			Day:         d.Day,
			Title:       strings.TrimSpace(d.Title),
			Description: d.Description,
			LocationID:  loc.ID,
			Location:    loc,
		}
	}
	return out, nil
}

// uniqueSlug derives a slug from title and appends a short random suffix
// while it collides with another package.
func (s *PackageService) uniqueSlug(ctx context.Context, title string, exclude uuid.UUID) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "package"
	}
	slug := base
	for attempt := 0; attempt < 5; attempt++ {
		exists, err := s.repo.SlugExists(ctx, slug, exclude)
		if err != nil {
			return "", dbError(s.log, "check slug", err)
		}
		if !exists {
			return slug, nil
		}
		slug = base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:slugSuffixLen]
	}
	return "", fmt.Errorf("%w: slug %q", utils.ErrDuplicateRecord, base)
}
