package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/media"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type LocationServiceInterface interface {
	List(ctx context.Context, filter request_models.ListFilter) (*resp.Paged[db_models.Location], error)
	Picker(ctx context.Context, query string) ([]resp.PickerItem, error)
	Get(ctx context.Context, id string) (*db_models.Location, error)
	Create(ctx context.Context, request request_models.LocationRequest, img *media.Image) (*db_models.Location, error)
	Update(ctx context.Context, id string, request request_models.LocationRequest, img *media.Image) (*db_models.Location, error)
	Delete(ctx context.Context, id string) error
}

type LocationService struct {
	repo   repositories.LocationRepository
	images imageStore
	log    *zap.Logger
}

func NewLocationService(repo repositories.LocationRepository, uploader media.Uploader, log *zap.Logger) LocationServiceInterface {
	log = log.Named("locations")
	return &LocationService{
		repo:   repo,
		images: imageStore{uploader: uploader, log: log, folder: "locations"},
		log:    log,
	}
}

func (s *LocationService) List(ctx context.Context, filter request_models.ListFilter) (*resp.Paged[db_models.Location], error) {
	locations, total, err := s.repo.List(ctx, repositories.ListQuery{
		Page:   filter.Page,
		Limit:  filter.Limit,
		Search: filter.Query,
	})
	if err != nil {
		return nil, dbError(s.log, "list locations", err)
	}
	return resp.NewPaged(locations, filter.Page, filter.Limit, total), nil
}

func (s *LocationService) Picker(ctx context.Context, query string) ([]resp.PickerItem, error) {
	locations, _, err := s.repo.List(ctx, repositories.ListQuery{Page: 1, Limit: pickerLimit, Search: query})
	if err != nil {
		return nil, dbError(s.log, "location picker", err)
	}
	items := make([]resp.PickerItem, len(locations))
	for i, l := range locations {
		items[i] = resp.PickerItem{ID: l.ID.String(), Label: l.Name, Detail: joinNonEmpty(", ", l.City, l.Country)}
	}
	return items, nil
}

func (s *LocationService) Get(ctx context.Context, id string) (*db_models.Location, error) {
	lid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	location, err := s.repo.FindByID(ctx, lid)
	if err != nil {
		return nil, dbError(s.log, "find location", err)
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}
	return location, nil
}

func (s *LocationService) Create(ctx context.Context, request request_models.LocationRequest, img *media.Image) (*db_models.Location, error) {
	location := &db_models.Location{}
	applyLocation(location, request)

	uploaded, _, err := s.images.attach(ctx, &location.ImageAsset, img)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, location); err != nil {
		s.images.rollback(ctx, uploaded)
		return nil, dbError(s.log, "create location", err)
	}
	return location, nil
}

func (s *LocationService) Update(ctx context.Context, id string, request request_models.LocationRequest, img *media.Image) (*db_models.Location, error) {
	location, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyLocation(location, request)

	uploaded, previous, err := s.images.attach(ctx, &location.ImageAsset, img)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, location); err != nil {
		s.images.rollback(ctx, uploaded)
		return nil, dbError(s.log, "update location", err)
	}
	if uploaded != nil {
		s.images.destroy(ctx, previous)
	}
	return location, nil
}

// Delete keeps itinerary days that point at the location intact; they are
// soft references and the location row is only soft deleted.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	location, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, location.ID); err != nil {
		return dbError(s.log, "delete location", err)
	}
	s.images.destroy(ctx, location.ImagePublicID)
	return nil
}

func applyLocation(location *db_models.Location, r request_models.LocationRequest) {
	location.Name = strings.TrimSpace(r.Name)
	location.City = strings.TrimSpace(r.City)
	location.Country = strings.TrimSpace(r.Country)
	location.Description = r.Description
	location.Highlights = r.Highlights
	location.BestTimeToVisit = r.BestTimeToVisit
}
