package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/media"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type HotelServiceInterface interface {
	List(ctx context.Context, filter request_models.ListFilter) (*resp.Paged[db_models.Hotel], error)
	Picker(ctx context.Context, query string) ([]resp.PickerItem, error)
	Get(ctx context.Context, id string) (*db_models.Hotel, error)
	Create(ctx context.Context, request request_models.HotelRequest, img *media.Image) (*db_models.Hotel, error)
	Update(ctx context.Context, id string, request request_models.HotelRequest, img *media.Image) (*db_models.Hotel, error)
	Delete(ctx context.Context, id string) error
}

type HotelService struct {
	repo     repositories.HotelRepository
	images   imageStore
	currency string
	log      *zap.Logger
}

func NewHotelService(repo repositories.HotelRepository, uploader media.Uploader, cfg *config.Config, log *zap.Logger) HotelServiceInterface {
	log = log.Named("hotels")
	return &HotelService{
		repo:     repo,
		images:   imageStore{uploader: uploader, log: log, folder: "hotels"},
		currency: cfg.App.Currency,
		log:      log,
	}
}

func (s *HotelService) List(ctx context.Context, filter request_models.ListFilter) (*resp.Paged[db_models.Hotel], error) {
	hotels, total, err := s.repo.List(ctx, repositories.ListQuery{
		Page:   filter.Page,
		Limit:  filter.Limit,
		Search: filter.Query,
	})
	if err != nil {
		return nil, dbError(s.log, "list hotels", err)
	}
	return resp.NewPaged(hotels, filter.Page, filter.Limit, total), nil
}

func (s *HotelService) Picker(ctx context.Context, query string) ([]resp.PickerItem, error) {
	hotels, _, err := s.repo.List(ctx, repositories.ListQuery{Page: 1, Limit: pickerLimit, Search: query})
	if err != nil {
		return nil, dbError(s.log, "hotel picker", err)
	}
	items := make([]resp.PickerItem, len(hotels))
	for i, h := range hotels {
		items[i] = resp.PickerItem{ID: h.ID.String(), Label: h.Name, Detail: joinNonEmpty(", ", h.City, h.Country)}
	}
	return items, nil
}

func (s *HotelService) Get(ctx context.Context, id string) (*db_models.Hotel, error) {
	hid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	hotel, err := s.repo.FindByID(ctx, hid)
	if err != nil {
		return nil, dbError(s.log, "find hotel", err)
	}
	if hotel == nil {
		return nil, utils.ErrHotelNotFound
	}
	return hotel, nil
}

func (s *HotelService) Create(ctx context.Context, request request_models.HotelRequest, img *media.Image) (*db_models.Hotel, error) {
	hotel := &db_models.Hotel{}
	s.apply(hotel, request)

	uploaded, _, err := s.images.attach(ctx, &hotel.ImageAsset, img)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, hotel); err != nil {
		s.images.rollback(ctx, uploaded)
		return nil, dbError(s.log, "create hotel", err)
	}
	return hotel, nil
}

func (s *HotelService) Update(ctx context.Context, id string, request request_models.HotelRequest, img *media.Image) (*db_models.Hotel, error) {
	hotel, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.apply(hotel, request)

	uploaded, previous, err := s.images.attach(ctx, &hotel.ImageAsset, img)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, hotel); err != nil {
		s.images.rollback(ctx, uploaded)
		return nil, dbError(s.log, "update hotel", err)
	}
	if uploaded != nil {
		s.images.destroy(ctx, previous)
	}
	return hotel, nil
}

func (s *HotelService) Delete(ctx context.Context, id string) error {
	hotel, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, hotel.ID); err != nil {
		return dbError(s.log, "delete hotel", err)
	}
	s.images.destroy(ctx, hotel.ImagePublicID)
	return nil
}

func (s *HotelService) apply(hotel *db_models.Hotel, r request_models.HotelRequest) {
	hotel.Name = strings.TrimSpace(r.Name)
	hotel.City = strings.TrimSpace(r.City)
	hotel.Country = strings.TrimSpace(r.Country)
	hotel.Address = r.Address
	hotel.Description = r.Description
	hotel.StarRating = r.StarRating
	hotel.PricePerNight = r.PricePerNight
	hotel.Currency = strings.ToUpper(orDefault(r.Currency, s.currency))
	hotel.Amenities = r.Amenities
	hotel.ContactPhone = r.ContactPhone
	hotel.ContactEmail = r.ContactEmail
	hotel.Active = boolOr(r.Active, true)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
