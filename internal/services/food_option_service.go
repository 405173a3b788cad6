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

type FoodOptionServiceInterface interface {
	List(ctx context.Context, filter request_models.ListFilter) (*resp.Paged[db_models.FoodOption], error)
	Picker(ctx context.Context, query string) ([]resp.PickerItem, error)
	Get(ctx context.Context, id string) (*db_models.FoodOption, error)
	Create(ctx context.Context, request request_models.FoodOptionRequest, img *media.Image) (*db_models.FoodOption, error)
	Update(ctx context.Context, id string, request request_models.FoodOptionRequest, img *media.Image) (*db_models.FoodOption, error)
	Delete(ctx context.Context, id string) error
}

type FoodOptionService struct {
	repo   repositories.FoodOptionRepository
	images imageStore
	log    *zap.Logger
}

func NewFoodOptionService(repo repositories.FoodOptionRepository, uploader media.Uploader, log *zap.Logger) FoodOptionServiceInterface {
	log = log.Named("food_options")
	return &FoodOptionService{
		repo:   repo,
		images: imageStore{uploader: uploader, log: log, folder: "food-options"},
		log:    log,
	}
}

func (s *FoodOptionService) List(ctx context.Context, filter request_models.ListFilter) (*resp.Paged[db_models.FoodOption], error) {
	options, total, err := s.repo.List(ctx, repositories.ListQuery{
		Page:   filter.Page,
		Limit:  filter.Limit,
		Search: filter.Query,
	})
	if err != nil {
		return nil, dbError(s.log, "list food options", err)
	}
	return resp.NewPaged(options, filter.Page, filter.Limit, total), nil
}

func (s *FoodOptionService) Picker(ctx context.Context, query string) ([]resp.PickerItem, error) {
	options, _, err := s.repo.List(ctx, repositories.ListQuery{Page: 1, Limit: pickerLimit, Search: query})
	if err != nil {
		return nil, dbError(s.log, "food option picker", err)
	}
	items := make([]resp.PickerItem, len(options))
	for i, f := range options {
		items[i] = resp.PickerItem{ID: f.ID.String(), Label: f.Name, Detail: joinNonEmpty(" · ", f.Cuisine, f.MealType)}
	}
	return items, nil
}

func (s *FoodOptionService) Get(ctx context.Context, id string) (*db_models.FoodOption, error) {
	fid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	option, err := s.repo.FindByID(ctx, fid)
	if err != nil {
		return nil, dbError(s.log, "find food option", err)
	}
	if option == nil {
		return nil, utils.ErrFoodOptionNotFound
	}
	return option, nil
}

func (s *FoodOptionService) Create(ctx context.Context, request request_models.FoodOptionRequest, img *media.Image) (*db_models.FoodOption, error) {
	option := &db_models.FoodOption{}
	applyFoodOption(option, request)

	uploaded, _, err := s.images.attach(ctx, &option.ImageAsset, img)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, option); err != nil {
		s.images.rollback(ctx, uploaded)
		return nil, dbError(s.log, "create food option", err)
	}
	return option, nil
}

func (s *FoodOptionService) Update(ctx context.Context, id string, request request_models.FoodOptionRequest, img *media.Image) (*db_models.FoodOption, error) {
	option, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyFoodOption(option, request)

	uploaded, previous, err := s.images.attach(ctx, &option.ImageAsset, img)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, option); err != nil {
		s.images.rollback(ctx, uploaded)
		return nil, dbError(s.log, "update food option", err)
	}
	if uploaded != nil {
		s.images.destroy(ctx, previous)
	}
	return option, nil
}

func (s *FoodOptionService) Delete(ctx context.Context, id string) error {
	option, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, option.ID); err != nil {
		return dbError(s.log, "delete food option", err)
	}
	s.images.destroy(ctx, option.ImagePublicID)
	return nil
}

func applyFoodOption(option *db_models.FoodOption, r request_models.FoodOptionRequest) {
	option.Name = strings.TrimSpace(r.Name)
	option.Cuisine = strings.TrimSpace(r.Cuisine)
	option.MealType = r.MealType
	option.Vegetarian = r.Vegetarian
	option.Description = r.Description
	option.Price = r.Price
}
