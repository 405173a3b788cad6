package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/media"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type GalleryServiceInterface interface {
	List(ctx context.Context, filter request_models.GalleryFilter) (*resp.Paged[db_models.GalleryImage], error)
	Picker(ctx context.Context, query string) ([]resp.PickerItem, error)
	Get(ctx context.Context, id string) (*db_models.GalleryImage, error)
	Create(ctx context.Context, uploaderID string, request request_models.GalleryImageRequest, img *media.Image) (*db_models.GalleryImage, error)
	Update(ctx context.Context, id string, request request_models.GalleryImageRequest, img *media.Image) (*db_models.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type GalleryService struct {
	repo   repositories.GalleryRepository
	images imageStore
	log    *zap.Logger
}

func NewGalleryService(repo repositories.GalleryRepository, uploader media.Uploader, log *zap.Logger) GalleryServiceInterface {
	log = log.Named("gallery")
	return &GalleryService{
		repo:   repo,
		images: imageStore{uploader: uploader, log: log, folder: "gallery"},
		log:    log,
	}
}

func (s *GalleryService) List(ctx context.Context, filter request_models.GalleryFilter) (*resp.Paged[db_models.GalleryImage], error) {
	images, total, err := s.repo.List(ctx, repositories.ListQuery{
		Page:   filter.Page,
		Limit:  filter.Limit,
		Search: filter.Query,
		Scopes: []func(*gorm.DB) *gorm.DB{repositories.CategoryScope(strings.TrimSpace(filter.Category))},
	})
	if err != nil {
		return nil, dbError(s.log, "list gallery images", err)
	}
	return resp.NewPaged(images, filter.Page, filter.Limit, total), nil
}

func (s *GalleryService) Picker(ctx context.Context, query string) ([]resp.PickerItem, error) {
	images, _, err := s.repo.List(ctx, repositories.ListQuery{Page: 1, Limit: pickerLimit, Search: query})
	if err != nil {
		return nil, dbError(s.log, "gallery picker", err)
	}
	items := make([]resp.PickerItem, len(images))
	for i, g := range images {
		items[i] = resp.PickerItem{ID: g.ID.String(), Label: g.Title, Detail: g.ImageURL}
	}
	return items, nil
}

func (s *GalleryService) Get(ctx context.Context, id string) (*db_models.GalleryImage, error) {
	gid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	image, err := s.repo.FindByID(ctx, gid)
	if err != nil {
		return nil, dbError(s.log, "find gallery image", err)
	}
	if image == nil {
		return nil, utils.ErrImageNotFound
	}
	return image, nil
}

func (s *GalleryService) Create(ctx context.Context, uploaderID string, request request_models.GalleryImageRequest, img *media.Image) (*db_models.GalleryImage, error) {
	if img == nil {
		return nil, utils.ErrImageRequired
	}
	image := &db_models.GalleryImage{}
	applyGallery(image, request)
	if id, err := uuid.Parse(uploaderID); err == nil {
		image.UploadedByID = &id
	}

	uploaded, _, err := s.images.attach(ctx, &image.ImageAsset, img)
	if err != nil {
		return nil, err
	}
	setDimensions(image, uploaded)
	if err := s.repo.Create(ctx, image); err != nil {
		s.images.rollback(ctx, uploaded)
		return nil, dbError(s.log, "create gallery image", err)
	}
	return image, nil
}

func (s *GalleryService) Update(ctx context.Context, id string, request request_models.GalleryImageRequest, img *media.Image) (*db_models.GalleryImage, error) {
	image, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyGallery(image, request)

	uploaded, previous, err := s.images.attach(ctx, &image.ImageAsset, img)
	if err != nil {
		return nil, err
	}
	if uploaded != nil {
		setDimensions(image, uploaded)
	}
	if err := s.repo.Update(ctx, image); err != nil {
		s.images.rollback(ctx, uploaded)
		return nil, dbError(s.log, "update gallery image", err)
	}
	if uploaded != nil {
		s.images.destroy(ctx, previous)
	}
	return image, nil
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	image, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, image.ID); err != nil {
		return dbError(s.log, "delete gallery image", err)
	}
	s.images.destroy(ctx, image.ImagePublicID)
	return nil
}

func applyGallery(image *db_models.GalleryImage, r request_models.GalleryImageRequest) {
	image.Title = strings.TrimSpace(r.Title)
	image.Caption = r.Caption
	image.Category = strings.ToLower(strings.TrimSpace(r.Category))
	image.Tags = r.Tags
}

func setDimensions(image *db_models.GalleryImage, u *media.UploadedImage) {
	image.Width = u.Width
	image.Height = u.Height
	image.Format = u.Format
	image.Bytes = u.Bytes
}
