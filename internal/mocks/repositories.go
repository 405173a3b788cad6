// Package mocks holds testify mocks of the repository, media and mail
// interfaces shared by the service and controller tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
)

type CrudRepo[T any] struct {
	mock.Mock
}

func (m *CrudRepo[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *CrudRepo[T]) Update(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *CrudRepo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CrudRepo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *CrudRepo[T]) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *CrudRepo[T]) List(ctx context.Context, q repositories.ListQuery) ([]T, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]T), args.Get(1).(int64), args.Error(2)
}

type (
	HotelRepo      = CrudRepo[db_models.Hotel]
	LocationRepo   = CrudRepo[db_models.Location]
	FoodOptionRepo = CrudRepo[db_models.FoodOption]
	GalleryRepo    = CrudRepo[db_models.GalleryImage]
)

type UserRepo struct {
	CrudRepo[db_models.User]
}

func (m *UserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

type PackageRepo struct {
	CrudRepo[db_models.Package]
}

func (m *PackageRepo) SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, exclude)
	return args.Bool(0), args.Error(1)
}

type BookingRepo struct {
	CrudRepo[db_models.Booking]
}

func (m *BookingRepo) CountByPackage(ctx context.Context, packageID uuid.UUID) (int64, error) {
	args := m.Called(ctx, packageID)
	return args.Get(0).(int64), args.Error(1)
}

type ReviewRepo struct {
	CrudRepo[db_models.Review]
}

func (m *ReviewRepo) Search(ctx context.Context, c repositories.ReviewCriteria) (*repositories.ReviewSearchResult, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.ReviewSearchResult), args.Error(1)
}

type ReportRepo struct {
	mock.Mock
}

func (m *ReportRepo) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepo) CountHotels(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepo) CountLocations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepo) CountFoodOptions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepo) CountGalleryImages(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepo) CountPackages(ctx context.Context, activeOnly bool) (int64, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepo) BookingStatusBreakdown(ctx context.Context) ([]repositories.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.StatusCount), args.Error(1)
}

func (m *ReportRepo) ReviewStats(ctx context.Context) (int64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

func (m *ReportRepo) PaidRevenue(ctx context.Context, start, end int64) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepo) MonthlyRevenue(ctx context.Context, start, end int64, tz string) ([]repositories.MonthBucket, error) {
	args := m.Called(ctx, start, end, tz)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.MonthBucket), args.Error(1)
}

func (m *ReportRepo) TopPackages(ctx context.Context, limit int) ([]resp.TopPackage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]resp.TopPackage), args.Error(1)
}

func (m *ReportRepo) RecentBookings(ctx context.Context, limit int) ([]db_models.Booking, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Booking), args.Error(1)
}

func (m *ReportRepo) RecentReviews(ctx context.Context, limit int) ([]db_models.Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Review), args.Error(1)
}

func (m *ReportRepo) RecentUsers(ctx context.Context, limit int) ([]db_models.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.User), args.Error(1)
}
