package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type BookingRepository interface {
	CrudRepository[db_models.Booking]
	CountByPackage(ctx context.Context, packageID uuid.UUID) (int64, error)
}

type bookingRepository struct {
	*crudRepository[db_models.Booking]
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	repo := newCrudRepository[db_models.Booking](db, "bookings.created_at DESC, bookings.id DESC").
		withPreloads("User", "Package")
	return &bookingRepository{crudRepository: repo}
}

func (r *bookingRepository) CountByPackage(ctx context.Context, packageID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("package_id = ?", packageID).
		Count(&n).Error
	return n, err
}

// BookingSearchScope matches contact details, payment reference, the booking
// user and the package title.
func BookingSearchScope(q string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q == "" {
			return db
		}
		pattern := "%" + utils.EscapeLike(q) + "%"
		return db.Where(`(bookings.contact_name ILIKE ? OR bookings.contact_email ILIKE ? OR bookings.payment_reference ILIKE ?
			OR bookings.user_id IN (SELECT id FROM users WHERE name ILIKE ? OR email ILIKE ?)
			OR bookings.package_id IN (SELECT id FROM packages WHERE title ILIKE ?))`,
			pattern, pattern, pattern, pattern, pattern, pattern)
	}
}

type BookingCriteria struct {
	Status        string
	PaymentStatus string
	PackageID     *uuid.UUID
	UserID        *uuid.UUID
	From          *time.Time
	To            *time.Time
}

func BookingFilterScope(c BookingCriteria) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if c.Status != "" {
			db = db.Where("bookings.status = ?", c.Status)
		}
		if c.PaymentStatus != "" {
			db = db.Where("bookings.payment_status = ?", c.PaymentStatus)
		}
		if c.PackageID != nil {
			db = db.Where("bookings.package_id = ?", *c.PackageID)
		}
		if c.UserID != nil {
			db = db.Where("bookings.user_id = ?", *c.UserID)
		}
		if c.From != nil {
			db = db.Where("bookings.travel_date >= ?", *c.From)
		}
		if c.To != nil {
			db = db.Where("bookings.travel_date <= ?", *c.To)
		}
		return db
	}
}
