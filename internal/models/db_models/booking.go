package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

type Booking struct {
	BaseModel
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User             *User          `json:"user,omitempty"`
	PackageID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"package_id"`
	Package          *Package       `json:"package,omitempty"`
	TravelDate       time.Time      `gorm:"type:date;not null;index" json:"travel_date"`
	Travelers        int            `gorm:"not null" json:"travelers"`
	TotalAmount      int64          `gorm:"not null" json:"total_amount"`
	Currency         string         `gorm:"size:3;not null" json:"currency"`
	Status           string         `gorm:"size:20;not null;index" json:"status"`
	PaymentStatus    string         `gorm:"size:20;not null;index" json:"payment_status"`
	PaymentMethod    string         `gorm:"size:40" json:"payment_method,omitempty"`
	PaymentReference string         `gorm:"size:120" json:"payment_reference,omitempty"`
	PaidAt           *int64         `gorm:"index" json:"paid_at,omitempty"`
	ContactName      string         `gorm:"size:120" json:"contact_name"`
	ContactEmail     string         `gorm:"size:255" json:"contact_email"`
	ContactPhone     string         `gorm:"size:30" json:"contact_phone,omitempty"`
	SpecialRequests  string         `gorm:"type:text" json:"special_requests,omitempty"`
	PaymentMeta      datatypes.JSON `gorm:"type:jsonb" json:"payment_meta,omitempty"`
}
