package db_models

import "github.com/google/uuid"

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

type Review struct {
	BaseModel
	PackageID uuid.UUID  `gorm:"type:uuid;not null;index" json:"package_id"`
	Package   *Package   `json:"package,omitempty"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User      `json:"user,omitempty"`
	BookingID *uuid.UUID `gorm:"type:uuid;index" json:"booking_id,omitempty"`
	Rating    int        `gorm:"not null;index" json:"rating"`
	Title     string     `gorm:"size:200" json:"title"`
	Comment   string     `gorm:"type:text" json:"comment"`
	Status    string     `gorm:"size:20;not null;index" json:"status"`
}
