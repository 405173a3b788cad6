package db_models

import "github.com/lib/pq"

type Hotel struct {
	BaseModel
	Name          string         `gorm:"size:200;not null;index" json:"name"`
	City          string         `gorm:"size:120;index" json:"city"`
	Country       string         `gorm:"size:120" json:"country"`
	Address       string         `gorm:"size:500" json:"address"`
	Description   string         `gorm:"type:text" json:"description"`
	StarRating    int            `gorm:"not null" json:"star_rating"`
	PricePerNight int64          `gorm:"not null" json:"price_per_night"`
	Currency      string         `gorm:"size:3;not null" json:"currency"`
	Amenities     pq.StringArray `gorm:"type:text[]" json:"amenities"`
	ContactPhone  string         `gorm:"size:30" json:"contact_phone,omitempty"`
	ContactEmail  string         `gorm:"size:255" json:"contact_email,omitempty"`
	ImageAsset
	Active bool `gorm:"not null;index" json:"active"`
}
