package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Package struct {
	BaseModel
	Title           string         `gorm:"size:200;not null" json:"title"`
	Slug            string         `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Description     string         `gorm:"type:text" json:"description"`
	Destination     string         `gorm:"size:200;index" json:"destination"`
	DurationDays    int            `gorm:"not null" json:"duration_days"`
	DurationNights  int            `gorm:"not null" json:"duration_nights"`
	Price           int64          `gorm:"not null" json:"price"`
	Currency        string         `gorm:"size:3;not null" json:"currency"`
	DiscountPercent int            `gorm:"not null" json:"discount_percent"`
	MaxGroupSize    int            `gorm:"not null" json:"max_group_size"`
	Inclusions      pq.StringArray `gorm:"type:text[]" json:"inclusions"`
	Exclusions      pq.StringArray `gorm:"type:text[]" json:"exclusions"`
	ImageAsset
	Active bool `gorm:"not null;index" json:"active"`

	Hotels      []Hotel        `gorm:"many2many:package_hotels;" json:"hotels,omitempty"`
	FoodOptions []FoodOption   `gorm:"many2many:package_food_options;" json:"food_options,omitempty"`
	Itinerary   []ItineraryDay `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"itinerary,omitempty"`
}

// DiscountedPrice is the per-traveler price after the package discount.
func (p *Package) DiscountedPrice() int64 {
	return p.Price * int64(100-p.DiscountPercent) / 100
}

type ItineraryDay struct {
	BaseModel
	PackageID   uuid.UUID `gorm:"type:uuid;not null;index" json:"package_id"`
	Day         int       `gorm:"not null" json:"day"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	LocationID  uuid.UUID `gorm:"type:uuid;not null;index" json:"location_id"`
	Location    *Location `json:"location,omitempty"`
}
