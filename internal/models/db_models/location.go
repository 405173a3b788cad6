package db_models

import "github.com/lib/pq"

// Location is an itinerary stop a package day can point at.
type Location struct {
	BaseModel
	Name            string         `gorm:"size:200;not null;index" json:"name"`
	City            string         `gorm:"size:120;index" json:"city"`
	Country         string         `gorm:"size:120" json:"country"`
	Description     string         `gorm:"type:text" json:"description"`
	Highlights      pq.StringArray `gorm:"type:text[]" json:"highlights"`
	BestTimeToVisit string         `gorm:"size:120" json:"best_time_to_visit,omitempty"`
	ImageAsset
}
