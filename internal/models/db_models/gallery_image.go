package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type GalleryImage struct {
	BaseModel
	Title        string         `gorm:"size:200;not null" json:"title"`
	Caption      string         `gorm:"size:500" json:"caption,omitempty"`
	Category     string         `gorm:"size:80;index" json:"category"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	ImageAsset
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Format       string     `gorm:"size:20" json:"format"`
	Bytes        int        `json:"bytes"`
	UploadedByID *uuid.UUID `gorm:"type:uuid;index" json:"uploaded_by_id,omitempty"`
}
