package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"time"
)

type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt int64          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// ImageAsset is embedded by every record that carries a hosted image.
type ImageAsset struct {
	ImageURL      string `gorm:"size:512" json:"image_url"`
	ImagePublicID string `gorm:"size:255" json:"image_public_id,omitempty"`
}

// AllModels lists every table, in dependency order, for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Hotel{},
		&Location{},
		&FoodOption{},
		&Package{},
		&ItineraryDay{},
		&Booking{},
		&Review{},
		&GalleryImage{},
	}
}
