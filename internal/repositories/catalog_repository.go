package repositories

import (
	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
)

type HotelRepository interface {
	CrudRepository[db_models.Hotel]
}

type LocationRepository interface {
	CrudRepository[db_models.Location]
}

type FoodOptionRepository interface {
	CrudRepository[db_models.FoodOption]
}

type GalleryRepository interface {
	CrudRepository[db_models.GalleryImage]
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return newCrudRepository[db_models.Hotel](db, "created_at DESC, id DESC", "name", "city", "country")
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return newCrudRepository[db_models.Location](db, "created_at DESC, id DESC", "name", "city", "country")
}

func NewFoodOptionRepository(db *gorm.DB) FoodOptionRepository {
	return newCrudRepository[db_models.FoodOption](db, "created_at DESC, id DESC", "name", "cuisine", "meal_type")
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return newCrudRepository[db_models.GalleryImage](db, "created_at DESC, id DESC", "title", "caption", "category")
}

// CategoryScope filters gallery images by exact category.
func CategoryScope(category string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if category == "" {
			return db
		}
		return db.Where("category = ?", category)
	}
}
