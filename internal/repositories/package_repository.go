package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type PackageRepository interface {
	CrudRepository[db_models.Package]
	SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)
}

type packageRepository struct {
	*crudRepository[db_models.Package]
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{
		crudRepository: newCrudRepository[db_models.Package](db, "created_at DESC, id DESC", "title", "destination", "slug"),
	}
}

// Create stores the package and its hotel, food option and itinerary links
// in one transaction. The referenced rows must already exist.
func (r *packageRepository) Create(ctx context.Context, pkg *db_models.Package) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(pkg).Error; err != nil {
			return err
		}
		return replaceRelations(tx, pkg)
	})
}

func (r *packageRepository) Update(ctx context.Context, pkg *db_models.Package) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(pkg).Error; err != nil {
			return err
		}
		return replaceRelations(tx, pkg)
	})
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Package, error) {
	var pkg db_models.Package
	err := r.db.WithContext(ctx).
		Preload("Hotels").
		Preload("FoodOptions").
		Preload("Itinerary", func(db *gorm.DB) *gorm.DB { return db.Order("day ASC") }).
		Preload("Itinerary.Location").
		First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

// SlugExists checks soft deleted packages too, the unique index covers them.
func (r *packageRepository) SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Unscoped().
		Model(&db_models.Package{}).
		Where("slug = ? AND id <> ?", slug, exclude).
		Count(&n).Error
	return n > 0, err
}

func replaceRelations(tx *gorm.DB, pkg *db_models.Package) error {
	if err := tx.Exec("DELETE FROM package_hotels WHERE package_id = ?", pkg.ID).Error; err != nil {
		return err
	}
	if rows := joinRows(pkg.ID, "hotel_id", hotelIDs(pkg.Hotels)); len(rows) > 0 {
		if err := tx.Table("package_hotels").Create(&rows).Error; err != nil {
			return err
		}
	}

	if err := tx.Exec("DELETE FROM package_food_options WHERE package_id = ?", pkg.ID).Error; err != nil {
		return err
	}
	if rows := joinRows(pkg.ID, "food_option_id", foodOptionIDs(pkg.FoodOptions)); len(rows) > 0 {
		if err := tx.Table("package_food_options").Create(&rows).Error; err != nil {
			return err
		}
	}

	if err := tx.Unscoped().Where("package_id = ?", pkg.ID).Delete(&db_models.ItineraryDay{}).Error; err != nil {
		return err
	}
	for i := range pkg.Itinerary {
		pkg.Itinerary[i].ID = uuid.Nil
		pkg.Itinerary[i].PackageID = pkg.ID
	}
	if len(pkg.Itinerary) > 0 {
		if err := tx.Omit("Location").Create(&pkg.Itinerary).Error; err != nil {
			return err
		}
	}
	return nil
}

func joinRows(packageID uuid.UUID, column string, ids []uuid.UUID) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, map[string]interface{}{"package_id": packageID, column: id})
	}
	return rows
}

func hotelIDs(hotels []db_models.Hotel) []uuid.UUID {
	ids := make([]uuid.UUID, len(hotels))
	for i, h := range hotels {
		ids[i] = h.ID
	}
	return ids
}

func foodOptionIDs(options []db_models.FoodOption) []uuid.UUID {
	ids := make([]uuid.UUID, len(options))
	for i, f := range options {
		ids[i] = f.ID
	}
	return ids
}

func DestinationScope(destination string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if destination == "" {
			return db
		}
		return db.Where("destination ILIKE ?", "%"+utils.EscapeLike(destination)+"%")
	}
}

func ActiveScope(active *bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if active == nil {
			return db
		}
		return db.Where("active = ?", *active)
	}
}

func PriceRangeScope(min, max *int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if min != nil {
			db = db.Where("price >= ?", *min)
		}
		if max != nil {
			db = db.Where("price <= ?", *max)
		}
		return db
	}
}
