package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

// ListQuery drives every paginated list. Search is matched case-insensitively
// against the repository's search columns; Scopes add entity specific filters.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Scopes []func(*gorm.DB) *gorm.DB
}

type CrudRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error)
	List(ctx context.Context, q ListQuery) ([]T, int64, error)
}

type crudRepository[T any] struct {
	db            *gorm.DB
	searchColumns []string
	order         string
	preloads      []string
}

func newCrudRepository[T any](db *gorm.DB, order string, searchColumns ...string) *crudRepository[T] {
	return &crudRepository[T]{db: db, order: order, searchColumns: searchColumns}
}

func (r *crudRepository[T]) withPreloads(preloads ...string) *crudRepository[T] {
	r.preloads = preloads
	return r
}

func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Update saves the row only; preloaded associations are left untouched.
func (r *crudRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.preload(r.db.WithContext(ctx)).First(&entity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *crudRepository[T]) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	var entities []T
	if len(ids) == 0 {
		return entities, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&entities).Error
	return entities, err
}

func (r *crudRepository[T]) List(ctx context.Context, q ListQuery) ([]T, int64, error) {
	scopes := append([]func(*gorm.DB) *gorm.DB{r.searchScope(q.Search)}, q.Scopes...)

	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []T
	if total == 0 {
		return entities, 0, nil
	}
	err := r.preload(r.db.WithContext(ctx)).
		Scopes(scopes...).
		Order(r.order).
		Offset(utils.Offset(q.Page, q.Limit)).
		Limit(q.Limit).
		Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *crudRepository[T]) preload(db *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		db = db.Preload(p)
	}
	return db
}

func (r *crudRepository[T]) searchScope(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		search = strings.TrimSpace(search)
		if search == "" || len(r.searchColumns) == 0 {
			return db
		}
		pattern := "%" + utils.EscapeLike(search) + "%"
		clauses := make([]string, len(r.searchColumns))
		args := make([]interface{}, len(r.searchColumns))
		for i, col := range r.searchColumns {
			clauses[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}
