package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
)

type UserRepository interface {
	CrudRepository[db_models.User]
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
}

type userRepository struct {
	*crudRepository[db_models.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		crudRepository: newCrudRepository[db_models.User](db, "created_at DESC, id DESC", "name", "email", "phone"),
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
