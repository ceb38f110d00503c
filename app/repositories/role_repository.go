package repositories

import (
	"context"

	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/gorm"
)

type RoleRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Role, error)
	GetAssignable(ctx context.Context) ([]models.Role, error)
	FindByName(ctx context.Context, name string) (*models.Role, error)
	FindByNames(ctx context.Context, names []string) ([]models.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepositoryImpl {
	return &roleRepository{db: db}
}

func (r *roleRepository) GetAll(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.WithContext(ctx).Order("name asc").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// GetAssignable excludes system roles from the customer forms.
func (r *roleRepository) GetAssignable(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.WithContext(ctx).
		Where("is_system = ?", false).
		Order("name asc").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).First(&role, "name = ?", name).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindByNames(ctx context.Context, names []string) ([]models.Role, error) {
	if len(names) == 0 {
		return []models.Role{}, nil
	}

	var roles []models.Role
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
