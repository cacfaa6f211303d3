package repository

import (
	"context"

	"recordstudio/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	tx := r.db.WithContext(ctx).First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *ServiceRepository) GetByNameValue(ctx context.Context, nameValue string) (*domain.Service, error) {
	var s domain.Service
	tx := r.db.WithContext(ctx).
		Where("name_value = ?", nameValue).
		First(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

// GetAll returns the catalog with rentals first, matching how the storefront
// lists offerings.
func (r *ServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	tx := r.db.WithContext(ctx).
		Order("is_rent DESC, id").
		Find(&services)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return services, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Service{}, id)
	return tx.RowsAffected, tx.Error
}
