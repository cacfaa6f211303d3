package repository

import (
	"context"

	"recordstudio/internal/domain"

	"gorm.io/gorm"
)

type DetailRepository struct {
	db *gorm.DB
}

func NewDetailRepository(db *gorm.DB) *DetailRepository {
	return &DetailRepository{db: db}
}

func (r *DetailRepository) Create(ctx context.Context, d *domain.Detail) error {
	return r.db.WithContext(ctx).Omit("Service").Create(d).Error
}

// CreateMany inserts all rows in one transaction, all-or-nothing.
func (r *DetailRepository) CreateMany(ctx context.Context, details []domain.Detail) ([]domain.Detail, error) {
	if len(details) == 0 {
		return details, nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Service").Create(&details).Error
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *DetailRepository) GetByID(ctx context.Context, id int64) (*domain.Detail, error) {
	var d domain.Detail
	tx := r.db.WithContext(ctx).
		Preload("Service").
		First(&d, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &d, nil
}

func (r *DetailRepository) GetByOrderID(ctx context.Context, orderID int64) ([]domain.Detail, error) {
	var details []domain.Detail
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Where("order_id = ?", orderID).
		Order("id").
		Find(&details)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return details, nil
}

func (r *DetailRepository) GetAll(ctx context.Context) ([]domain.Detail, error) {
	var details []domain.Detail
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Order("id").
		Find(&details)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return details, nil
}

func (r *DetailRepository) Update(ctx context.Context, d *domain.Detail) error {
	return r.db.WithContext(ctx).
		Model(&domain.Detail{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"service_id": d.ServiceID,
			"quantity":   d.Quantity,
		}).Error
}

func (r *DetailRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Detail{}, id)
	return tx.RowsAffected, tx.Error
}

func (r *DetailRepository) DeleteByOrderID(ctx context.Context, orderID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&domain.Detail{})
	return tx.RowsAffected, tx.Error
}
