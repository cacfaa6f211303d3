package repository

import (
	"context"

	"recordstudio/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithDetails inserts the order and its detail rows in one transaction.
// order.Details must carry resolved ServiceID and Quantity; order.TotalPrice
// is persisted as given. Nothing is left behind if any insert fails.
func (r *OrderRepository) CreateWithDetails(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		details := order.Details
		order.Details = nil

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range details {
			details[i].OrderID = order.ID
		}
		if len(details) > 0 {
			if err := tx.Omit("Service").Create(&details).Error; err != nil {
				return err
			}
		}

		order.Details = details
		return nil
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	tx := r.db.WithContext(ctx).
		Preload("Details.Service").
		First(&o, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OrderRepository) GetByDetailID(ctx context.Context, detailID int64) (*domain.Order, error) {
	var o domain.Order
	tx := r.db.WithContext(ctx).
		Preload("Details.Service").
		Joins("JOIN details ON details.order_id = orders.id").
		Where("details.id = ?", detailID).
		First(&o)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OrderRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	var orders []domain.Order
	tx := r.db.WithContext(ctx).
		Preload("Details.Service").
		Where("user_id = ?", userID).
		Order("id").
		Find(&orders)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return orders, nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	tx := r.db.WithContext(ctx).
		Preload("Details.Service").
		Order("id").
		Find(&orders)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return orders, nil
}

// Update persists the order's own columns. Details are never touched here,
// ReplaceDetails owns that path.
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":      order.Status,
			"total_price": order.TotalPrice,
		}).Error
}

// ReplaceDetails swaps the order's whole detail set and the stored total in
// one transaction: delete by order, insert the fresh rows, update the total.
func (r *OrderRepository) ReplaceDetails(ctx context.Context, orderID int64, details []domain.Detail, total float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&domain.Detail{}).Error; err != nil {
			return err
		}

		for i := range details {
			details[i].ID = 0
			details[i].OrderID = orderID
		}
		if len(details) > 0 {
			if err := tx.Omit("Service").Create(&details).Error; err != nil {
				return err
			}
		}

		return tx.Model(&domain.Order{}).
			Where("id = ?", orderID).
			Update("total_price", total).Error
	})
}

func (r *OrderRepository) UpdatePrice(ctx context.Context, id int64, price float64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Update("total_price", price).Error
}

// Delete removes the order and cascades to its details inside one
// transaction, so the cascade holds for drivers without FK enforcement.
func (r *OrderRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.Detail{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Order{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
