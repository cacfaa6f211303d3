package orders

import (
	"context"

	"recordstudio/internal/domain"
)

type OrderRepository interface {
	CreateWithDetails(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByDetailID(ctx context.Context, detailID int64) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	GetAll(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	ReplaceDetails(ctx context.Context, orderID int64, details []domain.Detail, total float64) error
	UpdatePrice(ctx context.Context, id int64, price float64) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type DetailRepository interface {
	Create(ctx context.Context, d *domain.Detail) error
	CreateMany(ctx context.Context, details []domain.Detail) ([]domain.Detail, error)
	GetByID(ctx context.Context, id int64) (*domain.Detail, error)
	GetByOrderID(ctx context.Context, orderID int64) ([]domain.Detail, error)
	GetAll(ctx context.Context) ([]domain.Detail, error)
	Update(ctx context.Context, d *domain.Detail) error
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByOrderID(ctx context.Context, orderID int64) (int64, error)
}

// ServiceFinder resolves catalog references when building details.
type ServiceFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// UserFinder answers the user-existence check on order creation.
type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
