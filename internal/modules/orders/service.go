package orders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"recordstudio/internal/domain"

	"gorm.io/gorm"
)

// Service owns the order aggregate. Every mutation that touches details runs
// the same recomputation (TotalPrice) before the stored total is written, so
// the order-level and detail-level paths cannot drift apart.
type Service struct {
	orders  OrderRepository
	details *DetailService
	users   UserFinder
}

func NewService(orders OrderRepository, details *DetailService, users UserFinder) *Service {
	return &Service{
		orders:  orders,
		details: details,
		users:   users,
	}
}

// Create validates the user, resolves every line item and persists the order
// with its details and computed total in a single transaction.
func (s *Service) Create(ctx context.Context, req OrderCreateRequest) (*domain.Order, error) {
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("orders: user not found, id=%d", req.UserID)
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	details, err := s.details.resolve(ctx, req.Details)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:     req.UserID,
		Status:     domain.OrderPending,
		Details:    details,
		TotalPrice: TotalPrice(details),
	}
	if err := s.orders.CreateWithDetails(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *Service) GetByDetailID(ctx context.Context, detailID int64) (*domain.Order, error) {
	order, err := s.orders.GetByDetailID(ctx, detailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.GetByUserID(ctx, userID)
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.GetAll(ctx)
}

// Update merges the plain fields and, when a detail set is supplied, replaces
// the existing details wholesale and recomputes the total from the new set.
func (s *Service) Update(ctx context.Context, id int64, req OrderUpdateRequest) (*domain.Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch *req.Status {
		case domain.OrderPending, domain.OrderInExecute, domain.OrderCompleted, domain.OrderCancelled:
			order.Status = *req.Status
		default:
			return nil, ErrValidation
		}
	}

	if req.Details != nil {
		details, err := s.details.resolve(ctx, req.Details)
		if err != nil {
			return nil, err
		}
		total := TotalPrice(details)
		if err := s.orders.ReplaceDetails(ctx, order.ID, details, total); err != nil {
			return nil, fmt.Errorf("replace details of order %d: %w", id, err)
		}
		order.TotalPrice = total
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order %d: %w", id, err)
	}
	return s.GetByID(ctx, id)
}

// UpdatePrice overrides the stored total directly. Callers inside this module
// always pass a value produced by TotalPrice; see RecalculatePrice.
func (s *Service) UpdatePrice(ctx context.Context, id int64, price float64) (*domain.Order, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.orders.UpdatePrice(ctx, id, price); err != nil {
		return nil, fmt.Errorf("update price of order %d: %w", id, err)
	}
	return s.GetByID(ctx, id)
}

// RecalculatePrice re-reads the order's current details and writes the freshly
// computed total. Detail-level mutations call this instead of patching the
// total incrementally, keeping a single recomputation path.
func (s *Service) RecalculatePrice(ctx context.Context, orderID int64) (*domain.Order, error) {
	details, err := s.details.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.UpdatePrice(ctx, orderID, TotalPrice(details))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	affected, err := s.orders.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
