package orders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"recordstudio/internal/domain"

	"gorm.io/gorm"
)

// DetailService owns order line items: it resolves catalog references and
// enforces their existence before anything is persisted.
type DetailService struct {
	details  DetailRepository
	services ServiceFinder
}

func NewDetailService(details DetailRepository, services ServiceFinder) *DetailService {
	return &DetailService{details: details, services: services}
}

// resolve turns requested line items into detail rows with the referenced
// services loaded. Any missing service fails the whole batch before a single
// row is written.
func (s *DetailService) resolve(ctx context.Context, items []DetailCreateRequest) ([]domain.Detail, error) {
	details := make([]domain.Detail, 0, len(items))
	for _, item := range items {
		svc, err := s.services.GetByID(ctx, item.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("orders: service not found, id=%d", item.ServiceID)
				return nil, ErrServiceNotFound
			}
			return nil, err
		}
		details = append(details, domain.Detail{
			ServiceID: svc.ID,
			Service:   svc,
			Quantity:  item.Quantity,
		})
	}
	return details, nil
}

func (s *DetailService) Create(ctx context.Context, order *domain.Order, req DetailCreateRequest) (*domain.Detail, error) {
	resolved, err := s.resolve(ctx, []DetailCreateRequest{req})
	if err != nil {
		return nil, err
	}

	detail := resolved[0]
	detail.OrderID = order.ID
	if err := s.details.Create(ctx, &detail); err != nil {
		return nil, fmt.Errorf("create detail: %w", err)
	}
	return &detail, nil
}

// CreateMany persists a batch of details for the order, all-or-nothing.
func (s *DetailService) CreateMany(ctx context.Context, order *domain.Order, items []DetailCreateRequest) ([]domain.Detail, error) {
	resolved, err := s.resolve(ctx, items)
	if err != nil {
		return nil, err
	}

	for i := range resolved {
		resolved[i].OrderID = order.ID
	}
	created, err := s.details.CreateMany(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("create details: %w", err)
	}
	return created, nil
}

func (s *DetailService) GetByID(ctx context.Context, id int64) (*domain.Detail, error) {
	detail, err := s.details.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (s *DetailService) GetByOrderID(ctx context.Context, orderID int64) ([]domain.Detail, error) {
	return s.details.GetByOrderID(ctx, orderID)
}

func (s *DetailService) GetAll(ctx context.Context) ([]domain.Detail, error) {
	return s.details.GetAll(ctx)
}

func (s *DetailService) Update(ctx context.Context, id int64, req DetailUpdateRequest) (*domain.Detail, error) {
	detail, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ServiceID != nil {
		svc, err := s.services.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("orders: service not found, id=%d", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			return nil, err
		}
		detail.ServiceID = svc.ID
		detail.Service = svc
	}
	if req.Quantity != nil {
		detail.Quantity = *req.Quantity
	}

	if err := s.details.Update(ctx, detail); err != nil {
		return nil, fmt.Errorf("update detail %d: %w", id, err)
	}
	return detail, nil
}

func (s *DetailService) Delete(ctx context.Context, id int64) error {
	affected, err := s.details.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete detail %d: %w", id, err)
	}
	if affected == 0 {
		return ErrDetailNotFound
	}
	return nil
}

func (s *DetailService) DeleteByOrderID(ctx context.Context, orderID int64) error {
	affected, err := s.details.DeleteByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("delete details of order %d: %w", orderID, err)
	}
	if affected == 0 {
		return ErrDetailNotFound
	}
	return nil
}
