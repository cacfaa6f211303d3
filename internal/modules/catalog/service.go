package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"recordstudio/internal/domain"
	"recordstudio/internal/modules/events"
	"recordstudio/internal/pkg/cache"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const cacheTTL = 60 * time.Second

var nameValueRegex = regexp.MustCompile(`^[a-z-]+$`)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetByNameValue(ctx context.Context, nameValue string) (*domain.Service, error)
	GetAll(ctx context.Context) ([]domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) (int64, error)
}

// Publisher receives a notification after a catalog write has committed.
// Delivery failures never roll the write back.
type Publisher interface {
	Publish(op events.Operation, name string)
}

// Service is the catalog of purchasable offerings: the source of truth for
// line-item pricing. Reads go through the cache, every write invalidates it.
type Service struct {
	repo   ServiceRepository
	cache  cache.Cache
	pubsub Publisher
}

func NewService(repo ServiceRepository, c cache.Cache, pubsub Publisher) *Service {
	return &Service{repo: repo, cache: c, pubsub: pubsub}
}

func cacheKey(id int64) string { return fmt.Sprintf("service:%d", id) }

const cacheKeyAll = "service:all"

func (s *Service) validateNameValue(ctx context.Context, nameValue string, selfID int64) error {
	if !nameValueRegex.MatchString(nameValue) {
		return ErrValidation
	}

	existing, err := s.repo.GetByNameValue(ctx, nameValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		log.Printf("catalog: name_value already taken: %s", nameValue)
		return ErrConflict
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Service, error) {
	if err := s.validateNameValue(ctx, req.NameValue, 0); err != nil {
		return nil, err
	}

	svc := &domain.Service{
		NameValue:   req.NameValue,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsRent:      req.IsRent,
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.invalidate(ctx, svc.ID)
	s.pubsub.Publish(events.OpCreate, svc.Name)
	return svc, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	key := cacheKey(id)
	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var svc domain.Service
		if err := json.Unmarshal(data, &svc); err == nil {
			return &svc, nil
		}
	} else if err != nil {
		log.Printf("catalog: cache read failed for %s: %v", key, err)
	}

	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if data, err := json.Marshal(svc); err == nil {
		if err := s.cache.Set(ctx, key, data, cacheTTL); err != nil {
			log.Printf("catalog: cache write failed for %s: %v", key, err)
		}
	}
	return svc, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Service, error) {
	if data, ok, err := s.cache.Get(ctx, cacheKeyAll); err == nil && ok {
		var services []domain.Service
		if err := json.Unmarshal(data, &services); err == nil {
			return services, nil
		}
	} else if err != nil {
		log.Printf("catalog: cache read failed for %s: %v", cacheKeyAll, err)
	}

	services, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(services) > 0 {
		if data, err := json.Marshal(services); err == nil {
			if err := s.cache.Set(ctx, cacheKeyAll, data, cacheTTL); err != nil {
				log.Printf("catalog: cache write failed for %s: %v", cacheKeyAll, err)
			}
		}
	}
	return services, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.NameValue != nil {
		if err := s.validateNameValue(ctx, *req.NameValue, id); err != nil {
			return nil, err
		}
		svc.NameValue = *req.NameValue
	}
	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.IsRent != nil {
		svc.IsRent = *req.IsRent
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("update service %d: %w", id, err)
	}

	s.invalidate(ctx, id)
	s.pubsub.Publish(events.OpUpdate, svc.Name)
	return svc, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete service %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.invalidate(ctx, id)
	s.pubsub.Publish(events.OpDelete, svc.Name)
	return nil
}

func (s *Service) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, cacheKey(id), cacheKeyAll); err != nil {
		log.Printf("catalog: cache invalidation failed for id=%d: %v", id, err)
	}
}
