package orders

import (
	"context"
	"testing"

	"recordstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newTestDetailService() (*DetailService, *MockDetailRepository, *MockServiceFinder) {
	detailRepo := new(MockDetailRepository)
	services := new(MockServiceFinder)
	return NewDetailService(detailRepo, services), detailRepo, services
}

func TestDetailService_Create_ResolvesService(t *testing.T) {
	svc, detailRepo, services := newTestDetailService()
	ctx := context.Background()

	mixing := &domain.Service{ID: 1, Price: 500}
	order := &domain.Order{ID: 5}

	services.On("GetByID", ctx, int64(1)).Return(mixing, nil)
	detailRepo.On("Create", ctx, mock.AnythingOfType("*domain.Detail")).Return(nil)

	detail, err := svc.Create(ctx, order, DetailCreateRequest{ServiceID: 1, Quantity: 2})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), detail.OrderID)
	assert.Equal(t, mixing, detail.Service)
	assert.Equal(t, 2, detail.Quantity)
}

func TestDetailService_Create_ServiceNotFound(t *testing.T) {
	svc, detailRepo, services := newTestDetailService()
	ctx := context.Background()

	services.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, &domain.Order{ID: 5}, DetailCreateRequest{ServiceID: 404, Quantity: 1})

	assert.ErrorIs(t, err, ErrServiceNotFound)
	detailRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDetailService_CreateMany_AllOrNothing(t *testing.T) {
	svc, detailRepo, services := newTestDetailService()
	ctx := context.Background()

	services.On("GetByID", ctx, int64(1)).Return(&domain.Service{ID: 1, Price: 500}, nil)
	services.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateMany(ctx, &domain.Order{ID: 5}, []DetailCreateRequest{
		{ServiceID: 1, Quantity: 1},
		{ServiceID: 404, Quantity: 1},
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
	detailRepo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestDetailService_Update_MergesFields(t *testing.T) {
	svc, detailRepo, services := newTestDetailService()
	ctx := context.Background()

	existing := &domain.Detail{ID: 9, OrderID: 5, ServiceID: 1, Service: &domain.Service{ID: 1, Price: 500}, Quantity: 2}
	rent := &domain.Service{ID: 2, Price: 5000, IsRent: true}

	detailRepo.On("GetByID", ctx, int64(9)).Return(existing, nil)
	services.On("GetByID", ctx, int64(2)).Return(rent, nil)
	detailRepo.On("Update", ctx, mock.AnythingOfType("*domain.Detail")).Return(nil)

	newService := int64(2)
	updated, err := svc.Update(ctx, 9, DetailUpdateRequest{ServiceID: &newService})

	assert.NoError(t, err)
	assert.Equal(t, rent, updated.Service)
	assert.Equal(t, 2, updated.Quantity) // untouched
}

func TestDetailService_Update_DetailNotFound(t *testing.T) {
	svc, detailRepo, _ := newTestDetailService()
	ctx := context.Background()

	detailRepo.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(ctx, 404, DetailUpdateRequest{})
	assert.ErrorIs(t, err, ErrDetailNotFound)
}

func TestDetailService_Update_ServiceNotFound(t *testing.T) {
	svc, detailRepo, services := newTestDetailService()
	ctx := context.Background()

	existing := &domain.Detail{ID: 9, OrderID: 5, ServiceID: 1, Quantity: 2}
	detailRepo.On("GetByID", ctx, int64(9)).Return(existing, nil)
	services.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	missing := int64(404)
	_, err := svc.Update(ctx, 9, DetailUpdateRequest{ServiceID: &missing})

	assert.ErrorIs(t, err, ErrServiceNotFound)
	detailRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDetailService_Delete_NotFoundOnZeroRows(t *testing.T) {
	svc, detailRepo, _ := newTestDetailService()
	ctx := context.Background()

	detailRepo.On("Delete", ctx, int64(404)).Return(int64(0), nil)
	assert.ErrorIs(t, svc.Delete(ctx, 404), ErrDetailNotFound)

	detailRepo.On("DeleteByOrderID", ctx, int64(404)).Return(int64(0), nil)
	assert.ErrorIs(t, svc.DeleteByOrderID(ctx, 404), ErrDetailNotFound)
}
