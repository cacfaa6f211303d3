package orders

import (
	"context"
	"testing"

	"recordstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithDetails(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	if order != nil {
		order.ID = 42 // simulate DB insert
		for i := range order.Details {
			order.Details[i].ID = int64(100 + i)
			order.Details[i].OrderID = order.ID
		}
	}
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByDetailID(ctx context.Context, detailID int64) (*domain.Order, error) {
	args := m.Called(ctx, detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ReplaceDetails(ctx context.Context, orderID int64, details []domain.Detail, total float64) error {
	args := m.Called(ctx, orderID, details, total)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePrice(ctx context.Context, id int64, price float64) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockDetailRepository struct {
	mock.Mock
}

func (m *MockDetailRepository) Create(ctx context.Context, d *domain.Detail) error {
	args := m.Called(ctx, d)
	if d != nil {
		d.ID = 777
	}
	return args.Error(0)
}

func (m *MockDetailRepository) CreateMany(ctx context.Context, details []domain.Detail) ([]domain.Detail, error) {
	args := m.Called(ctx, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Detail), args.Error(1)
}

func (m *MockDetailRepository) GetByID(ctx context.Context, id int64) (*domain.Detail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Detail), args.Error(1)
}

func (m *MockDetailRepository) GetByOrderID(ctx context.Context, orderID int64) ([]domain.Detail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Detail), args.Error(1)
}

func (m *MockDetailRepository) GetAll(ctx context.Context) ([]domain.Detail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Detail), args.Error(1)
}

func (m *MockDetailRepository) Update(ctx context.Context, d *domain.Detail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDetailRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDetailRepository) DeleteByOrderID(ctx context.Context, orderID int64) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockServiceFinder struct {
	mock.Mock
}

func (m *MockServiceFinder) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService() (*Service, *MockOrderRepository, *MockDetailRepository, *MockServiceFinder, *MockUserFinder) {
	orderRepo := new(MockOrderRepository)
	detailRepo := new(MockDetailRepository)
	services := new(MockServiceFinder)
	users := new(MockUserFinder)
	details := NewDetailService(detailRepo, services)
	return NewService(orderRepo, details, users), orderRepo, detailRepo, services, users
}

func TestService_Create_ComputesTotal(t *testing.T) {
	svc, orderRepo, _, services, users := newTestService()
	ctx := context.Background()

	mixing := &domain.Service{ID: 1, Price: 500}
	rent := &domain.Service{ID: 2, Price: 5000, IsRent: true}

	users.On("GetByID", ctx, int64(7)).Return(&domain.User{ID: 7}, nil)
	services.On("GetByID", ctx, int64(1)).Return(mixing, nil)
	services.On("GetByID", ctx, int64(2)).Return(rent, nil)
	orderRepo.On("CreateWithDetails", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	order, err := svc.Create(ctx, OrderCreateRequest{
		UserID: 7,
		Details: []DetailCreateRequest{
			{ServiceID: 1, Quantity: 2},
			{ServiceID: 2, Quantity: 3},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, float64(16000), order.TotalPrice)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Len(t, order.Details, 2)
	orderRepo.AssertExpectations(t)
}

func TestService_Create_UserNotFound(t *testing.T) {
	svc, orderRepo, _, _, users := newTestService()
	ctx := context.Background()

	users.On("GetByID", ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, OrderCreateRequest{
		UserID:  99,
		Details: []DetailCreateRequest{{ServiceID: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
	orderRepo.AssertNotCalled(t, "CreateWithDetails", mock.Anything, mock.Anything)
}

func TestService_Create_ServiceNotFound_NothingPersisted(t *testing.T) {
	svc, orderRepo, detailRepo, services, users := newTestService()
	ctx := context.Background()

	users.On("GetByID", ctx, int64(7)).Return(&domain.User{ID: 7}, nil)
	services.On("GetByID", ctx, int64(1)).Return(&domain.Service{ID: 1, Price: 500}, nil)
	services.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, OrderCreateRequest{
		UserID: 7,
		Details: []DetailCreateRequest{
			{ServiceID: 1, Quantity: 2},
			{ServiceID: 404, Quantity: 1},
		},
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
	orderRepo.AssertNotCalled(t, "CreateWithDetails", mock.Anything, mock.Anything)
	detailRepo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestService_Update_StatusOnly_KeepsDetailsAndTotal(t *testing.T) {
	svc, orderRepo, _, _, _ := newTestService()
	ctx := context.Background()

	existing := &domain.Order{
		ID:         5,
		UserID:     7,
		Status:     domain.OrderPending,
		TotalPrice: 16000,
		Details: []domain.Detail{
			{ID: 1, OrderID: 5, ServiceID: 1, Quantity: 2},
		},
	}
	status := domain.OrderCompleted

	orderRepo.On("GetByID", ctx, int64(5)).Return(existing, nil)
	orderRepo.On("Update", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.OrderCompleted && o.TotalPrice == 16000
	})).Return(nil)

	updated, err := svc.Update(ctx, 5, OrderUpdateRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, float64(16000), updated.TotalPrice)
	orderRepo.AssertNotCalled(t, "ReplaceDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_ReplacesDetailsAndRecomputes(t *testing.T) {
	svc, orderRepo, _, services, _ := newTestService()
	ctx := context.Background()

	existing := &domain.Order{ID: 5, UserID: 7, Status: domain.OrderPending, TotalPrice: 16000}
	mastering := &domain.Service{ID: 3, Price: 800}

	orderRepo.On("GetByID", ctx, int64(5)).Return(existing, nil)
	services.On("GetByID", ctx, int64(3)).Return(mastering, nil)
	orderRepo.On("ReplaceDetails", ctx, int64(5), mock.Anything, float64(4000)).Return(nil)
	orderRepo.On("Update", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	_, err := svc.Update(ctx, 5, OrderUpdateRequest{
		Details: []DetailCreateRequest{{ServiceID: 3, Quantity: 5}},
	})

	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestService_Update_InvalidStatus(t *testing.T) {
	svc, orderRepo, _, _, _ := newTestService()
	ctx := context.Background()

	existing := &domain.Order{ID: 5, Status: domain.OrderPending}
	bad := domain.OrderStatus("shipped")

	orderRepo.On("GetByID", ctx, int64(5)).Return(existing, nil)

	_, err := svc.Update(ctx, 5, OrderUpdateRequest{Status: &bad})

	assert.ErrorIs(t, err, ErrValidation)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, orderRepo, _, _, _ := newTestService()
	ctx := context.Background()

	orderRepo.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(ctx, 404, OrderUpdateRequest{})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestService_RecalculatePrice_MatchesFullRecompute(t *testing.T) {
	svc, orderRepo, detailRepo, _, _ := newTestService()
	ctx := context.Background()

	mixing := &domain.Service{ID: 1, Price: 500}
	rent := &domain.Service{ID: 2, Price: 5000, IsRent: true}
	current := []domain.Detail{
		{ID: 1, OrderID: 5, ServiceID: 1, Service: mixing, Quantity: 2},
		{ID: 2, OrderID: 5, ServiceID: 2, Service: rent, Quantity: 3},
	}

	// the stored total must land on exactly what a full recompute gives
	expected := TotalPrice(current)

	detailRepo.On("GetByOrderID", ctx, int64(5)).Return(current, nil)
	orderRepo.On("GetByID", ctx, int64(5)).Return(&domain.Order{ID: 5, TotalPrice: expected, Details: current}, nil)
	orderRepo.On("UpdatePrice", ctx, int64(5), expected).Return(nil)

	order, err := svc.RecalculatePrice(ctx, 5)

	assert.NoError(t, err)
	assert.Equal(t, float64(16000), expected)
	assert.Equal(t, expected, order.TotalPrice)
	orderRepo.AssertExpectations(t)
}

func TestService_Delete_NotFoundOnZeroRows(t *testing.T) {
	svc, orderRepo, _, _, _ := newTestService()
	ctx := context.Background()

	orderRepo.On("Delete", ctx, int64(404)).Return(int64(0), nil)

	err := svc.Delete(ctx, 404)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestService_UpdatePrice_OverridesTotal(t *testing.T) {
	svc, orderRepo, _, _, _ := newTestService()
	ctx := context.Background()

	orderRepo.On("GetByID", ctx, int64(5)).
		Return(&domain.Order{ID: 5, TotalPrice: 100}, nil)
	orderRepo.On("UpdatePrice", ctx, int64(5), float64(250)).Return(nil)

	_, err := svc.UpdatePrice(ctx, 5, 250)
	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)
}
