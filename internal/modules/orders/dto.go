package orders

import "recordstudio/internal/domain"

type DetailCreateRequest struct {
	ServiceID int64 `json:"service_id" binding:"required,min=1"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type DetailUpdateRequest struct {
	ServiceID *int64 `json:"service_id" binding:"omitempty,min=1"`
	Quantity  *int   `json:"quantity" binding:"omitempty,min=1"`
}

type OrderCreateRequest struct {
	UserID  int64                 `json:"user_id" binding:"required,min=1"`
	Details []DetailCreateRequest `json:"details" binding:"required,min=1,dive"`
}

type OrderUpdateRequest struct {
	Status  *domain.OrderStatus   `json:"status" binding:"omitempty,oneof=pending in_execute completed cancelled"`
	Details []DetailCreateRequest `json:"details" binding:"omitempty,min=1,dive"`
}
