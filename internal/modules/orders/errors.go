package orders

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrDetailNotFound  = errors.New("detail not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrValidation      = errors.New("validation error")
)
