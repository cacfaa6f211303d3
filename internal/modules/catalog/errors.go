package catalog

import "errors"

var (
	ErrNotFound   = errors.New("service not found")
	ErrConflict   = errors.New("service name_value already exists")
	ErrValidation = errors.New("invalid name_value format")
)
