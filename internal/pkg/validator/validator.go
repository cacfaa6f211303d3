package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks struct fields against their validate tags and returns a
// field -> failed-tag map, or nil when everything passes.
func Validate(v interface{}) map[string]string {
	return fieldErrors(validate.Struct(v))
}

// Details extracts the same field -> failed-tag map from a binding error, so
// handlers can report which fields were rejected. Returns nil when the error
// carries no field-level information (malformed JSON, wrong types).
func Details(err error) map[string]string {
	return fieldErrors(err)
}

func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields[fieldError.Field()] = fieldError.Tag()
	}
	return fields
}
