package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagLogLevel accepts any level name zerolog can parse.
const TagLogLevel = "loglevel"

// New creates a new validator instance with the custom tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagLogLevel, validateLogLevel)
	return v
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}
