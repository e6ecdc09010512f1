package utils

import (
	"fmt"     // Message formatting
	"reflect" // Struct tag lookup
	"strings" // Tag parsing

	"money_tracker/internal/domain" // Domain error types

	"github.com/go-playground/validator/v10" // Struct tag validation
)

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs v against s and converts failures into a *domain.ValidationError.
// It returns nil when s is valid.
func ValidateStruct(v *validator.Validate, s any) *domain.ValidationError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	out := &domain.ValidationError{}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out.Add("body", err.Error())
		return out
	}
	for _, e := range validationErrors {
		out.Add(e.Field(), FieldMessage(e))
	}
	return out
}

// FieldMessage renders one failed rule as a sentence
func FieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, e.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	default:
		return fmt.Sprintf("The %s is invalid (%s).", field, e.Tag())
	}
}
