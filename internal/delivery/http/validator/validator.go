// Package validator adapts go-playground/validator to echo's request validation hook.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "medreminder/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates bound request bodies
type Validator struct {
	engine *validator.Validate
}

// New creates a request validator that reports fields by their JSON names
func New() *Validator {
	engine := validator.New(validator.WithRequiredStructEnabled())
	engine.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{engine: engine}
}

// Validate implements echo.Validator. Field failures become one ValidationError.
func (v *Validator) Validate(i any) error {
	err := v.engine.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return domainerrors.NewValidationError(messages)
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fieldErr.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long.", fieldErr.Field(), fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", fieldErr.Field(), strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed the %s check.", fieldErr.Field(), fieldErr.Tag())
	}
}
