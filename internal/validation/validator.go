// Package validation provides form validation built on the
// validator/v10 library.
package validation

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/booknotesapp/booknotes-server/internal/errors"
)

// FieldError identifies a failed check on a single form field.
type FieldError struct {
	Field string // form tag name of the field
	Tag   string // validation tag that failed (required, min, max, ...)
}

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our forms.
func New() *Validator {
	v := validator.New()

	// Use form tag names in error details.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("form")
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &Validator{v: v}
}

// Validate validates a struct. On failure it returns a domain
// validation error whose Details is a []FieldError in struct field
// order, so callers can short-circuit on the first failing check.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrors := make([]FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		fieldErrors = append(fieldErrors, FieldError{Field: e.Field(), Tag: e.Tag()})
	}

	return domainerrors.ValidationWithDetails("validation failed", fieldErrors)
}

// FirstField returns the form field name of the first failed check in
// err, or "" when err carries no field details.
func FirstField(err error) string {
	var domainErr *domainerrors.Error
	if !errors.As(err, &domainErr) {
		return ""
	}
	fields, ok := domainErr.Details.([]FieldError)
	if !ok || len(fields) == 0 {
		return ""
	}
	return fields[0].Field
}
