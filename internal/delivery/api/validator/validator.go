// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"sort"
	"strings"

	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/errors"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists failing request fields by JSON name.
// It unwraps to VALIDATION_FAILED.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return domainerrors.ErrValidationFailed
}

// Has reports whether the given field failed.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]

	return ok
}

// CustomValidator reports field errors by their JSON names.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator using JSON tag names in error messages.
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = friendlyMessage(fe)
	}

	return &ValidationError{Fields: fields}
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
