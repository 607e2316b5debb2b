// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError collects the field errors of one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" failed on "+f.Rule)
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		}

		return name
	})
	_ = v.RegisterValidation("expiry", validateExpiry)

	return &CustomValidator{validate: v}
}

// Validate runs the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}

// validateExpiry accepts card expiry dates written as MM/YY.
func validateExpiry(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if len(v) != 5 || v[2] != '/' {
		return false
	}

	for i, r := range v {
		if i != 2 && (r < '0' || r > '9') {
			return false
		}
	}

	month := v[:2]

	return month >= "01" && month <= "12"
}
