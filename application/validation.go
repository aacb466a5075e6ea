package application

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator. Field names in errors use
// the form tag so they line up with the submitted inputs.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(f.Name[:1]) + f.Name[1:]
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// ValidationError carries per-field messages for a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldErrors extracts per-field messages from err, or nil if err is not a
// validation failure.
func FieldErrors(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// Validate checks v against its validate tags.
func Validate(v any) error {
	return convertValidationError(validatorInstance().Struct(v))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("validation: %w", err)
	}

	fields := make(map[string]string, len(ves))
	for _, fe := range ves {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "eqfield":
		return "Does not match"
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
