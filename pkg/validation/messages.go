package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single machine-readable validation problem.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Problems converts a binding error into a per-field problem list. Errors
// that are not validator.ValidationErrors (malformed JSON, wrong types)
// collapse into a single body-level entry.
func Problems(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	problems := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := toSnakeCase(e.Field())
		problems = append(problems, FieldError{
			Field:   field,
			Message: DefaultMessage(field, e.Tag(), e.Param()),
		})
	}
	return problems
}

// DefaultMessage builds a human-readable message for a failed validation tag.
func DefaultMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "min":
		return fmt.Sprintf("%s does not meet the minimum length or value of %s", field, param)
	case "max":
		return fmt.Sprintf("%s exceeds the maximum length or value of %s", field, param)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	default:
		return fmt.Sprintf("%s failed validation on '%s'", field, tag)
	}
}

func toSnakeCase(s string) string {
	runes := []rune(s)
	var result []rune
	for i, r := range runes {
		// Break before an upper-case rune unless it continues an acronym (ID)
		if i > 0 && r >= 'A' && r <= 'Z' && !(runes[i-1] >= 'A' && runes[i-1] <= 'Z') {
			result = append(result, '_')
		}
		result = append(result, r)
	}
	return strings.ToLower(string(result))
}
