package service

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/civic-complaint-service/pkg/util/errorutil"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct validation and folds every violation, plus any
// caller-supplied extras, into a single VALIDATION_FAILED error. Reporting all
// fields at once lets a client fix the whole payload in one resubmission.
func validateInput(input any, extra map[string]any) error {
	details := map[string]any{}
	for field, message := range extra {
		details[field] = message
	}

	if err := validate.Struct(input); err != nil {
		var violations validator.ValidationErrors
		if !errors.As(err, &violations) {
			return errorutil.NewInternalError(err)
		}
		for _, violation := range violations {
			field := lowerCamel(violation.Field())
			if _, seen := details[field]; !seen {
				details[field] = violationMessage(violation)
			}
		}
	}

	if len(details) == 0 {
		return nil
	}
	return errorutil.NewValidationError("request validation failed", details)
}

func violationMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", violation.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", violation.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", violation.Param())
	case "numeric":
		return "must contain only digits"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", violation.Tag())
	}
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
