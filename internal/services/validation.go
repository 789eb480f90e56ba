package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"booking-backend/internal/projection"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected form field.
type FieldError struct {
	Field   string `json:"field" example:"name"`
	Rule    string `json:"rule" example:"required"`
	Message string `json:"message" example:"name is required"`
}

// ValidationResult is the outcome of validating a form: OK, or the list of
// field errors.
type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// ValidationError is returned by service writes when the submitted form is
// rejected. Nothing has been written when it is returned.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Result.Errors))
	for _, fe := range e.Result.Errors {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,18}[0-9]$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("datetime_any", func(fl validator.FieldLevel) bool {
			_, err := projection.ParseDateTime(fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

// Validate checks a form against its validate tags.
func Validate(form any) ValidationResult {
	err := formValidator().Struct(form)
	if err == nil {
		return ValidationResult{}
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return ValidationResult{Errors: []FieldError{{Field: "", Rule: "invalid", Message: err.Error()}}}
	}

	result := ValidationResult{Errors: make([]FieldError, 0, len(errs))}
	for _, fe := range errs {
		result.Errors = append(result.Errors, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return result
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	case "phone":
		return field + " must be a valid phone number"
	case "datetime_any":
		return field + " must be a date and time such as 2035-04-01 20:00:00"
	}
	return field + " is invalid"
}
