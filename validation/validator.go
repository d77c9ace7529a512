package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yosida95/uritemplate/v3"
)

// Validator wraps go-playground/validator with the custom rules used by
// method configs and client settings.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator instance with custom validation rules registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("uri_template", validateURITemplate)
	_ = v.RegisterValidation("media_range", validateMediaRange)

	return &Validator{validate: v}
}

// GetValidator returns the underlying validator instance.
func (v *Validator) GetValidator() *validator.Validate {
	return v.validate
}

// Validate performs validation on the provided struct and returns any validation errors.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewValidationError(validationErrors)
		}
		return err
	}
	return nil
}

// ValidationError wraps validation errors with readable messages and structured field errors.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// NewValidationError creates a ValidationError from go-playground/validator errors.
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	fieldErrors := make([]FieldError, 0, len(errs))

	for _, err := range errs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   err.Namespace(),
			Tag:     err.Tag(),
			Message: getErrorMessage(err),
			Value:   fmt.Sprintf("%v", err.Value()),
		})
	}

	return &ValidationError{Errors: fieldErrors}
}

func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "validation failed"
	case 1:
		return fmt.Sprintf("validation failed: %s", ve.Errors[0].Message)
	default:
		msgs := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			msgs = append(msgs, fe.Message)
		}
		return fmt.Sprintf("validation failed: %d errors: %s", len(ve.Errors), strings.Join(msgs, "; "))
	}
}

// Fields returns the names of all fields that failed validation.
func (ve *ValidationError) Fields() []string {
	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "uri_template":
		return fmt.Sprintf("%s must be a valid RFC 6570 URI template", fe.Field())
	case "media_range":
		return fmt.Sprintf("%s must be a media range like type/subtype without parameters", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func validateURITemplate(fl validator.FieldLevel) bool {
	_, err := uritemplate.New(fl.Field().String())
	return err == nil
}

// validateMediaRange accepts "*" or "type/subtype" where either segment may be "*".
// Parameters (";q=0.9") are rejected.
func validateMediaRange(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "*" {
		return true
	}
	if strings.Contains(value, ";") {
		return false
	}
	major, minor, ok := strings.Cut(value, "/")
	return ok && major != "" && minor != "" && !strings.Contains(minor, "/")
}
