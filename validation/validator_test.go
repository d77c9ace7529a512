package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type methodLike struct {
	ID           string   `validate:"required"`
	HTTPMethod   string   `validate:"required,oneof=GET POST PUT PATCH DELETE"`
	RelativePath string   `validate:"required,uri_template"`
	Accept       []string `validate:"dive,media_range"`
}

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	require.NotNil(t, v)
	require.NotNil(t, v.validate)
	assert.Same(t, v.validate, v.GetValidator())
}

func TestValidatorValidateSuccess(t *testing.T) {
	v := NewValidator()

	err := v.Validate(methodLike{
		ID:           "storage.objects.get",
		HTTPMethod:   "GET",
		RelativePath: "b/{bucket}/o/{+object}",
		Accept:       []string{"*", "*/*", "application/json", "text/*"},
	})
	assert.NoError(t, err)
}

func TestValidatorValidateFailures(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		input  methodLike
		fields []string
	}{
		{
			name:   "missing_required",
			input:  methodLike{RelativePath: "x"},
			fields: []string{"methodLike.ID", "methodLike.HTTPMethod"},
		},
		{
			name:   "bad_method",
			input:  methodLike{ID: "a", HTTPMethod: "FETCH", RelativePath: "x"},
			fields: []string{"methodLike.HTTPMethod"},
		},
		{
			name:   "unterminated_template",
			input:  methodLike{ID: "a", HTTPMethod: "GET", RelativePath: "b/{bucket"},
			fields: []string{"methodLike.RelativePath"},
		},
		{
			name:   "media_range_with_parameters",
			input:  methodLike{ID: "a", HTTPMethod: "GET", RelativePath: "x", Accept: []string{"text/html;q=0.9"}},
			fields: []string{"methodLike.Accept[0]"},
		},
		{
			name:   "media_range_without_subtype",
			input:  methodLike{ID: "a", HTTPMethod: "GET", RelativePath: "x", Accept: []string{"json", "text/"}},
			fields: []string{"methodLike.Accept[0]", "methodLike.Accept[1]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.ElementsMatch(t, tt.fields, ve.Fields())
		})
	}
}

func TestValidatorNonStructInput(t *testing.T) {
	v := NewValidator()

	err := v.Validate("not a struct")
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestValidationErrorMessages(t *testing.T) {
	assert.Equal(t, "validation failed", (&ValidationError{}).Error())

	single := &ValidationError{Errors: []FieldError{{Field: "ID", Message: "ID is required"}}}
	assert.Equal(t, "validation failed: ID is required", single.Error())

	multi := &ValidationError{Errors: []FieldError{
		{Field: "ID", Message: "ID is required"},
		{Field: "HTTPMethod", Message: "HTTPMethod is required"},
	}}
	assert.Equal(t, "validation failed: 2 errors: ID is required; HTTPMethod is required", multi.Error())
}
