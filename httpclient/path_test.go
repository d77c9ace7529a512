package httpclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRelativePath(t *testing.T) {
	tests := []struct {
		name     string
		method   *MethodConfig
		params   map[string]string
		override string
		expected string
	}{
		{
			name:     "simple expansion",
			method:   &MethodConfig{RelativePath: "{x}/y/{z}", PathParams: []string{"x", "z"}},
			params:   map[string]string{"x": "1", "z": "2"},
			expected: "1/y/2",
		},
		{
			name:     "override template",
			method:   &MethodConfig{RelativePath: "{x}/y/{z}", PathParams: []string{"x", "z"}},
			params:   map[string]string{"x": "1", "z": "2"},
			override: "{x}/y/{z}/q",
			expected: "1/y/2/q",
		},
		{
			name:     "reserved expansion keeps slashes and colons",
			method:   &MethodConfig{RelativePath: "{+x}/baz", PathParams: []string{"x"}},
			params:   map[string]string{"x": "foo/:bar:"},
			expected: "foo/:bar:/baz",
		},
		{
			name:     "simple expansion escapes reserved characters",
			method:   &MethodConfig{RelativePath: "{x}/baz", PathParams: []string{"x"}},
			params:   map[string]string{"x": "foo/:bar:"},
			expected: "foo%2F%3Abar%3A/baz",
		},
		{
			name:     "non path params are ignored",
			method:   &MethodConfig{RelativePath: "b/{bucket}/o", PathParams: []string{"bucket"}},
			params:   map[string]string{"bucket": "photos", "prefix": "2024/"},
			expected: "b/photos/o",
		},
		{
			name:     "no path params",
			method:   &MethodConfig{RelativePath: "b"},
			params:   map[string]string{"project": "p"},
			expected: "b",
		},
		{
			name:     "empty override uses relative path",
			method:   &MethodConfig{RelativePath: "{x}", PathParams: []string{"x"}},
			params:   map[string]string{"x": "v"},
			override: "",
			expected: "v",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandRelativePath(tt.method, tt.params, tt.override)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpandRelativePathErrors(t *testing.T) {
	tests := []struct {
		name     string
		method   *MethodConfig
		params   map[string]string
		override string
		param    string
	}{
		{
			name:   "param missing from params",
			method: &MethodConfig{RelativePath: "b/{bucket}", PathParams: []string{"bucket"}},
			params: map[string]string{},
			param:  "bucket",
		},
		{
			name:   "param missing from template",
			method: &MethodConfig{RelativePath: "b/{bucket}", PathParams: []string{"bucket", "object"}},
			params: map[string]string{"bucket": "b", "object": "o"},
			param:  "object",
		},
		{
			name:   "template variable not declared",
			method: &MethodConfig{RelativePath: "{x}/{y}", PathParams: []string{"x"}},
			params: map[string]string{"x": "1", "y": "2"},
			param:  "y",
		},
		{
			name:     "override with undeclared variable",
			method:   &MethodConfig{RelativePath: "{x}", PathParams: []string{"x"}},
			params:   map[string]string{"x": "1"},
			override: "{x}/{+rest}",
			param:    "rest",
		},
		{
			name:   "malformed template",
			method: &MethodConfig{RelativePath: "b/{bucket", PathParams: []string{"bucket"}},
			params: map[string]string{"bucket": "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpandRelativePath(tt.method, tt.params, tt.override)
			require.Error(t, err)
			assert.True(t, IsErrorType(err, InvalidUserInputError))

			var paramErr interface{ Param() string }
			require.ErrorAs(t, err, &paramErr)
			assert.Equal(t, tt.param, paramErr.Param())
		})
	}
}
