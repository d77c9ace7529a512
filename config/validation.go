package config

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gaborage/go-apitools/validation"
)

// LogLevels are the accepted values of log.level
var LogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

var configValidator = newConfigValidator()

// newConfigValidator reports fields by their koanf key instead of the Go name.
func newConfigValidator() *validation.Validator {
	v := validation.NewValidator()
	v.GetValidator().RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(field.Name)
		}
		return name
	})
	return v
}

// Validate checks cfg and returns the first problem as a *ConfigError.
func Validate(cfg *Config) error {
	err := configValidator.Validate(cfg)
	if err == nil {
		return nil
	}

	var ve *validation.ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) == 0 {
		return err
	}

	fe := ve.Errors[0]
	field := configKey(fe.Field)
	switch fe.Tag {
	case "required":
		return NewMissingFieldError(field)
	case "oneof":
		return NewInvalidFieldError(field, "invalid value "+fe.Value, LogLevels)
	default:
		return NewInvalidFieldError(field, fe.Message, nil)
	}
}

// configKey turns "Config.client.accept[0]" into "client.accept".
func configKey(namespace string) string {
	_, key, found := strings.Cut(namespace, ".")
	if !found {
		key = namespace
	}
	if i := strings.IndexByte(key, '['); i >= 0 {
		key = key[:i]
	}
	return key
}
