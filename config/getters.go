package config

import (
	"fmt"
	"time"
)

// GetString retrieves a string value from the configuration or the provided default.
func (c *Config) GetString(key string, defaultVal ...string) string {
	if !c.Exists(key) {
		return optionalDefault("", defaultVal...)
	}
	return c.k.String(key)
}

// GetInt retrieves an int value from the configuration or the provided default.
func (c *Config) GetInt(key string, defaultVal ...int) int {
	if !c.Exists(key) {
		return optionalDefault(0, defaultVal...)
	}
	return c.k.Int(key)
}

// GetBool retrieves a bool value from the configuration or the provided default.
func (c *Config) GetBool(key string, defaultVal ...bool) bool {
	if !c.Exists(key) {
		return optionalDefault(false, defaultVal...)
	}
	return c.k.Bool(key)
}

// GetDuration retrieves a duration ("1m30s" or nanoseconds) or the provided default.
func (c *Config) GetDuration(key string, defaultVal ...time.Duration) time.Duration {
	if !c.Exists(key) {
		return optionalDefault(time.Duration(0), defaultVal...)
	}
	return c.k.Duration(key)
}

// GetStrings retrieves a string list declared as a YAML sequence.
func (c *Config) GetStrings(key string) []string {
	if !c.Exists(key) {
		return nil
	}
	return c.k.Strings(key)
}

// GetRequiredString retrieves a string value or a missing-field error.
func (c *Config) GetRequiredString(key string) (string, error) {
	if !c.Exists(key) || c.k.String(key) == "" {
		return "", NewMissingFieldError(key)
	}
	return c.k.String(key), nil
}

// Unmarshal decodes the subtree at key into out, e.g. a custom section of the YAML file.
func (c *Config) Unmarshal(key string, out any) error {
	if c == nil || c.k == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return c.k.Unmarshal(key, out)
}

// Exists reports whether key is set in any loaded source.
func (c *Config) Exists(key string) bool {
	return c != nil && c.k != nil && c.k.Exists(key)
}

func optionalDefault[T any](zero T, overrides ...T) T {
	if len(overrides) > 0 {
		return overrides[0]
	}
	return zero
}
