package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultFile is the YAML file Load reads when present
	DefaultFile = "apitools.yaml"
	// EnvPrefix prefixes every environment variable the loader reads
	EnvPrefix = "APITOOLS_"
)

// Load loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. apitools.yaml in the working directory, if present
// 3. Default values (lowest priority)
func Load() (*Config, error) {
	return LoadFrom(DefaultFile)
}

// LoadFrom is like Load but reads the YAML file at path. A missing file is
// not an error; an unreadable or malformed one is.
func LoadFrom(path string) (*Config, error) {
	k, err := newKoanf()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, statErr)
		}
	}

	return finish(k)
}

// LoadBytes is like Load but reads YAML from data instead of a file.
func LoadBytes(data []byte) (*Config, error) {
	k, err := newKoanf()
	if err != nil {
		return nil, err
	}

	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return finish(k)
}

func newKoanf() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	return k, nil
}

func finish(k *koanf.Koanf) (*Config, error) {
	if err := loadEnv(k); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.k = k

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"client.responsetype": "application/json",

		"retry.maxwait":     "60s",
		"retry.maxattempts": 0,

		"log.level":           "info",
		"log.pretty":          false,
		"log.payloads":        false,
		"log.maxpayloadbytes": 1024,
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}

// loadEnv maps APITOOLS_CLIENT_ROOTURL to client.rooturl and so on.
func loadEnv(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, EnvPrefix)
			return strings.ReplaceAll(strings.ToLower(key), "_", "."), value
		},
	}), nil)
}
