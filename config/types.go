package config

import (
	"time"

	"github.com/knadh/koanf/v2"
)

// Config holds the settings of a generated API client: where requests go,
// how retries back off and how the client logs. The koanf instance behind it
// stays available through the getters for keys the struct does not declare.
type Config struct {
	Client ClientConfig `koanf:"client" json:"client" yaml:"client" mapstructure:"client"`
	Retry  RetryConfig  `koanf:"retry" json:"retry" yaml:"retry" mapstructure:"retry"`
	Log    LogConfig    `koanf:"log" json:"log" yaml:"log" mapstructure:"log"`

	k *koanf.Koanf `json:"-" yaml:"-" mapstructure:"-"`
}

// ClientConfig holds request preparation settings.
type ClientConfig struct {
	// RootURL is the API base every relative path is joined to.
	RootURL string `koanf:"rooturl" json:"rooturl" yaml:"rooturl" mapstructure:"rooturl" validate:"required,url"`
	// UserAgent is sent with every request when set.
	UserAgent string `koanf:"useragent" json:"useragent" yaml:"useragent" mapstructure:"useragent"`
	// Accept lists the media ranges sent when a method declares none.
	Accept []string `koanf:"accept" json:"accept" yaml:"accept" mapstructure:"accept" validate:"dive,media_range"`
	// ResponseType is the content type the client decodes.
	ResponseType string `koanf:"responsetype" json:"responsetype" yaml:"responsetype" mapstructure:"responsetype" validate:"omitempty,media_range"`
	// TraceHeader overrides the request ID header name.
	TraceHeader string `koanf:"traceheader" json:"traceheader" yaml:"traceheader" mapstructure:"traceheader"`
	// W3CTrace adds a traceparent header to every request.
	W3CTrace bool `koanf:"w3ctrace" json:"w3ctrace" yaml:"w3ctrace" mapstructure:"w3ctrace"`
	// Headers are default headers applied to every request.
	Headers map[string]string `koanf:"headers" json:"headers" yaml:"headers" mapstructure:"headers"`
}

// RetryConfig holds retry backoff settings.
type RetryConfig struct {
	// MaxWait caps a single wait. Default: 60s.
	MaxWait time.Duration `koanf:"maxwait" json:"maxwait" yaml:"maxwait" mapstructure:"maxwait" validate:"gt=0"`
	// MaxAttempts bounds the number of retries; 0 means unbounded.
	MaxAttempts int `koanf:"maxattempts" json:"maxattempts" yaml:"maxattempts" mapstructure:"maxattempts" validate:"gte=0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level" mapstructure:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Pretty bool   `koanf:"pretty" json:"pretty" yaml:"pretty" mapstructure:"pretty"`
	// Payloads enables debug logging of request headers and bodies.
	Payloads bool `koanf:"payloads" json:"payloads" yaml:"payloads" mapstructure:"payloads"`
	// MaxPayloadBytes caps logged body bytes. Default: 1024.
	MaxPayloadBytes int `koanf:"maxpayloadbytes" json:"maxpayloadbytes" yaml:"maxpayloadbytes" mapstructure:"maxpayloadbytes" validate:"gte=0"`
}
