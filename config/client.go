package config

import (
	"maps"
	"strings"

	"github.com/gaborage/go-apitools/httpclient"
	"github.com/gaborage/go-apitools/logger"
)

// HTTPClientConfig converts the client and log sections into request builder
// settings. Client.Accept becomes a default Accept header.
func (c *Config) HTTPClientConfig(interceptors ...httpclient.RequestInterceptor) *httpclient.Config {
	headers := maps.Clone(c.Client.Headers)
	if len(c.Client.Accept) > 0 {
		if headers == nil {
			headers = make(map[string]string, 1)
		}
		headers["Accept"] = strings.Join(c.Client.Accept, ", ")
	}

	return &httpclient.Config{
		RootURL:             c.Client.RootURL,
		UserAgent:           c.Client.UserAgent,
		ResponseType:        c.Client.ResponseType,
		DefaultHeaders:      headers,
		RequestInterceptors: interceptors,
		LogPayloads:         c.Log.Payloads,
		MaxPayloadLogBytes:  c.Log.MaxPayloadBytes,
		TraceIDHeader:       c.Client.TraceHeader,
		EnableW3CTrace:      c.Client.W3CTrace,
	}
}

// BackoffOptions returns the retry section as Backoff options.
func (c *Config) BackoffOptions() []httpclient.BackoffOption {
	opts := []httpclient.BackoffOption{httpclient.WithMaxWait(c.Retry.MaxWait)}
	if c.Retry.MaxAttempts > 0 {
		opts = append(opts, httpclient.WithMaxAttempts(c.Retry.MaxAttempts))
	}
	return opts
}

// NewLogger creates a logger from the log section.
func (c *Config) NewLogger() *logger.ZeroLogger {
	return logger.New(c.Log.Level, c.Log.Pretty)
}

// NewRequestBuilder wires a request builder from the loaded configuration.
func (c *Config) NewRequestBuilder(log logger.Logger, interceptors ...httpclient.RequestInterceptor) *httpclient.RequestBuilder {
	return httpclient.NewRequestBuilder(c.HTTPClientConfig(interceptors...), log)
}
