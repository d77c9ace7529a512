package httpclient

import (
	"context"
	"errors"
	nethttp "net/http"
	"strings"
)

const (
	defaultMaxPayloadLogBytes = 1024
	logRequestPrepared        = "API request prepared"
	logRequestFailed          = "API request preparation failed"
)

func (b *RequestBuilder) logRequest(method *MethodConfig, req *nethttp.Request, body []byte, traceID string) {
	if b.logger == nil {
		return
	}

	event := b.logger.Info().
		Str("direction", "outbound").
		Str("method_id", method.ID).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", traceID)
	if len(req.Header) > 0 {
		event = event.Int("header_count", len(req.Header))
	}
	if len(body) > 0 {
		event = event.Int("body_size", len(body))
	}
	event.Msg(logRequestPrepared)

	if !b.config.LogPayloads {
		return
	}

	maxBytes := b.config.MaxPayloadLogBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxPayloadLogBytes
	}
	preview := body
	truncated := len(body) > maxBytes
	if truncated {
		preview = body[:maxBytes]
	}

	b.logger.Debug().
		Str("direction", "outbound").
		Str("method_id", method.ID).
		Str("method", req.Method).
		Str("request_id", traceID).
		Interface("headers", headerFields(req.Header)).
		Int("body_size", len(body)).
		Str("body_truncated", boolString(truncated)).
		Bytes("body_preview", preview).
		Msg(logRequestPrepared)
}

// headerFields flattens headers into a map the logger's sensitive data
// filter can inspect key by key.
func headerFields(h nethttp.Header) map[string]any {
	fields := make(map[string]any, len(h))
	for key, values := range h {
		fields[key] = strings.Join(values, ", ")
	}
	return fields
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (b *RequestBuilder) logFailure(ctx context.Context, method *MethodConfig, err error) {
	if b.logger == nil {
		return
	}

	log := b.logger.WithContext(ctx)
	event := log.Warn()
	if IsErrorType(err, InterceptorError) {
		event = log.Error()
	}
	if method != nil {
		event = event.Str("method_id", method.ID)
	}
	var clientErr ClientError
	if errors.As(err, &clientErr) {
		event = event.Str("error_type", string(clientErr.Type()))
	}
	event.Str("direction", "outbound").
		Err(err).
		Msg(logRequestFailed)
}
