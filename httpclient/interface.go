package httpclient

import (
	"context"
	nethttp "net/http"
	"net/url"

	"github.com/gaborage/go-apitools/messages"
	apitrace "github.com/gaborage/go-apitools/trace"
)

const (
	// HeaderXRequestID is the standard header name for request tracing
	HeaderXRequestID = apitrace.HeaderXRequestID
	// HeaderTraceParent is the W3C trace context header name
	HeaderTraceParent = apitrace.HeaderTraceParent
)

// MethodConfig describes one REST method of a generated client. Parameter
// names in PathParams, QueryParams and OrderedParams are wire-level names,
// as they appear in RelativePath and on the query string.
type MethodConfig struct {
	// ID is the dotted method identifier, e.g. "storage.objects.get"
	ID string `validate:"required"`
	// HTTPMethod is the request verb
	HTTPMethod string `validate:"required,oneof=GET POST PUT PATCH DELETE HEAD"`
	// RelativePath is an RFC 6570 template relative to the client root URL
	RelativePath string `validate:"required,uri_template"`
	// PathParams are the template variables filled from request parameters
	PathParams []string `validate:"dive,required"`
	// QueryParams, when non-empty, restricts which remaining parameters may be sent
	QueryParams []string `validate:"dive,required"`
	// OrderedParams are the required parameters, in positional order
	OrderedParams []string `validate:"dive,required"`
	// RequestType describes the request message; nil means no custom names apply
	RequestType *messages.MessageType `validate:"-"`
	// Accept lists response media ranges the method can produce
	Accept []string `validate:"dive,media_range"`
}

// RequestInterceptor is called on the prepared request before it is handed back
type RequestInterceptor func(ctx context.Context, req *nethttp.Request) error

// Config holds the request builder configuration
type Config struct {
	// RootURL is the API base, e.g. "https://www.googleapis.com/storage/v1/"
	RootURL string
	// UserAgent is sent with every request when set
	UserAgent string
	// ResponseType is the content type the client decodes; methods whose Accept list excludes it are rejected
	ResponseType string
	// DefaultHeaders are applied before method-specific headers
	DefaultHeaders map[string]string
	// RequestInterceptors run in order on every prepared request
	RequestInterceptors []RequestInterceptor
	// LogPayloads enables debug-level logging of headers and body payloads
	LogPayloads bool
	// MaxPayloadLogBytes caps the number of body bytes logged when LogPayloads is enabled
	MaxPayloadLogBytes int
	// TraceIDHeader configures the header name used for trace ID propagation (default: X-Request-ID)
	TraceIDHeader string
	// EnableW3CTrace adds a traceparent header, taken from context or generated
	EnableW3CTrace bool
}

// Request is a prepared, unsent API request
type Request struct {
	// MethodID is the ID of the MethodConfig the request was built from
	MethodID string
	// Path is the expanded relative path
	Path string
	// Query holds the encoded query parameters
	Query url.Values
	// TraceID is the request ID sent in the trace header
	TraceID string
	// Body is the request payload
	Body []byte
	// HTTP is the prepared request; send it with any http.Client
	HTTP *nethttp.Request
}

// WithTraceID adds a trace ID to the context for request propagation
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return apitrace.WithTraceID(ctx, traceID)
}

// TraceIDFromContext returns a trace ID from context if present
func TraceIDFromContext(ctx context.Context) (string, bool) { return apitrace.IDFromContext(ctx) }

// EnsureTraceID returns an existing trace ID from context or generates a new one
func EnsureTraceID(ctx context.Context) string { return apitrace.EnsureTraceID(ctx) }

// WithTraceParent adds a W3C traceparent value to the context
func WithTraceParent(ctx context.Context, traceParent string) context.Context {
	return apitrace.WithTraceParent(ctx, traceParent)
}

// NewTraceIDInterceptor creates a request interceptor that adds trace ID headers
func NewTraceIDInterceptor() RequestInterceptor {
	return NewTraceIDInterceptorFor(HeaderXRequestID)
}

// NewTraceIDInterceptorFor creates an interceptor that uses a custom header name
func NewTraceIDInterceptorFor(header string) RequestInterceptor {
	if header == "" {
		header = HeaderXRequestID
	}
	return func(ctx context.Context, req *nethttp.Request) error {
		if req.Header.Get(header) == "" {
			req.Header.Set(header, EnsureTraceID(ctx))
		}
		return nil
	}
}
