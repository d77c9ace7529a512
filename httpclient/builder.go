package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"reflect"
	"slices"
	"strings"

	"github.com/gorilla/schema"

	"github.com/gaborage/go-apitools/logger"
	"github.com/gaborage/go-apitools/messages"
	apitrace "github.com/gaborage/go-apitools/trace"
	"github.com/gaborage/go-apitools/validation"
)

const (
	headerAccept      = "Accept"
	headerUserAgent   = "User-Agent"
	headerContentType = "Content-Type"
	jsonContentType   = "application/json"
)

// RequestBuilder turns method descriptors and parameters into prepared
// *http.Request values. It never sends them.
type RequestBuilder struct {
	config    *Config
	logger    logger.Logger
	validator *validation.Validator
	encoder   *schema.Encoder
}

// NewRequestBuilder creates a request builder for the given config
func NewRequestBuilder(cfg *Config, log logger.Logger) *RequestBuilder {
	if cfg == nil {
		cfg = &Config{}
	}

	enc := schema.NewEncoder()
	enc.SetAliasTag(validation.TagJSON)
	enc.RegisterEncoder(messages.EnumValue{}, encodeEnumValue)

	if log != nil {
		log = log.WithFields(map[string]any{"component": "httpclient"})
	}

	return &RequestBuilder{
		config:    cfg,
		logger:    log,
		validator: validation.NewValidator(),
		encoder:   enc,
	}
}

func encodeEnumValue(v reflect.Value) string {
	if !v.CanInterface() {
		return ""
	}
	ev, ok := v.Interface().(messages.EnumValue)
	if !ok || ev.IsZero() {
		return ""
	}
	return ev.JSONName()
}

// Build prepares the request for method. params are keyed by in-memory field
// name; custom names registered on method.RequestType are applied before the
// path is expanded and the query string is encoded.
//
// Failures are logged at warn level, interceptor failures at error level.
func (b *RequestBuilder) Build(ctx context.Context, method *MethodConfig, params map[string]any, body []byte) (*Request, error) {
	req, err := b.build(ctx, method, params, body)
	if err != nil {
		b.logFailure(ctx, method, err)
		return nil, err
	}
	return req, nil
}

func (b *RequestBuilder) build(ctx context.Context, method *MethodConfig, params map[string]any, body []byte) (*Request, error) {
	if method == nil {
		return nil, NewInvalidUserInputError("method config is required", "", nil)
	}
	if err := b.validator.Validate(method); err != nil {
		return nil, NewInvalidUserInputError("invalid method config "+method.ID, "", err)
	}

	for _, name := range MapParamNames(method.OrderedParams, method.RequestType) {
		if v, ok := params[name]; !ok || v == nil {
			return nil, NewInvalidUserInputError("missing required parameter", name, nil)
		}
	}

	wire := MapRequestParams(params, method.RequestType)

	pathValues := make(map[string]string, len(method.PathParams))
	for _, name := range method.PathParams {
		if v, ok := wire[name]; ok && v != nil {
			pathValues[name] = strings.Join(paramStrings(v), ",")
		}
		delete(wire, name)
	}

	path, err := ExpandRelativePath(method, pathValues)
	if err != nil {
		return nil, err
	}

	query, err := b.encodeQuery(method, wire)
	if err != nil {
		return nil, err
	}

	if err := b.checkAccept(method); err != nil {
		return nil, err
	}

	httpReq, err := b.newHTTPRequest(ctx, method.HTTPMethod, b.requestURL(path, query), body)
	if err != nil {
		return nil, err
	}
	traceID := b.setHeaders(ctx, httpReq, method, body)

	for _, interceptor := range b.config.RequestInterceptors {
		if err := interceptor(ctx, httpReq); err != nil {
			return nil, NewInterceptorError("request interceptor failed", "request", err)
		}
	}

	b.logRequest(method, httpReq, body, traceID)

	return &Request{
		MethodID: method.ID,
		Path:     path,
		Query:    query,
		TraceID:  traceID,
		Body:     body,
		HTTP:     httpReq,
	}, nil
}

// BuildFromStruct encodes a tagged request struct into parameters and builds
// the request from them. Field names come from json tags; enum values are
// written with their custom JSON names.
func (b *RequestBuilder) BuildFromStruct(ctx context.Context, method *MethodConfig, src any, body []byte) (*Request, error) {
	encoded := make(map[string][]string)
	if err := b.encoder.Encode(src, encoded); err != nil {
		err = NewInvalidUserInputError("cannot encode request parameters", "", err)
		b.logFailure(ctx, method, err)
		return nil, err
	}

	params := make(map[string]any, len(encoded))
	for name, values := range encoded {
		values = slices.DeleteFunc(values, func(v string) bool { return v == "" })
		switch len(values) {
		case 0:
		case 1:
			params[name] = values[0]
		default:
			params[name] = values
		}
	}
	return b.Build(ctx, method, params, body)
}

func (b *RequestBuilder) encodeQuery(method *MethodConfig, wire map[string]any) (url.Values, error) {
	query := url.Values{}
	names := make([]string, 0, len(wire))
	for name := range wire {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		value := wire[name]
		if value == nil {
			continue
		}
		if len(method.QueryParams) > 0 && !slices.Contains(method.QueryParams, name) {
			return nil, NewInvalidUserInputError("unknown query parameter for "+method.ID, name, nil)
		}
		for _, s := range paramStrings(value) {
			query.Add(name, s)
		}
	}
	return query, nil
}

func (b *RequestBuilder) checkAccept(method *MethodConfig) error {
	if b.config.ResponseType == "" || len(method.Accept) == 0 {
		return nil
	}
	ok, err := AcceptableMimeType(method.Accept, b.config.ResponseType)
	if err != nil {
		return err
	}
	if !ok {
		return NewGeneratedClientError(
			fmt.Sprintf("method %s cannot produce %s", method.ID, b.config.ResponseType),
			strings.Join(method.Accept, ", "))
	}
	return nil
}

func (b *RequestBuilder) requestURL(path string, query url.Values) string {
	u := path
	if b.config.RootURL != "" {
		u = strings.TrimSuffix(b.config.RootURL, "/") + "/" + strings.TrimPrefix(path, "/")
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (b *RequestBuilder) newHTTPRequest(ctx context.Context, method, target string, body []byte) (*nethttp.Request, error) {
	var reader io.Reader = nethttp.NoBody
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := nethttp.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, NewInvalidUserInputError("cannot create request for "+target, "", err)
	}
	return req, nil
}

func (b *RequestBuilder) setHeaders(ctx context.Context, req *nethttp.Request, method *MethodConfig, body []byte) string {
	for key, value := range b.config.DefaultHeaders {
		req.Header.Set(key, value)
	}

	// Method Accept wins; a default Accept header wins over ResponseType.
	switch {
	case len(method.Accept) > 0:
		req.Header.Set(headerAccept, strings.Join(method.Accept, ", "))
	case req.Header.Get(headerAccept) == "" && b.config.ResponseType != "":
		req.Header.Set(headerAccept, b.config.ResponseType)
	}

	if len(body) > 0 && req.Header.Get(headerContentType) == "" {
		req.Header.Set(headerContentType, jsonContentType)
	}
	if b.config.UserAgent != "" {
		req.Header.Set(headerUserAgent, b.config.UserAgent)
	}

	traceHeader := b.config.TraceIDHeader
	if traceHeader == "" {
		traceHeader = HeaderXRequestID
	}
	traceID := req.Header.Get(traceHeader)
	if traceID == "" {
		traceID = EnsureTraceID(ctx)
		req.Header.Set(traceHeader, traceID)
	}

	if b.config.EnableW3CTrace && req.Header.Get(HeaderTraceParent) == "" {
		traceParent, ok := apitrace.ParentFromContext(ctx)
		if !ok {
			traceParent = apitrace.GenerateTraceParent()
		}
		req.Header.Set(HeaderTraceParent, traceParent)
	}

	return traceID
}

// paramStrings renders a parameter value; slices and arrays other than
// []byte yield one string per element.
func paramStrings(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []byte:
		return []string{string(v)}
	case messages.EnumValue:
		return []string{v.JSONName()}
	case fmt.Stringer:
		return []string{v.String()}
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			out = append(out, paramStrings(rv.Index(i).Interface())...)
		}
		return out
	}
	return []string{fmt.Sprint(value)}
}
