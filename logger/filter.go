package logger

import (
	"net/url"
	"reflect"
	"strings"
	"unsafe"
)

const (
	// DefaultMaxDepth is the default maximum recursion depth for filtering
	DefaultMaxDepth = 8
	// DefaultMaskValue replaces sensitive values
	DefaultMaskValue = "***"
)

// FilterConfig defines the configuration for sensitive data filtering
type FilterConfig struct {
	// SensitiveFields contains field name fragments that should be masked in logs.
	// Matching is case-insensitive and by substring.
	SensitiveFields []string
	// MaskValue is the value used to replace sensitive data (default: "***")
	MaskValue string
}

// DefaultFilterConfig returns a configuration covering credentials that show
// up in API requests: auth headers, API keys, tokens and cookies.
func DefaultFilterConfig() *FilterConfig {
	return &FilterConfig{
		SensitiveFields: []string{
			"password", "passwd", "secret",
			"key", "api_key", "apikey",
			"token", "access_token", "refresh_token",
			"auth", "authorization", "cookie",
			"credential", "credentials",
		},
		MaskValue: DefaultMaskValue,
	}
}

// SensitiveDataFilter masks values whose field names look sensitive
type SensitiveDataFilter struct {
	config *FilterConfig
}

// NewSensitiveDataFilter creates a new filter with the given configuration
func NewSensitiveDataFilter(config *FilterConfig) *SensitiveDataFilter {
	if config == nil {
		config = DefaultFilterConfig()
	}
	if config.MaskValue == "" {
		config.MaskValue = DefaultMaskValue
	}
	return &SensitiveDataFilter{config: config}
}

// FilterString filters sensitive data from string values. URLs keep their
// structure with only the password masked.
func (f *SensitiveDataFilter) FilterString(key, value string) string {
	if f.isSensitiveField(key) {
		return f.maskString(value)
	}
	return value
}

// FilterValue filters sensitive data from any value. Maps and structs are
// walked up to DefaultMaxDepth levels; structs come back as maps keyed by
// their json names.
func (f *SensitiveDataFilter) FilterValue(key string, value any) any {
	return f.filterValue(key, value, make(map[uintptr]struct{}), DefaultMaxDepth)
}

// FilterFields filters a map of fields for sensitive data
func (f *SensitiveDataFilter) FilterFields(fields map[string]any) map[string]any {
	filtered := make(map[string]any, len(fields))
	for key, value := range fields {
		filtered[key] = f.FilterValue(key, value)
	}
	return filtered
}

func (f *SensitiveDataFilter) filterValue(key string, value any, visited map[uintptr]struct{}, depth int) any {
	if f.isSensitiveField(key) {
		return f.config.MaskValue
	}
	if value == nil || depth <= 0 {
		return value
	}

	switch v := value.(type) {
	case map[string]any:
		filtered := make(map[string]any, len(v))
		for k, item := range v {
			filtered[k] = f.filterValue(k, item, visited, depth-1)
		}
		return filtered
	case map[string]string:
		filtered := make(map[string]any, len(v))
		for k, item := range v {
			filtered[k] = f.filterValue(k, item, visited, depth-1)
		}
		return filtered
	case map[string][]string:
		filtered := make(map[string]any, len(v))
		for k, item := range v {
			filtered[k] = f.filterValue(k, item, visited, depth-1)
		}
		return filtered
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return f.filterSlice(key, rv, visited, depth)
	case reflect.Struct:
		return f.filterStruct(value, visited, depth)
	case reflect.Pointer:
		if !rv.IsNil() && rv.Type().Elem().Kind() == reflect.Struct {
			return f.filterStruct(value, visited, depth)
		}
	}
	return value
}

func (f *SensitiveDataFilter) filterSlice(key string, rv reflect.Value, visited map[uintptr]struct{}, depth int) any {
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return rv.Interface()
	}
	if rv.CanAddr() {
		ptr := uintptr(unsafe.Pointer(rv.UnsafeAddr()))
		if _, seen := visited[ptr]; seen {
			return rv.Interface()
		}
		visited[ptr] = struct{}{}
		defer delete(visited, ptr)
	}

	filtered := make([]any, rv.Len())
	changed := false
	for i := range rv.Len() {
		elem := rv.Index(i).Interface()
		filtered[i] = f.filterValue(key, elem, visited, depth-1)
		if isStructType(rv.Index(i).Type()) || !reflect.DeepEqual(filtered[i], elem) {
			changed = true
		}
	}
	if !changed {
		return rv.Interface()
	}
	return filtered
}

func (f *SensitiveDataFilter) filterStruct(value any, visited map[uintptr]struct{}, depth int) any {
	rv := reflect.ValueOf(value)
	var ptr uintptr
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return value
		}
		if ptr == 0 {
			ptr = rv.Pointer()
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return value
	}
	if ptr != 0 {
		if _, seen := visited[ptr]; seen {
			return value
		}
		visited[ptr] = struct{}{}
		defer delete(visited, ptr)
	}

	rt := rv.Type()
	result := make(map[string]any, rv.NumField())
	for i := range rv.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonFieldName(&field)
		if name == "" {
			continue
		}
		result[name] = f.filterValue(name, rv.Field(i).Interface(), visited, depth-1)
	}
	return result
}

func isStructType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct || (t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct)
}

// jsonFieldName returns the json tag name, the Go name when untagged, or ""
// for json:"-".
func jsonFieldName(field *reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

func (f *SensitiveDataFilter) isSensitiveField(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	for _, sensitive := range f.config.SensitiveFields {
		if strings.Contains(lower, strings.ToLower(sensitive)) {
			return true
		}
	}
	return false
}

func (f *SensitiveDataFilter) maskString(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return f.maskURL(value)
	}
	return f.config.MaskValue
}

// maskURL masks the password of a URL's user info, keeping everything else.
// URLs without a password are returned unchanged.
func (f *SensitiveDataFilter) maskURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return f.config.MaskValue
	}
	if parsed.User == nil {
		return raw
	}
	if _, hasPassword := parsed.User.Password(); !hasPassword {
		return raw
	}

	var b strings.Builder
	b.WriteString(parsed.Scheme)
	b.WriteString("://")
	b.WriteString(parsed.User.Username())
	b.WriteByte(':')
	b.WriteString(f.config.MaskValue)
	b.WriteByte('@')
	b.WriteString(parsed.Host)
	b.WriteString(parsed.EscapedPath())
	if parsed.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(parsed.RawQuery)
	}
	if parsed.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(parsed.Fragment)
	}
	return b.String()
}
