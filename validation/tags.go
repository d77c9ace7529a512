// Package validation provides struct tag parsing and struct validation helpers
// for go-apitools. Tag parsing feeds message descriptor derivation; the
// validator wraps go-playground/validator for method configs and settings.
package validation

import (
	"reflect"
	"strings"
)

const (
	// TagJSON names the in-memory field name of a message field
	TagJSON = "json"
	// TagWire names the custom wire-level (JSON) name of a message field
	TagWire = "wire"
	// TagEnum names the enum type of an enum-valued message field
	TagEnum = "enum"
	// TagDoc carries human readable documentation for a field
	TagDoc = "doc"
)

// FieldTag represents parsed message tag information from a struct field
type FieldTag struct {
	GoName      string       // Go field name
	Index       int          // Field index within the struct
	JSONName    string       // In-memory field name (from json tag, falls back to GoName)
	WireName    string       // Custom wire name (from wire tag), empty when not remapped
	EnumName    string       // Enum type name (from enum tag)
	OmitEmpty   bool         // json tag carries omitempty
	Description string       // Documentation from doc tag
	Type        reflect.Type // Declared field type
}

// HasCustomName reports whether the field declares a wire name different from its JSON name.
func (f *FieldTag) HasCustomName() bool {
	return f.WireName != "" && f.WireName != f.JSONName
}

// ParseFieldTags extracts message field metadata from a struct type.
// Unexported fields and fields tagged json:"-" are skipped. Non-struct types
// yield an empty result.
func ParseFieldTags(t reflect.Type) []FieldTag {
	var tags []FieldTag

	if t == nil {
		return tags
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return tags
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if !field.IsExported() {
			continue
		}

		name, omitEmpty, skip := parseJSONTag(field.Tag.Get(TagJSON))
		if skip {
			continue
		}
		if name == "" {
			name = field.Name
		}

		tags = append(tags, FieldTag{
			GoName:      field.Name,
			Index:       i,
			JSONName:    name,
			WireName:    strings.TrimSpace(field.Tag.Get(TagWire)),
			EnumName:    strings.TrimSpace(field.Tag.Get(TagEnum)),
			OmitEmpty:   omitEmpty,
			Description: field.Tag.Get(TagDoc),
			Type:        field.Type,
		})
	}

	return tags
}

// parseJSONTag splits a json tag into its name and the omitempty flag.
// skip is true for json:"-".
func parseJSONTag(tag string) (name string, omitEmpty, skip bool) {
	if tag == "" {
		return "", false, false
	}

	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "", false, true
	}

	for _, part := range parts[1:] {
		if strings.TrimSpace(part) == "omitempty" {
			omitEmpty = true
		}
	}

	return parts[0], omitEmpty, false
}
