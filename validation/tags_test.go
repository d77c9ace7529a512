package validation

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedMessage struct {
	StrField  string   `json:"str_field" wire:"path_field" doc:"Remapped string"`
	EnumField string   `json:"enum_field" enum:"AnEnum"`
	Count     int      `json:"count,omitempty"`
	Plain     bool
	Ignored   string   `json:"-"`
	Same      string   `json:"same" wire:"same"`
	Labels    []string `json:"labels"`
	hidden    string
}

func TestParseFieldTags(t *testing.T) {
	tags := ParseFieldTags(reflect.TypeFor[taggedMessage]())

	require.Len(t, tags, 6, "unexported and json:\"-\" fields are skipped")

	str := findTag(tags, "StrField")
	require.NotNil(t, str)
	assert.Equal(t, "str_field", str.JSONName)
	assert.Equal(t, "path_field", str.WireName)
	assert.Equal(t, "Remapped string", str.Description)
	assert.True(t, str.HasCustomName())
	assert.Equal(t, 0, str.Index)

	enum := findTag(tags, "EnumField")
	require.NotNil(t, enum)
	assert.Equal(t, "AnEnum", enum.EnumName)
	assert.False(t, enum.HasCustomName())

	count := findTag(tags, "Count")
	require.NotNil(t, count)
	assert.True(t, count.OmitEmpty)
	assert.Equal(t, reflect.TypeFor[int](), count.Type)

	plain := findTag(tags, "Plain")
	require.NotNil(t, plain)
	assert.Equal(t, "Plain", plain.JSONName, "missing json tag falls back to the Go name")

	same := findTag(tags, "Same")
	require.NotNil(t, same)
	assert.False(t, same.HasCustomName(), "identical wire name is not a remap")

	assert.Nil(t, findTag(tags, "Ignored"))
	assert.Nil(t, findTag(tags, "hidden"))
}

func TestParseFieldTagsPointerAndNonStruct(t *testing.T) {
	assert.Len(t, ParseFieldTags(reflect.TypeFor[*taggedMessage]()), 6)
	assert.Empty(t, ParseFieldTags(reflect.TypeFor[string]()))
	assert.Empty(t, ParseFieldTags(nil))
}

func TestParseJSONTag(t *testing.T) {
	tests := []struct {
		tag       string
		name      string
		omitEmpty bool
		skip      bool
	}{
		{tag: "", name: ""},
		{tag: "-", skip: true},
		{tag: "-,", name: "-"},
		{tag: "field", name: "field"},
		{tag: "field,omitempty", name: "field", omitEmpty: true},
		{tag: ",omitempty", name: "", omitEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			name, omitEmpty, skip := parseJSONTag(tt.tag)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.omitEmpty, omitEmpty)
			assert.Equal(t, tt.skip, skip)
		})
	}
}

func findTag(tags []FieldTag, goName string) *FieldTag {
	for i := range tags {
		if tags[i].GoName == goName {
			return &tags[i]
		}
	}
	return nil
}
