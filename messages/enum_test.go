package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnEnum(t *testing.T) *EnumType {
	t.Helper()
	et, err := NewEnumType("AnEnum",
		map[string]int{"value_one": 1, "value_two": 2},
		WithCustomValueName("value_one", "ONE"))
	require.NoError(t, err)
	return et
}

func TestNewEnumType(t *testing.T) {
	et := newAnEnum(t)

	assert.Equal(t, "AnEnum", et.Name())

	values := et.Values()
	require.Len(t, values, 2)
	assert.Equal(t, "value_one", values[0].Name)
	assert.Equal(t, 1, values[0].Number)
	assert.Same(t, et, values[0].Type)
	assert.Equal(t, "value_two", values[1].Name)

	one, ok := et.Value("value_one")
	require.True(t, ok)
	assert.Equal(t, "value_one", one.String())
	assert.Equal(t, "ONE", one.JSONName())

	two, ok := et.ValueByNumber(2)
	require.True(t, ok)
	assert.Equal(t, "value_two", two.JSONName())

	_, ok = et.Value("value_three")
	assert.False(t, ok)
	_, ok = et.ValueByNumber(3)
	assert.False(t, ok)
}

func TestEnumTypeJSONNames(t *testing.T) {
	et := newAnEnum(t)

	custom, ok := et.CustomJSONName("value_one")
	assert.True(t, ok)
	assert.Equal(t, "ONE", custom)

	_, ok = et.CustomJSONName("value_two")
	assert.False(t, ok)
	assert.Equal(t, "value_two", et.JSONName("value_two"))

	v, ok := et.ValueForJSON("ONE")
	require.True(t, ok)
	assert.Equal(t, "value_one", v.Name)

	v, ok = et.ValueForJSON("value_two")
	require.True(t, ok)
	assert.Equal(t, "value_two", v.Name)

	_, ok = et.ValueForJSON("value_one")
	assert.False(t, ok, "declared name of a remapped value is not a wire name")

	_, ok = et.ValueForJSON("TWO")
	assert.False(t, ok)
}

func TestEnumValuesAreCopied(t *testing.T) {
	et := newAnEnum(t)

	values := et.Values()
	values[0].Name = "mutated"

	v, ok := et.ValueByNumber(1)
	require.True(t, ok)
	assert.Equal(t, "value_one", v.Name)
}

func TestNilEnumType(t *testing.T) {
	var et *EnumType

	_, ok := et.CustomJSONName("x")
	assert.False(t, ok)
	assert.Equal(t, "x", et.JSONName("x"))
	_, ok = et.ValueForJSON("x")
	assert.False(t, ok)
}

func TestEnumValueZero(t *testing.T) {
	assert.True(t, EnumValue{}.IsZero())
	assert.Equal(t, "loose", EnumValue{Name: "loose"}.JSONName())
	assert.False(t, newAnEnum(t).MustValue("value_two").IsZero())
}

func TestNewEnumTypeErrors(t *testing.T) {
	tests := []struct {
		name   string
		enum   string
		values map[string]int
		opts   []EnumOption
		target error
	}{
		{name: "missing_name", enum: "", values: map[string]int{"a": 1}, target: ErrInvalidDescriptor},
		{name: "empty_value_name", enum: "E", values: map[string]int{"": 1}, target: ErrInvalidDescriptor},
		{name: "duplicate_number", enum: "E", values: map[string]int{"a": 1, "b": 1}, target: ErrDuplicateName},
		{
			name: "unknown_value", enum: "E", values: map[string]int{"a": 1},
			opts: []EnumOption{WithCustomValueName("b", "B")}, target: ErrUnknownName,
		},
		{
			name: "empty_custom_name", enum: "E", values: map[string]int{"a": 1},
			opts: []EnumOption{WithCustomValueName("a", "")}, target: ErrInvalidDescriptor,
		},
		{
			name: "remapped_twice", enum: "E", values: map[string]int{"a": 1},
			opts: []EnumOption{WithCustomValueName("a", "A"), WithCustomValueName("a", "AA")}, target: ErrDuplicateName,
		},
		{
			name: "custom_names_collide", enum: "E", values: map[string]int{"a": 1, "b": 2},
			opts: []EnumOption{WithCustomValueName("a", "X"), WithCustomValueName("b", "X")}, target: ErrNameCollision,
		},
		{
			name: "custom_name_shadows_value", enum: "E", values: map[string]int{"a": 1, "b": 2},
			opts: []EnumOption{WithCustomValueName("a", "b")}, target: ErrNameCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			et, err := NewEnumType(tt.enum, tt.values, tt.opts...)
			assert.Nil(t, et)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestEnumSwapIsAllowed(t *testing.T) {
	et, err := NewEnumType("E", map[string]int{"a": 1, "b": 2},
		WithCustomValueName("a", "b"), WithCustomValueName("b", "a"))
	require.NoError(t, err)

	v, ok := et.ValueForJSON("b")
	require.True(t, ok)
	assert.Equal(t, "a", v.Name)
}

func TestMustEnumTypePanics(t *testing.T) {
	assert.Panics(t, func() { MustEnumType("", nil) })
	assert.Panics(t, func() { newAnEnum(t).MustValue("missing") })
	assert.NotPanics(t, func() { MustEnumType("E", map[string]int{"a": 1}) })
}
