package messages

import (
	"fmt"
	"sort"
)

// EnumValue is a single member of an EnumType.
type EnumValue struct {
	Type   *EnumType
	Name   string
	Number int
}

// String returns the declared name of the value.
func (v EnumValue) String() string {
	return v.Name
}

// IsZero reports whether v is the zero EnumValue (not bound to any enum type).
func (v EnumValue) IsZero() bool {
	return v.Type == nil && v.Name == ""
}

// JSONName returns the wire name of the value: its custom JSON name when one
// is registered on its enum type, otherwise its declared name.
func (v EnumValue) JSONName() string {
	if v.Type == nil {
		return v.Name
	}
	return v.Type.JSONName(v.Name)
}

// EnumType describes an enum and owns its custom value-name side table.
// It is immutable after construction.
type EnumType struct {
	name     string
	values   []EnumValue
	byName   map[string]int
	byNumber map[int]int
	toJSON   map[string]string
	fromJSON map[string]string
}

// EnumOption configures an EnumType during construction.
type EnumOption func(*enumBuilder)

type enumBuilder struct {
	custom [][2]string
}

// WithCustomValueName maps the declared value name to a different wire name.
func WithCustomValueName(value, jsonName string) EnumOption {
	return func(b *enumBuilder) {
		b.custom = append(b.custom, [2]string{value, jsonName})
	}
}

// NewEnumType builds an enum type from value name → number pairs. Values are
// ordered by number. Duplicate numbers, empty names, custom names for unknown
// values and custom names that collide with another value's wire name are rejected.
func NewEnumType(name string, values map[string]int, opts ...EnumOption) (*EnumType, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: enum type name is required", ErrInvalidDescriptor)
	}

	et := &EnumType{
		name:     name,
		values:   make([]EnumValue, 0, len(values)),
		byName:   make(map[string]int, len(values)),
		byNumber: make(map[int]int, len(values)),
		toJSON:   make(map[string]string),
		fromJSON: make(map[string]string),
	}

	for valueName, number := range values {
		if valueName == "" {
			return nil, fmt.Errorf("%w: enum %s has a value without a name", ErrInvalidDescriptor, name)
		}
		et.values = append(et.values, EnumValue{Type: et, Name: valueName, Number: number})
	}
	sort.Slice(et.values, func(i, j int) bool {
		if et.values[i].Number == et.values[j].Number {
			return et.values[i].Name < et.values[j].Name
		}
		return et.values[i].Number < et.values[j].Number
	})

	for i, v := range et.values {
		if prev, dup := et.byNumber[v.Number]; dup {
			return nil, fmt.Errorf("%w: enum %s values %s and %s share number %d",
				ErrDuplicateName, name, et.values[prev].Name, v.Name, v.Number)
		}
		et.byNumber[v.Number] = i
		et.byName[v.Name] = i
	}

	b := &enumBuilder{}
	for _, opt := range opts {
		opt(b)
	}

	for _, mapping := range b.custom {
		valueName, jsonName := mapping[0], mapping[1]
		if _, ok := et.byName[valueName]; !ok {
			return nil, fmt.Errorf("%w: enum %s has no value %q", ErrUnknownName, name, valueName)
		}
		if jsonName == "" {
			return nil, fmt.Errorf("%w: enum %s value %s maps to an empty name", ErrInvalidDescriptor, name, valueName)
		}
		if _, ok := et.toJSON[valueName]; ok {
			return nil, fmt.Errorf("%w: enum %s value %s is already remapped", ErrDuplicateName, name, valueName)
		}
		if owner, taken := et.fromJSON[jsonName]; taken {
			return nil, fmt.Errorf("%w: enum %s wire name %q already used by %s", ErrNameCollision, name, jsonName, owner)
		}
		et.toJSON[valueName] = jsonName
		et.fromJSON[jsonName] = valueName
	}

	// A wire name must not shadow another value's declared name.
	for jsonName, valueName := range et.fromJSON {
		if _, declared := et.byName[jsonName]; declared && jsonName != valueName {
			if _, remapped := et.toJSON[jsonName]; !remapped {
				return nil, fmt.Errorf("%w: enum %s wire name %q shadows value %s", ErrNameCollision, name, jsonName, jsonName)
			}
		}
	}

	return et, nil
}

// MustEnumType is like NewEnumType but panics on error. Intended for
// package-level descriptor declarations in generated code.
func MustEnumType(name string, values map[string]int, opts ...EnumOption) *EnumType {
	et, err := NewEnumType(name, values, opts...)
	if err != nil {
		panic(err)
	}
	return et
}

// Name returns the enum type name.
func (e *EnumType) Name() string {
	return e.name
}

// Values returns the values ordered by number.
func (e *EnumType) Values() []EnumValue {
	out := make([]EnumValue, len(e.values))
	copy(out, e.values)
	return out
}

// Value looks up a value by declared name.
func (e *EnumType) Value(name string) (EnumValue, bool) {
	i, ok := e.byName[name]
	if !ok {
		return EnumValue{}, false
	}
	return e.values[i], true
}

// MustValue is like Value but panics when the name is unknown.
func (e *EnumType) MustValue(name string) EnumValue {
	v, ok := e.Value(name)
	if !ok {
		panic(fmt.Sprintf("messages: enum %s has no value %q", e.name, name))
	}
	return v
}

// ValueByNumber looks up a value by number.
func (e *EnumType) ValueByNumber(number int) (EnumValue, bool) {
	i, ok := e.byNumber[number]
	if !ok {
		return EnumValue{}, false
	}
	return e.values[i], true
}

// CustomJSONName returns the custom wire name registered for a value, if any.
func (e *EnumType) CustomJSONName(value string) (string, bool) {
	if e == nil {
		return "", false
	}
	jsonName, ok := e.toJSON[value]
	return jsonName, ok
}

// JSONName returns the wire name for a value: custom when registered, else the value name.
func (e *EnumType) JSONName(value string) string {
	if jsonName, ok := e.CustomJSONName(value); ok {
		return jsonName
	}
	return value
}

// ValueForJSON resolves a wire name back to its enum value. Both custom names
// and unmapped declared names resolve.
func (e *EnumType) ValueForJSON(jsonName string) (EnumValue, bool) {
	if e == nil {
		return EnumValue{}, false
	}
	if valueName, ok := e.fromJSON[jsonName]; ok {
		return e.Value(valueName)
	}
	if _, remapped := e.toJSON[jsonName]; remapped {
		// The declared name of a remapped value is not a valid wire name.
		return EnumValue{}, false
	}
	return e.Value(jsonName)
}
