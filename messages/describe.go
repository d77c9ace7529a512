package messages

import (
	"fmt"
	"reflect"

	"github.com/gaborage/go-apitools/validation"
)

var (
	enumValueType = reflect.TypeFor[EnumValue]()
	bytesType     = reflect.TypeFor[[]byte]()
)

// Describe derives a MessageType from a tagged Go struct (or pointer to one).
//
//	type Request struct {
//		StrField  string             `json:"str_field" wire:"path_field"`
//		EnumField messages.EnumValue `json:"enum_field" enum:"AnEnum"`
//	}
//
// The json tag gives the in-memory field name, the wire tag an optional custom
// JSON name and the enum tag the name of an enum type in enums. Nested structs
// become message fields; slices become repeated fields. Field numbers follow
// declaration order starting at 1.
func Describe(v any, enums map[string]*EnumType) (*MessageType, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("%w: cannot describe nil", ErrInvalidDescriptor)
	}
	return describeType(t, enums, map[reflect.Type]bool{})
}

func describeType(t reflect.Type, enums map[string]*EnumType, inProgress map[reflect.Type]bool) (*MessageType, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidDescriptor, t)
	}
	if inProgress[t] {
		return nil, fmt.Errorf("%w: %s is recursive", ErrInvalidDescriptor, t)
	}
	inProgress[t] = true
	defer delete(inProgress, t)

	tags := validation.ParseFieldTags(t)
	fields := make([]Field, 0, len(tags))
	var opts []MessageOption

	for i, tag := range tags {
		field := Field{Name: tag.JSONName, Number: i + 1}

		ft := tag.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Slice && ft != bytesType {
			field.Repeated = true
			ft = ft.Elem()
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
		}

		if err := describeKind(&field, ft, tag, enums, inProgress); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), tag.GoName, err)
		}

		if tag.HasCustomName() {
			opts = append(opts, WithCustomFieldName(tag.JSONName, tag.WireName))
		}
		fields = append(fields, field)
	}

	return NewMessageType(t.Name(), fields, opts...)
}

func describeKind(field *Field, ft reflect.Type, tag validation.FieldTag, enums map[string]*EnumType, inProgress map[reflect.Type]bool) error {
	if ft == enumValueType {
		et, ok := enums[tag.EnumName]
		if !ok {
			return fmt.Errorf("%w: enum type %q", ErrUnknownName, tag.EnumName)
		}
		field.Kind = KindEnum
		field.Enum = et
		return nil
	}

	switch ft.Kind() {
	case reflect.String:
		field.Kind = KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		field.Kind = KindInt
	case reflect.Float32, reflect.Float64:
		field.Kind = KindFloat
	case reflect.Bool:
		field.Kind = KindBool
	case reflect.Slice:
		// only []byte reaches here
		field.Kind = KindBytes
	case reflect.Struct:
		nested, err := describeType(ft, enums, inProgress)
		if err != nil {
			return err
		}
		field.Kind = KindMessage
		field.Message = nested
	default:
		return fmt.Errorf("%w: unsupported field type %s", ErrInvalidDescriptor, ft)
	}
	return nil
}
