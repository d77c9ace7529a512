package messages

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeJSON marshals message values keyed by in-memory field name, applying
// the custom field and enum value names of mt. EnumValue values are written as
// their wire names; nested message values (map[string]any) use the nested
// field's message type.
func EncodeJSON(values map[string]any, mt *MessageType) ([]byte, error) {
	return json.Marshal(toWire(values, mt))
}

// DecodeJSON unmarshals a JSON object into values keyed by in-memory field
// name. Custom wire names are resolved back through mt, enum fields become
// EnumValue, integer fields become int64 and float fields float64. Keys that
// match no field are kept as-is with json.Number for numbers.
func DecodeJSON(data []byte, mt *MessageType) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("decode %s: %w", mt.Name(), err)
	}
	return fromWire(obj, mt)
}

func toWire(values map[string]any, mt *MessageType) map[string]any {
	out := make(map[string]any, len(values))
	for name, value := range values {
		field, declared := mt.Field(name)
		out[mt.JSONName(name)] = wireValue(field, declared, value)
	}
	return out
}

func wireValue(field Field, declared bool, value any) any {
	switch v := value.(type) {
	case EnumValue:
		if declared && field.Kind == KindEnum {
			return field.Enum.JSONName(v.Name)
		}
		return v.JSONName()
	case []EnumValue:
		names := make([]string, len(v))
		for i, ev := range v {
			names[i] = wireValue(field, declared, ev).(string)
		}
		return names
	case map[string]any:
		if declared && field.Kind == KindMessage {
			return toWire(v, field.Message)
		}
		return v
	case []map[string]any:
		if declared && field.Kind == KindMessage {
			items := make([]map[string]any, len(v))
			for i, item := range v {
				items[i] = toWire(item, field.Message)
			}
			return items
		}
		return v
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = wireValue(field, declared, item)
		}
		return items
	default:
		return value
	}
}

func fromWire(obj map[string]any, mt *MessageType) (map[string]any, error) {
	out := make(map[string]any, len(obj))
	for key, raw := range obj {
		name := key
		if fieldName, ok := mt.FieldForJSON(key); ok {
			name = fieldName
		}

		field, declared := mt.Field(name)
		if !declared {
			out[name] = raw
			continue
		}

		value, err := fieldValue(field, raw)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", mt.Name(), name, err)
		}
		out[name] = value
	}
	return out, nil
}

func fieldValue(field Field, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if field.Repeated {
		items, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected array, got %T", ErrInvalidValue, raw)
		}
		return repeatedValue(field, items)
	}
	return scalarValue(field, raw)
}

func repeatedValue(field Field, items []any) (any, error) {
	switch field.Kind {
	case KindEnum:
		values := make([]EnumValue, len(items))
		for i, item := range items {
			v, err := scalarValue(field, item)
			if err != nil {
				return nil, err
			}
			values[i] = v.(EnumValue)
		}
		return values, nil
	case KindMessage:
		values := make([]map[string]any, len(items))
		for i, item := range items {
			v, err := scalarValue(field, item)
			if err != nil {
				return nil, err
			}
			values[i], _ = v.(map[string]any)
		}
		return values, nil
	default:
		values := make([]any, len(items))
		for i, item := range items {
			v, err := scalarValue(field, item)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil
	}
}

func scalarValue(field Field, raw any) (any, error) {
	switch field.Kind {
	case KindEnum:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string for enum %s, got %T", ErrUnknownEnumValue, field.Enum.Name(), raw)
		}
		ev, ok := field.Enum.ValueForJSON(s)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a member of %s", ErrUnknownEnumValue, s, field.Enum.Name())
		}
		return ev, nil
	case KindMessage:
		if raw == nil {
			return nil, nil
		}
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected object for %s, got %T", ErrInvalidValue, field.Message.Name(), raw)
		}
		return fromWire(obj, field.Message)
	case KindInt:
		if n, ok := raw.(json.Number); ok {
			v, err := n.Int64()
			if err != nil {
				return nil, fmt.Errorf("%w: %s is not an integer: %v", ErrInvalidValue, n, err)
			}
			return v, nil
		}
	case KindFloat:
		if n, ok := raw.(json.Number); ok {
			v, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("%w: %s is not a number: %v", ErrInvalidValue, n, err)
			}
			return v, nil
		}
	}
	return raw, nil
}
