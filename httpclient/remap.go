package httpclient

import "github.com/gaborage/go-apitools/messages"

// MapRequestParams renames request parameters from in-memory field names to
// the wire names registered on messageType.
//
// Keys with a custom JSON name are replaced by it; others are kept. Enum
// values (messages.EnumValue) become strings: the custom JSON name of the
// value in the field's declared enum when one is registered, otherwise the
// value's declared name. Values of fields not declared as enums use the
// custom name registered on the value's own enum type, as EncodeJSON does.
// All other values pass through unchanged.
func MapRequestParams(params map[string]any, messageType *messages.MessageType) map[string]any {
	out := make(map[string]any, len(params))
	for name, value := range params {
		if ev, ok := value.(messages.EnumValue); ok {
			value = enumParamName(messageType, name, ev)
		}
		out[messageType.JSONName(name)] = value
	}
	return out
}

func enumParamName(messageType *messages.MessageType, field string, ev messages.EnumValue) string {
	if f, ok := messageType.Field(field); ok && f.Kind == messages.KindEnum {
		if custom, ok := f.Enum.CustomJSONName(ev.Name); ok {
			return custom
		}
		return ev.Name
	}
	return ev.JSONName()
}

// MapParamNames renames wire-level parameter names back to in-memory field
// names using the custom JSON names registered on messageType. Names without
// a custom mapping are returned unchanged; order and length are preserved.
func MapParamNames(paramNames []string, messageType *messages.MessageType) []string {
	out := make([]string, len(paramNames))
	for i, name := range paramNames {
		if field, ok := messageType.FieldForJSON(name); ok {
			out[i] = field
		} else {
			out[i] = name
		}
	}
	return out
}
