package messages

import "fmt"

// Kind is the declared value kind of a message field.
type Kind int

// Field kinds
const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindBytes
	KindEnum
	KindMessage
)

var kindNames = map[Kind]string{
	KindString:  "string",
	KindInt:     "int",
	KindFloat:   "float",
	KindBool:    "bool",
	KindBytes:   "bytes",
	KindEnum:    "enum",
	KindMessage: "message",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Field describes one field of a message type.
type Field struct {
	Name     string
	Number   int
	Kind     Kind
	Repeated bool
	// Enum is required for KindEnum fields.
	Enum *EnumType
	// Message is required for KindMessage fields.
	Message *MessageType
}

// MessageType describes a message and owns its custom field-name side table.
// It is immutable after construction; a nil *MessageType behaves as a message
// without fields or custom names.
type MessageType struct {
	name     string
	fields   []Field
	byName   map[string]int
	toJSON   map[string]string
	fromJSON map[string]string
}

// MessageOption configures a MessageType during construction.
type MessageOption func(*messageBuilder)

type messageBuilder struct {
	custom [][2]string
}

// WithCustomFieldName maps a field's in-memory name to a different wire name.
func WithCustomFieldName(field, jsonName string) MessageOption {
	return func(b *messageBuilder) {
		b.custom = append(b.custom, [2]string{field, jsonName})
	}
}

// NewMessageType builds a message type. Field names and numbers must be
// unique; enum and message fields must reference their types; custom names
// must target declared fields and must not collide with any other field's
// wire name.
func NewMessageType(name string, fields []Field, opts ...MessageOption) (*MessageType, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: message type name is required", ErrInvalidDescriptor)
	}

	mt := &MessageType{
		name:     name,
		fields:   make([]Field, len(fields)),
		byName:   make(map[string]int, len(fields)),
		toJSON:   make(map[string]string),
		fromJSON: make(map[string]string),
	}
	copy(mt.fields, fields)

	numbers := make(map[int]string, len(fields))
	for i, f := range mt.fields {
		if err := checkField(name, f); err != nil {
			return nil, err
		}
		if _, dup := mt.byName[f.Name]; dup {
			return nil, fmt.Errorf("%w: message %s declares field %s twice", ErrDuplicateName, name, f.Name)
		}
		if f.Number != 0 {
			if other, dup := numbers[f.Number]; dup {
				return nil, fmt.Errorf("%w: message %s fields %s and %s share number %d",
					ErrDuplicateName, name, other, f.Name, f.Number)
			}
			numbers[f.Number] = f.Name
		}
		mt.byName[f.Name] = i
	}

	b := &messageBuilder{}
	for _, opt := range opts {
		opt(b)
	}

	for _, mapping := range b.custom {
		if err := mt.addCustomName(mapping[0], mapping[1]); err != nil {
			return nil, err
		}
	}

	// Every field's effective wire name must be unique.
	seen := make(map[string]string, len(mt.fields))
	for _, f := range mt.fields {
		wire := mt.JSONName(f.Name)
		if other, dup := seen[wire]; dup {
			return nil, fmt.Errorf("%w: message %s fields %s and %s both use wire name %q",
				ErrNameCollision, name, other, f.Name, wire)
		}
		seen[wire] = f.Name
	}

	return mt, nil
}

// MustMessageType is like NewMessageType but panics on error.
func MustMessageType(name string, fields []Field, opts ...MessageOption) *MessageType {
	mt, err := NewMessageType(name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return mt
}

func checkField(message string, f Field) error {
	if f.Name == "" {
		return fmt.Errorf("%w: message %s has a field without a name", ErrInvalidDescriptor, message)
	}
	if f.Kind == KindEnum && f.Enum == nil {
		return fmt.Errorf("%w: enum field %s.%s has no enum type", ErrInvalidDescriptor, message, f.Name)
	}
	if f.Kind == KindMessage && f.Message == nil {
		return fmt.Errorf("%w: message field %s.%s has no message type", ErrInvalidDescriptor, message, f.Name)
	}
	return nil
}

func (m *MessageType) addCustomName(field, jsonName string) error {
	if _, ok := m.byName[field]; !ok {
		return fmt.Errorf("%w: message %s has no field %q", ErrUnknownName, m.name, field)
	}
	if jsonName == "" {
		return fmt.Errorf("%w: field %s.%s maps to an empty name", ErrInvalidDescriptor, m.name, field)
	}
	if _, ok := m.toJSON[field]; ok {
		return fmt.Errorf("%w: field %s.%s is already remapped", ErrDuplicateName, m.name, field)
	}
	if owner, taken := m.fromJSON[jsonName]; taken {
		return fmt.Errorf("%w: message %s wire name %q already used by %s", ErrNameCollision, m.name, jsonName, owner)
	}
	m.toJSON[field] = jsonName
	m.fromJSON[jsonName] = field
	return nil
}

// Name returns the message type name.
func (m *MessageType) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

// Fields returns a copy of the declared fields in declaration order.
func (m *MessageType) Fields() []Field {
	if m == nil {
		return nil
	}
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// Field looks up a field by in-memory name.
func (m *MessageType) Field(name string) (Field, bool) {
	if m == nil {
		return Field{}, false
	}
	i, ok := m.byName[name]
	if !ok {
		return Field{}, false
	}
	return m.fields[i], true
}

// CustomJSONName returns the custom wire name registered for a field, if any.
func (m *MessageType) CustomJSONName(field string) (string, bool) {
	if m == nil {
		return "", false
	}
	jsonName, ok := m.toJSON[field]
	return jsonName, ok
}

// JSONName returns the wire name of a field: custom when registered, else the field name.
func (m *MessageType) JSONName(field string) string {
	if jsonName, ok := m.CustomJSONName(field); ok {
		return jsonName
	}
	return field
}

// FieldForJSON resolves a custom wire name back to the in-memory field name.
// Only registered custom names resolve; ok is false otherwise.
func (m *MessageType) FieldForJSON(jsonName string) (string, bool) {
	if m == nil {
		return "", false
	}
	field, ok := m.fromJSON[jsonName]
	return field, ok
}
