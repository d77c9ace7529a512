package messages

import "errors"

// Sentinel errors returned while building or using descriptors. Returned
// errors wrap one of these so callers can match with errors.Is.
var (
	// ErrInvalidDescriptor indicates a structurally invalid descriptor (missing names, enum field without enum type)
	ErrInvalidDescriptor = errors.New("invalid descriptor")
	// ErrDuplicateName indicates two fields, values or mappings share a name or number
	ErrDuplicateName = errors.New("duplicate name")
	// ErrUnknownName indicates a custom mapping or lookup that names an undeclared field or value
	ErrUnknownName = errors.New("unknown name")
	// ErrNameCollision indicates a custom wire name that clashes with another field's or value's wire name
	ErrNameCollision = errors.New("wire name collision")
	// ErrRegistryFrozen indicates a registration attempt after Freeze
	ErrRegistryFrozen = errors.New("registry is frozen")
	// ErrUnknownEnumValue indicates a wire value that resolves to no member of the field's enum
	ErrUnknownEnumValue = errors.New("unknown enum value")
	// ErrInvalidValue indicates a wire value whose JSON type does not fit the field
	ErrInvalidValue = errors.New("invalid value")
)
