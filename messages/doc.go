// Package messages describes message and enum types for generated API clients.
//
// A MessageType lists its fields and owns an immutable side table of custom
// JSON names: the wire-level name a field uses when it differs from the
// in-memory name. An EnumType does the same for its values. Both are fully
// built by their constructors and never change afterwards, so they can be
// shared by concurrent readers without locking.
//
//	color := messages.MustEnumType("Color",
//		map[string]int{"red": 1, "dark_blue": 2},
//		messages.WithCustomValueName("dark_blue", "DARK_BLUE"))
//
//	item := messages.MustMessageType("Item", []messages.Field{
//		{Name: "item_id", Number: 1, Kind: messages.KindString},
//		{Name: "color", Number: 2, Kind: messages.KindEnum, Enum: color},
//	}, messages.WithCustomFieldName("item_id", "itemId"))
//
// EncodeJSON and DecodeJSON apply the side tables when messages cross the wire.
package messages
