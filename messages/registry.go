package messages

import (
	"fmt"
	"maps"
	"sort"
	"sync"
)

// Registry indexes message and enum types by name. It is populated while a
// client package initializes and frozen before first use; lookups are safe
// for concurrent readers at any time.
type Registry struct {
	mu       sync.RWMutex
	messages map[string]*MessageType
	enums    map[string]*EnumType
	frozen   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		messages: make(map[string]*MessageType),
		enums:    make(map[string]*EnumType),
	}
}

// Register adds message types. Nested message and enum types referenced by
// their fields are registered too. A failed call registers nothing.
func (r *Registry) Register(types ...*MessageType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}
	batch := r.newRegistration()
	for _, mt := range types {
		if err := batch.addMessage(mt); err != nil {
			return err
		}
	}
	batch.commit()
	return nil
}

// RegisterEnum adds enum types. A failed call registers nothing.
func (r *Registry) RegisterEnum(types ...*EnumType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}
	batch := r.newRegistration()
	for _, et := range types {
		if err := batch.addEnum(et); err != nil {
			return err
		}
	}
	batch.commit()
	return nil
}

// registration stages the types of one call until all of them are accepted.
type registration struct {
	r        *Registry
	messages map[string]*MessageType
	enums    map[string]*EnumType
}

func (r *Registry) newRegistration() *registration {
	return &registration{
		r:        r,
		messages: make(map[string]*MessageType),
		enums:    make(map[string]*EnumType),
	}
}

func (b *registration) addMessage(mt *MessageType) error {
	if mt == nil {
		return fmt.Errorf("%w: nil message type", ErrInvalidDescriptor)
	}
	existing, ok := b.messages[mt.name]
	if !ok {
		existing, ok = b.r.messages[mt.name]
	}
	if ok {
		if existing == mt {
			return nil
		}
		return fmt.Errorf("%w: message type %s already registered", ErrDuplicateName, mt.name)
	}
	b.messages[mt.name] = mt

	for _, f := range mt.fields {
		switch f.Kind {
		case KindEnum:
			if err := b.addEnum(f.Enum); err != nil {
				return err
			}
		case KindMessage:
			if err := b.addMessage(f.Message); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *registration) addEnum(et *EnumType) error {
	if et == nil {
		return fmt.Errorf("%w: nil enum type", ErrInvalidDescriptor)
	}
	existing, ok := b.enums[et.name]
	if !ok {
		existing, ok = b.r.enums[et.name]
	}
	if ok {
		if existing == et {
			return nil
		}
		return fmt.Errorf("%w: enum type %s already registered", ErrDuplicateName, et.name)
	}
	b.enums[et.name] = et
	return nil
}

func (b *registration) commit() {
	maps.Copy(b.r.messages, b.messages)
	maps.Copy(b.r.enums, b.enums)
}

// Freeze rejects further registrations.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Message looks up a message type by name.
func (r *Registry) Message(name string) (*MessageType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mt, ok := r.messages[name]
	return mt, ok
}

// Enum looks up an enum type by name.
func (r *Registry) Enum(name string) (*EnumType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	et, ok := r.enums[name]
	return et, ok
}

// Enums returns all registered enum types keyed by name, suitable for Describe.
func (r *Registry) Enums() map[string]*EnumType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*EnumType, len(r.enums))
	for name, et := range r.enums {
		out[name] = et
	}
	return out
}

// MessageNames returns the registered message type names in sorted order.
func (r *Registry) MessageNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.messages))
	for name := range r.messages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
