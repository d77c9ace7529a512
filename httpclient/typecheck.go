package httpclient

import (
	"reflect"
	"slices"
	"strings"

	"github.com/gaborage/go-apitools/internal/reflection"
)

// TypeSet is a flattened, de-duplicated set of acceptable types. Build it
// once with Types and reuse it across Typecheck calls.
type TypeSet struct {
	types []reflect.Type
}

// Types flattens its arguments into a TypeSet. Each element may be a
// reflect.Type, a TypeSet, a []reflect.Type, a []any (nested arbitrarily), or
// a sample value whose dynamic type is taken. nil elements are ignored.
//
//	httpclient.Types(Class1{}, httpclient.Types(Class2{}, Class3{}))
//	httpclient.Types([]any{httpclient.TypeFor[Class1](), []any{Class2{}}}, Class3{})
func Types(elems ...any) TypeSet {
	var s TypeSet
	s.add(elems)
	return s
}

func (s *TypeSet) add(elems []any) {
	for _, elem := range elems {
		switch e := elem.(type) {
		case nil:
		case reflect.Type:
			s.addType(e)
		case TypeSet:
			for _, t := range e.types {
				s.addType(t)
			}
		case []reflect.Type:
			for _, t := range e {
				s.addType(t)
			}
		case []any:
			s.add(e)
		default:
			s.addType(reflect.TypeOf(e))
		}
	}
}

func (s *TypeSet) addType(t reflect.Type) {
	if t != nil && !slices.Contains(s.types, t) {
		s.types = append(s.types, t)
	}
}

// TypeFor returns the reflect.Type of T; use it for interface types, which
// cannot be named by a sample value.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Contains reports whether a value of type t is accepted by the set.
func (s TypeSet) Contains(t reflect.Type) bool {
	for _, want := range s.types {
		if reflection.Matches(t, want) {
			return true
		}
	}
	return false
}

// Types returns the flattened types in insertion order.
func (s TypeSet) Types() []reflect.Type {
	return slices.Clone(s.types)
}

// Len returns the number of distinct types in the set.
func (s TypeSet) Len() int {
	return len(s.types)
}

func (s TypeSet) String() string {
	return reflection.JoinTypeNames(s.types)
}

// Typecheck returns value unchanged when its dynamic type is in allowed (or
// implements an interface type in allowed), so it can be used inline:
//
//	req, err := httpclient.Typecheck(msg, httpclient.Types(&ListRequest{}))
//
// Otherwise it returns the zero value and a TypecheckError whose message is
// msg when given, or names the expected and actual types. No conversion is
// attempted.
func Typecheck[T any](value T, allowed TypeSet, msg ...string) (T, error) {
	actual := reflect.TypeOf(any(value))
	if allowed.Contains(actual) {
		return value, nil
	}

	var zero T
	return zero, NewTypecheckError(strings.Join(msg, " "), allowed.Types(), actual)
}
