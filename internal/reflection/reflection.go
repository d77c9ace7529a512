// Package reflection provides internal helpers for naming and comparing types
// in error messages produced by go-apitools.
package reflection

import (
	"reflect"
	"strings"
)

// GetTypeName returns the fully qualified type name.
// Pointer types keep their leading '*' so "*pkg.T" and "pkg.T" stay distinguishable.
func GetTypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	if t.Kind() == reflect.Pointer {
		return "*" + GetTypeName(t.Elem())
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}

// JoinTypeNames renders a list of types as "a, b or c" using fully qualified names.
func JoinTypeNames(types []reflect.Type) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, GetTypeName(t))
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}

// Matches reports whether actual is allowed by want: identical types match,
// and an interface type matches every type implementing it.
func Matches(actual, want reflect.Type) bool {
	if actual == nil || want == nil {
		return false
	}
	if actual == want {
		return true
	}
	return want.Kind() == reflect.Interface && actual.Implements(want)
}
