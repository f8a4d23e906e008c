package validation

import (
	"reflect"
	"strings"
)

const keySeparator = "."

type CodesResolver interface {
	ObjectKeys(code, objectName string) []string
	FieldKeys(code, objectName, field, fieldType string) []string
}

// DefaultCodesResolver derives lookup keys from the most specific to the
// bare error code. Prefix, when set, is prepended to every key.
type DefaultCodesResolver struct {
	Prefix string
}

var _ CodesResolver = DefaultCodesResolver{}

func (r DefaultCodesResolver) ObjectKeys(code, objectName string) []string {
	return []string{
		r.key(code, objectName),
		r.key(code),
	}
}

func (r DefaultCodesResolver) FieldKeys(code, objectName, field, fieldType string) []string {
	keys := make([]string, 0, 4)
	keys = append(keys,
		r.key(code, objectName, field),
		r.key(code, field),
	)
	if fieldType != "" {
		keys = append(keys, r.key(code, fieldType))
	}
	return append(keys, r.key(code))
}

func (r DefaultCodesResolver) key(parts ...string) string {
	return r.Prefix + strings.Join(parts, keySeparator)
}

// ResolveKeys returns the candidate keys for an object level code when field
// is empty, and for a field level code otherwise.
func ResolveKeys(code, objectName, field, fieldType string) []string {
	var resolver DefaultCodesResolver
	if field == "" {
		return resolver.ObjectKeys(code, objectName)
	}
	return resolver.FieldKeys(code, objectName, field, fieldType)
}

// TypeName returns the canonical name used in type-scoped keys: builtin
// types keep their name, named types are qualified with their package path.
// Pointers resolve to their element type. A nil interface yields "".
func TypeName(value any) string {
	if value == nil {
		return ""
	}
	return TypeNameOf(reflect.TypeOf(value))
}

func TypeNameOf(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + keySeparator + t.Name()
	}
	return t.String()
}
