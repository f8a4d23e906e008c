package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
)

type rejectedKind uint8

const (
	rejectedNone rejectedKind = iota
	rejectedRaw
	rejectedTyped
)

// RejectedValue holds either the raw input that could not be converted to the
// field type, or the typed value that broke a rule.
type RejectedValue struct {
	kind  rejectedKind
	raw   string
	value any
}

func RawValue(text string) RejectedValue {
	return RejectedValue{kind: rejectedRaw, raw: text}
}

func TypedValue(value any) RejectedValue {
	return RejectedValue{kind: rejectedTyped, value: value}
}

func (r RejectedValue) IsRaw() bool {
	return r.kind == rejectedRaw
}

func (r RejectedValue) IsZero() bool {
	return r.kind == rejectedNone
}

func (r RejectedValue) Raw() (string, bool) {
	return r.raw, r.kind == rejectedRaw
}

// Value returns the typed value with pointers dereferenced; nil pointers
// yield nil.
func (r RejectedValue) Value() any {
	if r.kind != rejectedTyped {
		return nil
	}
	return indirect(r.value)
}

// Interface returns what should be redisplayed to the user.
func (r RejectedValue) Interface() any {
	switch r.kind {
	case rejectedRaw:
		return r.raw
	case rejectedTyped:
		return indirect(r.value)
	default:
		return nil
	}
}

func (r RejectedValue) String() string {
	v := r.Interface()
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (r RejectedValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Interface())
}

func indirect(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
