package validation

import (
	"fmt"
	"strings"
)

// Violations collects the outcome of a single validation run. It is not safe
// for concurrent use and must not be shared between runs.
type Violations struct {
	objectName string
	fields     []*FieldViolation
	objects    []*ObjectViolation
	sealed     bool
}

func NewViolations(objectName string) *Violations {
	return &Violations{objectName: objectName}
}

func (v *Violations) ObjectName() string {
	return v.objectName
}

func (v *Violations) AddFieldViolation(violation *FieldViolation) {
	v.mustBeOpen()
	if violation.Object == "" {
		violation.Object = v.objectName
	}
	v.fields = append(v.fields, violation)
}

func (v *Violations) AddObjectViolation(violation *ObjectViolation) {
	v.mustBeOpen()
	if violation.Object == "" {
		violation.Object = v.objectName
	}
	v.objects = append(v.objects, violation)
}

// RejectValue records a rule breach for field. The field type used for key
// derivation is taken from the dynamic type of value. When field already
// failed binding, its raw input is kept as the rejected value.
func (v *Violations) RejectValue(field string, value any, code string, args ...any) {
	rejected := TypedValue(value)
	if failed := v.bindingFailureOf(field); failed != nil {
		rejected = failed.Rejected
	}

	v.AddFieldViolation(&FieldViolation{
		Field:     field,
		FieldType: TypeName(value),
		Rejected:  rejected,
		ErrorCode: code,
		Args:      args,
	})
}

func (v *Violations) bindingFailureOf(field string) *FieldViolation {
	for _, f := range v.fields {
		if f.Field == field && f.BindingFailure {
			return f
		}
	}
	return nil
}

func (v *Violations) Reject(code string, args ...any) {
	v.AddObjectViolation(&ObjectViolation{
		ErrorCode: code,
		Args:      args,
	})
}

// RejectBindingFailure records input for field that could not be converted to
// fieldType.
func (v *Violations) RejectBindingFailure(field, raw, fieldType string) {
	v.AddFieldViolation(&FieldViolation{
		Field:          field,
		FieldType:      fieldType,
		Rejected:       RawValue(raw),
		BindingFailure: true,
		ErrorCode:      CodeTypeMismatch,
		Args:           []any{field},
		Default:        fmt.Sprintf("Failed to convert value %q of field %s to %s", raw, field, fieldType),
	})
}

func (v *Violations) RejectIfEmptyOrWhitespace(field, value, code string, args ...any) {
	if strings.TrimSpace(value) == "" {
		v.RejectValue(field, value, code, args...)
	}
}

func (v *Violations) HasViolations() bool {
	return len(v.fields) > 0 || len(v.objects) > 0
}

func (v *Violations) HasFieldViolations(field string) bool {
	for _, f := range v.fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (v *Violations) Count() int {
	return len(v.fields) + len(v.objects)
}

func (v *Violations) FieldViolations() []*FieldViolation {
	out := make([]*FieldViolation, len(v.fields))
	copy(out, v.fields)
	return out
}

func (v *Violations) FieldViolationsOf(field string) []*FieldViolation {
	var out []*FieldViolation
	for _, f := range v.fields {
		if f.Field == field {
			out = append(out, f)
		}
	}
	return out
}

func (v *Violations) ObjectViolations() []*ObjectViolation {
	out := make([]*ObjectViolation, len(v.objects))
	copy(out, v.objects)
	return out
}

// All returns field violations followed by object violations, each in
// insertion order.
func (v *Violations) All() []Violation {
	out := make([]Violation, 0, v.Count())
	for _, f := range v.fields {
		out = append(out, f)
	}
	for _, o := range v.objects {
		out = append(out, o)
	}
	return out
}

// Seal marks the run as complete. Any later attempt to add a violation panics.
func (v *Violations) Seal() {
	v.sealed = true
}

func (v *Violations) Sealed() bool {
	return v.sealed
}

func (v *Violations) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d violation(s) on %s", v.Count(), v.objectName)
	for _, f := range v.fields {
		fmt.Fprintf(&b, "; field %s: %s", f.Field, f.ErrorCode)
	}
	for _, o := range v.objects {
		fmt.Fprintf(&b, "; object: %s", o.ErrorCode)
	}
	return b.String()
}

func (v *Violations) mustBeOpen() {
	if v.sealed {
		panic("validation: violation added to sealed set for " + v.objectName)
	}
}
