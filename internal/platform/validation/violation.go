package validation

const CodeTypeMismatch = "typeMismatch"

type Violation interface {
	ObjectName() string
	Code() string
	Arguments() []any
	DefaultMessage() string
	Keys(resolver CodesResolver) []string
}

type FieldViolation struct {
	Object         string
	Field          string
	FieldType      string
	Rejected       RejectedValue
	BindingFailure bool
	ErrorCode      string
	Args           []any
	Default        string
}

var _ Violation = (*FieldViolation)(nil)

func (v *FieldViolation) ObjectName() string     { return v.Object }
func (v *FieldViolation) Code() string           { return v.ErrorCode }
func (v *FieldViolation) Arguments() []any       { return v.Args }
func (v *FieldViolation) DefaultMessage() string { return v.Default }

func (v *FieldViolation) Keys(resolver CodesResolver) []string {
	return resolver.FieldKeys(v.ErrorCode, v.Object, v.Field, v.FieldType)
}

type ObjectViolation struct {
	Object    string
	ErrorCode string
	Args      []any
	Default   string
}

var _ Violation = (*ObjectViolation)(nil)

func (v *ObjectViolation) ObjectName() string     { return v.Object }
func (v *ObjectViolation) Code() string           { return v.ErrorCode }
func (v *ObjectViolation) Arguments() []any       { return v.Args }
func (v *ObjectViolation) DefaultMessage() string { return v.Default }

func (v *ObjectViolation) Keys(resolver CodesResolver) []string {
	return resolver.ObjectKeys(v.ErrorCode, v.Object)
}
