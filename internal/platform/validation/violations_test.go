package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ViolationsTestSuite struct {
	suite.Suite
	violations *Violations
}

func (s *ViolationsTestSuite) SetupTest() {
	s.violations = NewViolations("item")
}

func (s *ViolationsTestSuite) TestNewViolations_Empty() {
	s.Assert().Equal("item", s.violations.ObjectName())
	s.Assert().False(s.violations.HasViolations())
	s.Assert().Equal(0, s.violations.Count())
	s.Assert().Empty(s.violations.All())
	s.Assert().False(s.violations.Sealed())
}

func (s *ViolationsTestSuite) TestRejectValue() {
	price := 500
	s.violations.RejectValue("price", &price, "range", 1000, 1000000)

	fields := s.violations.FieldViolations()
	s.Require().Len(fields, 1)

	v := fields[0]
	s.Assert().Equal("item", v.Object)
	s.Assert().Equal("price", v.Field)
	s.Assert().Equal("int", v.FieldType)
	s.Assert().Equal("range", v.ErrorCode)
	s.Assert().Equal([]any{1000, 1000000}, v.Args)
	s.Assert().False(v.BindingFailure)
	s.Assert().Equal(500, v.Rejected.Value())
	s.Assert().Empty(v.Default)
}

func (s *ViolationsTestSuite) TestReject() {
	s.violations.Reject("totalPriceMin", 10000, 5000)

	objects := s.violations.ObjectViolations()
	s.Require().Len(objects, 1)
	s.Assert().Equal("item", objects[0].Object)
	s.Assert().Equal("totalPriceMin", objects[0].ErrorCode)
	s.Assert().Equal([]any{10000, 5000}, objects[0].Args)
	s.Assert().Empty(s.violations.FieldViolations())
}

func (s *ViolationsTestSuite) TestRejectBindingFailure() {
	s.violations.RejectBindingFailure("quantity", "abc", "int")

	fields := s.violations.FieldViolationsOf("quantity")
	s.Require().Len(fields, 1)

	v := fields[0]
	s.Assert().True(v.BindingFailure)
	s.Assert().Equal(CodeTypeMismatch, v.ErrorCode)
	s.Assert().Equal("int", v.FieldType)
	raw, ok := v.Rejected.Raw()
	s.Assert().True(ok)
	s.Assert().Equal("abc", raw)
	s.Assert().Equal([]any{"quantity"}, v.Args)
	s.Assert().Contains(v.Default, `"abc"`)
}

func (s *ViolationsTestSuite) TestRejectValue_KeepsRawInputAfterBindingFailure() {
	s.violations.RejectBindingFailure("price", "12.5", "int")
	s.violations.RejectValue("price", (*int)(nil), "range", 1000, 1000000)
	s.violations.RejectValue("quantity", (*int)(nil), "max", 9999)

	price := s.violations.FieldViolationsOf("price")
	s.Require().Len(price, 2)
	raw, ok := price[1].Rejected.Raw()
	s.Assert().True(ok)
	s.Assert().Equal("12.5", raw)
	s.Assert().False(price[1].BindingFailure)
	s.Assert().Equal("int", price[1].FieldType)

	quantity := s.violations.FieldViolationsOf("quantity")
	s.Require().Len(quantity, 1)
	s.Assert().True(quantity[0].Rejected.IsZero())
}

func (s *ViolationsTestSuite) TestRejectIfEmptyOrWhitespace() {
	tests := []struct {
		name     string
		value    string
		rejected bool
	}{
		{name: "empty", value: "", rejected: true},
		{name: "whitespace", value: " \t\n", rejected: true},
		{name: "text", value: "Mouse", rejected: false},
		{name: "padded_text", value: "  Mouse ", rejected: false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			violations := NewViolations("item")
			violations.RejectIfEmptyOrWhitespace("itemName", tt.value, "required")

			s.Assert().Equal(tt.rejected, violations.HasFieldViolations("itemName"))
			if tt.rejected {
				v := violations.FieldViolations()[0]
				s.Assert().Equal("string", v.FieldType)
				s.Assert().Equal(tt.value, v.Rejected.Value())
			}
		})
	}
}

func (s *ViolationsTestSuite) TestInsertionOrder() {
	s.violations.Reject("first")
	s.violations.RejectValue("b", 1, "second")
	s.violations.Reject("third")
	s.violations.RejectValue("a", 2, "fourth")

	all := s.violations.All()
	s.Require().Len(all, 4)

	codes := make([]string, len(all))
	for i, v := range all {
		codes[i] = v.Code()
	}
	s.Assert().Equal([]string{"second", "fourth", "first", "third"}, codes)
	s.Assert().Equal(4, s.violations.Count())
}

func (s *ViolationsTestSuite) TestExplicitObjectNameIsKept() {
	s.violations.AddFieldViolation(&FieldViolation{Object: "other", Field: "x", ErrorCode: "required"})
	s.violations.AddObjectViolation(&ObjectViolation{ErrorCode: "global"})

	s.Assert().Equal("other", s.violations.FieldViolations()[0].Object)
	s.Assert().Equal("item", s.violations.ObjectViolations()[0].Object)
}

func (s *ViolationsTestSuite) TestAccessorsReturnCopies() {
	s.violations.RejectValue("price", 1, "range")

	fields := s.violations.FieldViolations()
	fields[0] = nil

	s.Assert().NotNil(s.violations.FieldViolations()[0])
}

func (s *ViolationsTestSuite) TestSeal() {
	s.violations.Reject("totalPriceMin")
	s.violations.Seal()

	s.Assert().True(s.violations.Sealed())
	s.Assert().Panics(func() { s.violations.Reject("late") })
	s.Assert().Panics(func() { s.violations.RejectValue("price", 1, "late") })
	s.Assert().Equal(1, s.violations.Count())
}

func (s *ViolationsTestSuite) TestString() {
	s.violations.RejectValue("price", 1, "range")
	s.violations.Reject("totalPriceMin")

	s.Assert().Equal("2 violation(s) on item; field price: range; object: totalPriceMin", s.violations.String())
}

func TestViolationsTestSuite(t *testing.T) {
	suite.Run(t, new(ViolationsTestSuite))
}
