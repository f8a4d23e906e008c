package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() MapCatalog {
	return MapCatalog{
		"required.item.itemName": "Item name is required.",
		"range.item.price":       "Price must be between {0} and {1}.",
		"max.item.quantity":      "Quantity may not exceed {0}.",
		"totalPriceMin":          "Price * quantity must be at least {0}. Current value is {1}.",
		"required":               "This field is required.",
	}
}

func TestMessageResolver_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		catalog      MapCatalog
		violation    Violation
		expectedKey  string
		expectedText string
	}{
		{
			name:    "most_specific_field_key",
			catalog: testCatalog(),
			violation: &FieldViolation{
				Object: "item", Field: "itemName", FieldType: "string", ErrorCode: "required",
			},
			expectedKey:  "required.item.itemName",
			expectedText: "Item name is required.",
		},
		{
			name:    "field_key_with_arguments",
			catalog: testCatalog(),
			violation: &FieldViolation{
				Object: "item", Field: "price", FieldType: "int", ErrorCode: "range", Args: []any{1000, 1000000},
			},
			expectedKey:  "range.item.price",
			expectedText: "Price must be between 1000 and 1000000.",
		},
		{
			name:    "falls_back_to_bare_code",
			catalog: testCatalog(),
			violation: &FieldViolation{
				Object: "order", Field: "customer", FieldType: "string", ErrorCode: "required",
			},
			expectedKey:  "required",
			expectedText: "This field is required.",
		},
		{
			name:    "bare_code_only_catalog",
			catalog: MapCatalog{"max": "At most {0}."},
			violation: &FieldViolation{
				Object: "item", Field: "quantity", FieldType: "int", ErrorCode: "max", Args: []any{9999},
			},
			expectedKey:  "max",
			expectedText: "At most 9999.",
		},
		{
			name:    "type_scoped_key",
			catalog: MapCatalog{"typeMismatch.int": "Please enter a number.", "typeMismatch": "Invalid value."},
			violation: &FieldViolation{
				Object: "item", Field: "price", FieldType: "int", ErrorCode: "typeMismatch", BindingFailure: true,
			},
			expectedKey:  "typeMismatch.int",
			expectedText: "Please enter a number.",
		},
		{
			name:    "object_violation",
			catalog: testCatalog(),
			violation: &ObjectViolation{
				Object: "item", ErrorCode: "totalPriceMin", Args: []any{10000, 5000},
			},
			expectedKey:  "totalPriceMin",
			expectedText: "Price * quantity must be at least 10000. Current value is 5000.",
		},
		{
			name:    "default_message_used_verbatim",
			catalog: MapCatalog{},
			violation: &FieldViolation{
				Object: "item", Field: "price", ErrorCode: "range", Args: []any{1}, Default: "Price {0} is off",
			},
			expectedKey:  "",
			expectedText: "Price {0} is off",
		},
		{
			name:    "placeholder_for_field",
			catalog: MapCatalog{},
			violation: &FieldViolation{
				Object: "item", Field: "price", FieldType: "int", ErrorCode: "range",
			},
			expectedKey:  "",
			expectedText: "??range.item.price??",
		},
		{
			name:    "placeholder_for_object",
			catalog: MapCatalog{},
			violation: &ObjectViolation{
				Object: "item", ErrorCode: "totalPriceMin",
			},
			expectedKey:  "",
			expectedText: "??totalPriceMin.item??",
		},
		{
			name:    "malformed_template_keeps_placeholder",
			catalog: MapCatalog{"totalPriceMin": "Needs {0}, has {1}, missing {5}"},
			violation: &ObjectViolation{
				Object: "item", ErrorCode: "totalPriceMin", Args: []any{10000, 5000},
			},
			expectedKey:  "totalPriceMin",
			expectedText: "Needs 10000, has 5000, missing {5}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewMessageResolver(tt.catalog, DefaultCodesResolver{})

			msg := resolver.Resolve(tt.violation)

			assert.Equal(t, tt.expectedKey, msg.Key)
			assert.Equal(t, tt.expectedText, msg.Text)
			assert.NotEmpty(t, msg.Text)
			assert.Equal(t, tt.expectedKey != "", msg.FromCatalog())
		})
	}
}

func TestMessageResolver_Idempotent(t *testing.T) {
	resolver := NewMessageResolver(testCatalog(), nil)
	violation := &ObjectViolation{Object: "item", ErrorCode: "totalPriceMin", Args: []any{10000, 5000}}

	first := resolver.Resolve(violation)
	second := resolver.Resolve(violation)

	assert.Equal(t, first, second)
}

func TestMessageResolver_PrefixedCodes(t *testing.T) {
	catalog := MapCatalog{"errors.required": "Required."}
	resolver := NewMessageResolver(catalog, DefaultCodesResolver{Prefix: "errors."})

	msg := resolver.Resolve(&FieldViolation{Object: "item", Field: "itemName", ErrorCode: "required"})

	assert.Equal(t, "errors.required", msg.Key)
	assert.Equal(t, "Required.", msg.Text)
}

func TestMessageResolver_ResolveAll(t *testing.T) {
	resolver := NewMessageResolver(testCatalog(), nil)

	violations := NewViolations("item")
	violations.RejectIfEmptyOrWhitespace("itemName", "  ", "required")
	violations.Reject("totalPriceMin", 10000, 5000)
	violations.RejectValue("quantity", 20000, "max", 9999)

	messages := resolver.ResolveAll(violations)

	require.Len(t, messages, 3)
	assert.Equal(t, "Item name is required.", messages[0].Text)
	assert.Equal(t, "Quantity may not exceed 9999.", messages[1].Text)
	assert.Equal(t, "Price * quantity must be at least 10000. Current value is 5000.", messages[2].Text)

	assert.Nil(t, resolver.ResolveAll(nil))
}

func TestResolve(t *testing.T) {
	msg := Resolve(&ObjectViolation{Object: "item", ErrorCode: "totalPriceMin", Args: []any{10000, 5000}}, testCatalog())

	assert.Equal(t, "totalPriceMin", msg.Key)
	assert.Contains(t, msg.Text, "10000")
	assert.Contains(t, msg.Text, "5000")
}

func TestNewMessageResolver_NilCatalog(t *testing.T) {
	assert.Panics(t, func() {
		NewMessageResolver(nil, nil)
	})
}

func TestMapCatalog_Merge(t *testing.T) {
	base := MapCatalog{"required": "Required.", "max": "Max {0}."}
	override := MapCatalog{"max": "No more than {0}."}

	merged := base.Merge(override)

	assert.Equal(t, 2, merged.Len())
	assert.Equal(t, "No more than {0}.", merged["max"])
	assert.Equal(t, "Max {0}.", base["max"], "merge must not modify the receiver")

	template, ok := merged.Lookup("required")
	assert.True(t, ok)
	assert.Equal(t, "Required.", template)

	_, ok = merged.Lookup("missing")
	assert.False(t, ok)
}
