package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectedValue(t *testing.T) {
	price := 500
	var missing *int

	tests := []struct {
		name          string
		value         RejectedValue
		expectedRaw   bool
		expectedZero  bool
		expectedValue any
		expectedText  string
		expectedJSON  string
	}{
		{
			name:         "zero",
			value:        RejectedValue{},
			expectedZero: true,
			expectedJSON: "null",
		},
		{
			name:          "raw_text",
			value:         RawValue("12a"),
			expectedRaw:   true,
			expectedValue: nil,
			expectedText:  "12a",
			expectedJSON:  `"12a"`,
		},
		{
			name:          "typed_pointer",
			value:         TypedValue(&price),
			expectedValue: 500,
			expectedText:  "500",
			expectedJSON:  "500",
		},
		{
			name:          "typed_nil_pointer",
			value:         TypedValue(missing),
			expectedValue: nil,
			expectedText:  "",
			expectedJSON:  "null",
		},
		{
			name:          "typed_string",
			value:         TypedValue(" "),
			expectedValue: " ",
			expectedText:  " ",
			expectedJSON:  `" "`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedRaw, tt.value.IsRaw())
			assert.Equal(t, tt.expectedZero, tt.value.IsZero())
			assert.Equal(t, tt.expectedValue, tt.value.Value())
			assert.Equal(t, tt.expectedText, tt.value.String())

			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expectedJSON, string(data))
		})
	}
}
