// Package binding turns raw request input into items. Input that cannot be
// converted is recorded as a binding failure instead of aborting the request.
package binding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"itemservice/internal/core/domain/item"
	"itemservice/internal/platform/validation"
)

var ErrMalformedBody = errors.New("malformed request body")

var intTypeName = validation.TypeNameOf(reflect.TypeFor[int]())

// Values holds the textual input per field. Absent keys are unset fields.
type Values map[string]string

// FromJSON reads a flat JSON object. Strings are taken verbatim, other
// scalars by their JSON text, null drops the key.
func FromJSON(body []byte) (Values, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	values := make(Values, len(fields))
	for key, raw := range fields {
		raw = bytes.TrimSpace(raw)
		switch {
		case bytes.Equal(raw, []byte("null")):
			continue
		case len(raw) > 0 && raw[0] == '"':
			var text string
			if err := json.Unmarshal(raw, &text); err != nil {
				return nil, fmt.Errorf("%w: field %s: %v", ErrMalformedBody, key, err)
			}
			values[key] = text
		default:
			values[key] = string(raw)
		}
	}
	return values, nil
}

// FromForm takes the first value of each form key.
func FromForm(form url.Values) Values {
	values := make(Values, len(form))
	for key, entries := range form {
		if len(entries) > 0 {
			values[key] = entries[0]
		}
	}
	return values
}

// BindItem builds an item from values. Conversion failures are added to
// violations and leave the field unset.
func BindItem(values Values, violations *validation.Violations) *item.Item {
	return item.New(
		values[item.FieldName],
		bindInt(values, item.FieldPrice, violations),
		bindInt(values, item.FieldQuantity, violations),
	)
}

func bindInt(values Values, field string, violations *validation.Violations) *int {
	raw, ok := values[field]
	if !ok {
		return nil
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		violations.RejectBindingFailure(field, raw, intTypeName)
		return nil
	}
	return &n
}
