package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Format substitutes {i} placeholders with args[i]. Placeholders that are not
// a valid index into args are left untouched.
func Format(template string, args []any) string {
	if !strings.Contains(template, "{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			b.WriteString(template[i:])
			break
		}
		open += i
		b.WriteString(template[i:open])

		end := strings.IndexByte(template[open:], '}')
		if end < 0 {
			b.WriteString(template[open:])
			break
		}
		end += open

		index, err := strconv.Atoi(template[open+1 : end])
		if err != nil {
			// not a placeholder; a real one may still follow inside the span
			b.WriteByte('{')
			i = open + 1
			continue
		}

		if index < 0 || index >= len(args) {
			b.WriteString(template[open : end+1])
		} else {
			b.WriteString(formatArgument(args[index]))
		}
		i = end + 1
	}

	return b.String()
}

func formatArgument(arg any) string {
	switch v := indirect(arg).(type) {
	case nil:
		return "null"
	case string:
		return v
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
