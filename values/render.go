package values

import (
	"fmt"
	"reflect"
)

// Render turns one field/value pair into its SQL expression fragment.
// Literal values (nil, bool, numeric) render directly and return a nil
// Parameter. Every other value renders as a named placeholder derived from
// the field name, returned together with the Parameter to bind.
func Render(ctx Context, field string, value any) (string, *Parameter) {
	if isNull(value) {
		return "NULL", nil
	}

	switch v := value.(type) {
	case bool:
		return boolToDecimal(v), nil
	case int:
		return quoteNumeric(fmt.Sprintf("%d", v)), nil
	case int8:
		return quoteNumeric(fmt.Sprintf("%d", v)), nil
	case int16:
		return quoteNumeric(fmt.Sprintf("%d", v)), nil
	case int32:
		return quoteNumeric(fmt.Sprintf("%d", v)), nil
	case int64:
		return quoteNumeric(fmt.Sprintf("%d", v)), nil
	case uint:
		return quoteNumeric(fmt.Sprintf("%d", v)), nil
	case uint8:
		return quoteNumeric(fmt.Sprintf("%d", v)), nil
	case uint16:
		return quoteNumeric(fmt.Sprintf("%d", v)), nil
	case uint32:
		return quoteNumeric(fmt.Sprintf("%d", v)), nil
	case uint64:
		return quoteNumeric(fmt.Sprintf("%d", v)), nil
	case float32:
		return quoteNumeric(fmt.Sprintf("%g", v)), nil
	case float64:
		return quoteNumeric(fmt.Sprintf("%g", v)), nil
	}

	name := Placeholder(ctx, field)
	return name, &Parameter{Name: name, Value: value}
}

// boolToDecimal is the single conversion used for booleans in both contexts.
// Renders unquoted: true as "1", false as "0".
func boolToDecimal(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// quoteNumeric wraps a numeric literal's decimal text in single quotes.
// Numbers are inlined as quoted strings rather than bound or emitted bare;
// MySQL coerces them back, so statements stay valid.
func quoteNumeric(text string) string {
	return "'" + text + "'"
}

// isNull reports whether value renders as the NULL keyword: a nil interface
// or a typed nil pointer, map, or slice.
func isNull(value any) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
