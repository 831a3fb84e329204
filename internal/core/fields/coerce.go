package fields

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// String renders scalar values as text; anything else is ""
func String(v any) string {
	switch x := unwrap(v).(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}

// StringOr returns String(v) or def when that is empty
func StringOr(v any, def string) string {
	if s := String(v); s != "" {
		return s
	}
	return def
}

// Int reads integral numbers and numeric strings
func Int(v any) (int, bool) {
	switch x := unwrap(v).(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), true
	case float32:
		return floatInt(float64(x))
	case float64:
		return floatInt(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), true
		}
		if f, err := x.Float64(); err == nil {
			return floatInt(f)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func floatInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// IntOr returns Int(v) or def
func IntOr(v any, def int) int {
	if n, ok := Int(v); ok {
		return n
	}
	return def
}

// Bool is true only for true and "true"
func Bool(v any) bool {
	switch x := unwrap(v).(type) {
	case bool:
		return x
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(x))
		return b
	}
	return false
}

// Map returns v as a plain map when it is record shaped
func Map(v any) map[string]any {
	switch x := unwrap(v).(type) {
	case map[string]any:
		return x
	case Mappable:
		return x.FieldMap()
	}
	return nil
}

// List returns v as []any when it is slice shaped
func List(v any) []any {
	switch x := unwrap(v).(type) {
	case nil:
		return nil
	case []any:
		return x
	case []map[string]any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out
	case []string:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Strings collects the text form of each element, skipping blanks
func Strings(v any) []string {
	items := List(v)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := String(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsEmpty is true for nil, false, empty strings, empty maps and empty lists
func IsEmpty(v any) bool {
	switch x := unwrap(v).(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case map[string]any:
		return len(x) == 0
	case []any:
		return len(x) == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	}
	return false
}
