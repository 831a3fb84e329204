package fields

import (
	"reflect"
	"strings"
	"time"
)

// Mappable is implemented by typed records that can present themselves as a plain map
type Mappable interface {
	FieldMap() map[string]any
}

// FlattenOptions controls DeepToMap
type FlattenOptions struct {
	// FilterNils drops map entries and list elements that flatten to nil
	FilterNils bool

	// DropUnknown turns structs that are not Mappable into nil
	DropUnknown bool
}

const maxDepth = 64

// DeepToMap converts nested records into plain maps and slices so they serialize predictably
// sentinels become nil, times become ISO strings and keys prefixed "__" are dropped
func DeepToMap(v any, opts FlattenOptions) any {
	return flatten(v, opts, 0)
}

func flatten(v any, opts FlattenOptions, depth int) any {
	if depth > maxDepth {
		return nil
	}
	v = unwrap(v)
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time, *time.Time:
		return FormatDatetime(x)
	case string, bool, int, int32, int64, uint, uint32, uint64, float32, float64:
		return x
	case map[string]any:
		return flattenMap(x, opts, depth)
	case Mappable:
		return flattenMap(x.FieldMap(), opts, depth)
	case []any:
		out := make([]any, 0, len(x))
		for i := range x {
			out = appendElem(out, flatten(x[i], opts, depth+1), opts)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = appendElem(out, flatten(rv.Index(i).Interface(), opts, depth+1), opts)
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return flattenMap(m, opts, depth)
	case reflect.Pointer:
		return flatten(rv.Elem().Interface(), opts, depth+1)
	case reflect.Struct:
		if opts.DropUnknown {
			return nil
		}
	}
	return v
}

func flattenMap(m map[string]any, opts FlattenOptions, depth int) map[string]any {
	out := make(map[string]any, len(m))
	for k, val := range m {
		if strings.HasPrefix(k, "__") {
			continue
		}
		fv := flatten(val, opts, depth+1)
		if fv == nil && opts.FilterNils {
			continue
		}
		out[k] = fv
	}
	return out
}

// appendElem appends a flattened list element; FilterNils drops nil ones
func appendElem(out []any, v any, opts FlattenOptions) []any {
	if v == nil && opts.FilterNils {
		return out
	}
	return append(out, v)
}
