// Package fields reads values out of records whose shape depends on where they came from
//
// GraphQL responses arrive as maps keyed by camelCase aliases, ORM rows as snake_case
// columns or typed structs. Every accessor here treats a missing key, an unloaded
// association and a nil value the same way: as no value
package fields

import (
	"strings"
	"unicode"
)

// Getter is implemented by typed records that expose their fields by name
type Getter interface {
	Field(key string) (any, bool)
}

// Accessor extracts one candidate value from a record
type Accessor func(src any) any

// Get returns the value stored under key, trying its camelCase and snake_case spellings
// dotted keys walk nested records, so "profile.name" reads src.profile.name
// non record input yields nil
func Get(src any, key string) any {
	if strings.IndexByte(key, '.') >= 0 {
		return Path(strings.Split(key, ".")...)(src)
	}
	return lookup(src, key)
}

// GetFields returns the first non nil value among keys
func GetFields(src any, keys ...string) any {
	for _, k := range keys {
		if v := Get(src, k); v != nil {
			return v
		}
	}
	return nil
}

// Has reports whether any spelling of key is present on src, even with a nil value
// inline flags rely on presence rather than truthiness
func Has(src any, key string) bool {
	src = unwrap(src)
	for _, k := range variants(key) {
		if _, ok := raw(src, k); ok {
			return true
		}
	}
	return false
}

// Key builds an accessor for a single key
func Key(key string) Accessor {
	return func(src any) any { return Get(src, key) }
}

// Path builds an accessor that walks keys in order
func Path(keys ...string) Accessor {
	return func(src any) any {
		cur := src
		for _, k := range keys {
			if cur = lookup(cur, k); cur == nil {
				return nil
			}
		}
		return cur
	}
}

// First returns the first non nil result among accessors
func First(src any, accessors ...Accessor) any {
	for _, a := range accessors {
		if a == nil {
			continue
		}
		if v := a(src); v != nil {
			return v
		}
	}
	return nil
}

func lookup(src any, key string) any {
	src = unwrap(src)
	if src == nil {
		return nil
	}
	for _, k := range variants(key) {
		if v, ok := raw(src, k); ok {
			if v = unwrap(v); v != nil {
				return v
			}
		}
	}
	return nil
}

func raw(src any, key string) (any, bool) {
	switch s := src.(type) {
	case map[string]any:
		v, ok := s[key]
		return v, ok
	case map[string]string:
		v, ok := s[key]
		return v, ok
	case Getter:
		return s.Field(key)
	case Mappable:
		v, ok := s.FieldMap()[key]
		return v, ok
	}
	return nil, false
}

// variants returns key plus its camelCase and snake_case spellings without duplicates
func variants(key string) []string {
	out := []string{key}
	if c := camel(key); c != key {
		out = append(out, c)
	}
	if s := snake(key); s != key && (len(out) == 1 || s != out[1]) {
		out = append(out, s)
	}
	return out
}

func camel(s string) string {
	if strings.IndexByte(s, '_') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	up := false
	for i, r := range s {
		if r == '_' && i > 0 {
			up = true
			continue
		}
		if up {
			b.WriteRune(unicode.ToUpper(r))
			up = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func snake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
