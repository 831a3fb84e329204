package fields

import (
	"strings"
	"time"
)

// ISOLayout is the millisecond UTC layout Mastodon clients expect
const ISOLayout = "2006-01-02T15:04:05.000Z"

var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// FormatDatetime renders timestamps as ISO 8601 UTC with milliseconds
// nil and empty strings yield nil, unparseable strings pass through unchanged
// and any other type yields nil
func FormatDatetime(v any) any {
	switch x := unwrap(v).(type) {
	case nil:
		return nil
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return x.UTC().Format(ISOLayout)
	case *time.Time:
		return FormatDatetime(*x)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		if t, ok := ParseTime(s); ok {
			return t.UTC().Format(ISOLayout)
		}
		return x
	}
	return nil
}

// ParseTime accepts RFC 3339 and the naive forms databases emit, naive values are UTC
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
