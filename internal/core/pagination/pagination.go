// Package pagination translates Mastodon paging parameters to Relay cursors and back
package pagination

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// DefaultField tags cursors built from bare ids
const DefaultField = "id"

// CursorPrefix is how every encoded cursor starts: base64 of `{"`
const CursorPrefix = "eyJ"

var (
	// ErrInvalidCursor is returned for cursors that do not decode to a tagged id
	ErrInvalidCursor = errors.New("invalid cursor")
)

// ValidateLimit parses a page size; missing, unparseable and non positive values yield def,
// values above max clamp to max
func ValidateLimit(raw any, def, max int) int {
	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		n = int(v)
	case string:
		p, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		n = p
	default:
		return def
	}
	switch {
	case n <= 0:
		return def
	case n > max:
		return max
	}
	return n
}

// Page is a request for one page in one direction
type Page struct {
	Limit  int
	After  string
	Before string
}

// FromParams reads limit, max_id, since_id and min_id
// max_id pages towards older items; min_id pages towards newer ones and beats since_id
func FromParams(q url.Values, def, max int) Page {
	p := Page{Limit: ValidateLimit(q.Get("limit"), def, max)}
	if v := q.Get("max_id"); v != "" {
		p.After = EncodeCursorForGraphQL(v)
	}
	switch {
	case q.Get("min_id") != "":
		p.Before = EncodeCursorForGraphQL(q.Get("min_id"))
	case q.Get("since_id") != "":
		p.Before = EncodeCursorForGraphQL(q.Get("since_id"))
	}
	return p
}

// Variables renders the page as Relay connection arguments
func (p Page) Variables() map[string]any {
	vars := map[string]any{}
	if p.Before != "" && p.After == "" {
		vars["last"] = p.Limit
		vars["before"] = p.Before
		return vars
	}
	vars["first"] = p.Limit
	if p.After != "" {
		vars["after"] = p.After
	}
	return vars
}

// Cursor is a decoded position
type Cursor struct {
	Field string
	ID    string
}

// EncodeCursor wraps id in a field tagged structure and encodes it opaquely
func EncodeCursor(id, field string) string {
	if field == "" {
		field = DefaultField
	}
	b, err := sonic.Marshal(map[string]string{field: id})
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeCursor reverses EncodeCursor
func DecodeCursor(c string) (Cursor, error) {
	if !strings.HasPrefix(c, CursorPrefix) {
		return Cursor{}, ErrInvalidCursor
	}
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(c, "="))
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	var m map[string]string
	if err := sonic.Unmarshal(b, &m); err != nil || len(m) != 1 {
		return Cursor{}, ErrInvalidCursor
	}
	for f, id := range m {
		if f == "" || id == "" {
			return Cursor{}, ErrInvalidCursor
		}
		return Cursor{Field: f, ID: id}, nil
	}
	return Cursor{}, ErrInvalidCursor
}

// EncodeCursorForGraphQL passes a valid encoded cursor through unchanged and encodes anything else as an id
func EncodeCursorForGraphQL(v string) string {
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, CursorPrefix) {
		if _, err := DecodeCursor(v); err == nil {
			return v
		}
	}
	return EncodeCursor(v, DefaultField)
}
