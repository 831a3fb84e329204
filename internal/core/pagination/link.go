package pagination

import (
	"fmt"
	"net/url"
	"strings"

	"mastoshim/internal/core/fields"
)

// PageInfo is the Relay page info of a connection
type PageInfo struct {
	StartCursor     string
	EndCursor       string
	HasNextPage     bool
	HasPreviousPage bool
}

// LinkHeader builds an RFC 5988 Link value; next pages with max_id=end, prev with min_id=start
func LinkHeader(base *url.URL, info PageInfo) string {
	if base == nil {
		return ""
	}
	var parts []string
	if info.EndCursor != "" {
		parts = append(parts, fmt.Sprintf(`<%s>; rel="next"`, withParam(base, "max_id", info.EndCursor)))
	}
	if info.StartCursor != "" {
		parts = append(parts, fmt.Sprintf(`<%s>; rel="prev"`, withParam(base, "min_id", info.StartCursor)))
	}
	return strings.Join(parts, ", ")
}

func withParam(base *url.URL, key, val string) string {
	u := *base
	q := u.Query()
	for _, k := range []string{"max_id", "min_id", "since_id"} {
		q.Del(k)
	}
	q.Set(key, val)
	u.RawQuery = q.Encode()
	return u.String()
}

// FromConnection reads nodes and page info from a Relay connection;
// edges[].node and nodes[] are both accepted
func FromConnection(conn any) ([]any, PageInfo) {
	var nodes []any
	if edges := fields.List(fields.Get(conn, "edges")); edges != nil {
		for _, e := range edges {
			if n := fields.Get(e, "node"); n != nil {
				nodes = append(nodes, n)
			}
		}
	} else {
		nodes = fields.List(fields.Get(conn, "nodes"))
	}
	pi := fields.Get(conn, "page_info")
	info := PageInfo{
		StartCursor:     fields.String(fields.Get(pi, "start_cursor")),
		EndCursor:       fields.String(fields.Get(pi, "end_cursor")),
		HasNextPage:     fields.Bool(fields.Get(pi, "has_next_page")),
		HasPreviousPage: fields.Bool(fields.Get(pi, "has_previous_page")),
	}
	if nodes == nil {
		nodes = []any{}
	}
	return nodes, info
}
