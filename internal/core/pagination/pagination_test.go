package pagination

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"
)

func TestValidateLimit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want int
	}{
		{"1000", 40},
		{"abc", 20},
		{15, 15},
		{nil, 20},
		{0, 20},
		{"-3", 20},
		{" 7 ", 7},
		{40, 40},
		{41.0, 40},
		{[]string{"5"}, 20},
	}
	for _, c := range cases {
		if got := ValidateLimit(c.in, 20, 40); got != c.want {
			t.Errorf("ValidateLimit(%#v)=%d want %d", c.in, got, c.want)
		}
	}
}

func TestCursor_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"01HXYZ", "a b/c?d", "ünïcødé", "x"} {
		enc := EncodeCursor(id, "")
		if !strings.HasPrefix(enc, CursorPrefix) {
			t.Fatalf("encoded %q lacks prefix: %q", id, enc)
		}
		c, err := DecodeCursor(enc)
		if err != nil || c.ID != id || c.Field != DefaultField {
			t.Fatalf("round trip %q: %+v %v", id, c, err)
		}
	}

	c, err := DecodeCursor(EncodeCursor("42", "inserted_at"))
	if err != nil || c.Field != "inserted_at" || c.ID != "42" {
		t.Fatalf("field tag: %+v %v", c, err)
	}
}

func TestDecodeCursor_Invalid(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"", "plain-id", "eyJ!!!", "eyJub3QganNvbg", rawCursor(`{"a":"1","b":"2"}`), rawCursor(`{"id":""}`)} {
		if _, err := DecodeCursor(c); err == nil {
			t.Errorf("DecodeCursor(%q) accepted", c)
		}
	}
}

func rawCursor(js string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(js))
}

func TestEncodeCursorForGraphQL_PassThrough(t *testing.T) {
	t.Parallel()

	enc := EncodeCursor("01HXYZ", "id")
	if got := EncodeCursorForGraphQL(enc); got != enc {
		t.Fatalf("valid cursor re-encoded: %q", got)
	}

	// looks like a cursor but does not decode: treated as an id
	bogus := "eyJbogus"
	got := EncodeCursorForGraphQL(bogus)
	if got == bogus {
		t.Fatal("invalid cursor passed through")
	}
	if c, err := DecodeCursor(got); err != nil || c.ID != bogus {
		t.Fatalf("bogus wrapped: %+v %v", c, err)
	}

	if EncodeCursorForGraphQL("") != "" {
		t.Fatal("empty id should stay empty")
	}
}

func TestFromParams_Precedence(t *testing.T) {
	t.Parallel()

	q := url.Values{"min_id": {"m"}, "since_id": {"s"}, "limit": {"5"}}
	p := FromParams(q, 20, 40)
	c, err := DecodeCursor(p.Before)
	if err != nil || c.ID != "m" {
		t.Fatalf("min_id should win: %+v %v", c, err)
	}
	if p.After != "" || p.Limit != 5 {
		t.Fatalf("page: %+v", p)
	}
	vars := p.Variables()
	if vars["last"] != 5 || vars["before"] != p.Before || vars["first"] != nil {
		t.Fatalf("vars: %v", vars)
	}

	p = FromParams(url.Values{"max_id": {"x"}}, 20, 40)
	if c, _ := DecodeCursor(p.After); c.ID != "x" || p.Before != "" || p.Limit != 20 {
		t.Fatalf("max_id page: %+v", p)
	}
	vars = p.Variables()
	if vars["first"] != 20 || vars["after"] != p.After {
		t.Fatalf("vars: %v", vars)
	}

	p = FromParams(url.Values{"since_id": {"s"}}, 20, 40)
	if c, _ := DecodeCursor(p.Before); c.ID != "s" {
		t.Fatalf("since_id page: %+v", p)
	}
}

func TestLinkHeader(t *testing.T) {
	t.Parallel()

	base, _ := url.Parse("https://h.example/api/v1/timelines/home?limit=5&max_id=old")
	got := LinkHeader(base, PageInfo{StartCursor: "s1", EndCursor: "e1"})
	want := `<https://h.example/api/v1/timelines/home?limit=5&max_id=e1>; rel="next", <https://h.example/api/v1/timelines/home?limit=5&min_id=s1>; rel="prev"`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
	if LinkHeader(base, PageInfo{}) != "" {
		t.Fatal("empty page info should yield no header")
	}
}

func TestFromConnection(t *testing.T) {
	t.Parallel()

	conn := map[string]any{
		"edges": []any{
			map[string]any{"node": map[string]any{"id": "1"}},
			map[string]any{"cursor": "c"},
		},
		"pageInfo": map[string]any{"startCursor": "s", "endCursor": "e", "hasNextPage": true},
	}
	nodes, info := FromConnection(conn)
	if len(nodes) != 1 || info.StartCursor != "s" || info.EndCursor != "e" || !info.HasNextPage {
		t.Fatalf("edges: %v %+v", nodes, info)
	}

	nodes, _ = FromConnection(map[string]any{"nodes": []any{"a", "b"}})
	if len(nodes) != 2 {
		t.Fatalf("nodes: %v", nodes)
	}
	nodes, _ = FromConnection(nil)
	if nodes == nil || len(nodes) != 0 {
		t.Fatalf("nil connection: %#v", nodes)
	}
}
