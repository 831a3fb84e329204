package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mastoshim/internal/core/pagination"
	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/graphql"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, a *Adapter, fn func(w http.ResponseWriter, r *http.Request)) (int, map[string]any, http.Header) {
	t.Helper()
	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(http.MethodGet, "http://shim.test/api/v1/timelines/home?limit=2", nil))
	var body map[string]any
	if strings.HasPrefix(rec.Body.String(), "{") {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body, rec.Header()
}

func TestReturn_DecisionTable(t *testing.T) {
	a := New(Config{Env: "dev"})
	gqlErrs := graphql.Errors{{Message: "Post not found", Extensions: map[string]any{"code": "not_found"}}}

	cases := []struct {
		name      string
		res       graphql.Result
		transform Transform
		status    int
		check     func(t *testing.T, body map[string]any)
	}{
		{
			name:   "transport error",
			res:    graphql.Result{Err: perr.Unauthorizedf("bad token")},
			status: http.StatusUnauthorized,
			check: func(t *testing.T, b map[string]any) {
				assert.Equal(t, "Unauthorized", b["error"])
			},
		},
		{
			name:   "partial success with key",
			res:    graphql.Result{Data: map[string]any{"post": map[string]any{"id": "1"}, "other": nil}, Errors: gqlErrs},
			status: http.StatusOK,
			check: func(t *testing.T, b map[string]any) {
				assert.Equal(t, "1", b["id"])
			},
		},
		{
			name:   "partial success nothing extracts",
			res:    graphql.Result{Data: map[string]any{"post": nil, "other": nil}, Errors: gqlErrs},
			status: http.StatusNotFound,
			check: func(t *testing.T, b map[string]any) {
				assert.Equal(t, "Post not found", b["error"])
				assert.NotNil(t, b["details"])
			},
		},
		{
			name:   "data only aliased single key",
			res:    graphql.Result{Data: map[string]any{"renamed": map[string]any{"id": "2"}}},
			status: http.StatusOK,
			check: func(t *testing.T, b map[string]any) {
				assert.Equal(t, "2", b["id"])
			},
		},
		{
			name:   "data only key missing",
			res:    graphql.Result{Data: map[string]any{"a": 1, "b": 2}},
			status: http.StatusNotFound,
		},
		{
			name:   "errors only",
			res:    graphql.Result{Errors: graphql.Errors{{Message: "bad input"}}},
			status: http.StatusBadRequest,
			check: func(t *testing.T, b map[string]any) {
				assert.Equal(t, "bad input", b["error"])
			},
		},
		{
			name:   "nothing at all",
			res:    graphql.Result{},
			status: http.StatusInternalServerError,
			check: func(t *testing.T, b map[string]any) {
				assert.Equal(t, "Internal server error", b["error"])
				assert.Equal(t, ErrUnexpected.Error(), b["details"])
			},
		},
		{
			name:      "transform rejects",
			res:       graphql.Result{Data: map[string]any{"post": map[string]any{"id": "3"}}},
			transform: func(any) any { return map[string]any(nil) },
			status:    http.StatusNotFound,
			check: func(t *testing.T, b map[string]any) {
				assert.Equal(t, "Not found", b["error"])
			},
		},
		{
			name: "transform shapes",
			res:  graphql.Result{Data: map[string]any{"post": map[string]any{"id": "4"}}},
			transform: func(v any) any {
				return map[string]any{"wrapped": v.(map[string]any)["id"]}
			},
			status: http.StatusOK,
			check: func(t *testing.T, b map[string]any) {
				assert.Equal(t, "4", b["wrapped"])
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, body, _ := run(t, a, func(w http.ResponseWriter, r *http.Request) {
				a.Return(w, r, "post", c.res, c.transform)
			})
			assert.Equal(t, c.status, status)
			if c.check != nil {
				c.check(t, body)
			}
		})
	}
}

func TestClassify_Taxonomy(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"perr unauthorized", perr.Unauthorizedf("x"), 401, "Unauthorized"},
		{"perr forbidden", perr.Forbiddenf("x"), 403, "Forbidden"},
		{"forbidden text", errors.New("permission denied for boundary"), 403, "Forbidden"},
		{"perr not found", perr.NotFoundf("status 9"), 404, "Not found"},
		{"not found reason", Reason("not_found"), 404, "Not found"},
		{"domain validation", perr.InvalidArgf("poll expired"), 422, "Validation failed: poll expired"},
		{"plain reason", Reason("already_voted"), 400, "already_voted"},
		{"wrapped reason", fmt.Errorf("vote: %w", Reason("too many choices")), 400, "too many choices"},
		{"fk violation", &pgconn.PgError{Code: "23503", Message: "insert violates foreign key"}, 404, "Not found"},
		{"does not exist", &pgconn.PgError{Code: "23514", Message: "object does not exist"}, 404, "Not found"},
		{"unique violation", &pgconn.PgError{Code: "23505", Message: "already boosted"}, 422, "Validation failed: already boosted"},
		{"graphql unauthenticated", graphql.Errors{{Message: "log in", Extensions: map[string]any{"code": "unauthenticated"}}}, 401, "log in"},
		{"graphql other", graphql.Errors{{Message: "weird"}}, 400, "weird"},
		{"unknown", errors.New("kaboom"), 500, "Internal server error"},
	}
	for _, c := range cases {
		got := Classify(c.err)
		if got.Status != c.status || got.Message != c.msg {
			t.Errorf("%s: got %d %q want %d %q", c.name, got.Status, got.Message, c.status, c.msg)
		}
	}
}

func TestError_DetailsHiddenInProduction(t *testing.T) {
	for _, env := range []string{"production", "PROD"} {
		a := New(Config{Env: env})
		status, body, _ := run(t, a, func(w http.ResponseWriter, r *http.Request) {
			a.Error(w, r, errors.New("secret stack"))
		})
		assert.Equal(t, 500, status)
		assert.Equal(t, map[string]any{"error": "Internal server error"}, body)
	}

	a := New(Config{Env: "staging"})
	_, body, _ := run(t, a, func(w http.ResponseWriter, r *http.Request) {
		a.Error(w, r, errors.New("secret stack"))
	})
	assert.Equal(t, "secret stack", body["details"])
}

func TestWrite_EncodingFailureFallsBack(t *testing.T) {
	orig := marshal
	marshal = func(any) ([]byte, error) { return nil, errors.New("cannot encode") }
	t.Cleanup(func() { marshal = orig })

	a := New(Config{})
	rec := httptest.NewRecorder()
	a.Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, map[string]any{"x": 1})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, fallbackBody, rec.Body.String())
}

func TestWriteList_LinkHeaderAndEmptyList(t *testing.T) {
	a := New(Config{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://shim.test/api/v1/timelines/home?limit=2", nil)

	var items []map[string]any
	a.WriteList(rec, req, items, pagination.PageInfo{StartCursor: "s", EndCursor: "e"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
	link := rec.Header().Get("Link")
	assert.Contains(t, link, `<http://shim.test/api/v1/timelines/home?limit=2&max_id=e>; rel="next"`)
	assert.Contains(t, link, `<http://shim.test/api/v1/timelines/home?limit=2&min_id=s>; rel="prev"`)
}

func TestReturnList_PagesAndFailures(t *testing.T) {
	a := New(Config{})
	conn := map[string]any{
		"edges": []any{
			map[string]any{"node": map[string]any{"id": "1"}},
			map[string]any{"node": map[string]any{"id": "2"}},
		},
		"page_info": map[string]any{"start_cursor": "s", "end_cursor": "e"},
	}
	ids := func(nodes []any) any {
		out := make([]string, 0, len(nodes))
		for _, n := range nodes {
			out = append(out, n.(map[string]any)["id"].(string))
		}
		return out
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://shim.test/api/v1/bookmarks", nil)
	a.ReturnList(rec, req, "bookmarks", graphql.Result{Data: map[string]any{"bookmarks": conn}}, ids)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["1","2"]`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Link"), "max_id=e")

	rec = httptest.NewRecorder()
	a.ReturnList(rec, req, "bookmarks", graphql.Result{Data: map[string]any{"bookmarks": nil, "other": nil}}, ids)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
	assert.Empty(t, rec.Header().Get("Link"))

	rec = httptest.NewRecorder()
	a.ReturnList(rec, req, "bookmarks", graphql.Result{Errors: graphql.Errors{{Message: "Post not found"}}}, ids)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	a.ReturnList(rec, req, "bookmarks", graphql.Result{Err: perr.Unauthorizedf("no token")}, ids)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
