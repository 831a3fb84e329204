package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// tag appends name to X-Scopes so a test can see which scopes a request crossed
func tag(name string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			w.Header().Add("X-Scopes", name)
			next.ServeHTTP(w, r)
		})
	}
}

func echo(s string) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte(s)) }
}

func mastodonRouter(t *testing.T) Router {
	t.Helper()
	r := AdaptChi(chi.NewRouter())
	r.Use(tag("root"))

	r.Handle("/.well-known/nodeinfo", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		_, _ = w.Write([]byte("nodeinfo"))
	}))
	r.Group(func(authed Router) {
		authed.Use(tag("auth"))
		if authed.Mux() == nil {
			t.Fatal("group Mux() nil")
		}
		authed.Get("/oauth/userinfo", echo("me"))
	})
	r.Route("/api", func(api Router) {
		api.Use(tag("api"))
		api.Route("/v1", func(v1 Router) {
			v1.Get("/statuses/{id}", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				_, _ = w.Write([]byte("status " + Param(req, "id")))
			})
			v1.Post("/statuses/{id}/reblog", echo("reblogged"))
			v1.Delete("/statuses/{id}", echo("deleted"))
		})
	})
	return r
}

func TestAdaptChi_Scopes(t *testing.T) {
	t.Parallel()
	r := mastodonRouter(t)

	cases := []struct {
		method, path string
		code         int
		body         string
		scopes       string
	}{
		{stdhttp.MethodGet, "/.well-known/nodeinfo", 200, "nodeinfo", "root"},
		{stdhttp.MethodGet, "/oauth/userinfo", 200, "me", "root,auth"},
		{stdhttp.MethodGet, "/api/v1/statuses/01HX", 200, "status 01HX", "root,api"},
		{stdhttp.MethodPost, "/api/v1/statuses/01HX/reblog", 200, "reblogged", "root,api"},
		{stdhttp.MethodDelete, "/api/v1/statuses/01HX", 200, "deleted", "root,api"},
		{stdhttp.MethodPost, "/oauth/userinfo", stdhttp.StatusMethodNotAllowed, "", "root"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.code {
			t.Fatalf("%s %s: code %d", tc.method, tc.path, rec.Code)
		}
		if tc.body != "" && rec.Body.String() != tc.body {
			t.Fatalf("%s %s: body %q", tc.method, tc.path, rec.Body.String())
		}
		if got := strings.Join(rec.Header().Values("X-Scopes"), ","); got != tc.scopes {
			t.Fatalf("%s %s: scopes %q want %q", tc.method, tc.path, got, tc.scopes)
		}
	}
}
