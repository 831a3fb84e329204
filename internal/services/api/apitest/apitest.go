// Package apitest builds routers, fake platforms and fixtures for the API module tests
package apitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mastoshim/internal/core/mapper"
	"mastoshim/internal/core/markup"
	"mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"
	phttp "mastoshim/internal/platform/net/http"
	"mastoshim/internal/platform/net/rest"
	"mastoshim/internal/platform/testkit"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
)

// Token authenticates as Viewer
const (
	Token  = "tok"
	Viewer = "u-viewer"
)

// BaseURL is the local instance the fixtures live on
const BaseURL = "https://local.example"

// Deps returns module deps over a fake platform, with no lookup database
func Deps(gql *testkit.FakeGraphQL) modkit.Deps {
	m := mapper.New(mapper.Config{
		BaseURL: BaseURL,
		ACL:     mapper.ACLPresets{Public: []string{"acl-public"}, Local: []string{"acl-local"}},
		Now:     func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	}, nil, markup.New(64))
	return modkit.Deps{
		GQL:    gql,
		Mapper: m,
		Batch:  mapper.NewBatchLoader(nil),
		REST:   rest.New(rest.Config{Env: "test"}),
	}
}

// Router mounts modules under prefix behind optional auth that accepts Token
func Router(prefix string, mods ...modkit.Module) http.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Use(httpkit.OptionalAuth(httpkit.StaticTokens(map[string]string{Token: Viewer})))
	httpkit.MountUnder(r, prefix, nil, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
	return mux
}

// Do sends one request; authed adds the bearer token, a form body sets the form content type
func Do(h http.Handler, method, path, body string, authed bool) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "http://local.example"+path, rd)
	if authed {
		req.Header.Set("Authorization", "Bearer "+Token)
	}
	if strings.HasPrefix(body, "{") {
		req.Header.Set("Content-Type", "application/json")
	} else if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Object decodes a JSON object body
func Object(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode object %q: %v", rec.Body.String(), err)
	}
	return out
}

// Array decodes a JSON array body
func Array(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode array %q: %v", rec.Body.String(), err)
	}
	return out
}

// IDs returns the id of every entity in list
func IDs(list []map[string]any) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		id, _ := e["id"].(string)
		out = append(out, id)
	}
	return out
}
