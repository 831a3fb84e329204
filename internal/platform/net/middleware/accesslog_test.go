package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestAccessLog_CapturesStatusAndBytes(t *testing.T) {
	var sw *statusWriter
	h := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw, _ = w.(*statusWriter)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"error":"Not found"}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status %d", rec.Code)
	}
	if sw == nil || sw.status != http.StatusTeapot || sw.bytes != len(`{"error":"Not found"}`) {
		t.Fatalf("capture %+v", sw)
	}
}

func TestRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	var got string
	r.Get("/api/v1/statuses/{id}", func(w http.ResponseWriter, req *http.Request) {
		got = routePattern(req)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/statuses/01HABC", nil))

	if got != "/api/v1/statuses/{id}" {
		t.Fatalf("route %q", got)
	}
	if p := routePattern(httptest.NewRequest(http.MethodGet, "/nowhere", nil)); p != "unmatched" {
		t.Fatalf("unmatched route %q", p)
	}
}

func TestAccessLog_UnderRouter(t *testing.T) {
	r := chi.NewRouter()
	r.Use(AccessLog)
	r.Get("/livez", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}
