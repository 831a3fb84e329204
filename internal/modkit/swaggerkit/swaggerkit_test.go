package swaggerkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "mastoshim/internal/platform/net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
)

func serve(t *testing.T, enabled bool, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), enabled)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestDocJSON_GeneratedSpec(t *testing.T) {
	rec := serve(t, true, "/api/docs/doc.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var spec map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi %v", spec["openapi"])
	}
	info := spec["info"].(map[string]any)
	if info["title"] != "mastoshim" || info["version"] != "4.2.0" {
		t.Fatalf("info %v", info)
	}
	paths := spec["paths"].(map[string]any)
	op, ok := paths["/api/v1/statuses/{id}"].(map[string]any)["get"].(map[string]any)
	if !ok {
		t.Fatal("status route missing")
	}
	responses := op["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "404", "500"} {
		if responses[code] == nil {
			t.Errorf("missing %s response", code)
		}
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if schemas["rest.ErrorResponse"] == nil {
		t.Fatal("error schema missing")
	}
}

func TestDocJSON_ErrorResponsesByOperation(t *testing.T) {
	orig := docReader
	t.Cleanup(func() { docReader = orig })

	docReader = func() string {
		return `{"swagger":"2.0","info":{"title":"x"},"paths":{
			"/p":{"get":{}},
			"/api/v1/statuses/{id}/favourite":{"post":{"security":[{"BearerAuth":[]}],"responses":{"200":{"description":"ok"}}}}
		}}`
	}

	rec := serve(t, true, "/api/docs/doc.json")
	var spec map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := spec["swagger"]; ok || spec["openapi"] != "3.0.3" {
		t.Fatalf("not normalized: %v", spec["openapi"])
	}
	if spec["servers"].([]any)[0].(map[string]any)["url"] != "/" {
		t.Fatalf("servers %v", spec["servers"])
	}
	paths := spec["paths"].(map[string]any)
	plain := paths["/p"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	if len(plain) != 2 || plain["400"] == nil || plain["500"] == nil {
		t.Fatalf("plain get responses %v", plain)
	}
	fav := paths["/api/v1/statuses/{id}/favourite"].(map[string]any)["post"].(map[string]any)["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "401", "404", "422", "500"} {
		if fav[code] == nil {
			t.Errorf("favourite missing %s", code)
		}
	}
	sec := spec["components"].(map[string]any)["securitySchemes"].(map[string]any)
	if sec["BearerAuth"] == nil {
		t.Fatal("bearer scheme missing")
	}
}

func TestDocJSON_BadSpec(t *testing.T) {
	orig := docReader
	t.Cleanup(func() { docReader = orig })

	docReader = func() string { return "{" }
	if rec := serve(t, true, "/api/docs/doc.json"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("bad spec status %d", rec.Code)
	}
}

func TestMount_Disabled(t *testing.T) {
	if rec := serve(t, false, "/api/docs/doc.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}
