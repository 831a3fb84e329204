package swaggerkit

import (
	"net/http"
	"strings"

	"mastoshim/internal/platform/config"

	docs "mastoshim/internal/services/api/docs"

	"github.com/bytedance/sonic"
)

// docReader returns the swag generated document; tests swap it
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

const errorSchemaRef = "#/components/schemas/rest.ErrorResponse"

// errorResponse is a Mastodon error the shim can answer with, and which operations get it
type errorResponse struct {
	code, description, example string
	applies                    func(path, method string, op map[string]any) bool
}

var errorResponses = []errorResponse{
	{"400", "Bad Request", "Validation failed: limit must be a number", always},
	{"401", "Unauthorized", "The access token is invalid", func(_, _ string, op map[string]any) bool {
		_, ok := op["security"]
		return ok
	}},
	{"404", "Not Found", "Record not found", func(path, _ string, _ map[string]any) bool {
		return strings.Contains(path, "{")
	}},
	{"422", "Unprocessable Entity", "Validation failed: Text can't be blank", func(_, method string, _ map[string]any) bool {
		return method == "post"
	}},
	{"500", "Internal Server Error", "Internal server error", always},
}

func always(string, string, map[string]any) bool { return true }

// serveDocJSON serves the generated spec upgraded to OAS 3.0 with the shim's error responses
func serveDocJSON() http.HandlerFunc {
	suffix := config.New().Prefix(config.APIPrefix).MayString("DOCS_TITLE_SUFFIX", "")
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := sonic.UnmarshalString(docReader(), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		// routes carry their full /api/vN path
		normalize(spec, "/")
		if info, ok := spec["info"].(map[string]any); ok && suffix != "" {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + suffix
			}
		}
		addComponents(spec)
		addErrorResponses(spec)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = sonic.ConfigDefault.NewEncoder(w).Encode(spec)
	}
}

// normalize pins the document to OAS 3.0.3, which the bundled UI renders, and sets servers
func normalize(spec map[string]any, server string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": server}}
	}
}

func child(parent map[string]any, key string) map[string]any {
	m, ok := parent[key].(map[string]any)
	if !ok {
		m = map[string]any{}
		parent[key] = m
	}
	return m
}

// addComponents adds the error body schema and the bearer scheme Mastodon clients send
func addComponents(spec map[string]any) {
	comps := child(spec, "components")
	schemas := child(comps, "schemas")
	if _, ok := schemas["rest.ErrorResponse"]; !ok {
		schemas["rest.ErrorResponse"] = map[string]any{
			"type":        "object",
			"description": "Mastodon error body",
			"properties": map[string]any{
				"error":             map[string]any{"type": "string"},
				"error_description": map[string]any{"type": "string"},
			},
			"required": []any{"error"},
		}
	}
	sec := child(comps, "securitySchemes")
	if _, ok := sec["BearerAuth"]; !ok {
		sec["BearerAuth"] = map[string]any{"type": "http", "scheme": "bearer"}
	}
}

// addErrorResponses gives every operation the error responses that apply to it, keeping any it declares
func addErrorResponses(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for path, item := range paths {
		ops, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for method, raw := range ops {
			op, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			for _, er := range errorResponses {
				if _, exists := responses[er.code]; exists || !er.applies(path, method, op) {
					continue
				}
				responses[er.code] = map[string]any{
					"description": er.description,
					"content": map[string]any{
						"application/json": map[string]any{
							"schema":  map[string]any{"$ref": errorSchemaRef},
							"example": map[string]any{"error": er.example},
						},
					},
				}
			}
		}
	}
}
