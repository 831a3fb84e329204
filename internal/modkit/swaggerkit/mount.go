// Package swaggerkit serves the generated OpenAPI document and Swagger UI for the shim
package swaggerkit

import (
	"net/http"

	phttp "mastoshim/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	docsRoot = "/api/docs"
	docJSON  = docsRoot + "/doc.json"
)

// Mount serves the UI under /api/docs/ and the spec at /api/docs/doc.json; no-op when disabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	ui := httpSwagger.Handler(httpSwagger.InstanceName("api"), httpSwagger.URL(docJSON))

	r.Get(docsRoot, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, docsRoot+"/", http.StatusPermanentRedirect)
	})
	r.Get(docJSON, serveDocJSON())
	r.Handle(docsRoot+"/*", ui)
}
