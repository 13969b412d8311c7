// Package swaggerkit serves the OpenAPI document and swagger ui
package swaggerkit

import (
	"net/http"

	phttp "econlens/internal/platform/net/http"
)

// Mount the Swagger UI and JSON spec under /api/docs if enabled
// basePath is the servers url the documented paths are relative to
func Mount(r phttp.Router, enabled bool, basePath string) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(basePath))
	phttp.MountSwagger(r, "/api/docs", true, "/api/docs/doc.json")
}
