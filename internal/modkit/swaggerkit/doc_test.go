package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "econlens/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestDocument_BaseShape(t *testing.T) {
	Reset()
	spec := Document("/api/v1")

	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	servers, _ := spec["servers"].([]any)
	if len(servers) != 1 || servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", spec["servers"])
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("missing ErrorResponse schema")
	}
}

func TestDocument_RegisteredPathsGetDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(nil)
	Register(Path(http.MethodPost, "/indicators/panels", Operation{
		Summary:  "Comparison panels",
		Tag:      "Indicators",
		Body:     map[string]any{"type": "object"},
		Response: map[string]any{"type": "array"},
	}))
	Register(Path(http.MethodPost, "/indicators/chart", Operation{
		Summary:     "Render a chart",
		Tag:         "Indicators",
		Body:        map[string]any{"type": "object"},
		ContentType: "image/png",
	}))

	paths := Document("/api/v1")["paths"].(map[string]any)
	for _, p := range []string{"/indicators/panels", "/indicators/chart"} {
		op, ok := paths[p].(map[string]any)["post"].(map[string]any)
		if !ok {
			t.Fatalf("missing post %s", p)
		}
		responses := op["responses"].(map[string]any)
		for _, code := range []string{"200", "400", "422", "500"} {
			if _, ok := responses[code]; !ok {
				t.Fatalf("%s missing %s response", p, code)
			}
		}
		if _, ok := op["requestBody"]; !ok {
			t.Fatalf("%s missing request body", p)
		}
	}

	chart := paths["/indicators/chart"].(map[string]any)["post"].(map[string]any)
	content := chart["responses"].(map[string]any)["200"].(map[string]any)["content"].(map[string]any)
	if _, ok := content["image/png"]; !ok {
		t.Fatalf("chart should document a png payload, got %v", content)
	}
}

func TestMount(t *testing.T) {
	Reset()
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)

	Mount(r, false, "/api/v1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs should 404, got %d", rec.Code)
	}

	mux = chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true, "/api/v1")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d", rec.Code)
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("doc.json is not json: %v", err)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/index.html", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("swagger ui status = %d", rec.Code)
	}
}
