package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"econlens/internal/core/version"
	perr "econlens/internal/platform/errors"
)

// SpecMutator lets modules add paths or tweak the spec before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// Register adds a spec mutator, modules call it while mounting routes
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset drops all registered mutators, for tests
func Reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// Operation is the subset of an OAS3 operation modules describe
type Operation struct {
	Summary     string
	Tag         string
	Body        map[string]any // request schema, nil for body-less routes
	Response    map[string]any // data schema inside the envelope
	ContentType string         // non-JSON success payload, e.g. image/png
}

// Path returns a mutator that documents method on path
func Path(method, path string, op Operation) SpecMutator {
	return func(spec map[string]any) {
		paths := child(spec, "paths")
		node := child(paths, path)

		o := map[string]any{
			"summary": op.Summary,
			"tags":    []any{op.Tag},
		}
		if op.Body != nil {
			o["requestBody"] = map[string]any{
				"required": true,
				"content":  map[string]any{"application/json": map[string]any{"schema": op.Body}},
			}
		}
		ok := map[string]any{"description": "OK"}
		switch {
		case op.ContentType != "":
			ok["content"] = map[string]any{op.ContentType: map[string]any{
				"schema": map[string]any{"type": "string", "format": "binary"},
			}}
		case op.Response != nil:
			ok["content"] = map[string]any{"application/json": map[string]any{
				"schema": envelopeOf(op.Response),
			}}
		}
		o["responses"] = map[string]any{"200": ok}
		node[strings.ToLower(method)] = o
	}
}

// Document builds the spec served at doc.json
func Document(basePath string) map[string]any {
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "econlens API",
			"version": version.Info().Version,
		},
		"paths": map[string]any{},
	}
	ensureServers(spec, basePath)
	ensureErrorResponseDefinition(spec)

	mu.RLock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.RUnlock()
	for _, m := range ms {
		m(spec)
	}

	addDefaultResponse(spec, http.StatusBadRequest, perr.ErrorCodeValidation, "years.start must be 1960 or greater")
	addDefaultResponse(spec, http.StatusUnprocessableEntity, perr.ErrorCodeSchema, "unknown indicator \"GDP (Current EUR)\"")
	addDefaultResponse(spec, http.StatusInternalServerError, perr.ErrorCodePanic, "panic recovered")
	return spec
}

func serveDocJSON(basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Document(basePath))
	}
}

func child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	c := map[string]any{}
	m[key] = c
	return c
}

func envelopeOf(data map[string]any) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
			"data":        data,
		},
	}
}

// ensureServers pins the spec to OAS3 with a servers array
func ensureServers(spec map[string]any, url string) {
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition mirrors the runtime error envelope
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse injects an error response into every operation that lacks one
func addDefaultResponse(spec map[string]any, status int, code perr.ErrorCode, msg string) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	key := strconv.Itoa(status)
	text := http.StatusText(status)
	resp := map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      text,
					"code":        int(code),
					"error":       msg,
				},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, exists := responses[key]; !exists {
				responses[key] = resp
			}
		}
	}
}
