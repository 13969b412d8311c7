// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"econlens/internal/core/version"
	"econlens/internal/modkit/httpkit"
	"econlens/internal/modkit/swaggerkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Loader reports whether a lazily loaded dataset is in memory
type Loader interface {
	Loaded() bool
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Backends    []string
	PG          any
	CH          any
	Dataset     Loader
}

// readyTimeout bounds each dependency ping
const readyTimeout = 2 * time.Second

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"econlens-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// Check statuses
const (
	StatusOK      = "ok"
	StatusFail    = "fail"
	StatusSkipped = "skipped"
	StatusPending = "pending"
	StatusUnknown = "unknown"
)

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name     string   `json:"name"     example:"econlens-api"`
	Started  string   `json:"started"  example:"2025-09-03T13:00:00Z"`
	Uptime   int64    `json:"uptime"   example:"300"`
	Backends []string `json:"backends" example:"pg,ch"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: StatusSkipped}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: StatusFail, Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: StatusOK}
		}
		return ReadyCheck{Name: name, Status: StatusUnknown}
	}

	dataset := ReadyCheck{Name: "dataset", Status: StatusSkipped}
	if h.deps.Dataset != nil {
		dataset.Status = StatusPending
		if h.deps.Dataset.Loaded() {
			dataset.Status = StatusOK
		}
	}
	checks := []ReadyCheck{check("pg", h.deps.PG), check("ch", h.deps.CH), dataset}

	return ReadyResponse{
		Status: overall(checks),
		Checks: checks,
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// overall folds checks: any fail is fail, any pending or unknown is degraded
// skipped backends are not configured and do not count
func overall(checks []ReadyCheck) string {
	out := StatusOK
	for _, c := range checks {
		switch c.Status {
		case StatusFail:
			return StatusFail
		case StatusPending, StatusUnknown:
			out = "degraded"
		}
	}
	return out
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	backends := h.deps.Backends
	if backends == nil {
		backends = []string{}
	}
	return ServiceResponse{
		Name:     h.deps.ServiceName,
		Started:  h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:   int64(uptime / time.Second),
		Backends: backends,
	}, nil
}

// Docs returns the OpenAPI mutators for the meta routes under prefix
func Docs(prefix string) []swaggerkit.SpecMutator {
	str := map[string]any{"type": "string"}
	integer := map[string]any{"type": "integer"}
	obj := func(props map[string]any) map[string]any { return map[string]any{"type": "object", "properties": props} }
	check := obj(map[string]any{"name": str, "status": str, "error": str})

	op := func(summary string, resp map[string]any) swaggerkit.Operation {
		return swaggerkit.Operation{Summary: summary, Tag: "Meta", Response: resp}
	}
	return []swaggerkit.SpecMutator{
		swaggerkit.Path("GET", prefix+"/health", op("Health check", obj(map[string]any{
			"ok": map[string]any{"type": "boolean"}, "service": str, "started": str, "now": str,
		}))),
		swaggerkit.Path("GET", prefix+"/ready", op("Readiness with backend and dataset checks", obj(map[string]any{
			"status": str, "checks": map[string]any{"type": "array", "items": check}, "now": str,
		}))),
		swaggerkit.Path("GET", prefix+"/version", op("Build and version info", obj(map[string]any{
			"service": str, "version": str, "commit": str, "date": str,
		}))),
		swaggerkit.Path("GET", prefix+"/service", op("Service info and uptime", obj(map[string]any{
			"name": str, "started": str, "uptime": integer, "backends": map[string]any{"type": "array", "items": str},
		}))),
	}
}
