// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "econlens/internal/modkit"
	"econlens/internal/modkit/httpkit"
	"econlens/internal/modkit/swaggerkit"
	str "econlens/internal/platform/strings"

	metahttp "econlens/internal/services/api/meta/http"
)

// ServiceName is reported by the health and service endpoints
const ServiceName = "econlens-api"

// Ports are the optional collaborators meta reports on
type Ports struct {
	Dataset metahttp.Loader
}

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports Ports

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		built:     b,
		startedAt: time.Now(),
	}
	if p, ok := b.Ports.(Ports); ok {
		m.ports = p
	}
	if b.SwaggerOn {
		for _, mut := range metahttp.Docs(b.Prefix) {
			swaggerkit.Register(mut)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   m.startedAt,
		Backends:    m.deps.Backends(),
		PG:          m.deps.PG,
		CH:          m.deps.CH,
		Dataset:     m.ports.Dataset,
	}
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, d) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
