// Package module wires indicators into the API using modkit
package module

import (
	"context"
	"net/http"
	"time"

	"econlens/internal/core/indicators"
	modkit "econlens/internal/modkit"
	"econlens/internal/modkit/httpkit"
	"econlens/internal/modkit/swaggerkit"
	"econlens/internal/platform/logger"
	str "econlens/internal/platform/strings"
	indhttp "econlens/internal/services/api/indicators/http"
	indrepo "econlens/internal/services/api/indicators/repo"
	indsvc "econlens/internal/services/api/indicators/service"
)

// preloadTimeout bounds the startup load when Preload is on
const preloadTimeout = 2 * time.Minute

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports Ports

	svc indsvc.Service
}

// New constructs an indicators module reading its source from deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return NewWith(deps, FromConfig(deps.Cfg), opts...)
}

// NewWith constructs an indicators module with explicit options
func NewWith(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("indicators"), modkit.WithPrefix("/indicators")}, opts...)...)

	data := indicators.NewLazy(loader(deps, o))
	svc := indsvc.New(data, o.Service)

	m := &Module{deps: deps, built: b, svc: svc}
	m.ports = Ports{Service: svc, Ready: svc}

	if b.SwaggerOn {
		for _, mut := range indhttp.Docs(b.Prefix) {
			swaggerkit.Register(mut)
		}
	}
	if o.Preload {
		ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
		defer cancel()
		if _, err := data.Get(ctx); err != nil {
			logger.Named("indicators").Warn().Err(err).Msg("preload failed; retrying on first request")
		}
	}
	return m
}

// loader resolves the configured source; a bad source surfaces on every load
func loader(deps modkit.Deps, o Options) indicators.Loader {
	src, err := indrepo.NewSource(o.Source, deps.PG, deps.CH)
	if err != nil {
		return func(context.Context) (*indicators.Engine, error) { return nil, err }
	}
	return indrepo.Loader(src, o.Catalog)
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { indhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }
