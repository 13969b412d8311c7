package modkit

import (
	"net/http"

	phttp "econlens/internal/platform/net/http"
)

// Module is the common surface for API modules that mount routes and expose ports
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
	// Prefix returns the route prefix the module mounts under
	Prefix() string
	// Middlewares returns the per module middleware chain
	Middlewares() []func(http.Handler) http.Handler
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
