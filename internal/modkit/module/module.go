// Package module is the contract every api module satisfies plus the
// registry and port lookup the api wiring uses to connect them
package module

import (
	phttp "econlens/internal/platform/net/http"
)

// Module is a mountable slice of the api that may expose ports to its siblings
type Module interface {
	Name() string
	Ports() any
	MountRoutes(r phttp.Router)
}
