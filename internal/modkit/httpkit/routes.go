package httpkit

import (
	"net/http"
	"strings"
)

// MountUnder scopes a module under prefix with its own middlewares
// an empty prefix mounts into a group on r so modules can share the parent path
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	scoped := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	if p := strings.TrimSuffix(prefix, "/"); p != "" {
		r.Route(p, scoped)
		return
	}
	r.Group(scoped)
}

// MountAPI mounts the versioned api at basePath (for example /api/v1) with the shared stack
//
//	httpkit.MountAPI(r, "/api/v1", httpkit.CommonStack(cfg), func(api httpkit.Router) {
//	  indicators.MountRoutes(api)
//	})
func MountAPI(r Router, basePath string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	p := "/" + strings.Trim(basePath, "/")
	if p == "/" {
		panic("httpkit: api base path is empty")
	}
	MountUnder(r, p, mw, mount)
}
