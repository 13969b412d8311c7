// Package api provides the HTTP API for the application
package api

import (
	"econlens/internal/platform/config"
	"econlens/internal/platform/logger"
	phttp "econlens/internal/platform/net/http"
	"econlens/internal/platform/store"

	"econlens/internal/modkit"
	"econlens/internal/modkit/httpkit"
	"econlens/internal/modkit/module"
	"econlens/internal/modkit/swaggerkit"

	indmod "econlens/internal/services/api/indicators/module"
	metamod "econlens/internal/services/api/meta/module"
)

// BasePath is where versioned routes are mounted
const BasePath = "/api/v1"

// Options are the API options
type Options struct {
	// Config is the root ECONLENS_ view; modules and the stack read their own prefixes
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// Indicators overrides the module options read from config, mainly for tests
	Indicators *indmod.Options
}

// Mount mounts the API service onto the given router and returns the mounted modules
func Mount(r phttp.Router, opt Options) []module.Module {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	// indicators first so meta can report on its dataset
	indOpts := indmod.FromConfig(opt.Config)
	if opt.Indicators != nil {
		indOpts = *opt.Indicators
	}
	ind := indmod.NewWith(deps, indOpts, modkit.WithSwagger(opt.EnableSwagger))
	ready := module.MustPortsOf[indmod.Ports](ind).Ready

	mods := []module.Module{
		metamod.New(deps, modkit.WithSwagger(opt.EnableSwagger), modkit.WithPorts(metamod.Ports{Dataset: ready})),
		ind,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPI(r, BasePath, httpkit.CommonStack(opt.Config.Prefix("API_")), func(api httpkit.Router) {
		for _, m := range mods {
			if err := module.Register(m.Name(), m.Ports()); err != nil {
				panic(err)
			}
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger, BasePath)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	return mods
}
