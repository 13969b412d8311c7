package http

import (
	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts the swagger ui under prefix when enabled
// docURL points the ui at the served spec document
func MountSwagger(r Router, prefix string, enabled bool, docURL string) {
	if !enabled {
		return
	}
	opts := []func(*httpSwagger.Config){httpSwagger.InstanceName("api")}
	if docURL != "" {
		opts = append(opts, httpSwagger.URL(docURL))
	}
	r.Get(prefix+"/*", httpSwagger.Handler(opts...))
}
