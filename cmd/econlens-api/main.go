// Command econlens-api serves the indicator comparison API
package main

import (
	"context"
	"os/signal"
	"syscall"

	"econlens/internal/modkit/repokit"
	"econlens/internal/platform/config"
	"econlens/internal/platform/logger"
	phttp "econlens/internal/platform/net/http"
	"econlens/internal/platform/store"

	"econlens/internal/services/api"
)

func main() {
	// .env values never override the real environment
	if err := config.LoadDotenv(); err != nil {
		logger.Get().Panic().Err(err).Msg("load .env failed")
	}

	// everything lives under ECONLENS_*, the api server reads ECONLENS_API_*
	root := config.New().Prefix("ECONLENS_")
	apiCfg := root.Prefix("API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// postgres and clickhouse are optional, a csv dataset needs neither
	st, err := store.Open(ctx, store.ConfigFromEnv(root, "econlens-api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, "econlens-api", st)

	srv := phttp.NewServer(root)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
