// Command econlens-seed writes the indicator csv into postgres and clickhouse
package main

import (
	"context"
	"flag"
	"os/signal"
	"strings"
	"syscall"

	"econlens/internal/modkit"
	"econlens/internal/modkit/repokit"
	"econlens/internal/platform/config"
	"econlens/internal/platform/logger"
	"econlens/internal/platform/store"

	seedmod "econlens/internal/services/seed/module"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		logger.Get().Panic().Err(err).Msg("load .env failed")
	}
	root := config.New().Prefix("ECONLENS_")
	opts := seedmod.FromConfig(root)

	var (
		fCSV     = flag.String("csv", opts.CSVPath, "indicator csv to seed")
		fTargets = flag.String("targets", strings.Join(opts.Targets, ","), "comma separated targets: pg, ch")
		fPGTable = flag.String("pg-table", opts.PGTable, "postgres wide table (default indicators)")
		fCHTable = flag.String("ch-table", opts.CHTable, "clickhouse long table (default indicator_values)")
	)
	flag.Parse()
	opts.CSVPath, opts.PGTable, opts.CHTable = *fCSV, *fPGTable, *fCHTable
	opts.Targets = strings.Split(*fTargets, ",")

	l := logger.Get()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.ConfigFromEnv(root, "econlens-seed"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, "econlens-seed", st)

	m, err := seedmod.NewWith(modkit.Deps{Log: *l, Cfg: root, PG: st.PG, CH: st.CH}, opts)
	if err != nil {
		l.Panic().Err(err).Msg("seed setup failed")
	}
	rep, err := m.Run(ctx)
	if err != nil {
		l.Panic().Err(err).Str("csv", opts.CSVPath).Msg("seed failed")
	}
	l.Info().Int("records", rep.Records).Int("pg_rows", rep.PGRows).Int("ch_rows", rep.CHRows).Msg("seed complete")
}
