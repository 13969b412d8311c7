// Package module provides the seed module implementation
package module

import (
	"context"
	"strings"

	"econlens/internal/adapters/ingest/csvfile"
	"econlens/internal/core/indicators"
	"econlens/internal/modkit"
	perr "econlens/internal/platform/errors"
	"econlens/internal/services/seed/domain"
	"econlens/internal/services/seed/repo"
	"econlens/internal/services/seed/service"
)

// Ports defines the seed module ports
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the seed module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New constructs the seed module from deps.Cfg; it mounts no routes
func New(deps modkit.Deps) (*Module, error) {
	return NewWith(deps, FromConfig(deps.Cfg))
}

// NewWith constructs the seed module with explicit options
// a requested target whose backend is not configured is an error
func NewWith(deps modkit.Deps, opts Options) (*Module, error) {
	var pg, ch domain.StorageRepo
	for _, t := range opts.Targets {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case domain.TargetPG:
			if deps.PG == nil {
				return nil, perr.WithField(perr.InvalidArgf("seed target pg needs a postgres url"), "targets")
			}
			pg = repo.NewPG(deps.PG, opts.PGTable, opts.StatementTimeout)
		case domain.TargetCH:
			if deps.CH == nil {
				return nil, perr.WithField(perr.InvalidArgf("seed target ch needs a clickhouse url"), "targets")
			}
			ch = repo.NewCH(deps.CH, opts.CHTable)
		default:
			return nil, perr.WithField(perr.InvalidArgf("unknown seed target %q", t), "targets")
		}
	}
	m := &Module{deps: deps, opts: opts}
	m.ports = Ports{Runner: service.New(pg, ch)}
	return m, nil
}

// Run loads the configured csv and seeds it
func (m *Module) Run(ctx context.Context) (domain.Report, error) {
	ds, err := m.Load(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	return m.ports.Runner.Seed(ctx, ds)
}

// Load reads the configured csv file
func (m *Module) Load(ctx context.Context) (*indicators.Dataset, error) {
	return csvfile.Source{Path: m.opts.CSVPath, Window: m.opts.Window}.Load(ctx)
}

// Name returns the module name
func (m *Module) Name() string { return "seed" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module prefix (none)
func (m *Module) Prefix() string { return "" }
