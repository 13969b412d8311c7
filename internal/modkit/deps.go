// Package modkit provides module wiring and core deps
package modkit

import (
	"econlens/internal/modkit/repokit"
	"econlens/internal/platform/config"
	"econlens/internal/platform/logger"
	"econlens/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil when the backend is not configured
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// Backends lists the configured storage backends by name
func (d Deps) Backends() []string {
	var out []string
	if d.PG != nil {
		out = append(out, "pg")
	}
	if d.CH != nil {
		out = append(out, "ch")
	}
	return out
}
