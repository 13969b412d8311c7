// Package repo picks the dataset source for indicators and builds the engine from it
package repo

import (
	"context"
	"time"

	"econlens/internal/adapters/ingest/chtable"
	"econlens/internal/adapters/ingest/csvfile"
	"econlens/internal/adapters/ingest/pgtable"
	"econlens/internal/core/indicators"
	perr "econlens/internal/platform/errors"
	"econlens/internal/platform/logger"
	"econlens/internal/platform/store"
)

// Source kinds
const (
	KindCSV = "csv"
	KindPG  = "pg"
	KindCH  = "ch"
)

// DefaultCSVPath is read when no path is configured
const DefaultCSVPath = "data/indicators.csv"

// Source yields a validated dataset
type Source interface {
	Name() string
	Load(ctx context.Context) (*indicators.Dataset, error)
}

// Options selects and tunes the dataset source
type Options struct {
	Kind    string
	CSVPath string
	Table   string
	Window  indicators.YearWindow
}

// NewSource builds the configured source; pg and ch may be nil when the backend is off
func NewSource(o Options, pg, ch store.Querier) (Source, error) {
	switch o.Kind {
	case "", KindCSV:
		path := o.CSVPath
		if path == "" {
			path = DefaultCSVPath
		}
		return csvfile.Source{Path: path, Window: o.Window}, nil
	case KindPG:
		if pg == nil {
			return nil, perr.WithField(perr.InvalidArgf("indicator source pg needs a postgres url"), "source")
		}
		return pgtable.Source{Q: pg, Table: o.Table, Window: o.Window}, nil
	case KindCH:
		if ch == nil {
			return nil, perr.WithField(perr.InvalidArgf("indicator source ch needs a clickhouse url"), "source")
		}
		return chtable.Source{Q: ch, Table: o.Table, Window: o.Window}, nil
	}
	return nil, perr.WithField(perr.InvalidArgf("unknown indicator source %q", o.Kind), "source")
}

// Loader loads src and classifies its indicators
func Loader(src Source, cat indicators.CatalogOptions) indicators.Loader {
	return func(ctx context.Context) (*indicators.Engine, error) {
		start := time.Now()
		log := logger.C(ctx)

		ds, err := src.Load(ctx)
		if err != nil {
			log.Error().Err(err).Str("source", src.Name()).Msg("indicator dataset load failed")
			return nil, err
		}
		eng, err := indicators.NewEngine(ds, cat)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("source", src.Name()).
			Int("records", ds.Len()).
			Int("indicators", len(ds.Indicators())).
			Int("countries", len(ds.Countries())).
			Dur("elapsed", time.Since(start)).
			Msg("indicator dataset loaded")
		return eng, nil
	}
}
