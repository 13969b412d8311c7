package module

import (
	"time"

	"econlens/internal/core/indicators"
	"econlens/internal/platform/config"
	"econlens/internal/services/api/indicators/repo"
	"econlens/internal/services/seed/domain"
)

// Options controls a seed run
type Options struct {
	CSVPath          string
	Window           indicators.YearWindow
	Targets          []string
	PGTable          string
	CHTable          string
	StatementTimeout time.Duration
}

// FromConfig reads with SEED_ prefix; tables default to the ones the api reads
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("SEED_")
	ind := cfg.Prefix("INDICATORS_")
	return Options{
		CSVPath: c.MayString("CSV_PATH", ind.MayString("CSV_PATH", repo.DefaultCSVPath)),
		Window: indicators.YearWindow{
			Min: ind.MayInt("MIN_YEAR_SANE", indicators.DefaultYearWindow.Min),
			Max: ind.MayInt("MAX_YEAR_SANE", indicators.DefaultYearWindow.Max),
		},
		Targets:          c.MayCSV("TARGETS", []string{domain.TargetPG, domain.TargetCH}),
		PGTable:          c.MayString("PG_TABLE", ind.MayString("TABLE", "")),
		CHTable:          c.MayString("CH_TABLE", ind.MayString("TABLE", "")),
		StatementTimeout: c.MayDuration("STATEMENT_TIMEOUT", 30*time.Second),
	}
}
