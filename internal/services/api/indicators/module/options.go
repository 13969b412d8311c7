package module

import (
	"econlens/internal/core/indicators"
	"econlens/internal/platform/config"
	"econlens/internal/services/api/indicators/repo"
	"econlens/internal/services/api/indicators/service"
)

// Options controls where the dataset comes from and how it is presented
type Options struct {
	Source  repo.Options
	Catalog indicators.CatalogOptions
	Service service.Options
	// Preload loads the dataset when the module is built instead of on first request
	Preload bool
}

// FromConfig reads with INDICATORS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("INDICATORS_")
	def := indicators.DefaultCatalogOptions()
	return Options{
		Source: repo.Options{
			Kind:    c.MayEnum("SOURCE", repo.KindCSV, repo.KindCSV, repo.KindPG, repo.KindCH),
			CSVPath: c.MayString("CSV_PATH", repo.DefaultCSVPath),
			Table:   c.MayString("TABLE", ""),
			Window: indicators.YearWindow{
				Min: c.MayInt("MIN_YEAR_SANE", indicators.DefaultYearWindow.Min),
				Max: c.MayInt("MAX_YEAR_SANE", indicators.DefaultYearWindow.Max),
			},
		},
		Catalog: indicators.CatalogOptions{
			ScaleOrder:       c.MayCSV("SCALE_ORDER", def.ScaleOrder),
			MagnitudeMarkers: c.MayCSV("MAGNITUDE_MARKERS", def.MagnitudeMarkers),
		},
		Service: service.Options{
			MaxYear:  c.MayInt("MAX_YEAR", service.DefaultMaxYear),
			Headline: c.MayCSV("HEADLINE", service.DefaultHeadline),
		},
		Preload: c.MayBool("PRELOAD", false),
	}
}
