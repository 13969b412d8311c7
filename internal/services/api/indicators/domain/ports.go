package domain

import (
	"context"

	"econlens/internal/core/indicators"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Countries(ctx context.Context) ([]Country, error)
	Years(ctx context.Context) (YearsResponse, error)
	Catalog(ctx context.Context) ([]indicators.Entry, error)
	Resolve(ctx context.Context, in ResolveInput) (indicators.ResultSet, error)
	ExportRows(ctx context.Context, in ResolveInput) (Rendered, error)
	Series(ctx context.Context, in SeriesInput) ([]indicators.Series, error)
	Chart(ctx context.Context, in ChartInput) (Rendered, error)
	GrowthYoY(ctx context.Context, in YoYInput) (YoYResponse, error)
	GrowthPeriod(ctx context.Context, in PeriodInput) (PeriodResponse, error)
	FormatMagnitude(ctx context.Context, in FormatInput) (FormatResponse, error)
	Gauge(ctx context.Context, in GaugeInput) (indicators.Gauge, error)
	Panels(ctx context.Context, in PanelsInput) ([]indicators.Panel, error)
	ExportPanels(ctx context.Context, in PanelsInput) (Rendered, error)
	Overview(ctx context.Context, in OverviewInput) (OverviewResponse, error)
	Latest(ctx context.Context, in LatestInput) (LatestResponse, error)
	Average(ctx context.Context, in AverageInput) (AverageResponse, error)
}

// Ready reports whether the dataset has been loaded
type Ready interface {
	Loaded() bool
}
