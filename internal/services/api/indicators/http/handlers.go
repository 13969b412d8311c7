// Package http provides http transport for indicators
package http

import (
	stdhttp "net/http"

	"econlens/internal/modkit/httpkit"
	"econlens/internal/services/api/indicators/domain"
)

// Register mounts indicators endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// selection lists
	httpkit.Get(r, "/countries", h.countries)
	httpkit.Get(r, "/years", h.years)
	httpkit.Get(r, "/catalog", h.catalog)

	// filtering and series
	httpkit.PostJSON[domain.ResolveInput](r, "/resolve", h.resolve)
	httpkit.PostFile[domain.ResolveInput](r, "/resolve/export", h.exportRows)
	httpkit.PostJSON[domain.SeriesInput](r, "/series", h.series)
	httpkit.PostFile[domain.ChartInput](r, "/chart", h.chart)
	httpkit.PostJSON[domain.LatestInput](r, "/latest", h.latest)
	httpkit.PostJSON[domain.AverageInput](r, "/average", h.average)

	// growth
	httpkit.PostJSON[domain.YoYInput](r, "/growth/yoy", h.growthYoY)
	httpkit.PostJSON[domain.PeriodInput](r, "/growth/period", h.growthPeriod)

	// presentation
	httpkit.PostJSON[domain.FormatInput](r, "/format/magnitude", h.formatMagnitude)
	httpkit.PostJSON[domain.GaugeInput](r, "/gauge", h.gauge)
	httpkit.PostJSON[domain.PanelsInput](r, "/panels", h.panels)
	httpkit.PostFile[domain.PanelsInput](r, "/panels/export", h.exportPanels)
	httpkit.PostJSON[domain.OverviewInput](r, "/overview", h.overview)
}

type handlers struct{ svc domain.ServicePort }

func (h *handlers) countries(r *stdhttp.Request) (any, error) { return h.svc.Countries(r.Context()) }
func (h *handlers) years(r *stdhttp.Request) (any, error)     { return h.svc.Years(r.Context()) }
func (h *handlers) catalog(r *stdhttp.Request) (any, error)   { return h.svc.Catalog(r.Context()) }

func (h *handlers) resolve(r *stdhttp.Request, in domain.ResolveInput) (any, error) {
	return h.svc.Resolve(r.Context(), in)
}

func (h *handlers) exportRows(r *stdhttp.Request, in domain.ResolveInput) (httpkit.File, error) {
	out, err := h.svc.ExportRows(r.Context(), in)
	return file(out), err
}

func (h *handlers) series(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}

// chart answers with the image itself, not an envelope
func (h *handlers) chart(r *stdhttp.Request, in domain.ChartInput) (httpkit.File, error) {
	out, err := h.svc.Chart(r.Context(), in)
	return file(out), err
}

func (h *handlers) latest(r *stdhttp.Request, in domain.LatestInput) (any, error) {
	return h.svc.Latest(r.Context(), in)
}

func (h *handlers) average(r *stdhttp.Request, in domain.AverageInput) (any, error) {
	return h.svc.Average(r.Context(), in)
}

func (h *handlers) growthYoY(r *stdhttp.Request, in domain.YoYInput) (any, error) {
	return h.svc.GrowthYoY(r.Context(), in)
}

func (h *handlers) growthPeriod(r *stdhttp.Request, in domain.PeriodInput) (any, error) {
	return h.svc.GrowthPeriod(r.Context(), in)
}

func (h *handlers) formatMagnitude(r *stdhttp.Request, in domain.FormatInput) (any, error) {
	return h.svc.FormatMagnitude(r.Context(), in)
}

func (h *handlers) gauge(r *stdhttp.Request, in domain.GaugeInput) (any, error) {
	return h.svc.Gauge(r.Context(), in)
}

func (h *handlers) panels(r *stdhttp.Request, in domain.PanelsInput) (any, error) {
	return h.svc.Panels(r.Context(), in)
}

func (h *handlers) exportPanels(r *stdhttp.Request, in domain.PanelsInput) (httpkit.File, error) {
	out, err := h.svc.ExportPanels(r.Context(), in)
	return file(out), err
}

func (h *handlers) overview(r *stdhttp.Request, in domain.OverviewInput) (any, error) {
	return h.svc.Overview(r.Context(), in)
}

func file(r domain.Rendered) httpkit.File {
	return httpkit.File{Name: r.Name, ContentType: r.ContentType, Body: r.Body}
}
