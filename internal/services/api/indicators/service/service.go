// Package service contains indicators workflows
package service

import (
	"bytes"
	"context"
	"fmt"

	"econlens/internal/adapters/render/chart"
	"econlens/internal/adapters/render/isocodes"
	"econlens/internal/adapters/render/xlsx"
	"econlens/internal/core/indicators"
	"econlens/internal/services/api/indicators/domain"
)

// Service defines the indicators service contract
type Service interface {
	domain.ServicePort
	domain.Ready
}

// DefaultHeadline are the overview cards shown when none are configured
var DefaultHeadline = []string{
	"GDP (Current USD)",
	"GDP per Capita (Current USD)",
	"Gross National Income (USD)",
}

// DefaultMaxYear caps the years offered for selection
const DefaultMaxYear = 2023

// NoData is the average text when no year in range has a value
const NoData = "No data"

// Options tunes the service
type Options struct {
	MaxYear  int
	Headline []string
}

// Svc implements the indicators service over a lazily loaded engine
type Svc struct {
	data *indicators.Lazy
	opt  Options
}

// New constructs an indicators service
func New(data *indicators.Lazy, opt Options) *Svc {
	if data == nil {
		panic("indicators.Service requires a non nil dataset")
	}
	if opt.MaxYear <= 0 {
		opt.MaxYear = DefaultMaxYear
	}
	if len(opt.Headline) == 0 {
		opt.Headline = DefaultHeadline
	}
	return &Svc{data: data, opt: opt}
}

// Loaded reports whether the dataset is in memory
func (s *Svc) Loaded() bool { return s.data.Loaded() }

// Countries lists Worldwide and every dataset country with ISO codes
func (s *Svc) Countries(ctx context.Context) ([]domain.Country, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return nil, err
	}
	return isocodes.Enrich(e.ListCountries()), nil
}

// Years lists dataset years up to the configured cap
func (s *Svc) Years(ctx context.Context) (domain.YearsResponse, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return domain.YearsResponse{}, err
	}
	return domain.YearsResponse{Years: e.ListYears(s.opt.MaxYear), Max: s.opt.MaxYear}, nil
}

// Catalog returns every indicator with its classification
func (s *Svc) Catalog(ctx context.Context) ([]indicators.Entry, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return nil, err
	}
	return e.Catalog().Entries(), nil
}

// Resolve filters the dataset by entity and year
func (s *Svc) Resolve(ctx context.Context, in domain.ResolveInput) (indicators.ResultSet, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return indicators.ResultSet{}, err
	}
	return e.Resolve(indicators.Query{
		Entities:   canonical(e, in.Entities),
		Years:      indicators.YearRange{Start: in.Start, End: in.End},
		Indicators: in.Indicators,
	})
}

// ExportRows resolves the query and writes the rows to a workbook
func (s *Svc) ExportRows(ctx context.Context, in domain.ResolveInput) (domain.Rendered, error) {
	rs, err := s.Resolve(ctx, in)
	if err != nil {
		return domain.Rendered{}, err
	}
	var buf bytes.Buffer
	if err := xlsx.Rows(&buf, rs); err != nil {
		return domain.Rendered{}, err
	}
	return domain.Rendered{Name: "rows.xlsx", ContentType: xlsx.ContentType, Body: buf.Bytes()}, nil
}

// Series returns one series per entity for an indicator
func (s *Svc) Series(ctx context.Context, in domain.SeriesInput) ([]indicators.Series, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return nil, err
	}
	return e.SeriesFor(canonical(e, in.Entities), in.Indicator, indicators.YearRange{Start: in.Start, End: in.End})
}

// Chart renders the series of an indicator as png or svg
func (s *Svc) Chart(ctx context.Context, in domain.ChartInput) (domain.Rendered, error) {
	format, err := chart.ParseFormat(in.Format)
	if err != nil {
		return domain.Rendered{}, err
	}
	e, err := s.data.Get(ctx)
	if err != nil {
		return domain.Rendered{}, err
	}
	series, err := e.SeriesFor(canonical(e, in.Entities), in.Indicator, indicators.YearRange{Start: in.Start, End: in.End})
	if err != nil {
		return domain.Rendered{}, err
	}
	ent, err := e.Catalog().Entry(in.Indicator)
	if err != nil {
		return domain.Rendered{}, err
	}
	title := in.Title
	if title == "" {
		title = in.Indicator
	}

	var buf bytes.Buffer
	err = chart.Render(&buf, series, chart.Options{
		Title:  title,
		Format: format,
		Width:  in.Width,
		Height: in.Height,
		YLabel: func(f float64) string { return valueText(ent.Kind, indicators.Of(f)) },
	})
	if err != nil {
		return domain.Rendered{}, err
	}
	return domain.Rendered{ContentType: format.ContentType(), Body: buf.Bytes()}, nil
}

// GrowthYoY compares a year with the previous one
func (s *Svc) GrowthYoY(ctx context.Context, in domain.YoYInput) (domain.YoYResponse, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return domain.YoYResponse{}, err
	}
	entity := e.Canonical(in.Entity)
	pct, err := e.GrowthYoY(entity, in.Indicator, in.Year)
	if err != nil {
		return domain.YoYResponse{}, err
	}
	return domain.YoYResponse{
		Entity:    entity,
		Indicator: in.Indicator,
		Year:      in.Year,
		Percent:   pct,
		Text:      percentText(pct),
	}, nil
}

// GrowthPeriod compares the first and last reported years of a range
func (s *Svc) GrowthPeriod(ctx context.Context, in domain.PeriodInput) (domain.PeriodResponse, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return domain.PeriodResponse{}, err
	}
	pc, err := e.GrowthPeriod(e.Canonical(in.Entity), in.Indicator, indicators.YearRange{Start: in.Start, End: in.End})
	if err != nil {
		return domain.PeriodResponse{}, err
	}
	return domain.PeriodResponse{PeriodChange: pc, Text: percentText(pc.Percent)}, nil
}

// FormatMagnitude renders a raw value with a T/B/M suffix
func (s *Svc) FormatMagnitude(_ context.Context, in domain.FormatInput) (domain.FormatResponse, error) {
	return domain.FormatResponse{Text: indicators.FormatMagnitude(in.Value)}, nil
}

// Gauge encodes a value against the display max of an indicator
func (s *Svc) Gauge(ctx context.Context, in domain.GaugeInput) (indicators.Gauge, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return indicators.Gauge{}, err
	}
	return e.Gauge(in.Value, in.Indicator)
}

// Panels builds one comparison snapshot per selection
func (s *Svc) Panels(ctx context.Context, in domain.PanelsInput) ([]indicators.Panel, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return nil, err
	}
	sel := make([]indicators.Selection, 0, len(in.Selections))
	for _, p := range in.Selections {
		sel = append(sel, indicators.Selection{Country: e.Canonical(p.Country), Year: p.Year})
	}
	return e.BuildPanels(sel, in.Indicators)
}

// ExportPanels builds the panels and writes them to a workbook
func (s *Svc) ExportPanels(ctx context.Context, in domain.PanelsInput) (domain.Rendered, error) {
	panels, err := s.Panels(ctx, in)
	if err != nil {
		return domain.Rendered{}, err
	}
	var buf bytes.Buffer
	if err := xlsx.Panels(&buf, panels); err != nil {
		return domain.Rendered{}, err
	}
	return domain.Rendered{Name: "panels.xlsx", ContentType: xlsx.ContentType, Body: buf.Bytes()}, nil
}

// Overview builds the headline cards of an entity for a year
func (s *Svc) Overview(ctx context.Context, in domain.OverviewInput) (domain.OverviewResponse, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return domain.OverviewResponse{}, err
	}
	entity := e.Canonical(in.Entity)
	var headline []string
	for _, name := range s.opt.Headline {
		if e.Dataset().Has(name) {
			headline = append(headline, name)
		}
	}
	out := domain.OverviewResponse{Entity: entity, Year: in.Year, Cards: []domain.MetricCard{}}
	if len(headline) == 0 {
		return out, nil
	}

	rs, err := e.Resolve(indicators.Query{Entities: []string{entity}, Years: indicators.Year(in.Year), Indicators: headline})
	if err != nil {
		return out, err
	}
	first := in.Year
	if ys := e.Dataset().Years(); len(ys) > 0 && ys[0] < first {
		first = ys[0]
	}
	for _, name := range headline {
		ent, err := e.Catalog().Entry(name)
		if err != nil {
			return out, err
		}
		v := indicators.Missing()
		if len(rs.Rows) > 0 {
			v = rs.Rows[0].Values[name]
		}
		growth, err := e.GrowthYoY(entity, name, in.Year)
		if err != nil {
			return out, err
		}
		card := domain.MetricCard{
			Indicator:  name,
			Value:      v,
			Text:       valueText(ent.Kind, v),
			Growth:     growth,
			GrowthText: growthText(growth),
		}
		if p, found, err := e.Latest(entity, name, indicators.YearRange{Start: first, End: in.Year}); err != nil {
			return out, err
		} else if found {
			card.Latest = &p
		}
		out.Cards = append(out.Cards, card)
	}
	return out, nil
}

// Latest finds the most recent year with a value inside a range
func (s *Svc) Latest(ctx context.Context, in domain.LatestInput) (domain.LatestResponse, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return domain.LatestResponse{}, err
	}
	entity := e.Canonical(in.Entity)
	ent, err := e.Catalog().Entry(in.Indicator)
	if err != nil {
		return domain.LatestResponse{}, err
	}
	p, found, err := e.Latest(entity, in.Indicator, indicators.YearRange{Start: in.Start, End: in.End})
	if err != nil {
		return domain.LatestResponse{}, err
	}
	out := domain.LatestResponse{Entity: entity, Indicator: in.Indicator, Text: indicators.NA}
	if found {
		out.Found, out.Year, out.Value = true, p.Year, p.Value
		out.Text = valueText(ent.Kind, p.Value)
	}
	return out, nil
}

// Average is the mean of an indicator over the years of a range that have a value
func (s *Svc) Average(ctx context.Context, in domain.AverageInput) (domain.AverageResponse, error) {
	e, err := s.data.Get(ctx)
	if err != nil {
		return domain.AverageResponse{}, err
	}
	entity := e.Canonical(in.Entity)
	ent, err := e.Catalog().Entry(in.Indicator)
	if err != nil {
		return domain.AverageResponse{}, err
	}
	v, err := e.Average(entity, in.Indicator, indicators.YearRange{Start: in.Start, End: in.End})
	if err != nil {
		return domain.AverageResponse{}, err
	}
	out := domain.AverageResponse{Entity: entity, Indicator: in.Indicator, Start: in.Start, End: in.End, Value: v, Text: NoData}
	if !v.IsMissing() {
		out.Text = valueText(ent.Kind, v)
	}
	return out, nil
}

func canonical(e *indicators.Engine, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = e.Canonical(n)
	}
	return out
}

// percentText renders a percentage with two decimals, or N/A
func percentText(v indicators.Value) string {
	f, ok := v.Float()
	if !ok {
		return indicators.NA
	}
	return fmt.Sprintf("%.2f%%", f)
}

func growthText(v indicators.Value) string {
	if v.IsMissing() {
		return indicators.NA
	}
	return percentText(v) + " from last year"
}

func valueText(k indicators.Kind, v indicators.Value) string {
	if k == indicators.Magnitude {
		return indicators.FormatMagnitude(v)
	}
	return percentText(v)
}
