// Package domain holds DTOs for indicators http and service contracts
package domain

import (
	"econlens/internal/adapters/render/isocodes"
	"econlens/internal/core/indicators"
)

// Entity selections accept concrete country names and Worldwide together
// Years are inclusive; a start after the end selects nothing

// Country is a selectable entity with its ISO codes
type Country = isocodes.Country

// YearsResponse lists the years offered for selection
type YearsResponse struct {
	Years []int `json:"years" example:"2021,2022,2023"`
	Max   int   `json:"max" example:"2023"`
}

// ResolveInput filters the dataset by entity and year
type ResolveInput struct {
	Entities   []string `json:"entities" validate:"required,min=1,max=64,dive,required,max=120" example:"United States,Worldwide"`
	Start      int      `json:"start" validate:"min=0,max=9999" example:"2019"`
	End        int      `json:"end" validate:"min=0,max=9999" example:"2023"`
	Indicators []string `json:"indicators,omitempty" validate:"omitempty,max=64,dive,required" example:"GDP (Current USD)"`
}

// SeriesInput selects one indicator over time for several entities
type SeriesInput struct {
	Entities  []string `json:"entities" validate:"required,min=1,max=16,dive,required,max=120" example:"Brazil,Worldwide"`
	Indicator string   `json:"indicator" validate:"required,max=200" example:"Inflation (CPI %)"`
	Start     int      `json:"start" validate:"min=0,max=9999" example:"2000"`
	End       int      `json:"end" validate:"min=0,max=9999" example:"2023"`
}

// ChartInput renders a SeriesInput as an image
type ChartInput struct {
	SeriesInput
	Format string `json:"format,omitempty" validate:"omitempty,oneof=png svg" example:"png"`
	Title  string `json:"title,omitempty" validate:"omitempty,max=200" example:"Inflation"`
	Width  int    `json:"width,omitempty" validate:"omitempty,min=200,max=4096" example:"1024"`
	Height int    `json:"height,omitempty" validate:"omitempty,min=150,max=4096" example:"512"`
}

// YoYInput asks for the change of an indicator against the previous year
type YoYInput struct {
	Entity    string `json:"entity" validate:"required,max=120" example:"United States"`
	Indicator string `json:"indicator" validate:"required,max=200" example:"GDP (Current USD)"`
	Year      int    `json:"year" validate:"required,min=1,max=9999" example:"2023"`
}

// YoYResponse carries the percentage and its display text
type YoYResponse struct {
	Entity    string           `json:"entity" example:"United States"`
	Indicator string           `json:"indicator" example:"GDP (Current USD)"`
	Year      int              `json:"year" example:"2023"`
	Percent   indicators.Value `json:"percent" example:"8"`
	Text      string           `json:"text" example:"8.00%"`
}

// PeriodInput asks for the first to last change inside a range
type PeriodInput struct {
	Entity    string `json:"entity" validate:"required,max=120" example:"Japan"`
	Indicator string `json:"indicator" validate:"required,max=200" example:"GDP (Current USD)"`
	Start     int    `json:"start" validate:"min=0,max=9999" example:"2020"`
	End       int    `json:"end" validate:"min=0,max=9999" example:"2023"`
}

// PeriodResponse is a period change with its display text
type PeriodResponse struct {
	indicators.PeriodChange
	Text string `json:"text" example:"-16.00%"`
}

// FormatInput is a raw magnitude
type FormatInput struct {
	Value indicators.Value `json:"value" example:"27000000000000"`
}

// FormatResponse is the rendered magnitude
type FormatResponse struct {
	Text string `json:"text" example:"27.0 T"`
}

// GaugeInput encodes a value against an indicator display max
type GaugeInput struct {
	Value     indicators.Value `json:"value" example:"118"`
	Indicator string           `json:"indicator" validate:"required,max=200" example:"Public Debt (% of GDP)"`
}

// PanelSelection is one (country, year) to compare
type PanelSelection struct {
	Country string `json:"country" validate:"required,max=120" example:"Japan"`
	Year    int    `json:"year" validate:"required,min=1,max=9999" example:"2022"`
}

// PanelsInput asks for one to four comparison panels
type PanelsInput struct {
	Selections []PanelSelection `json:"selections" validate:"required,min=1,max=4,dive"`
	Indicators []string         `json:"indicators,omitempty" validate:"omitempty,max=32,dive,required"`
}

// OverviewInput selects the entity and year of the headline cards
type OverviewInput struct {
	Entity string `json:"entity" validate:"required,max=120" example:"Worldwide"`
	Year   int    `json:"year" validate:"required,min=1,max=9999" example:"2023"`
}

// MetricCard is one headline value with its change against the previous year
type MetricCard struct {
	Indicator  string            `json:"indicator" example:"GDP (Current USD)"`
	Value      indicators.Value  `json:"value" example:"27000000000000"`
	Text       string            `json:"text" example:"27.0 T"`
	Growth     indicators.Value  `json:"growth" example:"8"`
	GrowthText string            `json:"growth_text" example:"8.00% from last year"`
	Latest     *indicators.Point `json:"latest,omitempty"`
}

// OverviewResponse holds the headline cards of one entity and year
type OverviewResponse struct {
	Entity string       `json:"entity" example:"Worldwide"`
	Year   int          `json:"year" example:"2023"`
	Cards  []MetricCard `json:"cards"`
}

// LatestInput asks for the most recent reported year inside a range
type LatestInput struct {
	Entity    string `json:"entity" validate:"required,max=120" example:"Brazil"`
	Indicator string `json:"indicator" validate:"required,max=200" example:"Unemployment Rate (%)"`
	Start     int    `json:"start" validate:"min=0,max=9999" example:"2015"`
	End       int    `json:"end" validate:"min=0,max=9999" example:"2023"`
}

// LatestResponse is the latest reported value; Found is false when there is none
type LatestResponse struct {
	Entity    string           `json:"entity" example:"Brazil"`
	Indicator string           `json:"indicator" example:"Unemployment Rate (%)"`
	Found     bool             `json:"found" example:"true"`
	Year      int              `json:"year,omitempty" example:"2021"`
	Value     indicators.Value `json:"value" example:"13.2"`
	Text      string           `json:"text" example:"13.20%"`
}

// AverageInput asks for the mean of an indicator inside a range
type AverageInput struct {
	Entity    string `json:"entity" validate:"required,max=120" example:"Brazil"`
	Indicator string `json:"indicator" validate:"required,max=200" example:"GDP per Capita (Current USD)"`
	Start     int    `json:"start" validate:"min=0,max=9999" example:"2019"`
	End       int    `json:"end" validate:"min=0,max=9999" example:"2021"`
}

// AverageResponse is the mean over the years with a value; Text is "No data" when there are none
type AverageResponse struct {
	Entity    string           `json:"entity" example:"Brazil"`
	Indicator string           `json:"indicator" example:"GDP per Capita (Current USD)"`
	Start     int              `json:"start" example:"2019"`
	End       int              `json:"end" example:"2021"`
	Value     indicators.Value `json:"value" example:"7800"`
	Text      string           `json:"text" example:"7,800"`
}

// Rendered is a binary payload produced by the service, such as a chart or a workbook
type Rendered struct {
	Name        string
	ContentType string
	Body        []byte
}
