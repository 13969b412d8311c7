// Package chart draws indicator series as line charts
package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"econlens/internal/core/indicators"
	perr "econlens/internal/platform/errors"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an output image format
type Format string

// Supported formats
const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts png or svg, case-insensitively; empty means png
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	}
	return "", perr.WithField(perr.InvalidArgf("unsupported chart format %q", s), "format")
}

// ContentType is the http content type of f
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Options tunes a rendered chart
type Options struct {
	Title  string
	Format Format
	Width  int
	Height int
	// YLabel formats y axis ticks, nil prints the raw value
	YLabel func(float64) string
}

const (
	defaultWidth  = 1024
	defaultHeight = 512
)

// Render draws one line per series; missing points are skipped
// at least one value across all series is required
func Render(w io.Writer, series []indicators.Series, opt Options) error {
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	var lines []gochart.Series
	for i, s := range series {
		var xs, ys []float64
		for _, p := range s.Points {
			f, ok := p.Value.Float()
			if !ok {
				continue
			}
			xs = append(xs, float64(p.Year))
			ys = append(ys, f)
			xMin, xMax = math.Min(xMin, float64(p.Year)), math.Max(xMax, float64(p.Year))
			yMin, yMax = math.Min(yMin, f), math.Max(yMax, f)
		}
		if len(xs) == 0 {
			continue
		}
		lines = append(lines, gochart.ContinuousSeries{
			Name:    s.Entity,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(gochart.GetDefaultColor(i)),
		})
	}
	if len(lines) == 0 {
		return perr.InvalidArgf("chart needs at least one value")
	}

	// a single year is drawn as dots centred on it
	xRange := &gochart.ContinuousRange{Min: xMin, Max: xMax}
	if xMin == xMax {
		xRange = &gochart.ContinuousRange{Min: xMin - 1, Max: xMax + 1}
	}

	yRange := &gochart.ContinuousRange{Min: yMin, Max: yMax}
	if yMin == yMax {
		pad := math.Max(math.Abs(yMin)*0.1, 1)
		yRange = &gochart.ContinuousRange{Min: yMin - pad, Max: yMax + pad}
	}
	yFmt := func(v any) string {
		f, _ := v.(float64)
		if opt.YLabel != nil {
			return opt.YLabel(f)
		}
		return fmt.Sprintf("%g", f)
	}

	c := gochart.Chart{
		Title:      opt.Title,
		Width:      orDefault(opt.Width, defaultWidth),
		Height:     orDefault(opt.Height, defaultHeight),
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:           "Year",
			Range:          xRange,
			ValueFormatter: yearLabel,
		},
		YAxis:  gochart.YAxis{Range: yRange, ValueFormatter: yFmt},
		Series: lines,
	}
	c.Elements = []gochart.Renderable{gochart.Legend(&c)}

	rp := gochart.PNG
	if opt.Format == SVG {
		rp = gochart.SVG
	}
	if err := c.Render(rp, w); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "render chart")
	}
	return nil
}

func yearLabel(v any) string {
	f, _ := v.(float64)
	return fmt.Sprintf("%.0f", f)
}

func lineStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    3,
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
