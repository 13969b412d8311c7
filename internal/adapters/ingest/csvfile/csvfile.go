// Package csvfile loads the indicator dataset from a World Bank style csv export
//
// The file has a country_name column, a numeric year column and one numeric
// column per indicator. Blank or unparsable cells are missing values
package csvfile

import (
	"context"
	"io"
	"os"
	"slices"
	"strings"

	"econlens/internal/core/indicators"
	perr "econlens/internal/platform/errors"
	"econlens/internal/platform/logger"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Source reads the dataset from a file on disk
type Source struct {
	Path   string
	Window indicators.YearWindow
}

// Name identifies the source in logs and readiness output
func (s Source) Name() string { return "csv:" + s.Path }

// Load opens Path and parses it
func (s Source) Load(ctx context.Context) (*indicators.Dataset, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open indicator csv %s", s.Path)
	}
	defer f.Close()
	return Read(ctx, f, s.Window)
}

// Read parses a csv stream into a Dataset
// rows with an empty country or a year outside w are dropped, years are rounded
func Read(ctx context.Context, r io.Reader, w indicators.YearWindow) (*indicators.Dataset, error) {
	if w == (indicators.YearWindow{}) {
		w = indicators.DefaultYearWindow
	}
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.WithTypes(map[string]series.Type{indicators.ColCountry: series.String}),
	)
	if df.Err != nil {
		return nil, perr.Wrap(df.Err, perr.ErrorCodeSchema, "parse indicator csv")
	}

	names := df.Names()
	for _, required := range []string{indicators.ColCountry, indicators.ColYear} {
		if !slices.Contains(names, required) {
			return nil, perr.WithField(perr.Schemaf("indicator csv has no %s column", required), required)
		}
	}
	cols := make([]string, 0, len(names))
	for _, n := range names {
		if n != indicators.ColCountry && n != indicators.ColYear {
			cols = append(cols, n)
		}
	}

	countries := df.Col(indicators.ColCountry)
	years := df.Col(indicators.ColYear).Float()
	values := make([][]float64, len(cols))
	for k, c := range cols {
		values[k] = df.Col(c).Float()
	}

	b := indicators.NewBuilder(cols)
	for i := 0; i < df.Nrow(); i++ {
		el := countries.Elem(i)
		country := strings.TrimSpace(el.String())
		year, ok := w.Accept(years[i])
		if el.IsNA() || country == "" || !ok {
			b.Drop()
			continue
		}
		b.Touch(country, year)
		for k, c := range cols {
			if err := b.Set(country, year, c, indicators.Of(values[k][i])); err != nil {
				return nil, perr.WithOp(err, "csvfile.Read")
			}
		}
	}

	ds, err := b.Dataset()
	if err != nil {
		return nil, err
	}
	if b.Dropped() > 0 {
		logger.C(ctx).Debug().Int("dropped", b.Dropped()).Int("kept", ds.Len()).Msg("indicator csv rows dropped")
	}
	return ds, nil
}
