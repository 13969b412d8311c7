package indicators

import "sort"

// YearRange is an inclusive span of years
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Year is the single-year range
func Year(y int) YearRange { return YearRange{Start: y, End: y} }

// Empty reports whether the range selects nothing
func (r YearRange) Empty() bool { return r.Start > r.End }

// Contains reports whether y is inside the range
func (r YearRange) Contains(y int) bool { return y >= r.Start && y <= r.End }

// Query selects entities, years and optionally a subset of indicators
type Query struct {
	Entities   []string
	Years      YearRange
	Indicators []string
}

// Row is one (entity, year) line of a ResultSet
type Row struct {
	Entity    string           `json:"entity"`
	Year      int              `json:"year"`
	Synthetic bool             `json:"synthetic,omitempty"`
	Values    map[string]Value `json:"values"`
}

// ResultSet is the output of Resolve
type ResultSet struct {
	Indicators []string `json:"indicators"`
	Rows       []Row    `json:"rows"`
}

// Resolve filters the dataset by entity and year, synthesizing Worldwide rows
// rows come back in selection order, then by year
func (e *Engine) Resolve(q Query) (ResultSet, error) {
	cols, idx, err := e.indicatorCols(q.Indicators)
	if err != nil {
		return ResultSet{}, err
	}
	rs := ResultSet{Indicators: cols, Rows: []Row{}}
	if q.Years.Empty() {
		return rs, nil
	}

	seen := map[string]struct{}{}
	for _, ent := range q.Entities {
		if _, dup := seen[ent]; dup {
			continue
		}
		seen[ent] = struct{}{}

		if ent == Worldwide {
			rs.Rows = append(rs.Rows, e.worldwide(q.Years, cols, idx)...)
			continue
		}
		rows := e.ds.byCountry[ent]
		lo := sort.Search(len(rows), func(i int) bool { return rows[i].year >= q.Years.Start })
		for _, r := range rows[lo:] {
			if r.year > q.Years.End {
				break
			}
			rs.Rows = append(rs.Rows, project(ent, r.year, false, r.vals, cols, idx))
		}
	}
	return rs, nil
}

// worldwide averages every country's non-missing values per year
func (e *Engine) worldwide(years YearRange, cols []string, idx []int) []Row {
	var out []Row
	lo := sort.SearchInts(e.ds.years, years.Start)
	for _, y := range e.ds.years[lo:] {
		if y > years.End {
			break
		}
		vals := make([]Value, len(e.ds.indicators))
		for _, i := range idx {
			sum, n := 0.0, 0
			for _, r := range e.ds.byYear[y] {
				if f, ok := r.vals[i].Float(); ok {
					sum += f
					n++
				}
			}
			if n > 0 {
				vals[i] = Of(sum / float64(n))
			}
		}
		out = append(out, project(Worldwide, y, true, vals, cols, idx))
	}
	return out
}

func project(entity string, year int, synthetic bool, vals []Value, cols []string, idx []int) Row {
	m := make(map[string]Value, len(cols))
	for k, i := range idx {
		m[cols[k]] = vals[i]
	}
	return Row{Entity: entity, Year: year, Synthetic: synthetic, Values: m}
}

// entityRows resolves one entity and one indicator to its rows
func (e *Engine) entityRows(entity, indicator string, years YearRange) ([]Row, error) {
	rs, err := e.Resolve(Query{Entities: []string{entity}, Years: years, Indicators: []string{indicator}})
	if err != nil {
		return nil, err
	}
	return rs.Rows, nil
}

// Point is one year of a series
type Point struct {
	Year  int   `json:"year"`
	Value Value `json:"value"`
}

// Series is one entity's values for an indicator over time
type Series struct {
	Entity    string  `json:"entity"`
	Indicator string  `json:"indicator"`
	Synthetic bool    `json:"synthetic,omitempty"`
	Points    []Point `json:"points"`
}

// SeriesFor builds one series per entity in selection order
// entities without rows still get an empty series
func (e *Engine) SeriesFor(entities []string, indicator string, years YearRange) ([]Series, error) {
	rs, err := e.Resolve(Query{Entities: entities, Years: years, Indicators: []string{indicator}})
	if err != nil {
		return nil, err
	}
	var out []Series
	pos := map[string]int{}
	for _, ent := range entities {
		if _, dup := pos[ent]; dup {
			continue
		}
		pos[ent] = len(out)
		out = append(out, Series{Entity: ent, Indicator: indicator, Synthetic: ent == Worldwide, Points: []Point{}})
	}
	for _, r := range rs.Rows {
		s := &out[pos[r.Entity]]
		s.Points = append(s.Points, Point{Year: r.Year, Value: r.Values[indicator]})
	}
	return out, nil
}

// Latest finds the most recent year in range where entity has a value for indicator
func (e *Engine) Latest(entity, indicator string, years YearRange) (Point, bool, error) {
	rows, err := e.entityRows(entity, indicator, years)
	if err != nil {
		return Point{}, false, err
	}
	for i := len(rows) - 1; i >= 0; i-- {
		if v := rows[i].Values[indicator]; !v.IsMissing() {
			return Point{Year: rows[i].Year, Value: v}, true, nil
		}
	}
	return Point{}, false, nil
}

// Average is the mean of entity's non-missing values for indicator over years
// it is missing when no year in range has a value
func (e *Engine) Average(entity, indicator string, years YearRange) (Value, error) {
	rows, err := e.entityRows(entity, indicator, years)
	if err != nil {
		return Missing(), err
	}
	sum, n := 0.0, 0
	for _, r := range rows {
		if f, ok := r.Values[indicator].Float(); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return Missing(), nil
	}
	return Of(sum / float64(n)), nil
}
