package indicators

// Growth is the signed percentage change from prev to cur
// missing on either side, or a zero base, yields a missing result
func Growth(cur, prev Value) Value {
	c, ok := cur.Float()
	if !ok {
		return Missing()
	}
	p, ok := prev.Float()
	if !ok || p == 0 {
		return Missing()
	}
	return Of((c - p) / p * 100)
}

// GrowthYoY compares entity's indicator at year with year-1
func (e *Engine) GrowthYoY(entity, indicator string, year int) (Value, error) {
	rows, err := e.entityRows(entity, indicator, YearRange{Start: year - 1, End: year})
	if err != nil {
		return Missing(), err
	}
	var cur, prev Value
	for _, r := range rows {
		switch r.Year {
		case year:
			cur = r.Values[indicator]
		case year - 1:
			prev = r.Values[indicator]
		}
	}
	return Growth(cur, prev), nil
}

// Direction of a period change
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

// PeriodChange is the start-to-end change of one entity over a range
type PeriodChange struct {
	Entity    string `json:"entity"`
	Indicator string `json:"indicator"`
	FromYear  int    `json:"from_year,omitempty"`
	ToYear    int    `json:"to_year,omitempty"`
	From      Value  `json:"from"`
	To        Value  `json:"to"`
	Percent   Value  `json:"percent"`
	Direction string `json:"direction,omitempty"`
}

// GrowthPeriod compares the first and last rows the entity has inside years
// gaps in between are ignored; fewer than two rows leaves Percent missing
func (e *Engine) GrowthPeriod(entity, indicator string, years YearRange) (PeriodChange, error) {
	pc := PeriodChange{Entity: entity, Indicator: indicator}
	rows, err := e.entityRows(entity, indicator, years)
	if err != nil {
		return pc, err
	}
	if len(rows) == 0 {
		return pc, nil
	}
	first, last := rows[0], rows[len(rows)-1]
	pc.FromYear, pc.ToYear = first.Year, last.Year
	pc.From, pc.To = first.Values[indicator], last.Values[indicator]
	if len(rows) < 2 {
		return pc, nil
	}
	pc.Percent = Growth(pc.To, pc.From)
	if f, ok := pc.Percent.Float(); ok {
		switch {
		case f > 0:
			pc.Direction = DirectionUp
		case f < 0:
			pc.Direction = DirectionDown
		default:
			pc.Direction = DirectionFlat
		}
	}
	return pc, nil
}
