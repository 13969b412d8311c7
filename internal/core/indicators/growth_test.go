package indicators

import (
	"testing"

	perr "econlens/internal/platform/errors"
)

func TestGrowth(t *testing.T) {
	cases := []struct {
		name     string
		cur      Value
		prev     Value
		want     float64
		wantMiss bool
	}{
		{"rise", Of(110), Of(100), 10, false},
		{"fall", Of(90), Of(100), -10, false},
		{"negative base", Of(-50), Of(-100), -50, false},
		{"zero base", Of(5), Of(0), 0, true},
		{"missing current", Missing(), Of(1), 0, true},
		{"missing previous", Of(1), Missing(), 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Growth(tc.cur, tc.prev)
			if got.IsMissing() != tc.wantMiss {
				t.Fatalf("missing = %v", got.IsMissing())
			}
			if !tc.wantMiss && !approx(mustFloat(t, got), tc.want) {
				t.Fatalf("growth = %v want %v", got, tc.want)
			}
		})
	}
}

func TestGrowthYoY(t *testing.T) {
	e := newFixtureEngine(t)

	got, err := e.GrowthYoY("United States", gdp, 2023)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(mustFloat(t, got), 8.0) {
		t.Fatalf("us gdp yoy = %v", got)
	}

	undefined := []struct {
		name   string
		entity string
		ind    string
		year   int
	}{
		{"current missing", "Brazil", unemp, 2020},
		{"previous missing", "Brazil", unemp, 2021},
		{"previous year absent", "Japan", gdp, 2022},
		{"first year", "Brazil", gdp, 2019},
		{"unknown entity", "Atlantis", gdp, 2022},
	}
	for _, tc := range undefined {
		t.Run(tc.name, func(t *testing.T) {
			v, err := e.GrowthYoY(tc.entity, tc.ind, tc.year)
			if err != nil {
				t.Fatal(err)
			}
			if !v.IsMissing() {
				t.Fatalf("want missing, got %v", v)
			}
		})
	}

	ww, err := e.GrowthYoY(Worldwide, cpi, 2021)
	if err != nil {
		t.Fatal(err)
	}
	// 2020 mean is Brazil alone at 3.2, 2021 mean is 6.5
	if !approx(mustFloat(t, ww), (6.5-3.2)/3.2*100) {
		t.Fatalf("worldwide yoy = %v", ww)
	}

	if _, err := e.GrowthYoY("Brazil", "nope", 2020); !perr.IsCode(err, perr.ErrorCodeSchema) {
		t.Fatalf("err = %v", err)
	}
}

func TestGrowthPeriod(t *testing.T) {
	e := newFixtureEngine(t)

	pc, err := e.GrowthPeriod("United States", gdp, YearRange{2021, 2023})
	if err != nil {
		t.Fatal(err)
	}
	if pc.FromYear != 2021 || pc.ToYear != 2023 || pc.Direction != DirectionUp {
		t.Fatalf("us period = %+v", pc)
	}
	if !approx(mustFloat(t, pc.Percent), (27.0-23.0)/23.0*100) {
		t.Fatalf("percent = %v", pc.Percent)
	}

	// 2021 is absent for Japan and the gap is skipped
	pc, err = e.GrowthPeriod("Japan", gdp, YearRange{2020, 2023})
	if err != nil {
		t.Fatal(err)
	}
	if pc.FromYear != 2020 || pc.ToYear != 2022 || pc.Direction != DirectionDown || !approx(mustFloat(t, pc.Percent), -16) {
		t.Fatalf("japan period = %+v", pc)
	}

	pc, _ = e.GrowthPeriod("Japan", gdp, YearRange{2022, 2023})
	if !pc.Percent.IsMissing() || pc.Direction != "" || pc.FromYear != 2022 || pc.ToYear != 2022 {
		t.Fatalf("single row = %+v", pc)
	}
	if mustFloat(t, pc.From) != 4.2e12 {
		t.Fatalf("from = %v", pc.From)
	}

	pc, _ = e.GrowthPeriod("United States", unemp, YearRange{2022, 2023})
	if pc.Direction != DirectionFlat || mustFloat(t, pc.Percent) != 0 {
		t.Fatalf("flat = %+v", pc)
	}

	pc, _ = e.GrowthPeriod("Brazil", unemp, YearRange{2020, 2021})
	if !pc.Percent.IsMissing() || pc.Direction != "" {
		t.Fatalf("missing endpoint = %+v", pc)
	}

	pc, _ = e.GrowthPeriod("Atlantis", gdp, YearRange{2019, 2023})
	if pc.FromYear != 0 || !pc.Percent.IsMissing() {
		t.Fatalf("no rows = %+v", pc)
	}
}
