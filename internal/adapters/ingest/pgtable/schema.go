package pgtable

import (
	"fmt"
	"strings"

	"econlens/internal/core/indicators"

	"github.com/jackc/pgx/v5"
)

func quoteCol(name string) string { return pgx.Identifier{name}.Sanitize() }

// CreateTableSQL returns the ddl for a wide table holding names
func CreateTableSQL(table string, names []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "create table if not exists %s (\n\tcountry_name text not null,\n\tyear int not null", QuoteTable(table))
	for _, n := range names {
		fmt.Fprintf(&b, ",\n\t%s double precision", quoteCol(n))
	}
	b.WriteString(",\n\tprimary key (country_name, year)\n)")
	return b.String()
}

// UpsertSQL returns an insert that replaces every indicator of an existing row
func UpsertSQL(table string, names []string) string {
	cols := []string{indicators.ColCountry, indicators.ColYear}
	cols = append(cols, names...)
	quoted := make([]string, len(cols))
	params := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quoteCol(c)
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	sets := make([]string, 0, len(names))
	for _, n := range names {
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", quoteCol(n), quoteCol(n)))
	}
	conflict := "do nothing"
	if len(sets) > 0 {
		conflict = "do update set " + strings.Join(sets, ", ")
	}
	return fmt.Sprintf("insert into %s (%s) values (%s) on conflict (country_name, year) %s",
		QuoteTable(table), strings.Join(quoted, ", "), strings.Join(params, ", "), conflict)
}

// UpsertArgs returns the arguments for UpsertSQL, missing values become null
func UpsertArgs(ds *indicators.Dataset, country string, year int) ([]any, bool) {
	names := ds.Indicators()
	args := make([]any, 0, len(names)+2)
	args = append(args, country, year)
	for _, n := range names {
		v, found, _ := ds.Lookup(country, year, n)
		if !found {
			return nil, false
		}
		if f, ok := v.Float(); ok {
			args = append(args, f)
		} else {
			args = append(args, nil)
		}
	}
	return args, true
}
