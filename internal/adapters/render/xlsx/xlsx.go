// Package xlsx exports comparison panels and resolved rows as excel workbooks
package xlsx

import (
	"fmt"
	"io"

	"econlens/internal/core/indicators"
	perr "econlens/internal/platform/errors"

	"github.com/xuri/excelize/v2"
)

// ContentType of the workbooks written here
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names
const (
	SheetPanels = "Panels"
	SheetValues = "Values"
	SheetRows   = "Rows"
)

type cell struct {
	text string
	v    indicators.Value
}

// Panels writes one column per panel: display text on SheetPanels, raw numbers on SheetValues
func Panels(w io.Writer, panels []indicators.Panel) error {
	var order []string
	seen := map[string]bool{}
	byPanel := make([]map[string]cell, len(panels))
	for i, p := range panels {
		m := map[string]cell{}
		for _, c := range p.Magnitudes {
			m[c.Indicator] = cell{text: c.Text, v: c.Value}
			order = appendNew(order, seen, c.Indicator)
		}
		for _, c := range p.Gauges {
			m[c.Indicator] = cell{text: c.Gauge.Text, v: c.Value}
			order = appendNew(order, seen, c.Indicator)
		}
		byPanel[i] = m
	}

	header := []any{"Indicator"}
	for _, p := range panels {
		header = append(header, fmt.Sprintf("%s %d", p.Country, p.Year))
	}
	var texts, values [][]any
	for _, name := range order {
		tr, vr := []any{name}, []any{name}
		for i := range panels {
			c, ok := byPanel[i][name]
			if !ok {
				tr = append(tr, indicators.NA)
				vr = append(vr, nil)
				continue
			}
			tr = append(tr, c.text)
			vr = append(vr, number(c.v))
		}
		texts = append(texts, tr)
		values = append(values, vr)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := writeSheet(f, SheetPanels, header, texts); err != nil {
		return err
	}
	if err := writeSheet(f, SheetValues, header, values); err != nil {
		return err
	}
	return finish(f, w)
}

// Rows writes a resolved result set, one line per (entity, year)
func Rows(w io.Writer, rs indicators.ResultSet) error {
	header := []any{"Entity", "Year"}
	for _, n := range rs.Indicators {
		header = append(header, n)
	}
	body := make([][]any, 0, len(rs.Rows))
	for _, r := range rs.Rows {
		line := []any{r.Entity, r.Year}
		for _, n := range rs.Indicators {
			line = append(line, number(r.Values[n]))
		}
		body = append(body, line)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := writeSheet(f, SheetRows, header, body); err != nil {
		return err
	}
	return finish(f, w)
}

func appendNew(order []string, seen map[string]bool, name string) []string {
	if seen[name] {
		return order
	}
	seen[name] = true
	return append(order, name)
}

// number leaves missing values as empty cells
func number(v indicators.Value) any {
	if f, ok := v.Float(); ok {
		return f
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, body [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx sheet")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx style")
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx header")
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx header style")
	}
	for i, line := range body {
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, start, &line); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx row")
		}
	}
	return f.SetColWidth(sheet, "A", "A", 32)
}

// finish drops the default sheet and writes the workbook
func finish(f *excelize.File, w io.Writer) error {
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx default sheet")
	}
	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "write xlsx")
	}
	return nil
}
