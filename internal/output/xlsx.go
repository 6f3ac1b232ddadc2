package output

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wealthify/fincalc/internal/domain"
)

// XLSXFormatter writes one worksheet per scenario: summary rows on top, the
// yearly schedule below.
type XLSXFormatter struct{}

func (XLSXFormatter) Name() string { return "xlsx" }

func (XLSXFormatter) Format(results *domain.ProjectionSet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i := range results.Results {
		sr := &results.Results[i]
		sheet := sheetName(sr.Name, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}
		if err := writeSheet(f, sheet, sr); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sr.Name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetName keeps worksheet titles unique and within the 31-character limit.
func sheetName(name string, index int) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	if clean == "" {
		clean = fmt.Sprintf("Scenario %d", index+1)
	}
	if len(clean) > 28 {
		clean = clean[:28]
	}
	return fmt.Sprintf("%d %s", index+1, clean)
}

func writeSheet(f *excelize.File, sheet string, sr *domain.ScenarioResult) error {
	invested, gain, total := sr.Totals()
	rows := [][]interface{}{
		{"Scenario", sr.Name},
		{"Calculator", string(sr.Calculator)},
		{"Invested", invested},
		{"Gain", gain},
		{"Total", total},
		{},
	}

	if sr.EMI != nil {
		rows = append(rows, []interface{}{"Year", "Label", "Principal", "Interest", "Balance"})
		for _, e := range sr.EMI.Schedule {
			rows = append(rows, []interface{}{e.Year, e.Label, e.Principal, e.Interest, e.Balance})
		}
	} else {
		rows = append(rows, []interface{}{"Year", "Label", "Invested", "Value", "Withdrawn", "Balance"})
		for _, e := range sr.Yearly() {
			rows = append(rows, []interface{}{e.Year, e.Label, e.Invested, e.Value, e.Withdrawn, e.Balance})
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
