package compare

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// FormatCSV renders the comparison set as CSV, base scenario first.
func FormatCSV(cs *ComparisonSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Calculator", "Invested", "Gain", "Total", "Horizon", "GainDiffFromBase", "GainPctFromBase"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	rows := append([]ComparisonResult{*cs.BaseResult}, cs.AlternativeResults...)
	for _, cr := range rows {
		row := []string{
			cr.ScenarioName,
			string(cr.Calculator),
			strconv.FormatInt(cr.Invested, 10),
			strconv.FormatInt(cr.Gain, 10),
			strconv.FormatInt(cr.Total, 10),
			strconv.Itoa(cr.Horizon),
			strconv.FormatInt(cr.GainDiffFromBase, 10),
			strconv.FormatFloat(cr.GainPctFromBase, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
