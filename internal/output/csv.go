package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/wealthify/fincalc/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (CSVSummarizer) Name() string { return "csv" }

func (CSVSummarizer) Format(results *domain.ProjectionSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Calculator", "Invested", "Gain", "Total"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range results.Results {
		sr := &results.Results[i]
		invested, gain, total := sr.Totals()
		row := []string{
			sr.Name,
			string(sr.Calculator),
			intToString(invested),
			intToString(gain),
			intToString(total),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDetailedExporter writes one row per projection year across all scenarios.
type CSVDetailedExporter struct{}

func (CSVDetailedExporter) Name() string { return "detailed-csv" }

func (CSVDetailedExporter) Format(results *domain.ProjectionSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Calculator", "Year", "Label", "Invested", "Value", "Withdrawn", "Balance", "Principal", "Interest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range results.Results {
		sr := &results.Results[i]
		if sr.EMI != nil {
			for _, e := range sr.EMI.Schedule {
				row := []string{
					sr.Name, string(sr.Calculator),
					strconv.Itoa(e.Year), strconv.Itoa(e.Label),
					"", "", "", intToString(e.Balance),
					intToString(e.Principal), intToString(e.Interest),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
			continue
		}
		for _, e := range sr.Yearly() {
			row := []string{
				sr.Name, string(sr.Calculator),
				strconv.Itoa(e.Year), strconv.Itoa(e.Label),
				intToString(e.Invested), intToString(e.Value),
				intToString(e.Withdrawn), intToString(e.Balance),
				"", "",
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func intToString(v int64) string {
	return strconv.FormatInt(v, 10)
}
