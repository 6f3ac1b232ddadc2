package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/pkg/money"
)

// ConsoleFormatter renders the full report as plain text: a summary block per
// scenario followed by its year-by-year schedule.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(results *domain.ProjectionSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintln(buf, strings.Repeat("=", 72))
	fmt.Fprintf(buf, "FINANCIAL PROJECTION REPORT (base year %d)\n", results.BaseYear)
	fmt.Fprintln(buf, strings.Repeat("=", 72))

	for i := range results.Results {
		sr := &results.Results[i]
		fmt.Fprintf(buf, "\nSCENARIO %d: %s [%s]\n", i+1, sr.Name, sr.Calculator)
		fmt.Fprintln(buf, strings.Repeat("-", 50))
		writeScenario(buf, sr)
	}
	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, sr *domain.ScenarioResult) {
	switch {
	case sr.SIP != nil:
		writeInvestmentSummary(buf, sr.SIP.InvestedAmount, sr.SIP.EstimatedReturns, sr.SIP.TotalValue)
		writeGrowthTable(buf, sr.SIP.YearlyData)
	case sr.TopUp != nil:
		writeInvestmentSummary(buf, sr.TopUp.InvestedAmount, sr.TopUp.EstimatedReturns, sr.TopUp.TotalValue)
		writeGrowthTable(buf, sr.TopUp.YearlyData)
	case sr.Lumpsum != nil:
		writeInvestmentSummary(buf, sr.Lumpsum.InvestedAmount, sr.Lumpsum.EstimatedReturns, sr.Lumpsum.TotalValue)
		writeGrowthTable(buf, sr.Lumpsum.YearlyData)
	case sr.SWP != nil:
		fmt.Fprintf(buf, "Yearly Withdrawal:  %s\n", FormatCurrency(sr.SWP.YearlyWithdrawal))
		fmt.Fprintf(buf, "Total Withdrawal:   %s\n", FormatCurrency(sr.SWP.TotalWithdrawal))
		fmt.Fprintf(buf, "Final Balance:      %s\n", FormatCurrency(sr.SWP.FinalBalance))
		if sr.SWP.FinalBalance == 0 {
			fmt.Fprintf(buf, "Note: balance exhausted after %d year(s)\n", len(sr.SWP.YearlyData))
		}
		fmt.Fprintf(buf, "\n%6s %-6s %15s %15s\n", "Year", "Label", "Withdrawn", "Balance")
		for _, e := range sr.SWP.YearlyData {
			fmt.Fprintf(buf, "%6d %-6d %15s %15s\n", e.Year, e.Label, FormatCurrency(e.Withdrawn), FormatCurrency(e.Balance))
		}
	case sr.EMI != nil:
		fmt.Fprintf(buf, "Monthly EMI:        %s\n", FormatCurrency(sr.EMI.EMI))
		fmt.Fprintf(buf, "Total Interest:     %s\n", FormatCurrency(sr.EMI.TotalInterest))
		fmt.Fprintf(buf, "Total Payment:      %s\n", FormatCurrency(sr.EMI.TotalPayment))
		fmt.Fprintf(buf, "\n%6s %-6s %15s %15s %15s\n", "Year", "Label", "Principal", "Interest", "Balance")
		for _, e := range sr.EMI.Schedule {
			fmt.Fprintf(buf, "%6d %-6d %15s %15s %15s\n",
				e.Year, e.Label, FormatCurrency(e.Principal), FormatCurrency(e.Interest), FormatCurrency(e.Balance))
		}
	case sr.Inflation != nil:
		fmt.Fprintf(buf, "Present Amount:     %s\n", FormatCurrency(sr.Inflation.PresentAmount))
		fmt.Fprintf(buf, "Future Value:       %s\n", FormatCurrency(sr.Inflation.FutureValue))
		fmt.Fprintf(buf, "Inflation Impact:   %s\n", FormatCurrency(sr.Inflation.InflationImpact))
		fmt.Fprintf(buf, "\n%6s %-6s %15s %15s\n", "Year", "Label", "Today's Cost", "Future Cost")
		for _, e := range sr.Inflation.YearlyData {
			fmt.Fprintf(buf, "%6d %-6d %15s %15s\n", e.Year, e.Label, FormatCurrency(e.Invested), FormatCurrency(e.Value))
		}
	default:
		fmt.Fprintln(buf, "(no result)")
	}
}

func writeInvestmentSummary(buf *bytes.Buffer, invested, returns, total int64) {
	fmt.Fprintf(buf, "Invested Amount:    %s\n", FormatCurrency(invested))
	fmt.Fprintf(buf, "Estimated Returns:  %s\n", FormatCurrency(returns))
	fmt.Fprintf(buf, "Total Value:        %s\n", FormatCurrency(total))
}

func writeGrowthTable(buf *bytes.Buffer, entries []domain.YearlyEntry) {
	fmt.Fprintf(buf, "\n%6s %-6s %15s %15s\n", "Year", "Label", "Invested", "Value")
	for _, e := range entries {
		fmt.Fprintf(buf, "%6d %-6d %15s %15s\n", e.Year, e.Label, FormatCurrency(e.Invested), FormatCurrency(e.Value))
	}
}

// FormatCurrency formats a whole-unit amount for display.
func FormatCurrency(v int64) string {
	return money.Format(v)
}

// FormatPercentage formats a percentage value for display.
func FormatPercentage(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
