package compare

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wealthify/fincalc/pkg/money"
)

// FormatTable renders the comparison set as a plain-text table.
func FormatTable(cs *ComparisonSet) string {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "Scenario Comparison (base: %s)\n", cs.BaseScenarioName)
	fmt.Fprintln(buf, strings.Repeat("-", 86))
	fmt.Fprintf(buf, "%-24s %-10s %14s %14s %14s %9s\n",
		"Scenario", "Kind", "Invested", "Gain", "Total", "vs Base")

	writeRow(buf, cs.BaseResult, true)
	for i := range cs.AlternativeResults {
		writeRow(buf, &cs.AlternativeResults[i], false)
	}

	if len(cs.Recommendations) > 0 {
		fmt.Fprintln(buf)
		for _, r := range cs.Recommendations {
			fmt.Fprintf(buf, "  * %s\n", r)
		}
	}
	return buf.String()
}

func writeRow(buf *bytes.Buffer, cr *ComparisonResult, isBase bool) {
	vsBase := "base"
	if !isBase {
		vsBase = fmt.Sprintf("%+.1f%%", cr.GainPctFromBase)
	}
	fmt.Fprintf(buf, "%-24s %-10s %14s %14s %14s %9s\n",
		truncate(cr.ScenarioName, 24),
		cr.Calculator,
		money.Format(cr.Invested),
		money.Format(cr.Gain),
		money.Format(cr.Total),
		vsBase)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
