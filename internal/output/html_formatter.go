package output

import (
	"bytes"
	"html/template"

	"github.com/wealthify/fincalc/internal/domain"
)

// HTMLFormatter renders a self-contained report page.
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }

const htmlReportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Financial Projection Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #2c5f8a; padding-bottom: 0.3em; }
h2 { color: #2c5f8a; margin-top: 1.6em; }
table { border-collapse: collapse; margin-top: 0.8em; }
th, td { border: 1px solid #ccc; padding: 4px 12px; text-align: right; }
th { background: #eef3f8; }
.summary td { font-weight: 600; }
.kind { color: #777; font-size: 0.8em; text-transform: uppercase; }
</style>
</head>
<body>
<h1>Financial Projection Report</h1>
<p>Base year: {{.BaseYear}}</p>
{{range .Results}}
<h2>{{.Name}} <span class="kind">{{.Calculator}}</span></h2>
{{if .SIP}}{{template "growth" .SIP}}{{end}}
{{if .TopUp}}{{template "growth" .TopUp}}{{end}}
{{if .Lumpsum}}{{template "growth" .Lumpsum}}{{end}}
{{if .SWP}}
<table class="summary">
<tr><td>Yearly Withdrawal</td><td>{{fmtAmount .SWP.YearlyWithdrawal}}</td></tr>
<tr><td>Total Withdrawal</td><td>{{fmtAmount .SWP.TotalWithdrawal}}</td></tr>
<tr><td>Final Balance</td><td>{{fmtAmount .SWP.FinalBalance}}</td></tr>
</table>
<table>
<tr><th>Year</th><th>Label</th><th>Withdrawn</th><th>Balance</th></tr>
{{range .SWP.YearlyData}}<tr><td>{{.Year}}</td><td>{{.Label}}</td><td>{{fmtAmount .Withdrawn}}</td><td>{{fmtAmount .Balance}}</td></tr>
{{end}}
</table>
{{end}}
{{if .EMI}}
<table class="summary">
<tr><td>Monthly EMI</td><td>{{fmtAmount .EMI.EMI}}</td></tr>
<tr><td>Total Interest</td><td>{{fmtAmount .EMI.TotalInterest}}</td></tr>
<tr><td>Total Payment</td><td>{{fmtAmount .EMI.TotalPayment}}</td></tr>
</table>
<table>
<tr><th>Year</th><th>Label</th><th>Principal</th><th>Interest</th><th>Balance</th></tr>
{{range .EMI.Schedule}}<tr><td>{{.Year}}</td><td>{{.Label}}</td><td>{{fmtAmount .Principal}}</td><td>{{fmtAmount .Interest}}</td><td>{{fmtAmount .Balance}}</td></tr>
{{end}}
</table>
{{end}}
{{if .Inflation}}
<table class="summary">
<tr><td>Present Amount</td><td>{{fmtAmount .Inflation.PresentAmount}}</td></tr>
<tr><td>Future Value</td><td>{{fmtAmount .Inflation.FutureValue}}</td></tr>
<tr><td>Inflation Impact</td><td>{{fmtAmount .Inflation.InflationImpact}}</td></tr>
</table>
<table>
<tr><th>Year</th><th>Label</th><th>Today's Cost</th><th>Future Cost</th></tr>
{{range .Inflation.YearlyData}}<tr><td>{{.Year}}</td><td>{{.Label}}</td><td>{{fmtAmount .Invested}}</td><td>{{fmtAmount .Value}}</td></tr>
{{end}}
</table>
{{end}}
{{end}}
</body>
</html>
{{define "growth"}}
<table class="summary">
<tr><td>Invested Amount</td><td>{{fmtAmount .InvestedAmount}}</td></tr>
<tr><td>Estimated Returns</td><td>{{fmtAmount .EstimatedReturns}}</td></tr>
<tr><td>Total Value</td><td>{{fmtAmount .TotalValue}}</td></tr>
</table>
<table>
<tr><th>Year</th><th>Label</th><th>Invested</th><th>Value</th></tr>
{{range .YearlyData}}<tr><td>{{.Year}}</td><td>{{.Label}}</td><td>{{fmtAmount .Invested}}</td><td>{{fmtAmount .Value}}</td></tr>
{{end}}
</table>
{{end}}`

var htmlReport = template.Must(template.New("report").Funcs(template.FuncMap{
	"fmtAmount": FormatCurrency,
}).Parse(htmlReportTemplate))

func (HTMLFormatter) Format(results *domain.ProjectionSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := htmlReport.Execute(buf, results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
